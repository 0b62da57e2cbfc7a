package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// List is an ordered set of labels such as technologies or skills. It is
// stored as a JSON array; a comma-separated JSON string is accepted on decode
// so records written by the browser build still load.
type List []string

// ParseList splits a comma-separated string, trimming whitespace and dropping
// blanks and duplicates. First occurrence wins.
func ParseList(s string) List {
	out := List{}
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

// Normalize trims every entry and drops blanks and duplicates.
func (l List) Normalize() List {
	return ParseList(strings.Join(l, ","))
}

// Contains reports whether the list holds label exactly.
func (l List) Contains(label string) bool {
	for _, v := range l {
		if v == label {
			return true
		}
	}
	return false
}

// String joins the list the way the upload form displays it.
func (l List) String() string {
	return strings.Join(l, ", ")
}

func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *List) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = ParseList(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = List(items)
	return nil
}

// Members is the ordered list of team member names on a project. Decoding
// also accepts the older one-name-per-line string form.
type Members []string

// ParseMembers splits s on newlines, trimming names and dropping blank lines.
func ParseMembers(s string) Members {
	out := Members{}
	for _, line := range strings.Split(s, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Size counts the non-blank member names.
func (m Members) Size() int {
	n := 0
	for _, name := range m {
		if strings.TrimSpace(name) != "" {
			n++
		}
	}
	return n
}

func (m Members) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(m))
}

func (m *Members) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = ParseMembers(s)
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*m = Members(names)
	return nil
}

// FlexString is a string that also decodes from a JSON number. Candidate ids
// were written as either form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexString(n.String())
	}
	return nil
}
