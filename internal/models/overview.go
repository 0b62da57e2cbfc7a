package models

// Overview summarizes the data layer for the admin dashboard.
type Overview struct {
	Projects          int            `json:"projects"`
	Drafts            int            `json:"drafts"`
	Submissions       map[string]int `json:"submissions"`
	InterviewRequests map[string]int `json:"interviewRequests"`
	Cohorts           []string       `json:"cohorts"`
	Technologies      []string       `json:"technologies"`
}
