package models

import "time"

// ProjectDraft is a saved but unpublished project form. Drafts are never
// shown in the gallery and are never promoted automatically.
type ProjectDraft struct {
	ID           string  `json:"id"`
	ProjectName  string  `json:"projectName"`
	GroupName    string  `json:"groupName"`
	Cohort       string  `json:"cohort"`
	Category     string  `json:"category"`
	Technologies List    `json:"technologies"`
	Candidates   Members `json:"candidates"`
	Description  string  `json:"description"`
	ProjectURL   string  `json:"projectUrl"`
	GithubLink   string  `json:"githubLink"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Fields returns the draft as a form bundle, ready to load into the edit form.
func (d *ProjectDraft) Fields() ProjectFields {
	return ProjectFields{
		ProjectName:  d.ProjectName,
		GroupName:    d.GroupName,
		Cohort:       d.Cohort,
		Category:     d.Category,
		Technologies: d.Technologies,
		Candidates:   d.Candidates,
		Description:  d.Description,
		ProjectURL:   d.ProjectURL,
		GithubLink:   d.GithubLink,
	}
}

// SetFields overwrites the editable part of the draft.
func (d *ProjectDraft) SetFields(f ProjectFields) {
	d.ProjectName = f.ProjectName
	d.GroupName = f.GroupName
	d.Cohort = f.Cohort
	d.Category = f.Category
	d.Technologies = f.Technologies
	d.Candidates = f.Candidates
	d.Description = f.Description
	d.ProjectURL = f.ProjectURL
	d.GithubLink = f.GithubLink
}
