package models

import "time"

// Project is a published team project shown in the gallery.
type Project struct {
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

	// SourceSubmissionID is set when the project was created by approving a
	// candidate submission. Soft reference, not enforced.
	SourceSubmissionID string `json:"sourceSubmissionId,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// TeamSize is the number of named members on the project.
func (p *Project) TeamSize() int {
	return p.Candidates.Size()
}

// Fields returns the editable part of the project.
func (p *Project) Fields() ProjectFields {
	return ProjectFields{
		ProjectName:  p.ProjectName,
		GroupName:    p.GroupName,
		Cohort:       p.Cohort,
		Category:     p.Category,
		Technologies: p.Technologies,
		Candidates:   p.Candidates,
		Description:  p.Description,
		ProjectURL:   p.ProjectURL,
		GithubLink:   p.GithubLink,
	}
}

// SetFields overwrites the editable part of the project.
func (p *Project) SetFields(f ProjectFields) {
	p.ProjectName = f.ProjectName
	p.GroupName = f.GroupName
	p.Cohort = f.Cohort
	p.Category = f.Category
	p.Technologies = f.Technologies
	p.Candidates = f.Candidates
	p.Description = f.Description
	p.ProjectURL = f.ProjectURL
	p.GithubLink = f.GithubLink
}

// ProjectFields is the field bundle submitted by the upload and edit forms.
type ProjectFields struct {
	ProjectName  string  `json:"projectName" validate:"notblank"`
	GroupName    string  `json:"groupName" validate:"notblank"`
	Cohort       string  `json:"cohort" validate:"notblank"`
	Category     string  `json:"category"`
	Technologies List    `json:"technologies"`
	Candidates   Members `json:"candidates"`
	Description  string  `json:"description"`
	ProjectURL   string  `json:"projectUrl" validate:"omitempty,weburl"`
	GithubLink   string  `json:"githubLink" validate:"omitempty,weburl"`
}

// ProjectPatch holds the fields an edit changes. Nil fields keep their current value.
type ProjectPatch struct {
	ProjectName  *string  `json:"projectName"`
	GroupName    *string  `json:"groupName"`
	Cohort       *string  `json:"cohort"`
	Category     *string  `json:"category"`
	Technologies *List    `json:"technologies"`
	Candidates   *Members `json:"candidates"`
	Description  *string  `json:"description"`
	ProjectURL   *string  `json:"projectUrl"`
	GithubLink   *string  `json:"githubLink"`
}

// Apply merges the patch into f.
func (p ProjectPatch) Apply(f ProjectFields) ProjectFields {
	if p.ProjectName != nil {
		f.ProjectName = *p.ProjectName
	}
	if p.GroupName != nil {
		f.GroupName = *p.GroupName
	}
	if p.Cohort != nil {
		f.Cohort = *p.Cohort
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Technologies != nil {
		f.Technologies = *p.Technologies
	}
	if p.Candidates != nil {
		f.Candidates = *p.Candidates
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.ProjectURL != nil {
		f.ProjectURL = *p.ProjectURL
	}
	if p.GithubLink != nil {
		f.GithubLink = *p.GithubLink
	}
	return f
}

// ProjectFilter narrows the gallery. Empty fields match everything.
type ProjectFilter struct {
	Search     string
	Cohort     string
	Technology string
}

// ProjectStats are the gallery facets computed from the project collection.
type ProjectStats struct {
	Total        int      `json:"total"`
	Cohorts      []string `json:"cohorts"`
	Technologies []string `json:"technologies"`
}
