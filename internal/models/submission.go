package models

import "time"

// CandidateSubmission is a candidate's profile and project awaiting review.
// Status moves pending -> approved or pending -> rejected. Only a candidate
// resubmission that asks for pending sends it back to review.
type CandidateSubmission struct {
	ID                 string `json:"id"`
	CandidateKey       string `json:"candidateKey"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	Skills             List   `json:"skills"`
	Bio                string `json:"bio"`
	ProjectTitle       string `json:"projectTitle"`
	ProjectDescription string `json:"projectDescription"`
	Technologies       List   `json:"technologies"`
	PhotoURL           string `json:"photoUrl"`
	GithubLink         string `json:"githubLink"`
	LiveDemoLink       string `json:"liveDemoLink"`
	Status             string `json:"status"` // pending, approved, rejected

	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}

// SetFields overwrites the candidate-editable part of the submission. Status is untouched.
func (s *CandidateSubmission) SetFields(f SubmissionFields) {
	s.Name = f.Name
	s.Role = f.Role
	s.Skills = f.Skills
	s.Bio = f.Bio
	s.ProjectTitle = f.ProjectTitle
	s.ProjectDescription = f.ProjectDescription
	s.Technologies = f.Technologies
	s.PhotoURL = f.PhotoURL
	s.GithubLink = f.GithubLink
	s.LiveDemoLink = f.LiveDemoLink
}

// SubmissionFields is the bundle sent by the candidate dashboard form.
type SubmissionFields struct {
	Name               string `json:"name" validate:"notblank"`
	Role               string `json:"role" validate:"notblank"`
	Skills             List   `json:"skills"`
	Bio                string `json:"bio"`
	ProjectTitle       string `json:"projectTitle" validate:"notblank"`
	ProjectDescription string `json:"projectDescription"`
	Technologies       List   `json:"technologies"`
	PhotoURL           string `json:"photoUrl" validate:"omitempty,weburl"`
	GithubLink         string `json:"githubLink" validate:"omitempty,weburl"`
	LiveDemoLink       string `json:"liveDemoLink" validate:"omitempty,weburl"`

	// Status may only be set to pending, to ask for the review to restart.
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending"`
}
