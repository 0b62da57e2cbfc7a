package models

// Review statuses for candidate submissions.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Follow-up statuses for interview requests. StatusPending is shared.
const (
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

// SubmissionCohort is the cohort label given to projects created from an
// approved candidate submission when no other label is configured.
const SubmissionCohort = "Candidate Submission"

// IsTerminalSubmissionStatus reports whether a submission can no longer change status.
func IsTerminalSubmissionStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

var interviewStatusRank = map[string]int{
	StatusPending:   0,
	StatusContacted: 1,
	StatusClosed:    2,
}

// IsInterviewStatus reports whether status is a known interview request status.
func IsInterviewStatus(status string) bool {
	_, ok := interviewStatusRank[status]
	return ok
}

// CanAdvanceInterview reports whether an interview request may move from one
// status to another. Statuses only move forward; skipping a step is allowed.
func CanAdvanceInterview(from, to string) bool {
	f, ok := interviewStatusRank[from]
	if !ok {
		return false
	}
	t, ok := interviewStatusRank[to]
	if !ok {
		return false
	}
	return t > f
}
