package models

// DateLayout is the calendar-date format used for requestDate.
const DateLayout = "2006-01-02"

// InterviewRequest is a client's request to interview a candidate.
type InterviewRequest struct {
	ID            string     `json:"id"`
	CandidateName string     `json:"candidateName"`
	CandidateID   FlexString `json:"candidateId,omitempty"`
	ClientName    string     `json:"clientName"`
	ClientEmail   string     `json:"clientEmail"`
	CompanyName   string     `json:"companyName"`
	PhoneNumber   string     `json:"phoneNumber"`
	Message       string     `json:"message"`
	ProjectName   string     `json:"projectName,omitempty"`
	RequestDate   string     `json:"requestDate"`
	Status        string     `json:"status"` // pending, contacted, closed
}

// InterviewRequestFields is the bundle sent by the request-interview form.
type InterviewRequestFields struct {
	CandidateName string     `json:"candidateName" validate:"notblank"`
	CandidateID   FlexString `json:"candidateId"`
	ClientName    string     `json:"clientName" validate:"min=2"`
	ClientEmail   string     `json:"clientEmail" validate:"required,email"`
	CompanyName   string     `json:"companyName" validate:"min=2"`
	PhoneNumber   string     `json:"phoneNumber" validate:"min=10"`
	Message       string     `json:"message" validate:"min=10"`
	ProjectName   string     `json:"projectName"`
}
