package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventCaseCreated    EventType = "case_created"
	EventCaseAssigned   EventType = "case_assigned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// CaseCreatedPayload payload.
type CaseCreatedPayload struct {
	CaseID   string `json:"case_id"`
	Ticket   string `json:"ticket"`
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
}

// CaseAssignedPayload payload.
type CaseAssignedPayload struct {
	AssigneeID int    `json:"assignee_id"`
	CaseID     string `json:"case_id"`
	AdvisorID  string `json:"advisor_id"`
}
