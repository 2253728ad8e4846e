package domain

import "time"

// CaseStatus enumerates lifecycle states for cases.
type CaseStatus string

const (
	// CaseStatusPendiente is the initial status for every new case. No other
	// transition is defined by the intake flow.
	CaseStatusPendiente CaseStatus = "PENDIENTE"
)

// Case is a support record opened by a user. Ticket is a human-facing
// numeric reference; it is generated randomly and is not unique.
type Case struct {
	ID          string
	Title       string
	Description string
	Type        string
	Ticket      string
	AuthorID    string
	Status      CaseStatus
	CreatedAt   time.Time
}
