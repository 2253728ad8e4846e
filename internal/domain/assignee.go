package domain

// Assignee links a case to the advisor handling it. One record is created
// per intake call; nothing enforces a single assignee per case.
type Assignee struct {
	ID     int
	CaseID string
	UserID string
}
