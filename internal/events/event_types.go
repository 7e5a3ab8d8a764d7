package events

import (
	"time"

	"github.com/citizen-connect/grievance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventGrievanceCreated       EventType = "grievance_created"
	EventGrievanceStatusChanged EventType = "grievance_status_changed"
	EventGrievanceDeleted       EventType = "grievance_deleted"
)

// Event represents a domain event emitted by the grievance service.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	GrievanceID string      `json:"grievance_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// GrievanceCreatedPayload payload.
type GrievanceCreatedPayload struct {
	TicketNumber string                   `json:"ticket_number"`
	Category     domain.GrievanceCategory `json:"category"`
	Priority     domain.GrievancePriority `json:"priority"`
	Location     string                   `json:"location"`
	Classified   bool                     `json:"classified"`
}

// GrievanceStatusChangedPayload payload.
type GrievanceStatusChangedPayload struct {
	OldStatus    domain.GrievanceStatus `json:"old_status"`
	NewStatus    domain.GrievanceStatus `json:"new_status"`
	AdminRemarks string                 `json:"admin_remarks,omitempty"`
}

// GrievanceDeletedPayload payload.
type GrievanceDeletedPayload struct {
	TicketNumber string `json:"ticket_number"`
}
