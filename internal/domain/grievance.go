package domain

import "time"

// GrievanceStatus enumerates lifecycle states for grievances.
//
// The transition graph is intentionally unrestricted: an admin may move a
// grievance from any status to any other, including reopening a resolved
// one. Only enum membership is validated.
type GrievanceStatus string

const (
	StatusPending    GrievanceStatus = "Pending"
	StatusInProgress GrievanceStatus = "In Progress"
	StatusResolved   GrievanceStatus = "Resolved"
	StatusRejected   GrievanceStatus = "Rejected"
)

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s GrievanceStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// GrievancePriority enumerates urgency levels.
type GrievancePriority string

const (
	PriorityHigh   GrievancePriority = "High"
	PriorityMedium GrievancePriority = "Medium"
	PriorityLow    GrievancePriority = "Low"
)

// ValidPriority reports whether p is a known priority.
func ValidPriority(p GrievancePriority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// GrievanceCategory enumerates complaint categories.
type GrievanceCategory string

const (
	CategoryWaterSupply  GrievanceCategory = "Water Supply"
	CategoryRoads        GrievanceCategory = "Roads & Transport"
	CategoryElectricity  GrievanceCategory = "Electricity"
	CategorySanitation   GrievanceCategory = "Sanitation"
	CategoryPublicSafety GrievanceCategory = "Public Safety"
	CategoryHealthcare   GrievanceCategory = "Healthcare"
	CategoryEducation    GrievanceCategory = "Education"
	CategoryGeneral      GrievanceCategory = "General"
)

// UnknownLocation is the placeholder when no locality could be extracted.
const UnknownLocation = "Unknown"

// Grievance is the aggregate for citizen complaints.
type Grievance struct {
	ID           string            `json:"id"`
	TicketNumber string            `json:"ticketNumber"`
	CitizenName  string            `json:"citizenName"`
	CitizenPhone string            `json:"citizenPhone"`
	CitizenEmail string            `json:"citizenEmail,omitempty"`
	Title        string            `json:"title,omitempty"`
	Description  string            `json:"description"`
	Category     GrievanceCategory `json:"category"`
	Priority     GrievancePriority `json:"priority"`
	Status       GrievanceStatus   `json:"status"`
	Location     string            `json:"location"`
	AdminRemarks string            `json:"adminRemarks"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
