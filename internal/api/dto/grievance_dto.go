package dto

import (
	"time"

	"github.com/citizen-connect/grievance-service/internal/domain"
)

// CreateGrievanceRequest is the citizen submission payload.
type CreateGrievanceRequest struct {
	CitizenName  string                   `json:"citizenName" validate:"required"`
	CitizenPhone string                   `json:"citizenPhone" validate:"required"`
	CitizenEmail string                   `json:"citizenEmail" validate:"omitempty,email"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description" validate:"required,min=20"`
	Category     domain.GrievanceCategory `json:"category"`
	Priority     domain.GrievancePriority `json:"priority"`
	Location     string                   `json:"location"`
}

// UpdateGrievanceRequest is the admin update payload. Status is required;
// the remaining fields are merged only when present.
type UpdateGrievanceRequest struct {
	Status       domain.GrievanceStatus    `json:"status" validate:"required"`
	AdminRemarks *string                   `json:"adminRemarks"`
	Title        *string                   `json:"title"`
	Location     *string                   `json:"location"`
	Priority     *domain.GrievancePriority `json:"priority"`
}

// GrievanceResponse is the wire shape of a grievance record.
type GrievanceResponse struct {
	ID           string                   `json:"id"`
	TicketNumber string                   `json:"ticketNumber"`
	CitizenName  string                   `json:"citizenName"`
	CitizenPhone string                   `json:"citizenPhone"`
	CitizenEmail string                   `json:"citizenEmail,omitempty"`
	Title        string                   `json:"title,omitempty"`
	Description  string                   `json:"description"`
	Category     domain.GrievanceCategory `json:"category"`
	Priority     domain.GrievancePriority `json:"priority"`
	Status       domain.GrievanceStatus   `json:"status"`
	Location     string                   `json:"location"`
	AdminRemarks string                   `json:"adminRemarks"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// FromGrievance maps the domain record to its response shape.
func FromGrievance(g *domain.Grievance) GrievanceResponse {
	return GrievanceResponse{
		ID:           g.ID,
		TicketNumber: g.TicketNumber,
		CitizenName:  g.CitizenName,
		CitizenPhone: g.CitizenPhone,
		CitizenEmail: g.CitizenEmail,
		Title:        g.Title,
		Description:  g.Description,
		Category:     g.Category,
		Priority:     g.Priority,
		Status:       g.Status,
		Location:     g.Location,
		AdminRemarks: g.AdminRemarks,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}
