package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/citizen-connect/grievance-service/internal/classifier"
	"github.com/citizen-connect/grievance-service/internal/domain"
	"github.com/citizen-connect/grievance-service/internal/events"
	"github.com/citizen-connect/grievance-service/internal/store"
	"github.com/citizen-connect/grievance-service/pkg/util"
)

const (
	minDescriptionLen = 20
	ticketMaxAttempts = 5
)

// GrievanceService coordinates grievance intake and lifecycle.
type GrievanceService struct {
	store      store.GrievanceStore
	dispatcher events.Dispatcher
	logger     *zap.Logger

	// seams for tests
	now       func() time.Time
	newTicket func() string
}

// GrievanceDependencies bundles collaborators for the service.
type GrievanceDependencies struct {
	Store      store.GrievanceStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewGrievanceService constructs the service.
func NewGrievanceService(deps GrievanceDependencies) *GrievanceService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GrievanceService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
		newTicket:  classifier.NewTicketNumber,
	}
}

// CreateInput describes citizen submission fields. Category, Priority and
// Location may be supplied explicitly; missing ones are filled in by the
// classifier from the description text.
type CreateInput struct {
	CitizenName  string
	CitizenPhone string
	CitizenEmail string
	Title        string
	Description  string
	Category     domain.GrievanceCategory
	Priority     domain.GrievancePriority
	Location     string
}

// UpdateInput describes admin-editable fields. Nil pointers leave the
// existing value untouched.
type UpdateInput struct {
	Status       *domain.GrievanceStatus
	AdminRemarks *string
	Title        *string
	Location     *string
	Priority     *domain.GrievancePriority
}

// Create validates the submission, classifies it when needed, assigns
// identifiers and persists the new grievance with status Pending.
func (s *GrievanceService) Create(ctx context.Context, input CreateInput) (*domain.Grievance, error) {
	name := strings.TrimSpace(input.CitizenName)
	phone := strings.TrimSpace(input.CitizenPhone)
	description := strings.TrimSpace(input.Description)

	if name == "" {
		return nil, util.NewValidationError("citizenName is required")
	}
	if phone == "" {
		return nil, util.NewValidationError("citizenPhone is required")
	}
	if description == "" {
		return nil, util.NewValidationError("description is required")
	}
	if len(description) < minDescriptionLen {
		return nil, util.NewValidationError("description must be at least 20 characters")
	}

	classified := false
	category := input.Category
	priority := input.Priority
	location := strings.TrimSpace(input.Location)
	if category == "" || priority == "" || location == "" {
		result := classifier.Classify(description)
		if category == "" {
			category = result.Category
			classified = true
		}
		if priority == "" {
			priority = result.Priority
		}
		if location == "" {
			location = result.Location
		}
	}
	if !domain.ValidPriority(priority) {
		priority = domain.PriorityMedium
	}

	now := s.now()
	grievance := &domain.Grievance{
		ID:           "grv_" + uuid.NewString(),
		CitizenName:  name,
		CitizenPhone: phone,
		CitizenEmail: strings.TrimSpace(input.CitizenEmail),
		Title:        strings.TrimSpace(input.Title),
		Description:  description,
		Category:     category,
		Priority:     priority,
		Status:       domain.StatusPending,
		Location:     location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ticket, err := s.assignTicketNumber(ctx)
	if err != nil {
		return nil, err
	}
	grievance.TicketNumber = ticket

	if err := s.store.Put(ctx, grievance); err != nil {
		return nil, err
	}

	s.logger.Info("grievance created",
		zap.String("id", grievance.ID),
		zap.String("ticket", grievance.TicketNumber),
		zap.String("category", string(grievance.Category)),
		zap.String("priority", string(grievance.Priority)),
	)
	s.publishEvent(ctx, events.Event{
		Type:        events.EventGrievanceCreated,
		GrievanceID: grievance.ID,
		Payload: events.GrievanceCreatedPayload{
			TicketNumber: grievance.TicketNumber,
			Category:     grievance.Category,
			Priority:     grievance.Priority,
			Location:     grievance.Location,
			Classified:   classified,
		},
	})
	return grievance, nil
}

// List returns all grievances.
func (s *GrievanceService) List(ctx context.Context) ([]domain.Grievance, error) {
	return s.store.Scan(ctx)
}

// GetByID returns the grievance or a not-found error.
func (s *GrievanceService) GetByID(ctx context.Context, id string) (*domain.Grievance, error) {
	grievance, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, util.NewNotFound("Grievance")
	}
	if err != nil {
		return nil, err
	}
	return grievance, nil
}

// Update merges the supplied fields over the existing record and always
// refreshes the updated timestamp. Any status may follow any other; only
// enum membership is checked.
func (s *GrievanceService) Update(ctx context.Context, id string, input UpdateInput) (*domain.Grievance, error) {
	grievance, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, util.NewNotFound("Grievance")
	}
	if err != nil {
		return nil, err
	}

	oldStatus := grievance.Status
	if input.Status != nil {
		if !domain.ValidStatus(*input.Status) {
			return nil, util.NewValidationError("invalid status value")
		}
		grievance.Status = *input.Status
	}
	if input.AdminRemarks != nil {
		grievance.AdminRemarks = *input.AdminRemarks
	}
	if input.Title != nil {
		grievance.Title = strings.TrimSpace(*input.Title)
	}
	if input.Location != nil {
		grievance.Location = strings.TrimSpace(*input.Location)
	}
	if input.Priority != nil {
		if !domain.ValidPriority(*input.Priority) {
			return nil, util.NewValidationError("invalid priority value")
		}
		grievance.Priority = *input.Priority
	}
	grievance.UpdatedAt = s.now()

	if err := s.store.Put(ctx, grievance); err != nil {
		return nil, err
	}

	if input.Status != nil && oldStatus != grievance.Status {
		s.publishEvent(ctx, events.Event{
			Type:        events.EventGrievanceStatusChanged,
			GrievanceID: grievance.ID,
			Payload: events.GrievanceStatusChangedPayload{
				OldStatus:    oldStatus,
				NewStatus:    grievance.Status,
				AdminRemarks: grievance.AdminRemarks,
			},
		})
	}
	return grievance, nil
}

// Delete permanently removes the grievance.
func (s *GrievanceService) Delete(ctx context.Context, id string) error {
	grievance, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return util.NewNotFound("Grievance")
	}
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return util.NewNotFound("Grievance")
		}
		return err
	}

	s.logger.Info("grievance deleted", zap.String("id", id))
	s.publishEvent(ctx, events.Event{
		Type:        events.EventGrievanceDeleted,
		GrievanceID: id,
		Payload: events.GrievanceDeletedPayload{
			TicketNumber: grievance.TicketNumber,
		},
	})
	return nil
}

// assignTicketNumber draws ticket numbers until one is unused, giving up
// after a few attempts since the suffix space is only 10,000 values.
func (s *GrievanceService) assignTicketNumber(ctx context.Context) (string, error) {
	ticket := s.newTicket()
	for attempt := 0; attempt < ticketMaxAttempts; attempt++ {
		existing, err := s.store.Scan(ctx)
		if err != nil {
			return "", err
		}
		if !ticketInUse(existing, ticket) {
			return ticket, nil
		}
		ticket = s.newTicket()
	}
	s.logger.Warn("ticket number collision retries exhausted, using best effort", zap.String("ticket", ticket))
	return ticket, nil
}

func ticketInUse(records []domain.Grievance, ticket string) bool {
	for i := range records {
		if records[i].TicketNumber == ticket {
			return true
		}
	}
	return false
}

func (s *GrievanceService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
