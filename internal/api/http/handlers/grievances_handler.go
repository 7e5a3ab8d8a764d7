package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/citizen-connect/grievance-service/internal/api/dto"
	"github.com/citizen-connect/grievance-service/internal/service"
	"github.com/citizen-connect/grievance-service/pkg/util"
)

// GrievancesHandler manages grievance CRUD endpoints.
type GrievancesHandler struct {
	service  *service.GrievanceService
	validate *validator.Validate
}

// NewGrievancesHandler constructs handler.
func NewGrievancesHandler(grievanceService *service.GrievanceService) *GrievancesHandler {
	return &GrievancesHandler{
		service:  grievanceService,
		validate: validator.New(),
	}
}

// Create POST /grievances.
func (h *GrievancesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGrievanceRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return util.NewValidationError(validationMessage(err))
	}

	grievance, err := h.service.Create(c.UserContext(), service.CreateInput{
		CitizenName:  req.CitizenName,
		CitizenPhone: req.CitizenPhone,
		CitizenEmail: req.CitizenEmail,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Priority:     req.Priority,
		Location:     req.Location,
	})
	if err != nil {
		return err
	}
	return envelope(c, http.StatusCreated, dto.FromGrievance(grievance))
}

// List GET /grievances.
func (h *GrievancesHandler) List(c *fiber.Ctx) error {
	grievances, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.GrievanceResponse, 0, len(grievances))
	for i := range grievances {
		items = append(items, dto.FromGrievance(&grievances[i]))
	}
	return envelope(c, http.StatusOK, items)
}

// Get GET /grievances/:id.
func (h *GrievancesHandler) Get(c *fiber.Ctx) error {
	grievance, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, dto.FromGrievance(grievance))
}

// Update PUT /grievances/:id.
func (h *GrievancesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateGrievanceRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return util.NewValidationError(validationMessage(err))
	}

	status := req.Status
	grievance, err := h.service.Update(c.UserContext(), c.Params("id"), service.UpdateInput{
		Status:       &status,
		AdminRemarks: req.AdminRemarks,
		Title:        req.Title,
		Location:     req.Location,
		Priority:     req.Priority,
	})
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, dto.FromGrievance(grievance))
}

// Delete DELETE /grievances/:id.
func (h *GrievancesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return envelope(c, http.StatusOK, fiber.Map{"message": "Grievance deleted successfully"})
}

// envelope renders the success wrapper shared by all endpoints.
func envelope(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"data":       data,
	})
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "min":
			return fe.Field() + " must be at least " + fe.Param() + " characters"
		case "email":
			return fe.Field() + " must be a valid email address"
		}
		return fe.Field() + " is invalid"
	}
	return "invalid payload"
}
