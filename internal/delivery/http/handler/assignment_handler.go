package handler

import (
	"time"

	"skillmap/internal/delivery/http/middleware"
	"skillmap/internal/pkg/response"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssignmentHandler struct {
	uc usecase.AssignmentUsecase
}

type createAssignmentRequest struct {
	ProjectID            uuid.UUID  `json:"project_id"`
	EmployeeID           uuid.UUID  `json:"employee_id"`
	Role                 *string    `json:"role"`
	AllocationPercentage int        `json:"allocation_percentage"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Notes                *string    `json:"notes"`
}

type updateAssignmentRequest struct {
	Role                 *string    `json:"role"`
	AllocationPercentage int        `json:"allocation_percentage"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Notes                *string    `json:"notes"`
}

func NewAssignmentHandler(uc usecase.AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

func (h *AssignmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/active", h.ListActive)
	r.Get("/automatic", h.ListAutomatic)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// RegisterProjectRoutes mounts the by-project listing under /projects/:id.
func (h *AssignmentHandler) RegisterProjectRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/assignments", h.ListByProject)
}

// RegisterEmployeeRoutes mounts the by-employee listing under /employees/:id.
func (h *AssignmentHandler) RegisterEmployeeRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/assignments", h.ListByEmployee)
}

func (h *AssignmentHandler) ListByProject(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListByProject(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, assignmentResponses(items))
}

func (h *AssignmentHandler) ListByEmployee(c fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListByEmployee(c.Context(), employeeID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, assignmentResponses(items))
}

func (h *AssignmentHandler) ListActive(c fiber.Ctx) error {
	date, err := parseDateQuery(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListActiveOn(c.Context(), date)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, assignmentResponses(items))
}

func (h *AssignmentHandler) ListAutomatic(c fiber.Ctx) error {
	items, err := h.uc.ListAutomaticallyAssigned(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, assignmentResponses(items))
}

func (h *AssignmentHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetAssignment(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, assignmentResponse(item))
}

func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	var req createAssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}
	if req.AllocationPercentage == 0 {
		req.AllocationPercentage = 100
	}

	created, err := h.uc.CreateAssignment(c.Context(), usecase.AssignmentInput{
		ProjectID:            req.ProjectID,
		EmployeeID:           req.EmployeeID,
		Role:                 req.Role,
		AllocationPercentage: req.AllocationPercentage,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Notes:                req.Notes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "", assignmentResponse(created))
}

func (h *AssignmentHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateAssignmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}

	updated, err := h.uc.UpdateAssignment(c.Context(), id, usecase.AssignmentInput{
		Role:                 req.Role,
		AllocationPercentage: req.AllocationPercentage,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Notes:                req.Notes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, assignmentResponse(updated))
}

func (h *AssignmentHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAssignment(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
