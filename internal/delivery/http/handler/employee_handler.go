package handler

import (
	"skillmap/internal/delivery/http/dto"
	"skillmap/internal/delivery/http/middleware"
	"skillmap/internal/pkg/response"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

type employeeRequest struct {
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	Position            *string `json:"position"`
	Department          *string `json:"department"`
	WorkingHoursPerWeek int     `json:"working_hours_per_week"`
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/:id", h.Get)
	r.Get("/:id/capacity", h.Capacity)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *EmployeeHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, employeeResponses(items))
}

func (h *EmployeeHandler) Search(c fiber.Ctx) error {
	items, err := h.uc.SearchEmployees(c.Context(), c.Query("q"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, employeeResponses(items))
}

func (h *EmployeeHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetEmployee(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, employeeResponse(item))
}

func (h *EmployeeHandler) Capacity(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	date, err := parseDateQuery(c)
	if err != nil {
		return err
	}

	capacity, err := h.uc.GetEmployeeCapacity(c.Context(), id, date)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.EmployeeCapacityResponse{
		EmployeeID:        capacity.EmployeeID,
		Date:              capacity.Date.Format("2006-01-02"),
		TotalAllocation:   capacity.TotalAllocation,
		AvailableCapacity: capacity.AvailableCapacity,
		ActiveAssignments: capacity.ActiveAssignments,
	})
}

func (h *EmployeeHandler) Create(c fiber.Ctx) error {
	var req employeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}

	created, err := h.uc.CreateEmployee(c.Context(), usecase.EmployeeInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Position:            req.Position,
		Department:          req.Department,
		WorkingHoursPerWeek: req.WorkingHoursPerWeek,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "", employeeResponse(created))
}

func (h *EmployeeHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}

	updated, err := h.uc.UpdateEmployee(c.Context(), id, usecase.EmployeeInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Position:            req.Position,
		Department:          req.Department,
		WorkingHoursPerWeek: req.WorkingHoursPerWeek,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, employeeResponse(updated))
}

func (h *EmployeeHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEmployee(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
