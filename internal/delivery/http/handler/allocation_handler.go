package handler

import (
	"skillmap/internal/pkg/response"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// AllocationHandler exposes the health scoring and auto-assignment engine.
type AllocationHandler struct {
	health     usecase.ProjectHealthUsecase
	metrics    usecase.AssignmentMetricsUsecase
	autoAssign usecase.AutoAssignUsecase
	global     usecase.GlobalAutoAssignUsecase
}

func NewAllocationHandler(
	health usecase.ProjectHealthUsecase,
	metrics usecase.AssignmentMetricsUsecase,
	autoAssign usecase.AutoAssignUsecase,
	global usecase.GlobalAutoAssignUsecase,
) *AllocationHandler {
	return &AllocationHandler{health: health, metrics: metrics, autoAssign: autoAssign, global: global}
}

// RegisterProjectRoutes mounts health and per-project auto-assign under
// /projects/:id.
func (h *AllocationHandler) RegisterProjectRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/health", h.ProjectHealth)
	r.Post("/:id/auto-assign", h.AutoAssignProject)
}

// RegisterMetricsRoutes mounts the org-wide metrics read under /metrics.
func (h *AllocationHandler) RegisterMetricsRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/assignments", h.AssignmentMetrics)
}

// RegisterAssignmentRoutes mounts the global auto-assign under /assignments.
func (h *AllocationHandler) RegisterAssignmentRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/auto-assign", h.AutoAssignAll)
}

func (h *AllocationHandler) ProjectHealth(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	date, err := parseDateQuery(c)
	if err != nil {
		return err
	}

	result, err := h.health.CalculateProjectHealth(c.Context(), projectID, date)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *AllocationHandler) AssignmentMetrics(c fiber.Ctx) error {
	date, err := parseDateQuery(c)
	if err != nil {
		return err
	}

	result, err := h.metrics.CalculateAssignmentMetrics(c.Context(), date)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *AllocationHandler) AutoAssignProject(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	date, err := parseDateQuery(c)
	if err != nil {
		return err
	}

	result, err := h.autoAssign.AutoAssignProject(c.Context(), projectID, date)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *AllocationHandler) AutoAssignAll(c fiber.Ctx) error {
	date, err := parseDateQuery(c)
	if err != nil {
		return err
	}

	result, err := h.global.AutoAssignAll(c.Context(), date)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}
