package handler

import (
	"errors"
	"time"

	"skillmap/internal/delivery/http/dto"
	"skillmap/internal/delivery/http/middleware"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError converts usecase sentinels into HTTP errors the error
// middleware renders. Anything unrecognized surfaces as a 500.
func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidProficiencyLevel),
		errors.Is(err, usecase.ErrInvalidImportance),
		errors.Is(err, usecase.ErrInvalidFTE),
		errors.Is(err, usecase.ErrInvalidProjectStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound),
		errors.Is(err, usecase.ErrSkillNotFound),
		errors.Is(err, usecase.ErrEmployeeSkillNotFound),
		errors.Is(err, usecase.ErrProjectNotFound),
		errors.Is(err, usecase.ErrProjectSkillNotFound),
		errors.Is(err, usecase.ErrAssignmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrEmployeeEmailTaken),
		errors.Is(err, usecase.ErrSkillAlreadyExists),
		errors.Is(err, usecase.ErrEmployeeSkillAlreadyExists),
		errors.Is(err, usecase.ErrProjectSkillAlreadyExists),
		errors.Is(err, usecase.ErrAssignmentAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}

func parseIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "invalid "+name, nil, err)
	}
	return id, nil
}

// parseDateQuery reads an optional ?date=YYYY-MM-DD query parameter and
// defaults to today (UTC) when absent.
func parseDateQuery(c fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, middleware.NewAppError(fiber.StatusBadRequest, "invalid date", nil, err)
	}
	return d, nil
}

func employeeResponse(e usecase.EmployeeItem) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:                  e.ID,
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		Email:               e.Email,
		Position:            e.Position,
		Department:          e.Department,
		WorkingHoursPerWeek: e.WorkingHoursPerWeek,
	}
}

func employeeResponses(items []usecase.EmployeeItem) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, employeeResponse(e))
	}
	return out
}

func assignmentResponse(a usecase.AssignmentItem) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:                    a.ID,
		ProjectID:             a.ProjectID,
		EmployeeID:            a.EmployeeID,
		Role:                  a.Role,
		AllocationPercentage:  a.AllocationPercentage,
		StartDate:             a.StartDate,
		EndDate:               a.EndDate,
		Notes:                 a.Notes,
		AutomaticallyAssigned: a.AutomaticallyAssigned,
	}
}

func assignmentResponses(items []usecase.AssignmentItem) []dto.AssignmentResponse {
	out := make([]dto.AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, assignmentResponse(a))
	}
	return out
}
