package handler

import (
	"skillmap/internal/delivery/http/dto"
	"skillmap/internal/delivery/http/middleware"
	"skillmap/internal/pkg/response"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EmployeeSkillHandler struct {
	uc usecase.EmployeeSkillUsecase
}

type addEmployeeSkillRequest struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel int       `json:"proficiency_level"`
	Notes            *string   `json:"notes"`
}

type updateEmployeeSkillRequest struct {
	ProficiencyLevel int     `json:"proficiency_level"`
	Notes            *string `json:"notes"`
}

func NewEmployeeSkillHandler(uc usecase.EmployeeSkillUsecase) *EmployeeSkillHandler {
	return &EmployeeSkillHandler{uc: uc}
}

// RegisterRoutes mounts under /employees/:id/skills.
func (h *EmployeeSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/:id/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:skillId", h.Update)
	grp.Delete("/:skillId", h.Remove)
}

func (h *EmployeeSkillHandler) List(c fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListEmployeeSkills(c.Context(), employeeID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.EmployeeSkillResponse, 0, len(items))
	for _, es := range items {
		res = append(res, employeeSkillResponse(es))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EmployeeSkillHandler) Add(c fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req addEmployeeSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}

	created, err := h.uc.AddEmployeeSkill(c.Context(), employeeID, usecase.EmployeeSkillInput{
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
		Notes:            req.Notes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "", employeeSkillResponse(created))
}

func (h *EmployeeSkillHandler) Update(c fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := parseIDParam(c, "skillId")
	if err != nil {
		return err
	}

	var req updateEmployeeSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}

	updated, err := h.uc.UpdateEmployeeSkill(c.Context(), employeeID, skillID, usecase.EmployeeSkillInput{
		SkillID:          skillID,
		ProficiencyLevel: req.ProficiencyLevel,
		Notes:            req.Notes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, employeeSkillResponse(updated))
}

func (h *EmployeeSkillHandler) Remove(c fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := parseIDParam(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveEmployeeSkill(c.Context(), employeeID, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func employeeSkillResponse(es usecase.EmployeeSkillItem) dto.EmployeeSkillResponse {
	return dto.EmployeeSkillResponse{
		ID:               es.ID,
		EmployeeID:       es.EmployeeID,
		SkillID:          es.SkillID,
		SkillName:        es.SkillName,
		ProficiencyLevel: es.ProficiencyLevel,
		Notes:            es.Notes,
	}
}
