package handler

import (
	"skillmap/internal/delivery/http/dto"
	"skillmap/internal/delivery/http/middleware"
	"skillmap/internal/pkg/response"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectSkillHandler struct {
	uc usecase.ProjectSkillUsecase
}

type addProjectSkillRequest struct {
	SkillID            uuid.UUID `json:"skill_id"`
	Importance         int       `json:"importance"`
	MinimumProficiency *int      `json:"minimum_proficiency_required"`
	MinimumFTE         float64   `json:"minimum_fte"`
	FTEThreshold       float64   `json:"fte_threshold"`
}

type updateProjectSkillRequest struct {
	Importance         int     `json:"importance"`
	MinimumProficiency *int    `json:"minimum_proficiency_required"`
	MinimumFTE         float64 `json:"minimum_fte"`
	FTEThreshold       float64 `json:"fte_threshold"`
}

func NewProjectSkillHandler(uc usecase.ProjectSkillUsecase) *ProjectSkillHandler {
	return &ProjectSkillHandler{uc: uc}
}

// RegisterRoutes mounts under /projects/:id/skills.
func (h *ProjectSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/:id/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:skillId", h.Update)
	grp.Delete("/:skillId", h.Remove)
}

func (h *ProjectSkillHandler) List(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListProjectSkills(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ProjectSkillResponse, 0, len(items))
	for _, ps := range items {
		res = append(res, projectSkillResponse(ps))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProjectSkillHandler) Add(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req addProjectSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}
	if req.MinimumFTE == 0 {
		req.MinimumFTE = 1.0
	}
	if req.FTEThreshold == 0 {
		req.FTEThreshold = 0.4
	}

	created, err := h.uc.AddProjectSkill(c.Context(), projectID, usecase.ProjectSkillInput{
		SkillID:            req.SkillID,
		Importance:         req.Importance,
		MinimumProficiency: req.MinimumProficiency,
		MinimumFTE:         req.MinimumFTE,
		FTEThreshold:       req.FTEThreshold,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "", projectSkillResponse(created))
}

func (h *ProjectSkillHandler) Update(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := parseIDParam(c, "skillId")
	if err != nil {
		return err
	}

	var req updateProjectSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "bad request", nil, err)
	}

	updated, err := h.uc.UpdateProjectSkill(c.Context(), projectID, skillID, usecase.ProjectSkillInput{
		SkillID:            skillID,
		Importance:         req.Importance,
		MinimumProficiency: req.MinimumProficiency,
		MinimumFTE:         req.MinimumFTE,
		FTEThreshold:       req.FTEThreshold,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, projectSkillResponse(updated))
}

func (h *ProjectSkillHandler) Remove(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	skillID, err := parseIDParam(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveProjectSkill(c.Context(), projectID, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func projectSkillResponse(ps usecase.ProjectSkillItem) dto.ProjectSkillResponse {
	return dto.ProjectSkillResponse{
		ID:                 ps.ID,
		ProjectID:          ps.ProjectID,
		SkillID:            ps.SkillID,
		SkillName:          ps.SkillName,
		Importance:         ps.Importance,
		MinimumProficiency: ps.MinimumProficiency,
		MinimumFTE:         ps.MinimumFTE,
		FTEThreshold:       ps.FTEThreshold,
	}
}
