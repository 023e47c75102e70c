package dto

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeResponse struct {
	ID                  uuid.UUID `json:"id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email"`
	Position            *string   `json:"position"`
	Department          *string   `json:"department"`
	WorkingHoursPerWeek int       `json:"working_hours_per_week"`
}

type EmployeeCapacityResponse struct {
	EmployeeID        uuid.UUID `json:"employee_id"`
	Date              string    `json:"date"`
	TotalAllocation   int       `json:"total_allocation"`
	AvailableCapacity int       `json:"available_capacity"`
	ActiveAssignments int       `json:"active_assignments"`
}

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
}

type EmployeeSkillResponse struct {
	ID               uuid.UUID `json:"id"`
	EmployeeID       uuid.UUID `json:"employee_id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel int       `json:"proficiency_level"`
	Notes            *string   `json:"notes"`
}

type ProjectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Budget      *float64   `json:"budget"`
	Status      string     `json:"status"`
}

type ProjectSkillResponse struct {
	ID                 uuid.UUID `json:"id"`
	ProjectID          uuid.UUID `json:"project_id"`
	SkillID            uuid.UUID `json:"skill_id"`
	SkillName          string    `json:"skill_name"`
	Importance         int       `json:"importance"`
	MinimumProficiency *int      `json:"minimum_proficiency_required"`
	MinimumFTE         float64   `json:"minimum_fte"`
	FTEThreshold       float64   `json:"fte_threshold"`
}

type AssignmentResponse struct {
	ID                    uuid.UUID  `json:"id"`
	ProjectID             uuid.UUID  `json:"project_id"`
	EmployeeID            uuid.UUID  `json:"employee_id"`
	Role                  *string    `json:"role"`
	AllocationPercentage  int        `json:"allocation_percentage"`
	StartDate             *time.Time `json:"start_date"`
	EndDate               *time.Time `json:"end_date"`
	Notes                 *string    `json:"notes"`
	AutomaticallyAssigned bool       `json:"is_automatically_assigned"`
}
