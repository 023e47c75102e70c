package v1

import (
	"log"

	"skillmap/internal/database"
	"skillmap/internal/delivery/http/handler"
	"skillmap/internal/repository"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, db database.DB, cache usecase.ResultCache, logger *log.Logger) {
	if r == nil {
		return
	}

	employeeRepo := repository.NewPostgresEmployeeRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	employeeSkillRepo := repository.NewPostgresEmployeeSkillRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)
	projectSkillRepo := repository.NewPostgresProjectSkillRepository(db)
	assignmentRepo := repository.NewPostgresAssignmentRepository(db)

	snapshot := usecase.NewSnapshotLoader(employeeRepo, employeeSkillRepo, projectRepo, projectSkillRepo, assignmentRepo)

	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, snapshot)
	skillUC := usecase.NewSkillUsecase(skillRepo, employeeRepo)
	employeeSkillUC := usecase.NewEmployeeSkillUsecase(employeeSkillRepo, employeeRepo, skillRepo, cache, logger)
	projectUC := usecase.NewProjectUsecase(projectRepo)
	projectSkillUC := usecase.NewProjectSkillUsecase(projectSkillRepo, projectRepo, skillRepo, cache, logger)
	assignmentUC := usecase.NewAssignmentUsecase(assignmentRepo, projectRepo, employeeRepo, cache, logger)

	healthUC := usecase.NewProjectHealthUsecase(projectRepo, snapshot, cache, logger)
	metricsUC := usecase.NewAssignmentMetricsUsecase(snapshot, cache, logger)
	autoAssignUC := usecase.NewProjectAutoAssignUsecase(projectRepo, assignmentRepo, snapshot, cache, logger)
	globalUC := usecase.NewGlobalAutoAssignUsecase(assignmentRepo, snapshot, cache, logger)

	employeeHandler := handler.NewEmployeeHandler(employeeUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	employeeSkillHandler := handler.NewEmployeeSkillHandler(employeeSkillUC)
	projectHandler := handler.NewProjectHandler(projectUC)
	projectSkillHandler := handler.NewProjectSkillHandler(projectSkillUC)
	assignmentHandler := handler.NewAssignmentHandler(assignmentUC)
	allocationHandler := handler.NewAllocationHandler(healthUC, metricsUC, autoAssignUC, globalUC)

	employees := r.Group("/employees")
	employeeHandler.RegisterRoutes(employees)
	employeeSkillHandler.RegisterRoutes(employees)
	assignmentHandler.RegisterEmployeeRoutes(employees)

	skills := r.Group("/skills")
	skillHandler.RegisterRoutes(skills)

	projects := r.Group("/projects")
	projectHandler.RegisterRoutes(projects)
	projectSkillHandler.RegisterRoutes(projects)
	assignmentHandler.RegisterProjectRoutes(projects)
	allocationHandler.RegisterProjectRoutes(projects)

	assignments := r.Group("/assignments")
	assignmentHandler.RegisterRoutes(assignments)
	allocationHandler.RegisterAssignmentRoutes(assignments)

	metrics := r.Group("/metrics")
	allocationHandler.RegisterMetricsRoutes(metrics)
}
