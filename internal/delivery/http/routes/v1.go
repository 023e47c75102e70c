package routes

import (
	"log"

	"skillmap/internal/database"
	v1 "skillmap/internal/delivery/http/routes/v1"
	"skillmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, db database.DB, cache usecase.ResultCache, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, db, cache, logger)
}
