package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbelov/worklog/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	companies *handlers.CompanyHandler,
	jobs *handlers.JobHandler,
	bullets *handlers.BulletHandler,
	skills *handlers.SkillHandler,
	imports *handlers.ImportHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Everything below is per-user data
	cg := v1.Group("/companies", authMW)
	cg.Post("/", companies.Create)
	cg.Get("/", companies.List)
	cg.Get("/:id", companies.Get)
	cg.Put("/:id", companies.Rename)
	cg.Delete("/:id", companies.Delete)
	cg.Post("/:id/jobs", jobs.Create)
	cg.Get("/:id/jobs", jobs.List)

	jg := v1.Group("/jobs", authMW)
	jg.Get("/:id", jobs.Get)
	jg.Put("/:id", jobs.Update)
	jg.Delete("/:id", jobs.Delete)
	jg.Post("/:id/bullets", bullets.Create)
	jg.Get("/:id/bullets", bullets.List)
	jg.Post("/:id/bullets/import", imports.Bullets)

	bg := v1.Group("/bullets", authMW)
	bg.Put("/:id", bullets.Update)
	bg.Delete("/:id", bullets.Delete)
	bg.Get("/:id/skills", bullets.Skills)
	bg.Put("/:id/skills/:skillId", bullets.LinkSkill)
	bg.Delete("/:id/skills/:skillId", bullets.UnlinkSkill)
	bg.Post("/:id/skills/suggest", imports.SuggestSkills)

	sg := v1.Group("/skills", authMW)
	sg.Post("/", skills.Create)
	sg.Get("/", skills.List)
	sg.Delete("/:id", skills.Delete)

	ig := v1.Group("/import", authMW)
	ig.Post("/resume", imports.Resume)
}
