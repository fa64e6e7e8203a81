package bootstrap

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"worker_server/config"
	"worker_server/core/domain"
	"worker_server/core/pipeline"
	"worker_server/infra/database"
	"worker_server/infra/middleware"
	"worker_server/pkg/apperr"
	"worker_server/pkg/ratelimit"
	"worker_server/pkg/response"
)

// NewAPI wires the triage trigger API: a small Fiber app exposing exactly
// two routes over the pipeline built by NewTriage (spec.md §7's "batch
// trigger"). It carries none of the teacher's product surface — no OAuth
// callbacks, no webhook handlers, no settings/report/calendar endpoints.
func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	p, cleanup, err := NewTriage(cfg)
	if err != nil {
		return nil, cleanup, err
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		if c, err := database.NewRedis(cfg.RedisURL); err == nil {
			redisClient = c
			prev := cleanup
			cleanup = func() { c.Close(); prev() }
		}
	}
	limiter := ratelimit.NewSlidingWindowLimiter(redisClient, cfg.TriggerRPS, cfg.TriggerBurst)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.IsProduction(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             1 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(middleware.RateLimit(limiter))

	trigger := app.Group("/trigger", middleware.BearerAuth(cfg.TriggerToken))
	trigger.Post("/run", runHandler(p))
	trigger.Post("/approve/:draftID", approveHandler(p))

	return app, cleanup, nil
}

type runRequest struct {
	Query         string `json:"query"`
	MaxResults    int    `json:"max_results"`
	TimeRangeDays int    `json:"time_range_days"`
}

// runHandler triggers one triage batch and returns its queued/draft result.
// A batch-level failure (spec.md §7) maps to a non-2xx response; per-email
// errors stay inside the result's Errors slice and still return 200.
func runHandler(p *pipeline.Pipeline) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := runRequest{MaxResults: 50, TimeRangeDays: 7}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return response.Error(c, fiber.StatusBadRequest, apperr.CodeBadRequest, "invalid request body")
			}
		}

		scope := domain.UserScope{
			Query:         req.Query,
			MaxResults:    req.MaxResults,
			TimeRangeDays: req.TimeRangeDays,
		}

		result, err := p.Run(c.Context(), "trigger API batch", scope)
		if err != nil {
			return response.Error(c, fiber.StatusBadGateway, apperr.CodeExternalError, err.Error())
		}
		return response.OK(c, result)
	}
}

// approveHandler sends a previously created draft once an operator has
// approved it out of band; the pipeline never sends unsupervised.
func approveHandler(p *pipeline.Pipeline) fiber.Handler {
	return func(c *fiber.Ctx) error {
		draftID := c.Params("draftID")
		if draftID == "" {
			return response.Error(c, fiber.StatusBadRequest, apperr.CodeMissingField, "draftID is required")
		}
		if err := p.Approve(c.Context(), draftID); err != nil {
			return response.Error(c, fiber.StatusBadGateway, apperr.CodeExternalError, err.Error())
		}
		return response.OK(c, fiber.Map{"draft_id": draftID, "status": "sent"})
	}
}
