package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"august/app/config"
	"august/app/service/emotion"
	"august/app/service/insights"
	"august/app/service/triage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/samber/do"
)

const shutdownTimeout = 5 * time.Second

type Service struct {
	cfg         *config.Config
	triageSvc   *triage.Service
	emotionSvc  *emotion.Service
	insightsSvc *insights.Service

	app *fiber.App
}

type chatRequest struct {
	Username      string             `json:"username"`
	Message       string             `json:"message"`
	History       []string           `json:"history"`
	SurveyContext map[string]float64 `json:"survey_context"`
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:         do.MustInvoke[*config.Config](di),
		triageSvc:   do.MustInvoke[*triage.Service](di),
		emotionSvc:  do.MustInvoke[*emotion.Service](di),
		insightsSvc: do.MustInvoke[*insights.Service](di),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	app.Post("/api/chat", s.handleChat)
	app.Get("/api/insights/:username", s.handleInsights)
	app.Get("/api/state/:username", s.handleState)

	s.app = app

	return s, nil
}

func (s *Service) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	requestID := uuid.NewString()

	bundle := s.triageSvc.ProcessMessage(c.Context(), triage.Request{
		Username:      req.Username,
		Message:       req.Message,
		History:       req.History,
		SurveyContext: req.SurveyContext,
	})

	slog.Debug("Chat turn served",
		"request_id", requestID,
		"username", req.Username,
	)

	return c.JSON(bundle)
}

func (s *Service) handleInsights(c *fiber.Ctx) error {
	username := c.Params("username")

	summary := s.insightsSvc.Summarize(username)
	if summary == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no conversation history",
		})
	}

	return c.JSON(summary)
}

func (s *Service) handleState(c *fiber.Ctx) error {
	return c.JSON(s.emotionSvc.Get(c.Params("username")))
}

// Run serves the chat API until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			slog.Warn("HTTP shutdown error", "error", err)
		}
	}()

	slog.Info("Serving chat API", "listen", s.cfg.HTTP.Listen)

	if err := s.app.Listen(s.cfg.HTTP.Listen); err != nil {
		return fmt.Errorf("http listen: %w", err)
	}

	return nil
}
