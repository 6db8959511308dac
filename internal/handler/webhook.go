package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pipeline-tools/ccnotify/event"
	"github.com/pipeline-tools/ccnotify/internal/config"
	"github.com/pipeline-tools/ccnotify/internal/errors"
	"github.com/pipeline-tools/ccnotify/internal/logging"
	"github.com/pipeline-tools/ccnotify/internal/trigger"
)

// CommitMessageHeader optionally carries the latest commit message of
// the notification's source branch. The service never fetches it; a
// delivery pipeline that knows the message passes it along so commit
// based gating can apply.
const CommitMessageHeader = "X-Commit-Message"

// EventHandler handles CodeCommit notification deliveries
type EventHandler struct {
	engine *trigger.Engine
	config *config.Config
}

// NewEventHandler creates a new notification event handler
func NewEventHandler(cfg *config.Config, engine *trigger.Engine) *EventHandler {
	return &EventHandler{engine: engine, config: cfg}
}

// HandleEvent processes one notification delivery: it unwraps the SNS
// envelope, classifies the event and returns the trigger decision with
// the assembled build jobs.
func (h *EventHandler) HandleEvent(c *fiber.Ctx) error {
	if err := h.verifyToken(c); err != nil {
		return err
	}

	env, err := event.ParseSNSMessage(c.Body())
	if err != nil {
		return errors.NewErrorWithCause(errors.ErrInvalidFormat,
			"request body is not a notification payload", err)
	}

	if !env.IsCodeCommit() {
		return errors.NewError(errors.ErrUnsupportedSource,
			"unsupported event source: "+env.Source)
	}

	ev, err := env.Event()
	if err != nil {
		return errors.NewErrorWithCause(errors.ErrInvalidFormat,
			"failed to decode event detail", err).
			WithEventContext(env.Source, "")
	}

	commitMessage := c.Get(CommitMessageHeader)
	ctx := &trigger.Context{Event: ev, CommitMessage: commitMessage}
	params := trigger.Parameters(env, ev, commitMessage)

	decision, jobs := h.engine.Evaluate(ctx, params)

	logging.EventInfo(ev.RepoName(), string(ev.Type()), "trigger decision",
		zap.String("decision", string(decision.Type)),
		zap.String("reason", decision.Reason),
		zap.Int("jobs", len(jobs)))

	return c.JSON(fiber.Map{
		"event_type": ev.Type(),
		"decision":   decision,
		"jobs":       jobs,
	})
}

// verifyToken enforces the shared webhook token when one is configured.
func (h *EventHandler) verifyToken(c *fiber.Ctx) error {
	if !h.config.Webhook.EnableVerification || !h.config.HasWebhookToken() {
		return nil
	}
	if c.Get("X-Webhook-Token") != h.config.Webhook.Token {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid webhook token")
	}
	return nil
}
