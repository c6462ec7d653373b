// AngelaMos | 2026
// handler.go

package email

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/content"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

const defaultFromAddress = "onboarding@resend.dev"

// SubscriberStore is the slice of the content layer the email endpoints
// need.
type SubscriberStore interface {
	SubscribeNewsletter(ctx context.Context, email string) (bool, error)
	ListNewsletterSubscribers(
		ctx context.Context,
	) ([]content.SubscriberResponse, error)
}

type Handler struct {
	sender   Sender
	store    SubscriberStore
	cfg      config.EmailConfig
	logger   *slog.Logger
	validate *validator.Validate
}

func NewHandler(
	sender Sender,
	store SubscriberStore,
	cfg config.EmailConfig,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		sender:   sender,
		store:    store,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireAdmin func(http.Handler) http.Handler,
) {
	r.Post("/newsletter", h.Subscribe)
	r.Post("/contact", h.Contact)
	r.With(requireAdmin).Post("/broadcast", h.Broadcast)
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe records the address and notifies the site owner. Re-subscribing
// an existing address succeeds without sending anything.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	if err := h.checkConfigured(w); err != nil {
		return
	}

	subscriber := strings.TrimSpace(req.Email)

	created, err := h.store.SubscribeNewsletter(r.Context(), subscriber)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if !created {
		core.OK(w, messageResponse{
			Success: true,
			Message: "You're already subscribed to the newsletter.",
		})
		return
	}

	msg := &Message{
		From:    h.fromAddress(),
		To:      []string{h.cfg.ContactEmail},
		Subject: "New Newsletter Subscription",
		HTML:    newsletterAdminHTML(subscriber, time.Now()),
	}
	if err := h.sender.Send(r.Context(), msg); err != nil {
		h.logger.Error("newsletter notification failed", "error", err)
		core.JSONError(w, core.NewAppError(
			http.StatusInternalServerError,
			"Failed to process subscription. Please try again later.",
		))
		return
	}

	core.OK(w, messageResponse{
		Success: true,
		Message: "Successfully subscribed! Check your email for confirmation.",
	})
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	if err := h.checkConfigured(w); err != nil {
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "New Contact Message"
	}

	msg := &Message{
		From:    h.fromAddress(),
		To:      []string{h.cfg.ContactEmail},
		ReplyTo: req.Email,
		Subject: subject,
		HTML:    contactHTML(req.Name, req.Email, req.Message),
	}
	if err := h.sender.Send(r.Context(), msg); err != nil {
		h.logger.Error("contact message failed", "error", err)
		core.JSONError(w, core.NewAppError(
			http.StatusInternalServerError,
			"Failed to send message. Please try again later.",
		))
		return
	}

	core.OK(w, messageResponse{
		Success: true,
		Message: "Message sent successfully",
	})
}

type broadcastRequest struct {
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html"    validate:"required"`
}

type broadcastResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
	Failed  int  `json:"failed"`
}

// Broadcast sends one email per subscriber. Individual failures are counted
// rather than aborting the run.
func (h *Handler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	if h.cfg.ResendAPIKey == "" {
		core.JSONError(w, core.ConfigurationError(
			"Email service not configured: Missing RESEND_API_KEY",
		))
		return
	}

	subscribers, err := h.store.ListNewsletterSubscribers(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	sent, failed := 0, 0
	for _, sub := range subscribers {
		msg := &Message{
			From:    h.fromAddress(),
			To:      []string{sub.Email},
			Subject: req.Subject,
			HTML:    req.HTML,
		}
		if err := h.sender.Send(r.Context(), msg); err != nil {
			h.logger.Error("broadcast send failed",
				"recipient", sub.Email,
				"error", err,
			)
			failed++
			continue
		}
		sent++
	}

	core.OK(w, broadcastResponse{Success: true, Sent: sent, Failed: failed})
}

func (h *Handler) checkConfigured(w http.ResponseWriter) error {
	if h.cfg.ContactEmail == "" {
		err := core.ConfigurationError(
			"Newsletter configuration error: " +
				"CONTACT_EMAIL or PROFILE_EMAIL must be set",
		)
		core.JSONError(w, err)
		return err
	}

	if h.cfg.ResendAPIKey == "" {
		err := core.ConfigurationError(
			"Email service not configured: Missing RESEND_API_KEY",
		)
		core.JSONError(w, err)
		return err
	}

	return nil
}

func (h *Handler) fromAddress() string {
	if h.cfg.FromEmail != "" {
		return h.cfg.FromEmail
	}
	return defaultFromAddress
}
