// AngelaMos | 2026
// handler.go

package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the content API. Reads are public; every mutation
// goes through the admin gate.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireAdmin func(http.Handler) http.Handler,
) {
	r.Get("/", h.GetAllContent)

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.GetProfile)
		r.With(requireAdmin).Put("/", h.SaveProfile)
	})

	r.Route("/case-studies", func(r chi.Router) {
		r.Get("/", h.ListCaseStudies)
		r.With(requireAdmin).Post("/", h.CreateCaseStudy)
		r.With(requireAdmin).Put("/{id}", h.UpdateCaseStudy)
		r.With(requireAdmin).Delete("/{id}", h.DeleteCaseStudy)
		r.With(requireAdmin).Post("/{id}/move", h.MoveCaseStudy)
	})

	r.Route("/insights", func(r chi.Router) {
		r.Get("/", h.ListInsights)
		r.With(requireAdmin).Post("/", h.CreateInsight)
		r.With(requireAdmin).Put("/{id}", h.UpdateInsight)
		r.With(requireAdmin).Delete("/{id}", h.DeleteInsight)
	})

	r.Route("/faqs", func(r chi.Router) {
		r.Get("/", h.ListFAQs)
		r.With(requireAdmin).Post("/", h.CreateFAQ)
		r.With(requireAdmin).Put("/{id}", h.UpdateFAQ)
		r.With(requireAdmin).Delete("/{id}", h.DeleteFAQ)
		r.With(requireAdmin).Post("/{id}/move", h.MoveFAQ)
	})

	r.With(requireAdmin).Get(
		"/newsletter-subscribers",
		h.ListNewsletterSubscribers,
	)
}

func (h *Handler) GetAllContent(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetAllContent(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	core.OK(w, response)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		respondStoreError(w, err, "Profile")
		return
	}
	core.OK(w, profile)
}

func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var payload ProfilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	saved, err := h.service.SaveProfile(r.Context(), &payload)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, saved)
}

func (h *Handler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCaseStudies(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	core.OK(w, items)
}

func (h *Handler) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var payload CaseStudyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	created, err := h.service.CreateCaseStudy(r.Context(), &payload)
	if err != nil {
		respondStoreError(w, err, "Case study")
		return
	}

	core.Created(w, created)
}

func (h *Handler) UpdateCaseStudy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCaseStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	updated, err := h.service.UpdateCaseStudy(r.Context(), id, &req)
	if err != nil {
		respondStoreError(w, err, "Case study")
		return
	}

	core.OK(w, updated)
}

func (h *Handler) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteCaseStudy(r.Context(), id); err != nil {
		respondStoreError(w, err, "Case study")
		return
	}

	core.NoContent(w)
}

func (h *Handler) MoveCaseStudy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, ok := h.decodeMove(w, r)
	if !ok {
		return
	}

	err := h.service.MoveCaseStudy(r.Context(), id, req.Direction)
	if err != nil {
		respondStoreError(w, err, "Case study")
		return
	}

	items, err := h.service.ListCaseStudies(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, items)
}

func (h *Handler) ListInsights(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListInsights(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	core.OK(w, items)
}

func (h *Handler) CreateInsight(w http.ResponseWriter, r *http.Request) {
	var payload InsightPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	created, err := h.service.CreateInsight(r.Context(), &payload)
	if err != nil {
		respondStoreError(w, err, "Insight")
		return
	}

	core.Created(w, created)
}

func (h *Handler) UpdateInsight(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateInsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	updated, err := h.service.UpdateInsight(r.Context(), id, &req)
	if err != nil {
		respondStoreError(w, err, "Insight")
		return
	}

	core.OK(w, updated)
}

func (h *Handler) DeleteInsight(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteInsight(r.Context(), id); err != nil {
		respondStoreError(w, err, "Insight")
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFAQs(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	core.OK(w, items)
}

func (h *Handler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var payload FAQPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	created, err := h.service.CreateFAQ(r.Context(), &payload)
	if err != nil {
		respondStoreError(w, err, "FAQ")
		return
	}

	core.Created(w, created)
}

func (h *Handler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	updated, err := h.service.UpdateFAQ(r.Context(), id, &req)
	if err != nil {
		respondStoreError(w, err, "FAQ")
		return
	}

	core.OK(w, updated)
}

func (h *Handler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteFAQ(r.Context(), id); err != nil {
		respondStoreError(w, err, "FAQ")
		return
	}

	core.NoContent(w)
}

func (h *Handler) MoveFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, ok := h.decodeMove(w, r)
	if !ok {
		return
	}

	if err := h.service.MoveFAQ(r.Context(), id, req.Direction); err != nil {
		respondStoreError(w, err, "FAQ")
		return
	}

	items, err := h.service.ListFAQs(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, items)
}

func (h *Handler) ListNewsletterSubscribers(
	w http.ResponseWriter,
	r *http.Request,
) {
	items, err := h.service.ListNewsletterSubscribers(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	core.OK(w, items)
}

func (h *Handler) decodeMove(
	w http.ResponseWriter,
	r *http.Request,
) (*MoveRequest, bool) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return nil, false
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return nil, false
	}

	return &req, true
}

// respondStoreError translates repository sentinels into the API envelope.
// The resource name feeds the "<Resource> not found" message.
func respondStoreError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, resource)
	case errors.Is(err, core.ErrDuplicateKey):
		core.BadRequest(w, resource+" with this id already exists")
	default:
		core.InternalServerError(w, err)
	}
}
