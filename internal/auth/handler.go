// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireAdmin func(http.Handler) http.Handler,
) {
	r.With(requireAdmin).Post("/verify-token", h.VerifyToken)
	r.Put("/admin-token", h.SetAdminToken)
}

// VerifyToken only runs when the gate already accepted the bearer token.
func (h *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	core.OK(w, map[string]bool{"valid": true})
}

type setTokenRequest struct {
	Token string `json:"token"`
}

type setTokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SetAdminToken bootstraps or rotates the admin token. When no token has
// been configured yet, any non-empty value is accepted without auth (initial
// setup); once configured, rotation requires the current token.
func (h *Handler) SetAdminToken(w http.ResponseWriter, r *http.Request) {
	var req setTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		core.BadRequest(
			w,
			"Token is required and must be a non-empty string",
		)
		return
	}

	configured, err := h.service.Configured(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if configured {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			core.Unauthorized(w, "Missing Authorization header")
			return
		}

		presented := ParseBearer(authorization)
		if presented == "" {
			core.Forbidden(w, "Invalid token")
			return
		}

		if err := h.service.Verify(r.Context(), presented); err != nil {
			if errors.Is(err, core.ErrForbidden) {
				core.Forbidden(w, "Invalid token")
				return
			}
			core.InternalServerError(w, err)
			return
		}
	}

	if err := h.service.SetToken(r.Context(), token); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, setTokenResponse{
		Success: true,
		Message: "Admin token updated successfully",
	})
}
