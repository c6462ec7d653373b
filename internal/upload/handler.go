// AngelaMos | 2026
// handler.go

package upload

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// extensionByType lists the accepted image types as sniffed from the decoded
// bytes. The client-supplied filename only contributes a hint, never trust.
var extensionByType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Handler struct {
	cfg      config.UploadConfig
	logger   *slog.Logger
	validate *validator.Validate
}

func NewHandler(cfg config.UploadConfig, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireAdmin func(http.Handler) http.Handler,
) {
	r.With(requireAdmin).Post("/upload", h.Upload)
}

type uploadRequest struct {
	Image    string `json:"image" validate:"required"`
	Filename string `json:"filename"`
}

type uploadResponse struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

// Upload accepts a base64 image (raw or data URL) and stores it on local
// disk under a random name.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	data, err := decodeImage(req.Image)
	if err != nil {
		core.BadRequest(w, "image must be valid base64 data")
		return
	}

	if int64(len(data)) > h.cfg.MaxBytes {
		core.BadRequest(w, fmt.Sprintf(
			"image exceeds maximum size of %d bytes", h.cfg.MaxBytes,
		))
		return
	}

	contentType := http.DetectContentType(data)
	ext, ok := extensionByType[contentType]
	if !ok {
		core.BadRequest(w, "unsupported image type: "+contentType)
		return
	}

	name := uuid.New().String() + ext
	path := filepath.Join(h.cfg.Dir, name)

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		core.InternalServerError(w, fmt.Errorf("create upload dir: %w", err))
		return
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		core.InternalServerError(w, fmt.Errorf("write upload: %w", err))
		return
	}

	h.logger.Info("image uploaded",
		"name", name,
		"bytes", len(data),
		"content_type", contentType,
	)

	core.OK(w, uploadResponse{
		URL:    strings.TrimSuffix(h.cfg.BaseURL, "/") + "/" + name,
		Method: "local",
	})
}

// decodeImage strips an optional data URL prefix before base64 decoding.
func decodeImage(encoded string) ([]byte, error) {
	if strings.HasPrefix(encoded, "data:") {
		_, rest, ok := strings.Cut(encoded, ",")
		if !ok {
			return nil, fmt.Errorf("malformed data url")
		}
		encoded = rest
	}

	return base64.StdEncoding.DecodeString(encoded)
}
