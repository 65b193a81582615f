package drafts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/resume"
	"resume-importer/internal/shared/server/middleware"
	"resume-importer/internal/shared/server/respond"
)

const maxDraftSize = 1 << 20 // 1MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drafts/current", h.current)
	rg.PUT("/drafts/current", h.replace)
	rg.GET("/drafts/current/export", h.export)
}

func (h *Handler) current(c *gin.Context) {
	d, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if d.ID != "" {
		c.Set(middleware.DraftIDKey, d.ID)
	}
	respond.OK(c, ToResponse(d))
}

func (h *Handler) replace(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDraftSize)

	var body resume.Resume
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	d, err := h.Svc.Replace(c.Request.Context(), middleware.UserIDFromContext(c), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.DraftIDKey, d.ID)
	respond.OK(c, ToResponse(d))
}

func (h *Handler) export(c *gin.Context) {
	d, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="resume.json"`)
	c.IndentedJSON(http.StatusOK, d.Resume)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load draft", nil)
	}
}
