package imports

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/drafts"
	"resume-importer/internal/importer"
	"resume-importer/internal/shared/server/middleware"
	"resume-importer/internal/shared/server/respond"
	"resume-importer/internal/shared/util"
)

const (
	defaultMaxUpload = 10 << 20 // 10MB
	defaultMaxFiles  = 10
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc       *Service
	MaxUpload int64
	MaxFiles  int
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUpload int64, maxFiles int) *Handler {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	if maxFiles <= 0 {
		maxFiles = defaultMaxFiles
	}
	return &Handler{Svc: svc, MaxUpload: maxUpload, MaxFiles: maxFiles}
}

// RegisterRoutes attaches import routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/imports", h.create)
	rg.GET("/imports", h.list)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUpload)

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", fmt.Sprintf("upload exceeds %d bytes", h.MaxUpload), nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form expected", nil)
		return
	}

	headers := append(form.File["files"], form.File["file"]...)
	if len(headers) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one file is required", nil)
		return
	}
	if len(headers) > h.MaxFiles {
		respond.Error(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("at most %d files per import", h.MaxFiles), nil)
		return
	}

	files := make([]importer.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := readPart(fh)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fh.Filename, nil)
			return
		}
		files = append(files, f)
	}
	c.Set(middleware.ImportFilesKey, len(files))

	res, err := h.Svc.Import(c.Request.Context(), middleware.UserIDFromContext(c), files)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, drafts.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import files", nil)
		}
		return
	}
	if res.Draft.ID != "" {
		c.Set(middleware.DraftIDKey, res.Draft.ID)
	}

	respond.OK(c, ImportResponse{
		Files: res.Files,
		Draft: drafts.ToResponse(res.Draft),
	})
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	recs, err := h.Svc.History(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list imports", nil)
		}
		return
	}

	resp := make([]RecordResponse, 0, len(recs))
	for _, r := range recs {
		resp = append(resp, toRecordResponse(r))
	}
	respond.OK(c, resp)
}

// readPart loads one multipart file. The declared type is kept unless it is
// missing or generic, in which case the bytes are sniffed.
func readPart(fh *multipart.FileHeader) (importer.UploadedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return importer.UploadedFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return importer.UploadedFile{}, err
	}
	return importer.UploadedFile{
		Data:      data,
		MediaType: util.ResolveMediaType(fh.Header.Get("Content-Type"), data),
		FileName:  fh.Filename,
	}, nil
}
