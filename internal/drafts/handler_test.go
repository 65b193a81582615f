package drafts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService()
	r := gin.New()
	r.Use(middleware.Identity())
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func do(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("X-Guest-Id", "guest-1")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestDraftHandlerReplaceAndFetch(t *testing.T) {
	r := newTestRouter(t)

	resp := do(r, http.MethodGet, "/api/v1/drafts/current", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var blank DraftResponse
	if err := json.NewDecoder(resp.Body).Decode(&blank); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if blank.Version != 0 || blank.DraftID != "" {
		t.Fatalf("expected blank draft, got %+v", blank)
	}

	body := []byte(`{"basics":{"name":"Grace Hopper","email":"grace@example.com"},"experience":[],"education":[],"skills":[]}`)
	resp = do(r, http.MethodPut, "/api/v1/drafts/current", body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var saved DraftResponse
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if saved.Version != 1 || saved.DraftID == "" || saved.Resume.Basics.Name != "Grace Hopper" {
		t.Fatalf("unexpected saved draft %+v", saved)
	}

	resp = do(r, http.MethodGet, "/api/v1/drafts/current/export", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); got != `attachment; filename="resume.json"` {
		t.Fatalf("unexpected Content-Disposition %q", got)
	}
	var exported map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&exported); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	basics, _ := exported["basics"].(map[string]any)
	if basics["email"] != "grace@example.com" {
		t.Fatalf("unexpected export %v", exported)
	}
}

func TestDraftHandlerRejectsInvalidBody(t *testing.T) {
	r := newTestRouter(t)
	resp := do(r, http.MethodPut, "/api/v1/drafts/current", []byte(`{"basics":`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
