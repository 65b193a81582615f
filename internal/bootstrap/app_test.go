package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/bootstrap"
	"resume-importer/internal/shared/config"
)

func TestImportThenFetchDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:              "0",
		Env:               "dev",
		LogLevel:          "error",
		CORSAllowOrigin:   []string{"http://localhost:5173"},
		ObjectStoreType:   "local",
		LocalStoreDir:     t.TempDir(),
		ImportConcurrency: 2,
		ImportMaxUploadMB: 1,
		ImportMaxFiles:    3,
		RateLimitRPS:      10,
		RateLimitBurst:    10,
	}
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", "resume.json")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(`{"basics":{"name":"Ada Lovelace","email":"ada@example.com"}}`)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "guest-1")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/drafts/current", nil)
	reqGet.Header.Set("X-Guest-Id", "guest-1")
	respGet := httptest.NewRecorder()
	app.Router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}

	var current struct {
		Version int `json:"version"`
		Resume  struct {
			Basics struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"basics"`
		} `json:"resume"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&current); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if current.Version != 1 || current.Resume.Basics.Name != "Ada Lovelace" {
		t.Fatalf("unexpected draft %+v", current)
	}

	otherGuest := httptest.NewRequest(http.MethodGet, "/api/v1/drafts/current", nil)
	otherGuest.Header.Set("X-Guest-Id", "guest-2")
	respOther := httptest.NewRecorder()
	app.Router.ServeHTTP(respOther, otherGuest)
	if bytes.Contains(respOther.Body.Bytes(), []byte("Ada Lovelace")) {
		t.Fatalf("drafts leaked across guests")
	}
}
