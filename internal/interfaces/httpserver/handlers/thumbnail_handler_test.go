package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Cre-XeOnz/XeonzGen/internal/config"
	"github.com/Cre-XeOnz/XeonzGen/internal/domain/thumbnail"
	"github.com/Cre-XeOnz/XeonzGen/internal/infrastructure/store"
	"github.com/Cre-XeOnz/XeonzGen/internal/interfaces/httpserver/handlers"
	"github.com/Cre-XeOnz/XeonzGen/internal/interfaces/httpserver/routes/api"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServiceName:      "thumbnail-api",
		ImageHostBaseURL: "https://image.pollinations.ai",
		ImageDelay:       0,
		DefaultImages:    5,
		MaxImages:        20,
		DailyAllowance:   999,
	}
	memoryStore := store.NewMemoryStore()
	composer := thumbnail.NewComposer(cfg, zerolog.Nop())
	service := thumbnail.NewService(cfg, memoryStore, composer, zerolog.Nop())

	engine := gin.New()
	provider := handlers.NewProvider(cfg, service, zerolog.Nop())
	api.NewRoutes(provider).Register(engine.Group("/"))
	return engine
}

func todayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGenerateThumbnail(t *testing.T) {
	engine := testRouter()

	body := `{"prompt":"A beautiful mountain landscape at sunset","style":"photorealistic","aspectRatio":"16:9","imageCount":3}`
	w := doJSON(t, engine, http.MethodPost, "/api/generate-thumbnail", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID             string                      `json:"id"`
		Images         []thumbnail.ImageDescriptor `json:"images"`
		GenerationTime int                         `json:"generationTime"`
		SelectedModel  string                      `json:"selectedModel"`
		Reasoning      string                      `json:"reasoning"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if resp.ID == "" {
		t.Error("response has no id")
	}
	if len(resp.Images) != 3 {
		t.Errorf("got %d images, want 3", len(resp.Images))
	}
	if resp.SelectedModel != "sdxl" {
		t.Errorf("selected model = %q, want sdxl", resp.SelectedModel)
	}
	if resp.Reasoning == "" {
		t.Error("response has no reasoning")
	}

	// Round trip: the persisted record is retrievable via its id.
	w2 := doJSON(t, engine, http.MethodGet, "/api/thumbnail/"+resp.ID, "")
	if w2.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200; body: %s", w2.Code, w2.Body.String())
	}

	var record thumbnail.GenerationRequest
	if err := json.Unmarshal(w2.Body.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if record.ID != resp.ID {
		t.Errorf("record id = %q, want %q", record.ID, resp.ID)
	}
	if record.Prompt != "A beautiful mountain landscape at sunset" {
		t.Errorf("record prompt = %q", record.Prompt)
	}
	if len(record.GeneratedImages) != 3 {
		t.Errorf("record has %d images, want 3", len(record.GeneratedImages))
	}
}

func TestGenerateThumbnailDefaultsImageCount(t *testing.T) {
	engine := testRouter()

	body := `{"prompt":"a bowl of fruit","style":"abstract","aspectRatio":"1:1"}`
	w := doJSON(t, engine, http.MethodPost, "/api/generate-thumbnail", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Images []thumbnail.ImageDescriptor `json:"images"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Images) != 5 {
		t.Errorf("got %d images, want default 5", len(resp.Images))
	}
}

func TestGenerateThumbnailValidation(t *testing.T) {
	engine := testRouter()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "empty prompt",
			body:      `{"prompt":"","style":"photorealistic","aspectRatio":"16:9"}`,
			wantField: "prompt",
		},
		{
			name:      "unknown style",
			body:      `{"prompt":"a cat","style":"cubist","aspectRatio":"16:9"}`,
			wantField: "style",
		},
		{
			name:      "unknown aspect ratio",
			body:      `{"prompt":"a cat","style":"artistic","aspectRatio":"2:1"}`,
			wantField: "aspectRatio",
		},
		{
			name:      "image count too high",
			body:      `{"prompt":"a cat","style":"artistic","aspectRatio":"16:9","imageCount":21}`,
			wantField: "imageCount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/api/generate-thumbnail", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}

			var resp struct {
				Message string `json:"message"`
				Errors  []struct {
					Field string `json:"field"`
				} `json:"errors"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if len(resp.Errors) == 0 {
				t.Fatal("response has no field violations")
			}
			found := false
			for _, violation := range resp.Errors {
				if violation.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("violations %+v do not reference field %q", resp.Errors, tt.wantField)
			}
		})
	}
}

func TestGetThumbnailNotFound(t *testing.T) {
	engine := testRouter()

	w := doJSON(t, engine, http.MethodGet, "/api/thumbnail/does-not-exist", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
}

func TestUsageEndpoint(t *testing.T) {
	engine := testRouter()

	w := doJSON(t, engine, http.MethodGet, "/api/usage/2026-08-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		GenerationsLeft int `json:"generationsLeft"`
		GenerationCount int `json:"generationCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.GenerationsLeft != 999 {
		t.Errorf("generationsLeft = %d, want 999", resp.GenerationsLeft)
	}
	if resp.GenerationCount != 0 {
		t.Errorf("generationCount = %d, want 0", resp.GenerationCount)
	}
}

func TestAnalyzePrompt(t *testing.T) {
	engine := testRouter()

	body := `{"prompt":"a photo of a cat","style":"photorealistic","aspectRatio":"1:1"}`
	w := doJSON(t, engine, http.MethodPost, "/api/analyze-prompt", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var selection thumbnail.ModelSelection
	if err := json.Unmarshal(w.Body.Bytes(), &selection); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if selection.SelectedModel != thumbnail.ModelSDXL {
		t.Errorf("selected model = %v, want sdxl", selection.SelectedModel)
	}
	if selection.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", selection.Confidence)
	}
}

func TestAnalyzePromptMissingFields(t *testing.T) {
	engine := testRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/analyze-prompt", `{"prompt":"a cat"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestCreateVariation(t *testing.T) {
	engine := testRouter()

	body := `{"imageUrl":"https://image.pollinations.ai/prompt/cat"}`
	w := doJSON(t, engine, http.MethodPost, "/api/create-variation", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var v thumbnail.Variation
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if v.OriginalURL != "https://image.pollinations.ai/prompt/cat" {
		t.Errorf("original URL = %q", v.OriginalURL)
	}
	if v.VariationURL != v.OriginalURL {
		t.Error("variation URL should echo the original URL")
	}
	if v.VariationType != "style" {
		t.Errorf("variation type = %q, want style", v.VariationType)
	}
}

func TestCreateVariationMissingURL(t *testing.T) {
	engine := testRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/create-variation", `{"variationType":"color"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestUsageCountsAfterGeneration(t *testing.T) {
	engine := testRouter()

	body := `{"prompt":"a bowl of fruit","style":"abstract","aspectRatio":"4:3","imageCount":1}`
	for i := 0; i < 2; i++ {
		w := doJSON(t, engine, http.MethodPost, "/api/generate-thumbnail", body)
		if w.Code != http.StatusOK {
			t.Fatalf("generate status = %d; body: %s", w.Code, w.Body.String())
		}
	}

	today := todayUTC()
	w := doJSON(t, engine, http.MethodGet, "/api/usage/"+today, "")
	if w.Code != http.StatusOK {
		t.Fatalf("usage status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		GenerationCount int `json:"generationCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.GenerationCount != 2 {
		t.Errorf("generationCount = %d, want 2", resp.GenerationCount)
	}
}
