package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/myhomesite/internal/db"
)

func seedGallery(t *testing.T) {
	t.Helper()

	images := []db.GalleryImage{
		{Title: "Colorbond Pergola", ImageURL: "/static/uploads/pergola.jpg", Category: "pergola", DisplayOrder: 2},
		{Title: "Merbau Deck", ImageURL: "/static/uploads/deck.jpg", Category: "decking", DisplayOrder: 1},
		{Title: "Weatherboard Restoration", ImageURL: "/static/uploads/boards.jpg", Category: "weatherboard", DisplayOrder: 3},
	}
	for i := range images {
		if err := db.DB.Create(&images[i]).Error; err != nil {
			t.Fatalf("failed to seed gallery: %v", err)
		}
	}
}

func TestGetGalleryImagesOrdered(t *testing.T) {
	r, cleanup := setupTestApp(t, testConfig())
	defer cleanup()
	seedGallery(t)

	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	items, ok := resp["items"].([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 items, got %v", resp["items"])
	}

	titles := make([]string, 0, len(items))
	for _, raw := range items {
		item := raw.(map[string]interface{})
		titles = append(titles, item["Title"].(string))
	}
	want := []string{"Merbau Deck", "Colorbond Pergola", "Weatherboard Restoration"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, titles)
		}
	}
}

func TestShowHomeRendersGalleryInOrder(t *testing.T) {
	cfg := testConfig()
	cfg.TemplateGlob = "../../web/template/*.html"
	r, cleanup := setupTestApp(t, cfg)
	defer cleanup()
	seedGallery(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	deck := strings.Index(body, "Merbau Deck")
	pergola := strings.Index(body, "Colorbond Pergola")
	boards := strings.Index(body, "Weatherboard Restoration")
	if deck == -1 || pergola == -1 || boards == -1 {
		t.Fatalf("expected all gallery titles rendered")
	}
	if !(deck < pergola && pergola < boards) {
		t.Fatalf("expected display order respected: deck=%d pergola=%d boards=%d", deck, pergola, boards)
	}
}

func TestShowHomeEmptyGallery(t *testing.T) {
	cfg := testConfig()
	cfg.TemplateGlob = "../../web/template/*.html"
	r, cleanup := setupTestApp(t, cfg)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No images found in gallery.") {
		t.Fatalf("expected empty gallery state rendered")
	}
}
