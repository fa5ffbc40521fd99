package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/carbuilder/pkg/app"
	"github.com/ghuser/carbuilder/pkg/logger"
	catalogApi "github.com/ghuser/carbuilder/services/catalog/application/api"
	"github.com/ghuser/carbuilder/services/catalog/infrastructure/persistence/memory"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	catalogApi.CatalogRoutes(r, &app.Application{
		Logger:  logger.NewNop(),
		Catalog: memory.NewCatalogRepository(),
	})
	return r
}

func get(t *testing.T, h http.Handler, path string) []map[string]any {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, rr.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("GET %s: decode: %v", path, err)
	}
	return out
}

func TestCatalogRoutes_SeedContents(t *testing.T) {
	tests := []struct {
		path   string
		label  string
		labels []string
		prices []float64
	}{
		{"/paintcolors", "color", []string{"Silver", "Midnight Blue", "Firebrick Red", "Spring Green"}, []float64{500, 750, 700, 600}},
		{"/interiors", "material", []string{"Beige Fabric", "Charcoal Fabric", "White Leather", "Black Leather"}, []float64{300, 350, 800, 850}},
		{"/technologies", "package", []string{"Basic Package", "Navigation Package", "Visibility Package", "Ultra Package"}, []float64{200, 600, 750, 1200}},
		{"/wheels", "style", []string{"17-inch Pair Radial", "17-inch Pair Radial Black", "18-inch Pair Spoke Silver", "18-inch Pair Spoke Black"}, []float64{400, 450, 500, 550}},
	}

	h := newRouter()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			items := get(t, h, tt.path)
			if len(items) != len(tt.labels) {
				t.Fatalf("expected %d items, got %d", len(tt.labels), len(items))
			}
			for i, it := range items {
				if it["id"] != float64(i+1) {
					t.Errorf("item %d: id %v", i, it["id"])
				}
				if it[tt.label] != tt.labels[i] {
					t.Errorf("item %d: %s %v, want %q", i, tt.label, it[tt.label], tt.labels[i])
				}
				if it["price"] != tt.prices[i] {
					t.Errorf("item %d: price %v, want %v", i, it["price"], tt.prices[i])
				}
			}
		})
	}
}

func TestCatalogRoutes_RepeatedCallsIdentical(t *testing.T) {
	h := newRouter()
	for _, path := range []string{"/paintcolors", "/interiors", "/technologies", "/wheels"} {
		first, _ := json.Marshal(get(t, h, path))
		second, _ := json.Marshal(get(t, h, path))
		if string(first) != string(second) {
			t.Errorf("%s: listing changed between calls", path)
		}
	}
}
