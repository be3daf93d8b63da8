package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elmenyr/resturant-alokda/internal/auth"
	"github.com/elmenyr/resturant-alokda/internal/menu"
	"github.com/elmenyr/resturant-alokda/internal/offers"
	"github.com/elmenyr/resturant-alokda/internal/storage"

	"github.com/gin-gonic/gin"
)

// emptyBucket satisfies menu.Storage for routes that never upload.
type emptyBucket struct{}

func (emptyBucket) List(ctx context.Context, bucket string, limit int) ([]storage.ObjectInfo, error) {
	return nil, nil
}
func (emptyBucket) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType, cacheControl string) (string, error) {
	return "", nil
}
func (emptyBucket) Remove(ctx context.Context, bucket string, keys []string) error { return nil }
func (emptyBucket) PublicURL(bucket, key string) string                            { return "" }

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authService := auth.NewService(auth.NewInMemoryUserRepository())
	offerService := offers.NewService(offers.NewInMemoryRepository(), nil, "offers-images")
	menuService := menu.NewService(emptyBucket{}, "menu-pdf")

	return New(Deps{
		Auth:   auth.NewHandler(authService),
		Offers: offers.NewHandler(offerService),
		Menu:   menu.NewHandler(menuService),
	})
}

func TestHealthCheck(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestPublicOffersIsOpen(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Offers []json.RawMessage `json:"offers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Offers) != 0 {
		t.Fatalf("expected empty listing, got %d offers", len(body.Offers))
	}
}

func TestMenuWithoutPublishIs404(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := testRouter()

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/admin/offers"},
		{http.MethodPost, "/admin/offers"},
		{http.MethodPut, "/admin/offers/some-id"},
		{http.MethodDelete, "/admin/offers/some-id"},
		{http.MethodPost, "/admin/menu"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
		}
	}
}

func TestAdminOffersWithToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := testRouter()

	token, err := auth.GenerateToken("admin-id", "admin@example.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/offers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
