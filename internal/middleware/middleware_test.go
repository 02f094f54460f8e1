package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SnakeO/dominion-llc/internal/observability"
)

func TestHTMXFlag(t *testing.T) {
	t.Parallel()

	var (
		seen bool
		hx   HTMXRequest
		ok   bool
	)
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IsHTMX(r.Context())
		hx, ok = HTMXFrom(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/listings/grid", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Trigger", "bedroomFilter")
	req.Header.Set("HX-Target", "propertiesGrid")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.True(t, seen)
	require.True(t, ok)
	require.Equal(t, "bedroomFilter", hx.Trigger)
	require.Equal(t, "propertiesGrid", hx.Target)
	require.Contains(t, rec.Header().Values("Vary"), "HX-Request")

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), plain)
	require.False(t, seen)
	_, ok = HTMXFrom(plain.Context())
	require.False(t, ok)
}

func TestLoggerEmitsRequestEntry(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	var ctxLogger *zap.Logger
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = observability.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/property?id=x", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, ctxLogger)
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(http.StatusTeapot), fields["status"])
	require.Equal(t, "/property", fields["path"])
	require.Equal(t, "id=x", fields["query"])
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestWriteErrorJSONForHTMX(t *testing.T) {
	t.Parallel()

	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusInternalServerError, "render failed")
	}))
	req := httptest.NewRequest(http.MethodGet, "/listings/grid", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.JSONEq(t, `{"error":"render failed"}`, rec.Body.String())
}

func TestAssetsWithCacheETag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	folder := filepath.Join(dir, "images", "2536 Desoto St. Shreveport, LA 71103")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "front.jpg"), []byte("jpeg"), 0o644))

	h := http.StripPrefix("/assets", AssetsWithCache(dir))

	req := httptest.NewRequest(http.MethodGet, "/assets/images/2536%20Desoto%20St.%20Shreveport%2C%20LA%2071103/front.jpg", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	require.Equal(t, "jpeg", string(body))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req2 := httptest.NewRequest(http.MethodGet, "/assets/images/2536%20Desoto%20St.%20Shreveport%2C%20LA%2071103/front.jpg", nil)
	req2.Header.Set("If-None-Match", etag)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req2)
	require.Equal(t, http.StatusNotModified, rec2.Code)
}

func TestAssetsCachePolicy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "property.js"), []byte("//"), 0o644))

	h := http.StripPrefix("/assets", AssetsWithCache(dir))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/js/property.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, cacheSite, rec.Header().Get("Cache-Control"))
	require.Equal(t, cacheMedia, cachePolicy("/images/a/front.jpg"))
}
