package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fremyrosso/site/internal/analytics"
	"github.com/fremyrosso/site/internal/contact"
	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/nav"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, site *content.Site, store *analytics.Store) http.Handler {
	t.Helper()
	if site == nil {
		var err error
		site, err = content.Default()
		require.NoError(t, err)
	}
	return New(Options{
		Site:      site,
		Analytics: store,
		Now:       func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) },
	}).Handler()
}

func do(h http.Handler, method, target string, body url.Values, panel string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("HX-Request", "true")
	if panel != "" {
		req.AddCookie(&http.Cookie{Name: panelCookie, Value: panel})
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func panelFrom(t *testing.T, w *httptest.ResponseRecorder) nav.Panel {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == panelCookie {
			return nav.ParsePanel(c.Value)
		}
	}
	t.Fatalf("no %s cookie set", panelCookie)
	return nav.Closed
}

func scrollTarget(t *testing.T, w *httptest.ResponseRecorder) (scrollDetail, bool) {
	t.Helper()
	raw := w.Header().Get("HX-Trigger")
	if raw == "" {
		return scrollDetail{}, false
	}
	var payload map[string]scrollDetail
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	d, ok := payload[ScrollEvent]
	return d, ok
}

func TestHomeRendersClosedPanel(t *testing.T) {
	h := newTestServer(t, nil, nil)

	w := do(h, http.MethodGet, "/", nil, "open")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, nav.Closed, panelFrom(t, w))
	body := w.Body.String()
	assert.NotContains(t, body, `id="mobile-nav"`)
	for _, s := range nav.Sections() {
		assert.Contains(t, body, `<section id="`+s.ID()+`"`)
	}
	assert.Contains(t, body, "© 2026")
}

func TestToggle(t *testing.T) {
	h := newTestServer(t, nil, nil)

	w := do(h, http.MethodPost, "/nav/toggle", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, nav.Open, panelFrom(t, w))
	assert.Contains(t, w.Body.String(), `id="mobile-nav"`)

	w = do(h, http.MethodPost, "/nav/toggle", nil, "open")
	assert.Equal(t, nav.Closed, panelFrom(t, w))
	assert.NotContains(t, w.Body.String(), `id="mobile-nav"`)
}

func TestNavigateEverySection(t *testing.T) {
	h := newTestServer(t, nil, nil)

	for _, s := range nav.Sections() {
		for _, start := range []string{"open", "closed", ""} {
			w := do(h, http.MethodPost, "/nav/"+s.ID(), nil, start)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, nav.Closed, panelFrom(t, w), "%s from %q", s, start)
			d, ok := scrollTarget(t, w)
			require.True(t, ok)
			assert.Equal(t, scrollDetail{ID: s.ID(), Behavior: "smooth"}, d)
		}
	}
}

func TestNavigateUnknownSection(t *testing.T) {
	h := newTestServer(t, nil, nil)

	w := do(h, http.MethodPost, "/nav/pricing", nil, "open")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, nav.Closed, panelFrom(t, w))
	_, ok := scrollTarget(t, w)
	assert.False(t, ok)
}

func TestNavigateSectionNotOnPage(t *testing.T) {
	site, err := content.Parse([]byte("owner: A\nsections: [hero, about]\n"))
	require.NoError(t, err)
	h := newTestServer(t, site, nil)

	w := do(h, http.MethodPost, "/nav/ventures", nil, "open")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, nav.Closed, panelFrom(t, w))
	_, ok := scrollTarget(t, w)
	assert.False(t, ok)
}

func TestScenarioOpenThenContact(t *testing.T) {
	h := newTestServer(t, nil, nil)

	w := do(h, http.MethodPost, "/nav/toggle", nil, "closed")
	require.Equal(t, nav.Open, panelFrom(t, w))

	w = do(h, http.MethodPost, "/nav/contact", nil, nav.Open.String())
	assert.Equal(t, nav.Closed, panelFrom(t, w))
	assert.Equal(t, 1, strings.Count(w.Header().Get("HX-Trigger"), `"contact"`))
}

func TestSubmitContact(t *testing.T) {
	h := newTestServer(t, nil, nil)

	form := url.Values{}
	for _, f := range contact.Fields() {
		form.Set(f.Name(), "value-"+f.Name())
	}
	w := do(h, http.MethodPost, "/contact", form, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, "Thank you for your message!"))
	assert.NotContains(t, body, "value-")
	assert.Contains(t, body, `id="contact-form"`)
	assert.NotContains(t, body, "<html")
}

func TestSubmitContactWithoutHTMX(t *testing.T) {
	h := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("firstName=Ada"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<html")
	assert.Contains(t, body, "Thank you for your message!")
	assert.NotContains(t, body, `value="Ada"`)
}

func TestStats(t *testing.T) {
	store, err := analytics.Open(analytics.Options{Salt: "x"})
	require.NoError(t, err)
	defer store.Close()
	h := newTestServer(t, nil, store)

	w := do(h, http.MethodGet, "/api/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Len(t, stats.Navigations, len(nav.Sections()))
}

func TestStatsDisabledWithoutStore(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := do(h, http.MethodGet, "/api/stats", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, nil, nil)
	w := do(h, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func openStore(t *testing.T) *analytics.Store {
	t.Helper()
	store, err := analytics.Open(analytics.Options{Salt: "x"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func navigationCount(t *testing.T, store *analytics.Store, s nav.Section) int64 {
	t.Helper()
	stats, err := store.Stats(context.Background())
	if !assert.NoError(t, err) {
		return -1
	}
	for _, n := range stats.Navigations {
		if n.Section == s.ID() {
			return n.Count
		}
	}
	return 0
}

func totalVisits(t *testing.T, store *analytics.Store) int64 {
	t.Helper()
	stats, err := store.Stats(context.Background())
	if !assert.NoError(t, err) {
		return -1
	}
	return stats.TotalVisits
}

func TestHomeVisitIsCounted(t *testing.T) {
	store := openStore(t)
	h := newTestServer(t, nil, store)

	w := do(h, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool { return totalVisits(t, store) == 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestDoNotTrackVisitIsNotCounted(t *testing.T) {
	store := openStore(t)
	h := newTestServer(t, nil, store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The tracked request lands after the DNT one, so a total of one means
	// the DNT request was never recorded.
	do(h, http.MethodGet, "/", nil, "")
	require.Eventually(t, func() bool { return totalVisits(t, store) >= 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(1), totalVisits(t, store))
}

func TestNavigateIsCounted(t *testing.T) {
	store := openStore(t)
	h := newTestServer(t, nil, store)

	w := do(h, http.MethodPost, "/nav/about", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool { return navigationCount(t, store, nav.About) == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(0), navigationCount(t, store, nav.Contact))
}

func TestNavigateToDisabledSectionIsNotCounted(t *testing.T) {
	site, err := content.Parse([]byte("owner: A\nsections: [hero, about]\n"))
	require.NoError(t, err)
	store := openStore(t)
	h := newTestServer(t, site, store)

	w := do(h, http.MethodPost, "/nav/ventures", nil, "open")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, nav.Closed, panelFrom(t, w))

	do(h, http.MethodPost, "/nav/about", nil, "")
	require.Eventually(t, func() bool { return navigationCount(t, store, nav.About) == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(0), navigationCount(t, store, nav.Ventures))
}

func TestNavigateWithDoNotTrackIsNotCounted(t *testing.T) {
	store := openStore(t)
	h := newTestServer(t, nil, store)

	req := httptest.NewRequest(http.MethodPost, "/nav/expertise", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("DNT", "1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	_, ok := scrollTarget(t, w)
	assert.True(t, ok)

	do(h, http.MethodPost, "/nav/about", nil, "")
	require.Eventually(t, func() bool { return navigationCount(t, store, nav.About) == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(0), navigationCount(t, store, nav.Expertise))
}

func TestStaticScriptServed(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)
	h := New(Options{Site: site, AssetDir: filepath.Join("..", "..")}).Handler()

	w := do(h, http.MethodGet, "/static/js/nav.js", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"scroll-to"`)
	assert.Contains(t, body, "scrollIntoView")
	assert.Contains(t, body, "IntersectionObserver")
	assert.Contains(t, body, "is-visible")
}
