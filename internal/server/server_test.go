package server

import (
	"context"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rotoclone/rotoclone-zone/internal/comments"
	"github.com/rotoclone/rotoclone-zone/internal/config"
	"github.com/rotoclone/rotoclone-zone/internal/db"
	"github.com/rotoclone/rotoclone-zone/internal/site"
)

func testSite() *site.Site {
	base := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	return &site.Site{
		Title:       "Test Zone",
		Description: "A test site",
		Entries: []site.BlogEntry{
			{
				Title:     "Newer Post",
				Slug:      "newer-post",
				Template:  site.DefaultEntryTemplate,
				CreatedAt: base.Add(24 * time.Hour),
				Content:   template.HTML("<p>newer body</p>"),
			},
			{
				Title:     "Older Post",
				Slug:      "older-post",
				Template:  site.DefaultEntryTemplate,
				CreatedAt: base,
				Content:   template.HTML("<p>older body</p>"),
			},
		},
	}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Title = "Test Zone"
	cfg.Commento.Origin = "https://commento.example.com"
	cfg.Commento.Domain = "example.com"
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config, counts *comments.Store) *Server {
	t.Helper()
	s := testSite()
	srv, err := New(cfg, func() *site.Site { return s }, counts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return srv
}

func get(t *testing.T, srv *Server, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	resp := rec.Result()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	resp, body := get(t, srv, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "Test Zone") {
		t.Error("index should contain the site title")
	}
	if !strings.Contains(body, `href="/blog/newer-post"`) {
		t.Error("index should link to the newest post")
	}
}

func TestEntryPageDefaultLabel(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	resp, body := get(t, srv, "/blog/newer-post")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, ">Make a comment</button>") {
		t.Error("entry without cached counts should render the zero-count label")
	}
	if !strings.Contains(body, `data-commento-origin="https://commento.example.com"`) {
		t.Error("entry should carry the configured Commento origin")
	}
	if !strings.Contains(body, "newer body") {
		t.Error("entry should render its content")
	}
}

func TestEntryPageCachedLabel(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer database.Close()
	counts := comments.NewStore(database)
	if err := counts.SetCounts(context.Background(), map[string]int{"/blog/newer-post": 3}); err != nil {
		t.Fatalf("SetCounts() error: %v", err)
	}

	srv := newTestServer(t, testConfig(), counts)
	_, body := get(t, srv, "/blog/newer-post")
	if !strings.Contains(body, ">Show 3 comments</button>") {
		t.Error("entry should render the cached comment count label")
	}
}

func TestEntryNotFound(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	resp, body := get(t, srv, "/blog/missing")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if !strings.Contains(body, "404") {
		t.Error("404 response should render the error page")
	}
}

func TestBlogIndexPagination(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	resp, _ := get(t, srv, "/blog")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/blog status = %d, want 200", resp.StatusCode)
	}

	// Only two entries exist, so page 2 is empty.
	resp, _ = get(t, srv, "/blog/page/2")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("/blog/page/2 status = %d, want 404", resp.StatusCode)
	}

	resp, _ = get(t, srv, "/blog/page/zero")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("/blog/page/zero status = %d, want 404", resp.StatusCode)
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	resp, body := get(t, srv, "/static/style.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("style.css status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("style.css content type = %q", ct)
	}
	if !strings.Contains(body, "--bg") {
		t.Error("style.css should contain theme variables")
	}

	resp, _ = get(t, srv, "/static/nope.js")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", resp.StatusCode)
	}
}

func TestThemeToggle(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	form := url.Values{"theme": {"dark"}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	cookies := rec.Result().Cookies()
	var themeValue string
	for _, c := range cookies {
		if c.Name == "theme" {
			themeValue = c.Value
		}
	}
	if themeValue != "dark" {
		t.Errorf("theme cookie = %q, want dark", themeValue)
	}

	// Invalid themes are rejected.
	form = url.Values{"theme": {"purple"}}
	req = httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid theme status = %d, want 400", rec.Code)
	}
}

func TestThemeCookieRendersAttribute(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `data-theme="dark"`) {
		t.Error("page should render the persisted theme preference")
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)
	resp, body := get(t, srv, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("healthz body = %q", body)
	}
}

func TestLivereloadDisabledByDefault(t *testing.T) {
	srv := newTestServer(t, testConfig(), nil)
	resp, _ := get(t, srv, "/livereload")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("livereload status = %d, want 404 when disabled", resp.StatusCode)
	}
}

func TestLivereloadBroadcast(t *testing.T) {
	cfg := testConfig()
	cfg.LiveReload = true
	srv := newTestServer(t, cfg, nil)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/livereload"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing livereload: %v", err)
	}
	defer conn.Close()

	// The hub registers the client during the upgrade handler; give it
	// a beat before broadcasting.
	time.Sleep(50 * time.Millisecond)
	srv.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading reload message: %v", err)
	}
	if string(msg) != "reload" {
		t.Errorf("message = %q, want reload", msg)
	}
}
