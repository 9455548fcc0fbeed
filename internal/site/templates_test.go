package site

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	for _, page := range []string{"index", "about", "blog_index", DefaultEntryTemplate, "error"} {
		if !r.Has(page) {
			t.Errorf("missing page template %q", page)
		}
	}
	if r.Has("nope") {
		t.Error("Has(nope) should be false")
	}
}

func TestRenderEntryPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	s := testSite(3)
	ctx, ok := s.EntryContext("post-2", 5)
	if !ok {
		t.Fatal("EntryContext(post-2) not found")
	}
	ctx.CommentoOrigin = "https://commento.example.com"

	var buf bytes.Buffer
	if err := r.Render(&buf, DefaultEntryTemplate, ctx); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`id="show-comments-button"`,
		`>Show 5 comments</button>`,
		`<div id="commento"></div>`,
		`data-commento-origin="https://commento.example.com"`,
		`data-path="/blog/post-2"`,
		`src="/static/comments.js"`,
		`id="theme-toggle"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered entry page missing %s", want)
		}
	}

	if strings.Contains(html, "livereload.js") {
		t.Error("livereload script should not render outside dev mode")
	}
}

func TestRenderThemeAttribute(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	s := testSite(1)

	ctx := s.IndexContext()
	var buf bytes.Buffer
	if err := r.Render(&buf, "index", ctx); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "data-theme=") {
		t.Error("data-theme should be omitted when no preference is known")
	}

	ctx.Base.Theme = "dark"
	buf.Reset()
	if err := r.Render(&buf, "index", ctx); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), `data-theme="dark"`) {
		t.Error("data-theme should render the known preference")
	}
}

func TestStaticBuild(t *testing.T) {
	contentDir := t.TempDir()
	writeEntry(t, contentDir, "first-post.md", samplePost)

	s, err := NewBuilder(contentDir, "Test Zone", "A test site").Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	outDir := t.TempDir()
	var reported []string
	build := &StaticBuild{
		Site:           s,
		OutputDir:      outDir,
		CommentoOrigin: "https://commento.example.com",
		CommentCount:   func(path string) int { return 2 },
		Report:         func(done int, page string) { reported = append(reported, page) },
	}

	pages, err := build.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if want := build.PageCount(); pages != want {
		t.Errorf("pages written = %d, want %d", pages, want)
	}
	if len(reported) != pages {
		t.Errorf("progress reports = %d, want %d", len(reported), pages)
	}

	for _, rel := range []string{
		"index.html",
		"about/index.html",
		"blog/index.html",
		"blog/first-post/index.html",
		"static/style.css",
		"static/theme.js",
		"static/comments.js",
	} {
		if _, err := os.Stat(filepath.Join(outDir, rel)); err != nil {
			t.Errorf("missing output file %s: %v", rel, err)
		}
	}

	// livereload.js is dev-server only.
	if _, err := os.Stat(filepath.Join(outDir, "static", "livereload.js")); err == nil {
		t.Error("livereload.js should not be written to static builds")
	}

	entryHTML, err := os.ReadFile(filepath.Join(outDir, "blog", "first-post", "index.html"))
	if err != nil {
		t.Fatalf("reading entry page: %v", err)
	}
	if !strings.Contains(string(entryHTML), "Show 2 comments") {
		t.Error("entry page should render the cached comment count label")
	}
}
