package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// StaticBuild renders a Site to a directory of plain HTML files.
type StaticBuild struct {
	Site           *Site
	OutputDir      string
	CommentoOrigin string

	// CommentCount supplies the cached count for an entry path; nil
	// means every label renders as "Make a comment".
	CommentCount func(path string) int

	// Report, when set, is called once per written page.
	Report func(done int, page string)
}

// PageCount returns how many HTML pages the build will write.
func (b *StaticBuild) PageCount() int {
	return 2 + b.indexPages() + len(b.Site.Entries)
}

func (b *StaticBuild) indexPages() int {
	n := (len(b.Site.Entries) + blogIndexPageSize - 1) / blogIndexPageSize
	if n < 1 {
		n = 1
	}
	return n
}

// Run writes every page and static asset. Returns the number of pages
// written.
func (b *StaticBuild) Run() (int, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return 0, err
	}

	staticDir := filepath.Join(b.OutputDir, "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return 0, err
	}
	for name, asset := range Assets() {
		if name == "livereload.js" {
			continue // dev server only
		}
		if err := os.WriteFile(filepath.Join(staticDir, name), []byte(asset.Body), 0o644); err != nil {
			return 0, fmt.Errorf("writing asset %s: %w", name, err)
		}
	}

	done := 0
	write := func(relPath, page string, data any) error {
		outPath := filepath.Join(b.OutputDir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := renderer.Render(f, page, data); err != nil {
			return fmt.Errorf("rendering %s: %w", relPath, err)
		}
		done++
		if b.Report != nil {
			b.Report(done, relPath)
		}
		return nil
	}

	if err := write("index.html", "index", b.Site.IndexContext()); err != nil {
		return done, err
	}
	if err := write("about/index.html", "about", b.Site.AboutContext()); err != nil {
		return done, err
	}

	for page := 1; page <= b.indexPages(); page++ {
		ctx := b.Site.BlogIndexContext(page)
		rel := "blog/index.html"
		if page > 1 {
			rel = fmt.Sprintf("blog/page/%d/index.html", page)
		}
		if err := write(rel, "blog_index", ctx); err != nil {
			return done, err
		}
	}

	for i := range b.Site.Entries {
		entry := &b.Site.Entries[i]
		count := 0
		if b.CommentCount != nil {
			count = b.CommentCount(entry.URL())
		}
		ctx, ok := b.Site.EntryContext(entry.Slug, count)
		if !ok {
			continue
		}
		ctx.CommentoOrigin = b.CommentoOrigin

		page := ctx.Template
		if !renderer.Has(page) {
			page = DefaultEntryTemplate
		}
		rel := fmt.Sprintf("blog/%s/index.html", entry.Slug)
		if err := write(rel, page, ctx); err != nil {
			return done, err
		}
	}

	return done, nil
}
