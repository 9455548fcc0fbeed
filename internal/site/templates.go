package site

import (
	"fmt"
	"html/template"
	"io"
)

// Renderer holds the parsed page templates. Each page gets its own
// template set so the "content" blocks don't collide.
type Renderer struct {
	pages map[string]*template.Template
}

// pageTemplates maps page names to their content template source. The
// names double as the values entry front matter may put in `template`.
var pageTemplates = map[string]string{
	"index":              indexTemplate,
	"about":              aboutTemplate,
	"blog_index":         blogIndexTemplate,
	DefaultEntryTemplate: entryTemplate,
	"error":              errorTemplate,
}

// NewRenderer parses all page templates.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageTemplates))
	for name, src := range pageTemplates {
		t, err := template.New("base").Parse(baseTemplate)
		if err != nil {
			return nil, fmt.Errorf("parsing base template: %w", err)
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Has reports whether a page template with the given name exists.
func (r *Renderer) Has(page string) bool {
	_, ok := r.pages[page]
	return ok
}

// Render executes the named page template with the given data.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("no template named %q", page)
	}
	return t.ExecuteTemplate(w, "base", data)
}

// baseTemplate is the shared page shell. The data-theme attribute is
// only emitted when the server knows the reader's preference; otherwise
// theme.js decides from localStorage or the OS preference.
const baseTemplate = `<!DOCTYPE html>
<html lang="en"{{if .Base.Theme}} data-theme="{{.Base.Theme}}"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="description" content="{{.Base.MetaDescription}}">
  <title>{{.Base.Title}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <header class="site-header">
    <a class="site-title" href="/">{{.Base.SiteTitle}}</a>
    <nav>
      <a href="/blog">Blog</a>
      <a href="/about">About</a>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </nav>
  </header>
  <main class="content">
{{template "content" .}}
  </main>
  <footer class="site-footer">
    <p>{{.Base.SiteTitle}}</p>
  </footer>
  <script src="/static/theme.js"></script>
{{if .Base.LiveReload}}  <script src="/static/livereload.js"></script>
{{end}}</body>
</html>`

// indexTemplate is the landing page: recent entries plus a link to the
// full archive.
const indexTemplate = `{{define "content"}}    <section class="recent-entries">
      <h1>{{.Base.SiteTitle}}</h1>
      <h2>Recent posts</h2>
      <ul class="entry-list">
{{range .RecentEntries}}        <li>
          <a href="{{.URL}}">{{.Title}}</a>
          <span class="entry-date">{{.CreatedAt}}</span>
        </li>
{{end}}      </ul>
      <p><a href="/blog">All posts</a></p>
    </section>
{{end}}`

// aboutTemplate is the about page.
const aboutTemplate = `{{define "content"}}    <article class="about">
      <h1>{{.Base.Title}}</h1>
      <p>A small corner of the internet for longer-form thoughts.</p>
    </article>
{{end}}`

// blogIndexTemplate is one page of the paginated entry list.
const blogIndexTemplate = `{{define "content"}}    <section class="blog-index">
      <h1>{{.Base.Title}}</h1>
      <ul class="entry-list">
{{range .Entries}}        <li>
          <a href="{{.URL}}">{{.Title}}</a>
          <span class="entry-date">{{.CreatedAt}}</span>
{{if .Tags}}          <span class="entry-tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</span>
{{end}}        </li>
{{end}}      </ul>
      <nav class="pagination">
{{if .PreviousPage}}        <a href="{{.PreviousPageURL}}">Newer</a>
{{end}}{{if .NextPage}}        <a href="{{.NextPageURL}}">Older</a>
{{end}}      </nav>
    </section>
{{end}}`

// entryTemplate is a single blog entry with its deferred comment
// section. The section carries the Commento origin and page path as
// data attributes for comments.js; the empty div is where the embed
// renders the thread once mounted.
const entryTemplate = `{{define "content"}}    <article class="blog-entry">
      <h1>{{.Title}}</h1>
      <p class="entry-meta">
        <span class="entry-date">{{.CreatedAt}}</span>
{{if .UpdatedAt}}        <span class="entry-updated">Updated {{.UpdatedAt}}</span>
{{end}}{{if .Tags}}        <span class="entry-tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</span>
{{end}}      </p>
      <div class="entry-content">
{{.Content}}
      </div>
      <nav class="entry-nav">
{{if .Next}}        <a class="newer" href="{{.Next.URL}}">&larr; {{.Next.Title}}</a>
{{end}}{{if .Previous}}        <a class="older" href="{{.Previous.URL}}">{{.Previous.Title}} &rarr;</a>
{{end}}      </nav>
      <section class="comments" data-commento-origin="{{.CommentoOrigin}}" data-path="{{.CommentPath}}">
        <div id="{{.CommentAnchor}}"></div>
        <button id="show-comments-button" class="comments-button">{{.CommentLabel}}</button>
      </section>
    </article>
    <script src="/static/comments.js"></script>
{{end}}`

// errorTemplate is the shared 404/500 page.
const errorTemplate = `{{define "content"}}    <section class="error-page">
      <h1>{{.Header}}</h1>
      <p>{{.Message}}</p>
      <p><a href="/">Go home</a></p>
    </section>
{{end}}`
