package server

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rotoclone/rotoclone-zone/internal/site"
)

// render executes a page template. The page is buffered so a template
// failure can still produce a clean 500 instead of a half-written body.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page, data); err != nil {
		log.Printf("server: rendering %s: %v", page, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// decorate fills in the request-scoped base fields shared by every
// page.
func (s *Server) decorate(base *site.BaseContext, r *http.Request) {
	base.Theme = themeFromRequest(r)
	base.LiveReload = s.cfg.LiveReload
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := s.siteFn().IndexContext()
	s.decorate(&ctx.Base, r)
	s.render(w, r, http.StatusOK, "index", ctx)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	ctx := s.siteFn().AboutContext()
	s.decorate(&ctx.Base, r)
	s.render(w, r, http.StatusOK, "about", ctx)
}

func (s *Server) handleBlogIndex(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := chi.URLParam(r, "page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.handleNotFound(w, r)
			return
		}
		page = n
	}

	ctx := s.siteFn().BlogIndexContext(page)
	if page > 1 && len(ctx.Entries) == 0 {
		s.handleNotFound(w, r)
		return
	}
	s.decorate(&ctx.Base, r)
	s.render(w, r, http.StatusOK, "blog_index", ctx)
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	current := s.siteFn()

	entry, ok := current.EntryBySlug(slug)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	count := 0
	if s.counts != nil {
		c, err := s.counts.Count(r.Context(), entry.URL())
		if err != nil {
			log.Printf("server: comment count for %s: %v", entry.URL(), err)
		} else {
			count = c
		}
	}

	ctx, ok := current.EntryContext(slug, count)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	ctx.CommentoOrigin = s.cfg.Commento.Origin
	s.decorate(&ctx.Base, r)

	page := ctx.Template
	if !s.renderer.Has(page) {
		page = site.DefaultEntryTemplate
	}
	s.render(w, r, http.StatusOK, page, ctx)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	asset, ok := site.Assets()[name]
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", asset.ContentType)
	w.Write([]byte(asset.Body))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	ctx := s.siteFn().ErrorContext("404", "That page doesn't exist.")
	s.decorate(&ctx.Base, r)
	s.render(w, r, http.StatusNotFound, "error", ctx)
}
