// Package site builds the in-memory model of the blog from a content
// directory of markdown entry files and renders it through the page
// templates.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// blogDirName is the subdirectory of the content dir that holds entry
// source files.
const blogDirName = "blog"

// Builder scans a content directory and produces a Site.
type Builder struct {
	ContentDir  string
	Title       string
	Description string
	Include     []string
	Exclude     []string
}

// NewBuilder creates a Builder for the given content directory.
func NewBuilder(contentDir, title, description string) *Builder {
	return &Builder{
		ContentDir:  contentDir,
		Title:       title,
		Description: description,
	}
}

// Site is the fully built blog model. Entries are sorted newest-first.
type Site struct {
	Title       string
	Description string
	Entries     []BlogEntry
}

// Build scans the content directory and renders every entry.
func (b *Builder) Build() (*Site, error) {
	blogDir := filepath.Join(b.ContentDir, blogDirName)

	var entries []BlogEntry
	err := filepath.Walk(blogDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		rel, err := filepath.Rel(blogDir, path)
		if err != nil {
			return err
		}
		if !MatchesInclude(rel, b.Include) || MatchesExclude(rel, b.Exclude) {
			return nil
		}

		entry, err := loadEntry(path)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading from %s: %w", blogDir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return &Site{
		Title:       b.Title,
		Description: b.Description,
		Entries:     entries,
	}, nil
}

// EntryBySlug finds an entry by its slug.
func (s *Site) EntryBySlug(slug string) (*BlogEntry, bool) {
	for i := range s.Entries {
		if s.Entries[i].Slug == slug {
			return &s.Entries[i], true
		}
	}
	return nil, false
}

// EntryPaths returns the canonical site-relative path of every entry,
// newest first. These are the paths the comment service keys counts by.
func (s *Site) EntryPaths() []string {
	paths := make([]string, len(s.Entries))
	for i := range s.Entries {
		paths[i] = s.Entries[i].URL()
	}
	return paths
}

// neighbors returns the chronologically previous (older) and next
// (newer) entries around the entry at index i.
func (s *Site) neighbors(i int) (previous, next *BlogEntry) {
	if i+1 < len(s.Entries) {
		previous = &s.Entries[i+1]
	}
	if i > 0 {
		next = &s.Entries[i-1]
	}
	return previous, next
}
