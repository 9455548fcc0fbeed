package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// frontMatterDelimiter marks the beginning and end of the TOML front
// matter block in an entry source file.
const frontMatterDelimiter = "+++"

// DefaultEntryTemplate renders entries whose front matter names no
// template of its own.
const DefaultEntryTemplate = "blog_entry"

// FrontMatter is the TOML metadata block at the top of an entry file.
// Every field is optional; defaults come from the source file itself.
type FrontMatter struct {
	Slug      string     `toml:"slug"`
	Title     string     `toml:"title"`
	Template  string     `toml:"template"`
	Tags      []string   `toml:"tags"`
	CreatedAt *time.Time `toml:"created_at"`
	UpdatedAt *time.Time `toml:"updated_at"`
}

// BlogEntry is one rendered blog post.
type BlogEntry struct {
	Title      string
	Slug       string
	Template   string
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	Content    template.HTML
	SourcePath string
}

// URL returns the canonical site-relative path for the entry.
func (e *BlogEntry) URL() string {
	return "/blog/" + e.Slug
}

// extractFrontMatter splits an entry source file into its parsed front
// matter and the markdown that follows. The file must open with a
// delimiter line.
func extractFrontMatter(src []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter

	lines := strings.SplitAfter(string(src), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != frontMatterDelimiter {
		return fm, nil, fmt.Errorf("file does not start with %s", frontMatterDelimiter)
	}

	var fmBuf bytes.Buffer
	rest := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == frontMatterDelimiter {
			rest = i + 1
			break
		}
		fmBuf.WriteString(lines[i])
	}
	if rest == -1 {
		return fm, nil, fmt.Errorf("front matter is not closed with %s", frontMatterDelimiter)
	}

	if err := toml.Unmarshal(fmBuf.Bytes(), &fm); err != nil {
		return fm, nil, fmt.Errorf("parsing front matter: %w", err)
	}

	return fm, []byte(strings.Join(lines[rest:], "")), nil
}

// loadEntry reads, parses, and renders a single entry source file.
func loadEntry(path string) (BlogEntry, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return BlogEntry{}, fmt.Errorf("reading %s: %w", path, err)
	}

	fm, markdown, err := extractFrontMatter(src)
	if err != nil {
		return BlogEntry{}, fmt.Errorf("extracting front matter from %s: %w", path, err)
	}

	content, err := renderMarkdown(markdown)
	if err != nil {
		return BlogEntry{}, fmt.Errorf("rendering %s: %w", path, err)
	}

	entry := BlogEntry{
		Title:      fm.Title,
		Slug:       fm.Slug,
		Template:   fm.Template,
		Tags:       fm.Tags,
		UpdatedAt:  fm.UpdatedAt,
		Content:    content,
		SourcePath: path,
	}

	if entry.Slug == "" {
		entry.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if entry.Template == "" {
		entry.Template = DefaultEntryTemplate
	}
	if fm.CreatedAt != nil {
		entry.CreatedAt = *fm.CreatedAt
	} else {
		info, err := os.Stat(path)
		if err != nil {
			return BlogEntry{}, fmt.Errorf("getting metadata for %s: %w", path, err)
		}
		entry.CreatedAt = info.ModTime().UTC()
	}

	return entry, nil
}
