package site

import (
	"fmt"
	"html/template"
	"time"

	"github.com/rotoclone/rotoclone-zone/internal/comments"
)

// recentEntriesLimit is how many entries the index page shows.
const recentEntriesLimit = 5

// blogIndexPageSize is how many entries each blog index page shows.
const blogIndexPageSize = 10

// BaseContext carries the layout-level data every page template needs.
type BaseContext struct {
	Title           string
	MetaDescription string
	SiteTitle       string
	// Theme is the reader's persisted preference, or "" to let the
	// client-side script decide.
	Theme      string
	LiveReload bool
}

// EntryStub is the minimal representation of an entry for lists and
// previous/next navigation.
type EntryStub struct {
	Title     string
	Tags      []string
	URL       string
	CreatedAt string
}

// Stub builds the EntryStub that represents this entry.
func (e *BlogEntry) Stub() EntryStub {
	return EntryStub{
		Title:     e.Title,
		Tags:      e.Tags,
		URL:       e.URL(),
		CreatedAt: FormatDate(e.CreatedAt),
	}
}

// IndexContext is the data for the landing page.
type IndexContext struct {
	Base          BaseContext
	RecentEntries []EntryStub
}

// IndexContext builds the context for the landing page.
func (s *Site) IndexContext() IndexContext {
	limit := recentEntriesLimit
	if limit > len(s.Entries) {
		limit = len(s.Entries)
	}
	recent := make([]EntryStub, 0, limit)
	for i := 0; i < limit; i++ {
		recent = append(recent, s.Entries[i].Stub())
	}

	return IndexContext{
		Base: BaseContext{
			Title:           s.Title,
			MetaDescription: s.Description,
			SiteTitle:       s.Title,
		},
		RecentEntries: recent,
	}
}

// AboutContext is the data for the about page.
type AboutContext struct {
	Base BaseContext
}

// AboutContext builds the context for the about page.
func (s *Site) AboutContext() AboutContext {
	return AboutContext{
		Base: BaseContext{
			Title:           "About " + s.Title,
			MetaDescription: s.Description,
			SiteTitle:       s.Title,
		},
	}
}

// BlogIndexContext is the data for one page of the paginated entry
// list. PreviousPage and NextPage are 0 when there is no such page.
type BlogIndexContext struct {
	Base         BaseContext
	Entries      []EntryStub
	Page         int
	PreviousPage int
	NextPage     int
}

// PreviousPageURL returns the URL of the newer page. Page 1 is served
// at /blog itself, not /blog/page/1.
func (c BlogIndexContext) PreviousPageURL() string {
	if c.PreviousPage <= 1 {
		return "/blog"
	}
	return fmt.Sprintf("/blog/page/%d", c.PreviousPage)
}

// NextPageURL returns the URL of the older page.
func (c BlogIndexContext) NextPageURL() string {
	return fmt.Sprintf("/blog/page/%d", c.NextPage)
}

// BlogIndexContext builds the context for page (1-based) of the blog
// index.
func (s *Site) BlogIndexContext(page int) BlogIndexContext {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * blogIndexPageSize
	end := start + blogIndexPageSize
	if start > len(s.Entries) {
		start = len(s.Entries)
	}
	if end > len(s.Entries) {
		end = len(s.Entries)
	}

	entries := make([]EntryStub, 0, end-start)
	for i := start; i < end; i++ {
		entries = append(entries, s.Entries[i].Stub())
	}

	previousPage := 0
	if page > 1 {
		previousPage = page - 1
	}
	nextPage := 0
	if len(s.Entries) > start+blogIndexPageSize {
		nextPage = page + 1
	}

	return BlogIndexContext{
		Base: BaseContext{
			Title:           s.Title + " Blog",
			MetaDescription: s.Description,
			SiteTitle:       s.Title,
		},
		Entries:      entries,
		Page:         page,
		PreviousPage: previousPage,
		NextPage:     nextPage,
	}
}

// EntryContext is the data for a single entry page, comment section
// included.
type EntryContext struct {
	Base          BaseContext
	Title         string
	Tags          []string
	CreatedAt     string
	UpdatedAt     string
	Content       template.HTML
	Previous      *EntryStub
	Next          *EntryStub
	Template      string
	CommentPath   string
	CommentLabel  string
	CommentAnchor string
	// CommentoOrigin is filled in by the caller that knows the
	// configured Commento instance.
	CommentoOrigin string
}

// EntryContext builds the context for the entry with the given slug.
// commentCount feeds the trigger button label; pass 0 when no count is
// known.
func (s *Site) EntryContext(slug string, commentCount int) (EntryContext, bool) {
	idx := -1
	for i := range s.Entries {
		if s.Entries[i].Slug == slug {
			idx = i
			break
		}
	}
	if idx == -1 {
		return EntryContext{}, false
	}
	entry := &s.Entries[idx]

	ctx := EntryContext{
		Base: BaseContext{
			Title:           entry.Title,
			MetaDescription: entry.Title,
			SiteTitle:       s.Title,
		},
		Title:         entry.Title,
		Tags:          entry.Tags,
		CreatedAt:     FormatDate(entry.CreatedAt),
		Content:       entry.Content,
		Template:      entry.Template,
		CommentPath:   entry.URL(),
		CommentLabel:  comments.Label(commentCount),
		CommentAnchor: comments.Anchor,
	}
	if entry.UpdatedAt != nil {
		ctx.UpdatedAt = FormatDate(*entry.UpdatedAt)
	}

	previous, next := s.neighbors(idx)
	if previous != nil {
		stub := previous.Stub()
		ctx.Previous = &stub
	}
	if next != nil {
		stub := next.Stub()
		ctx.Next = &stub
	}

	return ctx, true
}

// ErrorContext is the data for the 404/500 pages.
type ErrorContext struct {
	Base    BaseContext
	Header  string
	Message string
}

// ErrorContext builds the context for an error page.
func (s *Site) ErrorContext(header, message string) ErrorContext {
	return ErrorContext{
		Base: BaseContext{
			Title:           header,
			MetaDescription: s.Description,
			SiteTitle:       s.Title,
		},
		Header:  header,
		Message: message,
	}
}

// FormatDate converts a time into the human-readable form used across
// the site, e.g. "January 2nd, 2006".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Month().String(), ordinal(t.Day()), t.Year())
}

// ordinal renders a day-of-month with its English ordinal suffix.
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
