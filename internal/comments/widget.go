// Package comments gates a single activation of the embedded comment
// service behind explicit reader intent. The server-side Controller is
// the canonical model of the behavior; the comments.js asset shipped
// with every entry page mirrors it in the browser.
package comments

import (
	"fmt"
	"sync"
)

// Anchor is the fragment identifier the page, the trigger button, and
// the Commento embed script all agree on. A URL ending in #commento
// means the reader arrived wanting the comment thread open.
const Anchor = "commento"

// ButtonID identifies the trigger button element on entry pages.
const ButtonID = "show-comments-button"

// Label returns the trigger button text for the given comment count.
// count must be non-negative; negative values format through the
// general branch and produce nonsense.
func Label(count int) string {
	switch count {
	case 0:
		return "Make a comment"
	case 1:
		return "Show 1 comment"
	default:
		return fmt.Sprintf("Show %d comments", count)
	}
}

// Service is the embeddable comment backend. Mount loads and renders
// the thread; the controller never observes whether it succeeds.
type Service interface {
	Mount()
}

// Element is the slice of page DOM the controller touches.
type Element interface {
	// OnClick registers a click handler. The controller registers at
	// most one.
	OnClick(fn func())
	// Remove takes the element out of the interactive surface.
	Remove()
	// ScrollIntoView brings the element into the viewport, best effort.
	ScrollIntoView()
}

// Document resolves page elements by id. Lookups may fail: the trigger
// button only exists on entry pages, and the comment thread container
// may be injected by the service after activation.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Controller owns the collapsed/activated lifecycle of the comment
// widget on a single page. It guarantees the service is mounted at
// most once per page lifetime no matter how many trigger paths fire.
type Controller struct {
	doc Document
	svc Service

	mu          sync.Mutex
	initialized bool
	activated   bool
}

// NewController returns a collapsed controller for the given page.
func NewController(doc Document, svc Service) *Controller {
	return &Controller{doc: doc, svc: svc}
}

// Initialize inspects the page-load fragment exactly once. A fragment
// matching Anchor activates the widget immediately and scrolls the
// thread into view; any other fragment arms the trigger button so the
// first click activates instead. Fragment changes after load are not
// observed.
func (c *Controller) Initialize(fragment string) {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.mu.Unlock()

	if fragment == Anchor {
		c.Activate()
		c.scrollToThread()
		return
	}

	btn, ok := c.doc.ElementByID(ButtonID)
	if !ok {
		// Page rendered without a comment section; nothing to arm.
		return
	}
	btn.OnClick(c.Activate)
}

// Activate performs the collapsed -> activated transition: mount the
// comment service and remove the trigger button. Calling it again is a
// no-op; the transition has no return path within a page lifetime.
func (c *Controller) Activate() {
	c.mu.Lock()
	if c.activated {
		c.mu.Unlock()
		return
	}
	c.activated = true
	c.mu.Unlock()

	c.svc.Mount()
	if btn, ok := c.doc.ElementByID(ButtonID); ok {
		btn.Remove()
	}
}

// Activated reports whether the widget has been activated.
func (c *Controller) Activated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activated
}

// scrollToThread scrolls the thread container into view. The service
// may inject the container asynchronously after Mount, so a missing
// element is tolerated rather than retried.
func (c *Controller) scrollToThread() {
	if el, ok := c.doc.ElementByID(Anchor); ok {
		el.ScrollIntoView()
	}
}
