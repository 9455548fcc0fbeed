package comments

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "Make a comment"},
		{1, "Show 1 comment"},
		{2, "Show 2 comments"},
		{57, "Show 57 comments"},
	}
	for _, tt := range tests {
		if got := Label(tt.count); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestLabelContainsCount(t *testing.T) {
	for _, n := range []int{2, 10, 999, 1000000} {
		got := Label(n)
		if !strings.Contains(got, strconv.Itoa(n)) {
			t.Errorf("Label(%d) = %q, missing decimal count", n, got)
		}
	}
}

// fakeElement records the interactions the controller performs.
type fakeElement struct {
	click    func()
	removed  bool
	scrolled int
}

func (e *fakeElement) OnClick(fn func()) { e.click = fn }
func (e *fakeElement) Remove()           { e.removed = true }
func (e *fakeElement) ScrollIntoView()   { e.scrolled++ }

// Click simulates a user click. Clicks after Remove go nowhere, the
// element is off the interactive surface.
func (e *fakeElement) Click() {
	if e.removed || e.click == nil {
		return
	}
	e.click()
}

// fakeDocument is a page with an optional button and anchor target.
type fakeDocument struct {
	button *fakeElement
	anchor *fakeElement
}

func (d *fakeDocument) ElementByID(id string) (Element, bool) {
	switch {
	case id == ButtonID && d.button != nil:
		return d.button, true
	case id == Anchor && d.anchor != nil:
		return d.anchor, true
	}
	return nil, false
}

// fakeService counts Mount invocations.
type fakeService struct {
	mu     sync.Mutex
	mounts int
}

func (s *fakeService) Mount() {
	s.mu.Lock()
	s.mounts++
	s.mu.Unlock()
}

func (s *fakeService) Mounts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounts
}

func newPage() (*fakeDocument, *fakeService) {
	return &fakeDocument{button: &fakeElement{}, anchor: &fakeElement{}}, &fakeService{}
}

func TestDeepLinkActivatesOnce(t *testing.T) {
	doc, svc := newPage()
	c := NewController(doc, svc)

	c.Initialize("commento")

	if got := svc.Mounts(); got != 1 {
		t.Fatalf("mounts after deep link = %d, want 1", got)
	}
	if doc.anchor.scrolled != 1 {
		t.Errorf("scroll attempts = %d, want 1", doc.anchor.scrolled)
	}
	if !doc.button.removed {
		t.Error("trigger button should be removed after activation")
	}
	if !c.Activated() {
		t.Error("controller should report activated")
	}

	// A click arriving after the deep-link activation must not remount.
	doc.button.Click()
	if got := svc.Mounts(); got != 1 {
		t.Errorf("mounts after post-activation click = %d, want 1", got)
	}
}

func TestClickActivatesOnce(t *testing.T) {
	doc, svc := newPage()
	c := NewController(doc, svc)

	c.Initialize("")
	if got := svc.Mounts(); got != 0 {
		t.Fatalf("mounts before click = %d, want 0", got)
	}
	if c.Activated() {
		t.Fatal("controller activated before any trigger")
	}

	doc.button.Click()
	if got := svc.Mounts(); got != 1 {
		t.Fatalf("mounts after click = %d, want 1", got)
	}
	if !doc.button.removed {
		t.Error("trigger button should be removed after click activation")
	}

	doc.button.Click()
	if got := svc.Mounts(); got != 1 {
		t.Errorf("mounts after second click = %d, want 1", got)
	}
}

func TestMismatchedFragmentArmsButton(t *testing.T) {
	doc, svc := newPage()
	c := NewController(doc, svc)

	c.Initialize("somethingelse")
	if got := svc.Mounts(); got != 0 {
		t.Fatalf("mounts after mismatched fragment = %d, want 0", got)
	}
	if doc.button.click == nil {
		t.Fatal("button should be armed after mismatched fragment")
	}
	if doc.anchor.scrolled != 0 {
		t.Errorf("scroll attempts = %d, want 0", doc.anchor.scrolled)
	}

	doc.button.Click()
	if got := svc.Mounts(); got != 1 {
		t.Errorf("mounts after click = %d, want 1", got)
	}
}

func TestMissingButton(t *testing.T) {
	doc := &fakeDocument{}
	svc := &fakeService{}
	c := NewController(doc, svc)

	// Neither path may panic with no button or anchor on the page.
	c.Initialize("")
	c.Initialize("commento")
}

func TestDeepLinkWithMissingAnchor(t *testing.T) {
	doc := &fakeDocument{button: &fakeElement{}}
	svc := &fakeService{}
	c := NewController(doc, svc)

	c.Initialize("commento")
	if got := svc.Mounts(); got != 1 {
		t.Errorf("mounts = %d, want 1: missing anchor must not block activation", got)
	}
	if !doc.button.removed {
		t.Error("trigger button should still be removed")
	}
}

func TestInitializeIsOneShot(t *testing.T) {
	doc, svc := newPage()
	c := NewController(doc, svc)

	c.Initialize("")
	c.Initialize("commento")
	if got := svc.Mounts(); got != 0 {
		t.Errorf("mounts after repeated Initialize = %d, want 0", got)
	}
}

func TestConcurrentActivation(t *testing.T) {
	doc, svc := newPage()
	c := NewController(doc, svc)
	c.Initialize("")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Activate()
		}()
	}
	wg.Wait()

	if got := svc.Mounts(); got != 1 {
		t.Errorf("mounts under concurrent activation = %d, want 1", got)
	}
}

func ExampleLabel() {
	fmt.Println(Label(0))
	fmt.Println(Label(1))
	fmt.Println(Label(57))
	// Output:
	// Make a comment
	// Show 1 comment
	// Show 57 comments
}
