// Package watch keeps a site model in sync with its content directory,
// rebuilding it when source files change.
package watch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rotoclone/rotoclone-zone/internal/site"
)

// debounceDelay collapses the burst of filesystem events an editor
// save produces into a single rebuild.
const debounceDelay = 200 * time.Millisecond

// UpdatingSite wraps a Site and rebuilds it whenever the watched
// content directory changes. Readers always see a complete site: a
// failed rebuild keeps the previous model.
type UpdatingSite struct {
	build   func() (*site.Site, error)
	watcher *fsnotify.Watcher

	mu   sync.RWMutex
	site *site.Site

	subMu sync.Mutex
	subs  []func()

	done chan struct{}
}

// New builds the initial site and starts watching contentDir.
func New(contentDir string, build func() (*site.Site, error)) (*UpdatingSite, error) {
	s, err := build()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the whole content tree; fsnotify does not recurse.
	err = filepath.Walk(contentDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", contentDir, err)
	}

	u := &UpdatingSite{
		build:   build,
		watcher: watcher,
		site:    s,
		done:    make(chan struct{}),
	}
	go u.loop()
	return u, nil
}

// Site returns the current site model.
func (u *UpdatingSite) Site() *site.Site {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.site
}

// OnRebuild registers a callback invoked after every successful
// rebuild. Callbacks run on the watcher goroutine and should return
// quickly.
func (u *UpdatingSite) OnRebuild(fn func()) {
	u.subMu.Lock()
	u.subs = append(u.subs, fn)
	u.subMu.Unlock()
}

// Close stops watching. The last built site remains readable.
func (u *UpdatingSite) Close() error {
	close(u.done)
	return u.watcher.Close()
}

func (u *UpdatingSite) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-u.done:
			return

		case event, ok := <-u.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			// New directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = u.watcher.Add(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceDelay)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			u.rebuild()

		case err, ok := <-u.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}

func (u *UpdatingSite) rebuild() {
	log.Printf("watch: changes detected, rebuilding site...")
	s, err := u.build()
	if err != nil {
		log.Printf("watch: error rebuilding site: %v", err)
		return
	}

	u.mu.Lock()
	u.site = s
	u.mu.Unlock()
	log.Printf("watch: site rebuilt successfully")

	u.subMu.Lock()
	subs := make([]func(), len(u.subs))
	copy(subs, u.subs)
	u.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
