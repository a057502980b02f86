package flowgui

import (
	"log/slog"

	"github.com/dustin/go-humanize"
)

// store maps identities to retained widget records. Entries are never
// removed implicitly; prune sweeps the ones not referenced for a while.
type store struct {
	widgets map[ID]*Widget

	// warnLimit is the size at which the next growth warning is logged.
	// It doubles after each warning. Zero disables warnings.
	warnLimit int
}

func newStore(warnLimit int) store {
	return store{
		widgets:   make(map[ID]*Widget),
		warnLimit: warnLimit,
	}
}

func (s *store) get(id ID) (*Widget, bool) {
	w, ok := s.widgets[id]
	return w, ok
}

// getOrCreate returns the record for id, allocating it on first use.
func (s *store) getOrCreate(id ID) (*Widget, bool) {
	if w, ok := s.widgets[id]; ok {
		return w, false
	}
	w := &Widget{ID: id}
	s.widgets[id] = w
	return w, true
}

// checkGrowth logs once each time the store doubles past the limit.
// Widgets keyed by loop indices over a growing list never get reclaimed,
// so a steadily rising count is almost always a key-space bug.
func (s *store) checkGrowth(logger *slog.Logger) {
	if s.warnLimit <= 0 || len(s.widgets) < s.warnLimit {
		return
	}
	logger.Warn("widget store keeps growing",
		"widgets", humanize.Comma(int64(len(s.widgets))),
		"hint", "use stable domain keys for widgets created in loops, or Prune")
	s.warnLimit *= 2
}

// prune deletes records not referenced within maxAge frames of frame and
// returns how many were removed.
func (s *store) prune(frame, maxAge uint64) int {
	if frame < maxAge {
		return 0
	}
	threshold := frame - maxAge
	removed := 0
	for id, w := range s.widgets {
		if w.lastFrame < threshold {
			delete(s.widgets, id)
			removed++
		}
	}
	return removed
}

func (s *store) len() int {
	return len(s.widgets)
}
