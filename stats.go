package flowgui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats describes the last completed paint.
type Stats struct {
	Frame      uint64
	Passes     int
	Widgets    int
	Candidates int
	PaintTime  time.Duration

	// TotalPasses counts build passes over the engine lifetime.
	TotalPasses uint64
}

func (s *Stats) record(e *Engine, passes int, d time.Duration) {
	s.Frame = e.frame
	s.Passes = passes
	s.Widgets = e.store.len()
	s.Candidates = len(e.hitList)
	s.PaintTime = d
	s.TotalPasses += uint64(passes)
}

// String formats the stats for a debug overlay.
func (s Stats) String() string {
	return fmt.Sprintf("frame %s: %d passes, %s widgets (%s placed), %s",
		humanize.Comma(int64(s.Frame)),
		s.Passes,
		humanize.Comma(int64(s.Widgets)),
		humanize.Comma(int64(s.Candidates)),
		s.PaintTime.Round(time.Microsecond))
}

// Stats returns the statistics of the last completed paint.
func (e *Engine) Stats() Stats { return e.stats }
