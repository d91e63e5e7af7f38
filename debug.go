package evergreen

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and instance metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime  time.Duration
	commitTime  time.Duration
	instances   int
	written     bool
	progress    float64
	arrangement Arrangement
}

// debugLog prints timing and instance stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[evergreen] update: %v | commit: %v | total: %v\n",
		stats.updateTime, stats.commitTime, stats.updateTime+stats.commitTime)
	if !stats.written {
		_, _ = fmt.Fprintf(os.Stderr,
			"[evergreen] sink not ready, %d instances skipped | progress: %.3f -> %s\n",
			stats.instances, stats.progress, stats.arrangement)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[evergreen] instances: %d | progress: %.3f -> %s\n",
		stats.instances, stats.progress, stats.arrangement)
}

// DebugStats returns a one-line summary of the last frame's stats. It is
// empty unless debug mode is on.
func (s *Scene) DebugStats() string {
	if !s.debug {
		return ""
	}
	return fmt.Sprintf("update %v, %d instances, progress %.3f",
		s.stats.updateTime+s.stats.commitTime, s.stats.instances, s.stats.progress)
}
