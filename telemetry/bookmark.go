package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkCoolingBreakthrough BookmarkType = "cooling_breakthrough"
	BookmarkOffResonance        BookmarkType = "off_resonance"
	BookmarkSteadyFlow          BookmarkType = "steady_flow"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	offResonanceWindows int // consecutive windows where atoms ignored the laser
	steadyWindowsCount  int // consecutive windows with a stable atom count
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for steady flow detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	// A level change invalidates the history
	if bd.historyFull || bd.historyIdx > 0 {
		if last := bd.last(); last.Level != stats.Level {
			bd.reset()
		}
	}

	if bd.historyFull || bd.historyIdx > 0 {
		// Cooling breakthrough: stops per spawned atom > 2x rolling average
		if b := bd.checkCoolingBreakthrough(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	// Off resonance: laser firing at atoms that never absorb
	if b := bd.checkOffResonance(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Steady flow: atom count stable over 5 windows
	if b := bd.checkSteadyFlow(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	return bookmarks
}

func (bd *BookmarkDetector) reset() {
	bd.historyIdx = 0
	bd.historyFull = false
	bd.offResonanceWindows = 0
	bd.steadyWindowsCount = 0
}

func (bd *BookmarkDetector) last() WindowStats {
	idx := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	return bd.history[idx]
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkCoolingBreakthrough(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var totalStopped, totalCulled int
	for _, h := range history {
		totalStopped += h.AtomsStopped
		totalCulled += h.AtomsCulled
	}
	if totalCulled == 0 || stats.AtomsCulled == 0 {
		return nil
	}

	avgRate := float64(totalStopped) / float64(totalCulled)
	rate := float64(stats.AtomsStopped) / float64(stats.AtomsCulled)
	if stats.AtomsStopped >= 2 && (avgRate == 0 || rate > avgRate*2.0) {
		return &Bookmark{
			Type:        BookmarkCoolingBreakthrough,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Stopped %d atoms (%.2f per exit, average %.2f)", stats.AtomsStopped, rate, avgRate),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkOffResonance(stats WindowStats) *Bookmark {
	if stats.Atoms == 0 || stats.PhotonsEmitted < 5 || stats.PhotonsAbsorbed > 0 {
		bd.offResonanceWindows = 0
		return nil
	}

	bd.offResonanceWindows++
	if bd.offResonanceWindows == 3 { // trigger once per stretch
		return &Bookmark{
			Type:        BookmarkOffResonance,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("No absorptions in 3 windows with %d atoms present; laser hue misses the atoms", stats.Atoms),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkSteadyFlow(stats WindowStats) *Bookmark {
	if stats.Atoms < 1 {
		bd.steadyWindowsCount = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}

	recent := history[len(history)-4:]
	var sum float64
	for _, h := range recent {
		sum += float64(h.Atoms)
	}
	mean := sum / 4

	var variance float64
	for _, h := range recent {
		d := float64(h.Atoms) - mean
		variance += d * d
	}
	variance /= 4

	cv2 := 0.0
	if mean > 0 {
		cv2 = variance / (mean * mean)
	}

	if mean > 0 && cv2 < 0.04 { // CV^2 < 0.04 means CV < 0.2
		bd.steadyWindowsCount++
	} else {
		bd.steadyWindowsCount = 0
	}

	if bd.steadyWindowsCount == 5 {
		return &Bookmark{
			Type:        BookmarkSteadyFlow,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Steady flow of about %.0f atoms over 5+ windows", mean),
		}
	}

	return nil
}
