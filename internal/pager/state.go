// Package pager holds the scroll state of a document view.
package pager

import "fmt"

// Command is a logical input the state machine reacts to.
type Command int

const (
	CommandNone Command = iota
	CommandMoveDown
	CommandMoveUp
	CommandQuit
	// CommandSuspend hands the terminal back to the shell. It does not
	// change the scroll state.
	CommandSuspend
)

func (c Command) String() string {
	switch c {
	case CommandMoveDown:
		return "move-down"
	case CommandMoveUp:
		return "move-up"
	case CommandQuit:
		return "quit"
	case CommandSuspend:
		return "suspend"
	default:
		return "none"
	}
}

// Mode is the lifecycle stage of a State.
type Mode int

const (
	Running Mode = iota
	Quitting
)

// State tracks the scroll offset over a document of TotalLines lines.
// The offset always stays within [0, TotalLines].
type State struct {
	offset int
	total  int
	mode   Mode
}

// Snapshot is a read-only copy of a State for renderers.
type Snapshot struct {
	ScrollOffset int
	TotalLines   int
	ShouldQuit   bool
}

// New returns a running State at offset 0.
func New(totalLines int) *State {
	return &State{total: max(totalLines, 0)}
}

// Apply runs one command and reports whether the state changed.
// Once quitting, every command is a no-op.
func (s *State) Apply(cmd Command) bool {
	if s.mode == Quitting {
		return false
	}
	prev := s.offset
	switch cmd {
	case CommandMoveDown:
		s.offset = min(s.offset+1, s.total)
	case CommandMoveUp:
		s.offset = max(s.offset-1, 0)
	case CommandQuit:
		s.mode = Quitting
		return true
	default:
		return false
	}
	return s.offset != prev
}

// SetTotal replaces the line count, for example after a reload, and clamps
// the offset to the new bounds.
func (s *State) SetTotal(totalLines int) {
	s.total = max(totalLines, 0)
	s.offset = min(s.offset, s.total)
}

func (s *State) Offset() int      { return s.offset }
func (s *State) TotalLines() int  { return s.total }
func (s *State) Mode() Mode       { return s.mode }
func (s *State) ShouldQuit() bool { return s.mode == Quitting }

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		ScrollOffset: s.offset,
		TotalLines:   s.total,
		ShouldQuit:   s.mode == Quitting,
	}
}

// Progress is the read ratio for a viewport of the given height, clamped to
// [0, 1]. An empty document counts as fully read.
func (s *State) Progress(viewportHeight int) float64 {
	return Progress(s.offset, s.total, viewportHeight)
}

// Progress computes (offset + viewportHeight - 1) / totalLines clamped to
// [0, 1], with 1 for an empty document.
func Progress(offset, totalLines, viewportHeight int) float64 {
	if totalLines <= 0 {
		return 1
	}
	ratio := float64(offset+viewportHeight-1) / float64(totalLines)
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

// Window returns the half-open range of line indexes visible in a viewport
// of the given height.
func (s *State) Window(viewportHeight int) (start, end int) {
	return s.Snapshot().Window(viewportHeight)
}

// Window is the visible [start, end) line range for the snapshot.
func (s Snapshot) Window(viewportHeight int) (start, end int) {
	start = s.ScrollOffset
	end = min(start+max(viewportHeight, 0), s.TotalLines)
	return start, end
}

// Progress is the read ratio for the snapshot.
func (s Snapshot) Progress(viewportHeight int) float64 {
	return Progress(s.ScrollOffset, s.TotalLines, viewportHeight)
}

// FullyRead reports whether the progress ratio has reached 1.
func (s Snapshot) FullyRead(viewportHeight int) bool {
	return s.Progress(viewportHeight) >= 1
}

// RangeLabel describes the visible lines as "first-last/total", with first
// shown as 0 when nothing is visible.
func (s Snapshot) RangeLabel(viewportHeight int) string {
	start, end := s.Window(viewportHeight)
	first := 0
	if end > start {
		first = start + 1
	}
	return fmt.Sprintf("%d-%d/%d", first, end, s.TotalLines)
}
