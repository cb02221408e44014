package nav

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the spacing of coalescing frame ticks. Scroll recomputes
// and panel boundary corrections are deferred to the next frame rather than
// running inside the event handler that requested them.
const FrameInterval = time.Second / 60

// FrameMsg signals that a requested frame tick has elapsed. Handling it twice
// is harmless; all frame work is idempotent.
type FrameMsg struct{}

// Frame returns a command that delivers a FrameMsg after one frame interval.
func Frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// CloseTimerMsg is delivered when a hover-intent close delay elapses. The
// sequence number ties it to the arming call; stale sequences are ignored,
// which is how a pending close is cancelled.
type CloseTimerMsg struct {
	ID  string
	Seq uint64
}

// NavigateMsg asks the host application to show the page at Path.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}
