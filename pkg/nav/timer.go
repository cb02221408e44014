package nav

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// closeTimer is the cancellable hover-intent timer carried by each dropdown
// entry. Arming bumps a sequence number baked into the resulting message;
// cancelling bumps it again, so a message from a superseded arm fails the
// matches check and is dropped. The tea loop delivers the message, so no
// locking is needed.
type closeTimer struct {
	delay time.Duration
	seq   uint64
	armed bool
}

// arm schedules a CloseTimerMsg for the given entry after the delay,
// superseding any pending one.
func (t *closeTimer) arm(id string) tea.Cmd {
	t.seq++
	t.armed = true
	seq := t.seq
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return CloseTimerMsg{ID: id, Seq: seq}
	})
}

// cancel invalidates any pending close.
func (t *closeTimer) cancel() {
	t.seq++
	t.armed = false
}

// pending reports whether a close is scheduled.
func (t *closeTimer) pending() bool {
	return t.armed
}

// matches reports whether msg corresponds to the currently armed close for
// the given entry.
func (t *closeTimer) matches(msg CloseTimerMsg, id string) bool {
	return t.armed && msg.ID == id && msg.Seq == t.seq
}
