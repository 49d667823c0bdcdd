package highlight

import "time"

// DefaultLongPress is how long a press must be held to copy a verse.
const DefaultLongPress = 600 * time.Millisecond

// DefaultDoubleClick is the window in which a second click on the same
// verse counts as a double click.
const DefaultDoubleClick = 400 * time.Millisecond

// Press tracks one pointer press at a time. Every Begin opens a new session;
// a timer that fires for an older session is ignored, so a stray timer can
// never copy after its press has ended.
type Press struct {
	session  uint64
	pending  bool
	target   string
	suppress bool
}

// Begin starts a press on target and returns the session id the long-press
// timer must carry. Any earlier pending press is dropped, and so is a
// suppression left over from it.
func (p *Press) Begin(target string) uint64 {
	p.session++
	p.pending = true
	p.target = target
	p.suppress = false
	return p.session
}

// Cancel ends the pending press, on release or on movement.
func (p *Press) Cancel() {
	p.pending = false
}

// Pending reports whether a press is waiting for its timer.
func (p *Press) Pending() bool { return p.pending }

// Fire is called when the timer for session expires. It reports the target
// to act on when the session is still pending, and arms suppression of the
// click that the release will produce.
func (p *Press) Fire(session uint64) (string, bool) {
	if !p.pending || session != p.session {
		return "", false
	}
	p.pending = false
	p.suppress = true
	return p.target, true
}

// Click is called for the click that follows a release. It reports whether
// the click may toggle a highlight; a click right after a long press is
// swallowed once.
func (p *Press) Click() bool {
	if p.suppress {
		p.suppress = false
		return false
	}
	return true
}

// DoubleClick recognises two clicks on the same target within a window.
type DoubleClick struct {
	Window time.Duration
	target string
	at     time.Time
}

// Click registers a click at now and reports whether it completes a double
// click. A completed pair resets, so a third click starts over.
func (d *DoubleClick) Click(target string, now time.Time) bool {
	window := d.Window
	if window <= 0 {
		window = DefaultDoubleClick
	}
	if d.target == target && !d.at.IsZero() && now.Sub(d.at) <= window {
		d.target, d.at = "", time.Time{}
		return true
	}
	d.target, d.at = target, now
	return false
}

// Reset forgets the previous click.
func (d *DoubleClick) Reset() {
	d.target, d.at = "", time.Time{}
}
