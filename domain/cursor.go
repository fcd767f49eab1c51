package domain

// HistoryCursor is a position-tracking read-only view over a room's live
// history. It holds a reference to the underlying log, not a copy, so
// entries recorded after creation become visible once the cursor reaches
// their position. A cursor must not outlive its room.
type HistoryCursor struct {
	history *[]string
	pos     int
}

func newHistoryCursor(history *[]string) *HistoryCursor {
	return &HistoryCursor{history: history}
}

// First resets the cursor to the start. Always succeeds, including on an
// empty or already-exhausted history.
func (c *HistoryCursor) First() {
	c.pos = 0
}

// Next advances by one entry. Past the end it is a no-op, so the position
// never exceeds the live length.
func (c *HistoryCursor) Next() {
	if !c.IsDone() {
		c.pos++
	}
}

// IsDone reports whether the cursor is past the last entry, evaluated
// against the live length rather than a snapshot.
func (c *HistoryCursor) IsDone() bool {
	if c.history == nil {
		return true
	}
	return c.pos >= len(*c.history)
}

// CurrentItem returns the entry under the cursor, or the empty string when
// the cursor is exhausted or detached. It never fails.
func (c *HistoryCursor) CurrentItem() string {
	if c.IsDone() {
		return ""
	}
	return (*c.history)[c.pos]
}
