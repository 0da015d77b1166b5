package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal covers edits, moves and selection updates driven
	// through the buffer API.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceHistory covers undo and redo.
	ChangeSourceHistory
	// ChangeSourceReset covers wholesale SetText replacement.
	ChangeSourceReset
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceHistory:
		return "history"
	case ChangeSourceReset:
		return "reset"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit in a change transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit

	// LineCountBefore and LineCountAfter let observers detect changes in
	// the number of logical lines without re-reading the document.
	LineCountBefore int
	LineCountAfter  int
}

// TextChanged reports whether the change mutated document text.
func (c Change) TextChanged() bool { return len(c.AppliedEdits) > 0 }

// FirstChangedRow returns the smallest row touched by any applied edit, or
// -1 when the text did not change.
func (c Change) FirstChangedRow() int {
	row := -1
	for _, e := range c.AppliedEdits {
		if row < 0 || e.RangeBefore.Start.Row < row {
			row = e.RangeBefore.Start.Row
		}
	}
	return row
}

type observer struct {
	id int
	fn func(Change)
}

// Observe registers fn to be called after every effective change. Observers
// run synchronously, in registration order, once the mutation has been fully
// applied. The returned function unregisters fn.
func (b *Buffer) Observe(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	b.nextObsID++
	id := b.nextObsID
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	lineCountBefore int
	appliedEdits    []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateFromInternal(b.sel),
		lineCountBefore: len(b.lines),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(b.sel),
		AppliedEdits:    append([]AppliedEdit(nil), cb.appliedEdits...),
		LineCountBefore: cb.lineCountBefore,
		LineCountAfter:  len(b.lines),
	}
	b.hasLastChange = true

	if len(b.observers) == 0 {
		return
	}
	// Copy so observers may unsubscribe while being notified.
	obs := append([]observer(nil), b.observers...)
	for _, o := range obs {
		o.fn(cloneChange(b.lastChange))
	}
}

func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: fullDocumentRange(beforeText),
		RangeAfter:  fullDocumentRange(afterText),
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

func fullDocumentRange(text string) Range {
	lines := splitLines(text)
	lastRow := len(lines) - 1
	return Range{
		Start: Pos{},
		End:   Pos{Row: lastRow, Col: len(lines[lastRow])},
	}
}
