package editor

import "github.com/iw2rmb/gutterpad/buffer"

// EventKind names a notification the editor publishes on its Bus.
type EventKind uint8

const (
	// EventContentChanged fires once per effective document mutation.
	EventContentChanged EventKind = iota
	// EventCursorChanged fires when the cursor or selection moves.
	EventCursorChanged
	// EventGeometryChanged fires when the gutter width, the viewport size or
	// the scroll position changes.
	EventGeometryChanged
	// EventModeChanged fires when the input mode toggles.
	EventModeChanged
)

func (k EventKind) String() string {
	switch k {
	case EventContentChanged:
		return "content"
	case EventCursorChanged:
		return "cursor"
	case EventGeometryChanged:
		return "geometry"
	case EventModeChanged:
		return "mode"
	default:
		return "unknown"
	}
}

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Source      buffer.ChangeSource
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}
	// Change is the normalized buffer transaction behind the event.
	Change buffer.Change

	// v0: simplest payload; host can diff if needed.
	Text string
}

type CursorEvent struct {
	Cursor    buffer.Pos
	Selection buffer.Range
	Active    bool
}

type GeometryEvent struct {
	GutterWidth int
	Width       int
	Height      int
	TopRow      int
}

// Event is delivered to subscribers. Only the field matching Kind is set.
type Event struct {
	Kind     EventKind
	Content  ChangeEvent
	Cursor   CursorEvent
	Geometry GeometryEvent
	Mode     InputMode
}

type subscription struct {
	id   int
	kind EventKind
	fn   func(Event)
}

// Bus delivers editor events synchronously, in subscription order.
//
// A Bus is shared by all copies of a Model and is not safe for concurrent
// use; it is meant to be driven from a Bubble Tea update loop.
type Bus struct {
	subs   []subscription
	nextID int
}

// Subscribe registers fn for events of kind. The returned function removes
// the subscription; calling it more than once is a no-op.
func (b *Bus) Subscribe(kind EventKind, fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, kind: kind, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *Bus) emit(ev Event) {
	if len(b.subs) == 0 {
		return
	}
	subs := append([]subscription(nil), b.subs...)
	for _, s := range subs {
		if s.kind == ev.Kind {
			s.fn(ev)
		}
	}
}

func buildChangeEvent(b *buffer.Buffer, c buffer.Change) ChangeEvent {
	ev := ChangeEvent{
		Version:     c.VersionAfter,
		TextVersion: b.TextVersion(),
		Source:      c.Source,
		Cursor:      c.CursorAfter,
		Change:      c,
		Text:        b.Text(),
	}
	ev.Selection.Active = c.SelectionAfter.Active
	ev.Selection.Range = c.SelectionAfter.Range
	return ev
}
