package dom

// ReadyEvent is the notification name fired by substrates when the
// document has finished loading.
const ReadyEvent = "DOMContentLoaded"

// Listener is an event callback. Every On registration is kept and
// delivered; Off matches by the callback's code pointer and removes one
// registration per call, so the same function value passed to On must
// be passed to unbind.
type Listener func(Event)

// Event is a dispatched or synthetic event object.
type Event interface {
	Type() string
	Target() Node
	CurrentTarget() Node
	Bubbles() bool
	Cancelable() bool
	DefaultPrevented() bool
	PreventDefault()
	StopPropagation()
}

// UIEvent is an event carrying a detail count.
type UIEvent interface {
	Event
	Detail() int
}

// KeyboardEvent is a key event with modifier state.
type KeyboardEvent interface {
	UIEvent
	Key() string
	Code() string
	Location() int
	CtrlKey() bool
	ShiftKey() bool
	AltKey() bool
	MetaKey() bool
	Repeat() bool
}

// MouseEvent is a pointer event with coordinates and button state.
type MouseEvent interface {
	UIEvent
	ScreenX() int
	ScreenY() int
	ClientX() int
	ClientY() int
	Button() int
	Buttons() int
	CtrlKey() bool
	ShiftKey() bool
	AltKey() bool
	MetaKey() bool
	RelatedTarget() Node
}

// WheelEvent is a mouse event with scroll deltas.
type WheelEvent interface {
	MouseEvent
	DeltaX() float64
	DeltaY() float64
	DeltaZ() float64
	DeltaMode() int
}

// FocusEvent is a focus change event.
type FocusEvent interface {
	UIEvent
	RelatedTarget() Node
}

// CustomEvent carries arbitrary caller data.
type CustomEvent interface {
	Event
	CustomDetail() any
}

// EventTarget is the substrate capability for binding and dispatching.
// Listeners are non-capturing; dispatch bubbles through ancestors when
// the event bubbles. DispatchEvent reports whether the default action
// survived (was not prevented).
type EventTarget interface {
	AddEventListener(name string, fn Listener)
	RemoveEventListener(name string, fn Listener)
	DispatchEvent(ev Event) bool
}

// EventInit configures synthetic event construction. Zero values are the
// documented defaults: numbers 0, booleans false, references nil.
type EventInit struct {
	Bubbles    bool
	Cancelable bool

	// UI events
	Detail int

	// Keyboard events
	Key      string
	Code     string
	Location int
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
	Repeat   bool

	// Mouse events
	ScreenX       int
	ScreenY       int
	ClientX       int
	ClientY       int
	Button        int
	Buttons       int
	RelatedTarget Node

	// Wheel events
	DeltaX    float64
	DeltaY    float64
	DeltaZ    float64
	DeltaMode int

	// Custom events
	Data any
}

// EventConstructor is the modern single-call construction capability.
type EventConstructor interface {
	ConstructEvent(ctor, name string, init EventInit) (Event, error)
}

// LegacyEventFactory is the legacy create-then-init construction
// capability for engines without modern constructors.
type LegacyEventFactory interface {
	CreateEvent(iface string) (InitializableEvent, error)
}

// InitializableEvent is an event produced by a LegacyEventFactory,
// initialized from a positional argument list.
type InitializableEvent interface {
	Event
	InitArgs(name string, args []any) error
}

// eventKind describes how one kind of synthetic event is constructed:
// the modern constructor name, the legacy interface name, and the
// positional argument list for the legacy init call.
type eventKind struct {
	ctor   string
	legacy string
	args   func(init EventInit) []any
}

var eventKinds = map[string]eventKind{
	"event": {"Event", "HTMLEvents", func(i EventInit) []any {
		return []any{i.Bubbles, i.Cancelable}
	}},
	"ui": {"UIEvent", "UIEvents", func(i EventInit) []any {
		return []any{i.Bubbles, i.Cancelable, i.Detail}
	}},
	"keyboard": {"KeyboardEvent", "KeyboardEvent", func(i EventInit) []any {
		return []any{i.Bubbles, i.Cancelable, i.Key, i.Code, i.Location,
			i.CtrlKey, i.ShiftKey, i.AltKey, i.MetaKey, i.Repeat}
	}},
	"mouse": {"MouseEvent", "MouseEvents", mouseArgs},
	"wheel": {"WheelEvent", "WheelEvent", func(i EventInit) []any {
		return append(mouseArgs(i), i.DeltaX, i.DeltaY, i.DeltaZ, i.DeltaMode)
	}},
	"focus": {"FocusEvent", "FocusEvent", func(i EventInit) []any {
		return []any{i.Bubbles, i.Cancelable, i.Detail, i.RelatedTarget}
	}},
	"custom": {"CustomEvent", "CustomEvent", func(i EventInit) []any {
		return []any{i.Bubbles, i.Cancelable, i.Data}
	}},
}

func mouseArgs(i EventInit) []any {
	return []any{i.Bubbles, i.Cancelable, i.Detail,
		i.ScreenX, i.ScreenY, i.ClientX, i.ClientY,
		i.CtrlKey, i.ShiftKey, i.AltKey, i.MetaKey,
		i.Button, i.Buttons, i.RelatedTarget}
}
