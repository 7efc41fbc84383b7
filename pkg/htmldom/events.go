package htmldom

import (
	"reflect"

	"go.uber.org/zap"

	errs "github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
)

// listener is one registered callback. ptr is the callback's code
// pointer, used for identity matching in RemoveEventListener.
type listener struct {
	fn  dom.Listener
	ptr uintptr
}

func listenerPtr(fn dom.Listener) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// AddEventListener registers fn for the named event, non-capturing.
// Every registration is kept: distinct closures built from the same
// function literal share a code pointer, so deduplicating here would
// silently drop listeners that are in fact distinct.
func (nd *node) AddEventListener(name string, fn dom.Listener) {
	if fn == nil {
		return
	}
	if nd.listeners == nil {
		nd.listeners = make(map[string][]listener)
	}
	nd.listeners[name] = append(nd.listeners[name], listener{fn: fn, ptr: listenerPtr(fn)})
}

// RemoveEventListener unregisters one registration whose code pointer
// matches fn. Registrations removed one at a time pair with the adds
// that created them, even when the callbacks share a literal.
func (nd *node) RemoveEventListener(name string, fn dom.Listener) {
	if fn == nil {
		return
	}
	ptr := listenerPtr(fn)
	list := nd.listeners[name]
	for i, l := range list {
		if l.ptr == ptr {
			nd.listeners[name] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// mutableEvent is the internal surface dispatch uses to set per-phase
// fields on events constructed by this substrate.
type mutableEvent interface {
	setTarget(n dom.Node)
	setCurrentTarget(n dom.Node)
	propagationStopped() bool
}

// DispatchEvent delivers ev to this node's listeners and then bubbles
// through ancestors while the event bubbles and propagation is not
// stopped. It reports whether the default action survived.
//
// Only events constructed by this substrate propagate past the target:
// a foreign dom.Event implementation has no settable target or
// propagation state, so it is delivered at the target level only.
func (nd *node) DispatchEvent(ev dom.Event) bool {
	me, _ := ev.(mutableEvent)
	if me != nil {
		me.setTarget(nd.self)
	}
	if nd.doc != nil {
		nd.doc.log.Debug("dispatch",
			zap.String("type", ev.Type()),
			zap.String("target", nd.self.NodeName()))
	}

	for cur := nd.self; cur != nil; cur = cur.ParentNode() {
		host, ok := cur.(interface{ base() *node })
		if !ok {
			break
		}
		b := host.base()
		if me != nil {
			me.setCurrentTarget(cur)
		}
		// Snapshot so listeners can unbind themselves mid-dispatch.
		list := make([]listener, len(b.listeners[ev.Type()]))
		copy(list, b.listeners[ev.Type()])
		for _, l := range list {
			l.fn(ev)
		}
		if me == nil || !ev.Bubbles() || me.propagationStopped() {
			break
		}
	}

	if me != nil {
		me.setCurrentTarget(nil)
	}
	return !ev.DefaultPrevented()
}

// baseEvent implements dom.Event and the legacy init surface shared by
// all event types.
type baseEvent struct {
	typ           string
	bubbles       bool
	cancelable    bool
	target        dom.Node
	currentTarget dom.Node
	prevented     bool
	stopped       bool
}

func (e *baseEvent) Type() string            { return e.typ }
func (e *baseEvent) Target() dom.Node        { return e.target }
func (e *baseEvent) CurrentTarget() dom.Node { return e.currentTarget }
func (e *baseEvent) Bubbles() bool           { return e.bubbles }
func (e *baseEvent) Cancelable() bool        { return e.cancelable }
func (e *baseEvent) DefaultPrevented() bool  { return e.prevented }
func (e *baseEvent) StopPropagation()        { e.stopped = true }

// PreventDefault marks the default action canceled. It has no effect on
// non-cancelable events.
func (e *baseEvent) PreventDefault() {
	if e.cancelable {
		e.prevented = true
	}
}

func (e *baseEvent) setTarget(n dom.Node)        { e.target = n }
func (e *baseEvent) setCurrentTarget(n dom.Node) { e.currentTarget = n }
func (e *baseEvent) propagationStopped() bool    { return e.stopped }

// InitArgs initializes from the positional list [bubbles, cancelable].
func (e *baseEvent) InitArgs(name string, args []any) error {
	e.typ = name
	e.bubbles = argBool(args, 0)
	e.cancelable = argBool(args, 1)
	return nil
}

type uiEvent struct {
	baseEvent
	detail int
}

func (e *uiEvent) Detail() int { return e.detail }

// InitArgs initializes from [bubbles, cancelable, detail].
func (e *uiEvent) InitArgs(name string, args []any) error {
	if err := e.baseEvent.InitArgs(name, args); err != nil {
		return err
	}
	e.detail = argInt(args, 2)
	return nil
}

type keyboardEvent struct {
	uiEvent
	key      string
	code     string
	location int
	ctrl     bool
	shift    bool
	alt      bool
	meta     bool
	repeat   bool
}

func (e *keyboardEvent) Key() string    { return e.key }
func (e *keyboardEvent) Code() string   { return e.code }
func (e *keyboardEvent) Location() int  { return e.location }
func (e *keyboardEvent) CtrlKey() bool  { return e.ctrl }
func (e *keyboardEvent) ShiftKey() bool { return e.shift }
func (e *keyboardEvent) AltKey() bool   { return e.alt }
func (e *keyboardEvent) MetaKey() bool  { return e.meta }
func (e *keyboardEvent) Repeat() bool   { return e.repeat }

// InitArgs initializes from [bubbles, cancelable, key, code, location,
// ctrl, shift, alt, meta, repeat].
func (e *keyboardEvent) InitArgs(name string, args []any) error {
	if err := e.baseEvent.InitArgs(name, args); err != nil {
		return err
	}
	e.key = argString(args, 2)
	e.code = argString(args, 3)
	e.location = argInt(args, 4)
	e.ctrl = argBool(args, 5)
	e.shift = argBool(args, 6)
	e.alt = argBool(args, 7)
	e.meta = argBool(args, 8)
	e.repeat = argBool(args, 9)
	return nil
}

type mouseEvent struct {
	uiEvent
	screenX int
	screenY int
	clientX int
	clientY int
	ctrl    bool
	shift   bool
	alt     bool
	meta    bool
	button  int
	buttons int
	related dom.Node
}

func (e *mouseEvent) ScreenX() int            { return e.screenX }
func (e *mouseEvent) ScreenY() int            { return e.screenY }
func (e *mouseEvent) ClientX() int            { return e.clientX }
func (e *mouseEvent) ClientY() int            { return e.clientY }
func (e *mouseEvent) Button() int             { return e.button }
func (e *mouseEvent) Buttons() int            { return e.buttons }
func (e *mouseEvent) CtrlKey() bool           { return e.ctrl }
func (e *mouseEvent) ShiftKey() bool          { return e.shift }
func (e *mouseEvent) AltKey() bool            { return e.alt }
func (e *mouseEvent) MetaKey() bool           { return e.meta }
func (e *mouseEvent) RelatedTarget() dom.Node { return e.related }

// InitArgs initializes from [bubbles, cancelable, detail, screenX,
// screenY, clientX, clientY, ctrl, shift, alt, meta, button, buttons,
// relatedTarget].
func (e *mouseEvent) InitArgs(name string, args []any) error {
	if err := e.uiEvent.InitArgs(name, args); err != nil {
		return err
	}
	e.screenX = argInt(args, 3)
	e.screenY = argInt(args, 4)
	e.clientX = argInt(args, 5)
	e.clientY = argInt(args, 6)
	e.ctrl = argBool(args, 7)
	e.shift = argBool(args, 8)
	e.alt = argBool(args, 9)
	e.meta = argBool(args, 10)
	e.button = argInt(args, 11)
	e.buttons = argInt(args, 12)
	e.related = argNode(args, 13)
	return nil
}

type wheelEvent struct {
	mouseEvent
	deltaX    float64
	deltaY    float64
	deltaZ    float64
	deltaMode int
}

func (e *wheelEvent) DeltaX() float64 { return e.deltaX }
func (e *wheelEvent) DeltaY() float64 { return e.deltaY }
func (e *wheelEvent) DeltaZ() float64 { return e.deltaZ }
func (e *wheelEvent) DeltaMode() int  { return e.deltaMode }

// InitArgs initializes from the mouse list plus [deltaX, deltaY,
// deltaZ, deltaMode].
func (e *wheelEvent) InitArgs(name string, args []any) error {
	if err := e.mouseEvent.InitArgs(name, args); err != nil {
		return err
	}
	e.deltaX = argFloat(args, 14)
	e.deltaY = argFloat(args, 15)
	e.deltaZ = argFloat(args, 16)
	e.deltaMode = argInt(args, 17)
	return nil
}

type focusEvent struct {
	uiEvent
	related dom.Node
}

func (e *focusEvent) RelatedTarget() dom.Node { return e.related }

// InitArgs initializes from [bubbles, cancelable, detail,
// relatedTarget].
func (e *focusEvent) InitArgs(name string, args []any) error {
	if err := e.uiEvent.InitArgs(name, args); err != nil {
		return err
	}
	e.related = argNode(args, 3)
	return nil
}

type customEvent struct {
	baseEvent
	detail any
}

func (e *customEvent) CustomDetail() any { return e.detail }

// InitArgs initializes from [bubbles, cancelable, detail].
func (e *customEvent) InitArgs(name string, args []any) error {
	if err := e.baseEvent.InitArgs(name, args); err != nil {
		return err
	}
	e.detail = argAny(args, 2)
	return nil
}

// Positional argument decoding. Missing or mistyped arguments take the
// documented defaults: 0, false, nil, empty.

func argBool(args []any, i int) bool {
	if i < len(args) {
		if v, ok := args[i].(bool); ok {
			return v
		}
	}
	return false
}

func argInt(args []any, i int) int {
	if i < len(args) {
		if v, ok := args[i].(int); ok {
			return v
		}
	}
	return 0
}

func argFloat(args []any, i int) float64 {
	if i < len(args) {
		if v, ok := args[i].(float64); ok {
			return v
		}
	}
	return 0
}

func argString(args []any, i int) string {
	if i < len(args) {
		if v, ok := args[i].(string); ok {
			return v
		}
	}
	return ""
}

func argNode(args []any, i int) dom.Node {
	if i < len(args) {
		if v, ok := args[i].(dom.Node); ok {
			return v
		}
	}
	return nil
}

func argAny(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// ConstructEvent is the modern single-call event constructor.
func (d *Document) ConstructEvent(ctor, name string, init dom.EventInit) (dom.Event, error) {
	base := baseEvent{typ: name, bubbles: init.Bubbles, cancelable: init.Cancelable}

	switch ctor {
	case "Event":
		e := base
		return &e, nil
	case "UIEvent":
		return &uiEvent{baseEvent: base, detail: init.Detail}, nil
	case "KeyboardEvent":
		return &keyboardEvent{
			uiEvent:  uiEvent{baseEvent: base},
			key:      init.Key,
			code:     init.Code,
			location: init.Location,
			ctrl:     init.CtrlKey,
			shift:    init.ShiftKey,
			alt:      init.AltKey,
			meta:     init.MetaKey,
			repeat:   init.Repeat,
		}, nil
	case "MouseEvent":
		return d.constructMouse(base, init), nil
	case "WheelEvent":
		return &wheelEvent{
			mouseEvent: *d.constructMouse(base, init),
			deltaX:     init.DeltaX,
			deltaY:     init.DeltaY,
			deltaZ:     init.DeltaZ,
			deltaMode:  init.DeltaMode,
		}, nil
	case "FocusEvent":
		return &focusEvent{
			uiEvent: uiEvent{baseEvent: base, detail: init.Detail},
			related: init.RelatedTarget,
		}, nil
	case "CustomEvent":
		return &customEvent{baseEvent: base, detail: init.Data}, nil
	}
	return nil, errs.Newf(errs.CategoryEvent, "unknown event constructor %q", ctor)
}

func (d *Document) constructMouse(base baseEvent, init dom.EventInit) *mouseEvent {
	return &mouseEvent{
		uiEvent: uiEvent{baseEvent: base, detail: init.Detail},
		screenX: init.ScreenX,
		screenY: init.ScreenY,
		clientX: init.ClientX,
		clientY: init.ClientY,
		ctrl:    init.CtrlKey,
		shift:   init.ShiftKey,
		alt:     init.AltKey,
		meta:    init.MetaKey,
		button:  init.Button,
		buttons: init.Buttons,
		related: init.RelatedTarget,
	}
}

// CreateEvent is the legacy create-then-init event factory.
func (d *Document) CreateEvent(iface string) (dom.InitializableEvent, error) {
	switch iface {
	case "HTMLEvents", "Events", "Event":
		return &baseEvent{}, nil
	case "UIEvents", "UIEvent":
		return &uiEvent{}, nil
	case "KeyboardEvent":
		return &keyboardEvent{}, nil
	case "MouseEvents", "MouseEvent":
		return &mouseEvent{}, nil
	case "WheelEvent":
		return &wheelEvent{}, nil
	case "FocusEvent":
		return &focusEvent{}, nil
	case "CustomEvent":
		return &customEvent{}, nil
	}
	return nil, errs.New(errs.CodeBadEventInterface).
		WithDetail("unknown legacy event interface " + iface)
}
