package dom

// On binds fn to the named event on target, non-capturing. Targets
// without event support are ignored.
func (d *DOM) On(target Node, name string, fn Listener) {
	if t, ok := target.(EventTarget); ok {
		t.AddEventListener(name, fn)
	}
}

// Off unbinds fn from the named event on target. The same function
// value passed to On must be used.
func (d *DOM) Off(target Node, name string, fn Listener) {
	if t, ok := target.(EventTarget); ok {
		t.RemoveEventListener(name, fn)
	}
}

// Trigger dispatches a pre-built event at target and reports whether
// the default action survived (was not prevented). Targets without
// event support report true.
func (d *DOM) Trigger(target Node, ev Event) bool {
	if t, ok := target.(EventTarget); ok {
		return t.DispatchEvent(ev)
	}
	return true
}

// Event constructs a synthetic event of the given kind, one of "event",
// "ui", "keyboard", "mouse", "wheel", "focus" or "custom". Unknown kinds
// yield nil, not an error. A nil init uses all defaults.
//
// Construction tries the modern single-call constructor first and falls
// back to the legacy create-then-init factory; the path that worked is
// remembered per kind so later calls skip the failed probe. Both paths
// produce events with identical observable fields.
func (d *DOM) Event(kind, name string, init *EventInit) Event {
	k, ok := eventKinds[kind]
	if !ok {
		return nil
	}
	var cfg EventInit
	if init != nil {
		cfg = *init
	}

	switch d.eventPath[kind] {
	case pathModern:
		return d.modernEvent(k, name, cfg)
	case pathLegacy:
		return d.legacyEvent(k, name, cfg)
	}

	if ev := d.modernEvent(k, name, cfg); ev != nil {
		d.eventPath[kind] = pathModern
		return ev
	}
	if ev := d.legacyEvent(k, name, cfg); ev != nil {
		d.eventPath[kind] = pathLegacy
		return ev
	}
	return nil
}

func (d *DOM) modernEvent(k eventKind, name string, cfg EventInit) Event {
	ec, ok := d.doc.(EventConstructor)
	if !ok {
		return nil
	}
	ev, err := ec.ConstructEvent(k.ctor, name, cfg)
	if err != nil {
		return nil
	}
	return ev
}

func (d *DOM) legacyEvent(k eventKind, name string, cfg EventInit) Event {
	lf, ok := d.doc.(LegacyEventFactory)
	if !ok {
		return nil
	}
	ev, err := lf.CreateEvent(k.legacy)
	if err != nil {
		return nil
	}
	if err := ev.InitArgs(name, k.args(cfg)); err != nil {
		return nil
	}
	return ev
}
