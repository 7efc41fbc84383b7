package dom

// Ready invokes fn once the document has finished loading. If the
// document is already ready, fn runs immediately; otherwise a one-shot
// listener is registered that detaches itself after the first fire.
// There is no cancellation.
func (d *DOM) Ready(fn func()) {
	if rn, ok := d.doc.(ReadyNotifier); ok && rn.IsReady() {
		fn()
		return
	}

	var once Listener
	once = func(Event) {
		d.Off(d.doc, ReadyEvent, once)
		fn()
	}
	d.On(d.doc, ReadyEvent, once)
}

// Anim registers fn with the substrate's next-repaint notification and
// returns immediately. Documents without a frame scheduler ignore the
// call. There is no cancellation.
func (d *DOM) Anim(fn func()) {
	if fs, ok := d.doc.(FrameScheduler); ok {
		fs.RequestFrame(fn)
	}
}
