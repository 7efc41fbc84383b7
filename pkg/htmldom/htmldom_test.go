package htmldom

import (
	"strings"
	"testing"

	errs "github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
)

func mustParse(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return doc
}

func TestParse(t *testing.T) {
	doc := mustParse(t, "<html><head><title>T</title></head><body><p>hi</p></body></html>")

	if doc.NodeType() != dom.KindDocument {
		t.Errorf("NodeType = %d, want document", doc.NodeType())
	}
	if doc.NodeName() != "#document" {
		t.Errorf("NodeName = %q, want #document", doc.NodeName())
	}
	if !doc.IsReady() {
		t.Error("parsed documents start ready")
	}
	if doc.DocumentElement() == nil || doc.Head() == nil || doc.Body() == nil {
		t.Fatal("structural accessors came back nil")
	}
	if got := doc.Body().TextContent(); got != "hi" {
		t.Errorf("body text = %q, want hi", got)
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc.IsReady() {
		t.Error("empty documents start not ready")
	}
	if doc.Body() == nil {
		t.Error("even an empty parse grows a body")
	}
}

func TestWrapperInterning(t *testing.T) {
	doc := mustParse(t, "<html><body><div id=a></div></body></html>")

	first, err := doc.QuerySelector("#a")
	if err != nil || first == nil {
		t.Fatalf("query: %v", err)
	}
	second, _ := doc.QuerySelector("#a")
	if first != second {
		t.Error("same underlying node must yield the same wrapper")
	}

	// Traversal hands out the identical wrapper too.
	viaParent := doc.Body().FirstChild()
	if viaParent != dom.Node(first) {
		t.Error("traversal and query wrappers must agree")
	}
}

func TestFacadeConstructionInternsNothing(t *testing.T) {
	doc := NewDocument()
	doc.DocumentElement() // intern the root ahead of the probe
	before := len(doc.wrappers)

	dom.New(doc)
	if after := len(doc.wrappers); after != before {
		t.Errorf("wrapper count %d -> %d, facade construction must not add nodes", before, after)
	}
}

func TestNodeNames(t *testing.T) {
	doc := mustParse(t, "<html><body><div>x<!--c--></div></body></html>")

	div := doc.Body().FirstChild()
	if div.NodeName() != "DIV" {
		t.Errorf("element NodeName = %q, want DIV", div.NodeName())
	}
	if got := div.FirstChild().NodeName(); got != "#text" {
		t.Errorf("text NodeName = %q, want #text", got)
	}
	if got := div.LastChild().NodeName(); got != "#comment" {
		t.Errorf("comment NodeName = %q, want #comment", got)
	}
}

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")

	if _, ok := el.GetAttribute("type"); ok {
		t.Error("fresh element reported a phantom attribute")
	}

	el.SetAttribute("type", "text")
	if v, ok := el.GetAttribute("type"); !ok || v != "text" {
		t.Errorf("type = %q,%v", v, ok)
	}

	el.SetAttribute("type", "email")
	if v, _ := el.GetAttribute("type"); v != "email" {
		t.Errorf("type = %q after overwrite", v)
	}

	el.RemoveAttribute("type")
	if el.HasAttribute("type") {
		t.Error("attribute survived removal")
	}
	el.RemoveAttribute("type") // absent removal is a no-op
}

func TestInnerHTML(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.SetInnerHTML("<p>one</p><p>two</p>")
	if n := len(el.ChildNodes()); n != 2 {
		t.Fatalf("children = %d, want 2", n)
	}
	if got := el.InnerHTML(); got != "<p>one</p><p>two</p>" {
		t.Errorf("InnerHTML = %q", got)
	}

	el.SetInnerHTML("")
	if n := len(el.ChildNodes()); n != 0 {
		t.Errorf("children = %d after clearing, want 0", n)
	}
}

func TestOuterHTML(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	el.SetAttribute("href", "/x")
	el.SetTextContent("link")

	if got := el.(*Element).OuterHTML(); got != `<a href="/x">link</a>` {
		t.Errorf("OuterHTML = %q", got)
	}
}

func TestInsertAdjacentHTML(t *testing.T) {
	build := func(t *testing.T) (dom.Element, dom.Element) {
		doc := mustParse(t, "<html><body><div id=host><b>mid</b></div></body></html>")
		host, err := doc.QuerySelector("#host")
		if err != nil || host == nil {
			t.Fatalf("query: %v", err)
		}
		return host, doc.Body()
	}

	tests := []struct {
		pos  dom.Position
		want string
	}{
		{dom.PositionAfterBegin, `<div id="host"><i>n</i><b>mid</b></div>`},
		{dom.PositionBeforeEnd, `<div id="host"><b>mid</b><i>n</i></div>`},
		{dom.PositionBeforeBegin, `<i>n</i><div id="host"><b>mid</b></div>`},
		{dom.PositionAfterEnd, `<div id="host"><b>mid</b></div><i>n</i>`},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			host, body := build(t)
			mi := host.(dom.MarkupInserter)
			if err := mi.InsertAdjacentHTML(tt.pos, "<i>n</i>"); err != nil {
				t.Fatalf("InsertAdjacentHTML: %v", err)
			}
			if got := body.InnerHTML(); got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetTextContent(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetInnerHTML("<p>a</p><p>b</p>")

	el.SetTextContent("<plain>")
	kids := el.ChildNodes()
	if len(kids) != 1 || kids[0].NodeType() != dom.KindText {
		t.Fatalf("children = %v, want a single text node", kids)
	}
	if got := el.TextContent(); got != "<plain>" {
		t.Errorf("TextContent = %q, markup must stay literal", got)
	}

	el.SetTextContent("")
	if len(el.ChildNodes()) != 0 {
		t.Error("empty text must leave no text child")
	}
}

func TestFragmentMovesChildren(t *testing.T) {
	doc := NewDocument()
	frag := doc.CreateFragment()
	frag.AppendChild(doc.CreateElement("a"))
	frag.AppendChild(doc.CreateElement("b"))

	if frag.NodeType() != dom.KindFragment {
		t.Fatalf("NodeType = %d, want fragment", frag.NodeType())
	}
	if frag.NodeName() != "#document-fragment" {
		t.Errorf("NodeName = %q", frag.NodeName())
	}

	host := doc.CreateElement("div")
	host.AppendChild(frag)

	if n := len(host.ChildNodes()); n != 2 {
		t.Errorf("host children = %d, want 2", n)
	}
	if n := len(frag.ChildNodes()); n != 0 {
		t.Errorf("fragment children = %d after move, want 0", n)
	}
}

func TestFragmentInsertBefore(t *testing.T) {
	doc := NewDocument()
	host := doc.CreateElement("div")
	ref := doc.CreateElement("z")
	host.AppendChild(ref)

	frag := doc.CreateFragment()
	frag.AppendChild(doc.CreateElement("a"))
	frag.AppendChild(doc.CreateElement("b"))
	host.InsertBefore(frag, ref)

	var names []string
	for _, c := range host.ChildNodes() {
		names = append(names, strings.ToLower(c.NodeName()))
	}
	if strings.Join(names, " ") != "a b z" {
		t.Errorf("children = %v, want [a b z]", names)
	}
}

func TestTemplateContent(t *testing.T) {
	doc := NewDocument()
	tpl := doc.CreateElement("template")

	te, ok := tpl.(dom.TemplateElement)
	if !ok {
		t.Fatal("template element lacks the content capability")
	}
	content := te.Content()
	if content == nil || content.NodeType() != dom.KindFragment {
		t.Fatal("template content must be a fragment")
	}

	// The content view shares the template's children.
	content.AppendChild(doc.CreateElement("span"))
	if n := len(tpl.ChildNodes()); n != 1 {
		t.Errorf("template children = %d, want 1", n)
	}

	// Non-templates have no content fragment.
	div := doc.CreateElement("div")
	if c := div.(dom.TemplateElement).Content(); c != nil {
		t.Errorf("div content = %v, want nil", c)
	}
}

func TestSelectorCache(t *testing.T) {
	doc := mustParse(t, "<html><body><p></p></body></html>")

	if _, err := doc.QuerySelector("p.note"); err != nil {
		t.Fatalf("query: %v", err)
	}
	if _, ok := doc.selectors["p.note"]; !ok {
		t.Fatal("compiled selector was not cached")
	}
	if _, err := doc.QuerySelector("p.note"); err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(doc.selectors) != 1 {
		t.Errorf("cache size = %d, want 1", len(doc.selectors))
	}
}

func TestBadSelector(t *testing.T) {
	doc := NewDocument()
	_, err := doc.QuerySelector("p[")
	if !errs.Is(err, errs.CodeBadSelector) {
		t.Errorf("err = %v, want bad-selector code", err)
	}
}

func TestRangeBoundaries(t *testing.T) {
	doc := mustParse(t, "<html><body><ul><li>a</li><li>b</li></ul></body></html>")
	ul, _ := doc.QuerySelector("ul")
	second := ul.LastChild()

	t.Run("select node", func(t *testing.T) {
		r := doc.CreateRange()
		r.SelectNode(second)
		if r.StartContainer() != dom.Node(ul) {
			t.Error("start container must be the parent")
		}
		if r.StartOffset() != 1 || r.EndOffset() != 2 {
			t.Errorf("offsets = [%d,%d], want [1,2]", r.StartOffset(), r.EndOffset())
		}
		if r.Collapsed() {
			t.Error("a selected node is not collapsed")
		}
	})

	t.Run("select contents", func(t *testing.T) {
		r := doc.CreateRange()
		r.SelectNodeContents(ul)
		if r.StartContainer() != dom.Node(ul) || r.StartOffset() != 0 {
			t.Error("contents must start inside the node")
		}
		if r.EndOffset() != 2 {
			t.Errorf("end offset = %d, want child count", r.EndOffset())
		}
	})

	t.Run("collapse", func(t *testing.T) {
		r := doc.CreateRange()
		r.SelectNode(second)
		r.Collapse(true)
		if !r.Collapsed() || r.EndOffset() != 1 {
			t.Errorf("collapse to start: offsets [%d,%d]", r.StartOffset(), r.EndOffset())
		}
		r.SelectNode(second)
		r.Collapse(false)
		if !r.Collapsed() || r.StartOffset() != 2 {
			t.Errorf("collapse to end: offsets [%d,%d]", r.StartOffset(), r.EndOffset())
		}
	})
}

func TestCreateContextualFragment(t *testing.T) {
	doc := mustParse(t, "<html><body><table><tbody id=rows></tbody></table></body></html>")

	t.Run("body context", func(t *testing.T) {
		r := doc.CreateRange()
		frag, err := r.(dom.ContextualFragmenter).CreateContextualFragment("<p>x</p>")
		if err != nil {
			t.Fatalf("CreateContextualFragment: %v", err)
		}
		kids := frag.ChildNodes()
		if len(kids) != 1 || kids[0].NodeName() != "P" {
			t.Fatalf("children = %v, want one p", kids)
		}
	})

	t.Run("element context", func(t *testing.T) {
		rows, _ := doc.QuerySelector("#rows")
		r := doc.CreateRange()
		r.SetStart(rows, 0)
		frag, err := r.(dom.ContextualFragmenter).CreateContextualFragment("<tr><td>1</td></tr>")
		if err != nil {
			t.Fatalf("CreateContextualFragment: %v", err)
		}
		kids := frag.ChildNodes()
		if len(kids) != 1 || kids[0].NodeName() != "TR" {
			t.Fatalf("children = %v, want one tr (table context preserved)", kids)
		}
	})
}

func TestCreateEvent(t *testing.T) {
	doc := NewDocument()

	aliases := []string{
		"HTMLEvents", "Events", "Event",
		"UIEvents", "UIEvent",
		"KeyboardEvent",
		"MouseEvents", "MouseEvent",
		"WheelEvent", "FocusEvent", "CustomEvent",
	}
	for _, iface := range aliases {
		if _, err := doc.CreateEvent(iface); err != nil {
			t.Errorf("CreateEvent(%q): %v", iface, err)
		}
	}

	_, err := doc.CreateEvent("TouchEvent")
	if !errs.Is(err, errs.CodeBadEventInterface) {
		t.Errorf("err = %v, want bad-event-interface code", err)
	}
}

func TestDispatchTargetAndCurrentTarget(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("button")
	parent.AppendChild(child)

	var targets, currents []dom.Node
	record := func(ev dom.Event) {
		targets = append(targets, ev.Target())
		currents = append(currents, ev.CurrentTarget())
	}
	child.(dom.EventTarget).AddEventListener("click", record)
	parent.(dom.EventTarget).AddEventListener("click", record)

	ev, err := doc.ConstructEvent("MouseEvent", "click", dom.EventInit{Bubbles: true})
	if err != nil {
		t.Fatalf("ConstructEvent: %v", err)
	}
	child.(dom.EventTarget).DispatchEvent(ev)

	if len(targets) != 2 {
		t.Fatalf("listeners fired %d times, want 2", len(targets))
	}
	if targets[0] != dom.Node(child) || targets[1] != dom.Node(child) {
		t.Error("target must stay the dispatch element throughout")
	}
	if currents[0] != dom.Node(child) || currents[1] != dom.Node(parent) {
		t.Error("current target must track the propagation level")
	}
}

// staticEvent is a dom.Event from outside this substrate, with no
// mutable dispatch state.
type staticEvent struct{ typ string }

func (e staticEvent) Type() string            { return e.typ }
func (e staticEvent) Target() dom.Node        { return nil }
func (e staticEvent) CurrentTarget() dom.Node { return nil }
func (e staticEvent) Bubbles() bool           { return true }
func (e staticEvent) Cancelable() bool        { return false }
func (e staticEvent) DefaultPrevented() bool  { return false }
func (e staticEvent) PreventDefault()         {}
func (e staticEvent) StopPropagation()        {}

func TestDispatchForeignEvent(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("button")
	parent.AppendChild(child)

	var childHit, parentHit bool
	child.(dom.EventTarget).AddEventListener("ping", func(dom.Event) { childHit = true })
	parent.(dom.EventTarget).AddEventListener("ping", func(dom.Event) { parentHit = true })

	ok := child.(dom.EventTarget).DispatchEvent(staticEvent{typ: "ping"})
	if !ok {
		t.Error("foreign events can never report a prevented default")
	}
	if !childHit {
		t.Error("foreign event must still fire at the target")
	}
	if parentHit {
		t.Error("foreign events stop at the target level")
	}
}

func TestListenerSnapshotPerLevel(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	target := el.(dom.EventTarget)

	var calls int
	var second dom.Listener
	second = func(dom.Event) { calls += 10 }
	first := func(dom.Event) {
		calls++
		// Mutating the listener list mid-dispatch must not affect the
		// running dispatch.
		target.RemoveEventListener("ping", second)
	}
	target.AddEventListener("ping", first)
	target.AddEventListener("ping", second)

	ev, _ := doc.ConstructEvent("Event", "ping", dom.EventInit{})
	target.DispatchEvent(ev)
	if calls != 11 {
		t.Errorf("calls = %d, want 11 (snapshot semantics)", calls)
	}

	calls = 0
	ev2, _ := doc.ConstructEvent("Event", "ping", dom.EventInit{})
	target.DispatchEvent(ev2)
	if calls != 1 {
		t.Errorf("calls = %d on second dispatch, want 1", calls)
	}
}
