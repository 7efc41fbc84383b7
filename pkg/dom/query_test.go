package dom_test

import (
	"testing"

	errs "github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
	"github.com/bruntbrus/minidom/pkg/domtest"
	"github.com/bruntbrus/minidom/pkg/htmldom"
)

const pageMarkup = `<html><body>
<nav id="menu">
  <ul>
    <li class="item"><a href="/a" class="link active">A</a></li>
    <li class="item"><a href="/b" class="link">B</a></li>
  </ul>
</nav>
<main>
  <p class="intro">hello</p>
</main>
</body></html>`

func parsePage(t *testing.T) (*htmldom.Document, *dom.DOM) {
	t.Helper()
	doc, err := htmldom.ParseString(pageMarkup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return doc, dom.New(doc)
}

func TestQuery(t *testing.T) {
	_, d := parsePage(t)

	t.Run("document scope", func(t *testing.T) {
		el, err := d.Query(nil, "a.active")
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if el == nil || el.TextContent() != "A" {
			t.Errorf("matched %v, want the A link", el)
		}
	})

	t.Run("element scope", func(t *testing.T) {
		nav, err := d.Query(nil, "#menu")
		if err != nil || nav == nil {
			t.Fatalf("query #menu: %v", err)
		}
		el, err := d.Query(nav, "a")
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if el == nil || el.TextContent() != "A" {
			t.Error("scoped query must return the first match in document order")
		}
		// Matches outside the scope are invisible.
		if got, err := d.Query(nav, ".intro"); err != nil || got != nil {
			t.Errorf("out-of-scope query = %v, %v; want nil, nil", got, err)
		}
	})

	t.Run("no match", func(t *testing.T) {
		el, err := d.Query(nil, ".absent")
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if el != nil {
			t.Errorf("matched %v, want nil", el)
		}
	})

	t.Run("bad selector", func(t *testing.T) {
		_, err := d.Query(nil, "li[")
		if !errs.Is(err, errs.CodeBadSelector) {
			t.Errorf("err = %v, want bad-selector code", err)
		}
	})
}

func TestQueryAll(t *testing.T) {
	_, d := parsePage(t)

	t.Run("document order snapshot", func(t *testing.T) {
		links, err := d.QueryAll(nil, ".link")
		if err != nil {
			t.Fatalf("QueryAll: %v", err)
		}
		if len(links) != 2 {
			t.Fatalf("matches = %d, want 2", len(links))
		}
		if links[0].TextContent() != "A" || links[1].TextContent() != "B" {
			t.Error("matches out of document order")
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		links, err := d.QueryAll(nil, ".absent")
		if err != nil {
			t.Fatalf("QueryAll: %v", err)
		}
		if len(links) != 0 {
			t.Errorf("matches = %d, want 0", len(links))
		}
	})
}

func TestMatches(t *testing.T) {
	_, d := parsePage(t)

	link, err := d.Query(nil, "a.active")
	if err != nil || link == nil {
		t.Fatalf("query a.active: %v", err)
	}

	t.Run("modern capability", func(t *testing.T) {
		tests := []struct {
			selector string
			want     bool
		}{
			{"a", true},
			{".active", true},
			{"li a", true},
			{"p", false},
			{".absent", false},
		}
		for _, tt := range tests {
			got, err := d.Matches(link, tt.selector)
			if err != nil {
				t.Fatalf("Matches(%q): %v", tt.selector, err)
			}
			if got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.selector, got, tt.want)
			}
		}
	})

	t.Run("legacy capability", func(t *testing.T) {
		legacy := domtest.LegacyMatchElement(link)
		got, err := d.Matches(legacy, "a.active")
		if err != nil {
			t.Fatalf("Matches: %v", err)
		}
		if !got {
			t.Error("legacy path must agree with the modern path")
		}
	})

	t.Run("no capability", func(t *testing.T) {
		bare := domtest.BareElement(link)
		_, err := d.Matches(bare, "a")
		if !errs.Is(err, errs.CodeMatchesUnsupported) {
			t.Errorf("err = %v, want matches-unsupported code", err)
		}
	})
}

func TestClosest(t *testing.T) {
	_, d := parsePage(t)

	link, err := d.Query(nil, "a.active")
	if err != nil || link == nil {
		t.Fatalf("query a.active: %v", err)
	}

	t.Run("self matches first", func(t *testing.T) {
		got, err := d.Closest(link, "a")
		if err != nil {
			t.Fatalf("Closest: %v", err)
		}
		if got != link {
			t.Error("the element itself must be tested before its ancestors")
		}
	})

	t.Run("ancestor", func(t *testing.T) {
		got, err := d.Closest(link, "#menu")
		if err != nil {
			t.Fatalf("Closest: %v", err)
		}
		if got == nil {
			t.Fatal("no ancestor matched")
		}
		if v, _ := got.GetAttribute("id"); v != "menu" {
			t.Errorf("matched %q, want the nav", v)
		}
	})

	t.Run("exhausted chain", func(t *testing.T) {
		got, err := d.Closest(link, ".absent")
		if err != nil {
			t.Fatalf("Closest: %v", err)
		}
		if got != nil {
			t.Errorf("matched %v, want nil", got)
		}
	})

	t.Run("manual walk without native capability", func(t *testing.T) {
		walker := domtest.WalkElement(link)
		got, err := d.Closest(walker, "li.item")
		if err != nil {
			t.Fatalf("Closest: %v", err)
		}
		if got == nil {
			t.Fatal("manual walk missed the ancestor")
		}
		if !d.HasClass(got, "item") {
			t.Error("manual walk matched the wrong ancestor")
		}
	})

	t.Run("manual walk self first", func(t *testing.T) {
		walker := domtest.WalkElement(link)
		got, err := d.Closest(walker, "a")
		if err != nil {
			t.Fatalf("Closest: %v", err)
		}
		if got == nil || got.TagName() != "A" {
			t.Error("manual walk must test the element itself first")
		}
	})
}

func TestEach(t *testing.T) {
	_, d := domtest.New(t)

	parent := d.Element("ul", dom.Attr{
		Key: dom.HTMLKey, Value: "<li>a</li>text<li>b</li><!--c--><li>c</li>",
	})

	t.Run("element children only", func(t *testing.T) {
		var texts []string
		var indexes []int
		d.Each(parent, func(child dom.Element, index int) {
			texts = append(texts, child.TextContent())
			indexes = append(indexes, index)
		})
		if len(texts) != 3 {
			t.Fatalf("visits = %d, want 3 (text and comment skipped)", len(texts))
		}
		for i, idx := range indexes {
			if idx != i {
				t.Errorf("index[%d] = %d", i, idx)
			}
		}
	})

	t.Run("snapshot survives mutation", func(t *testing.T) {
		var visits int
		d.Each(parent, func(child dom.Element, index int) {
			visits++
			d.Remove(child)
		})
		if visits != 3 {
			t.Errorf("visits = %d, want 3 despite removal during iteration", visits)
		}
	})
}
