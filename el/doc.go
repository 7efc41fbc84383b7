// Package el provides a declarative DSL for building real DOM subtrees.
//
// Factories produce inert Blueprints; Build materializes a blueprint
// into substrate nodes through a dom facade:
//
//	bp := el.Div(el.ID("card"), el.Class("card", "raised"),
//	    el.H1("Title"),
//	    el.P(el.Text("Content")),
//	)
//	node := el.Build(d, bp)
//	d.Append(doc.Body(), node)
//
// Blueprints are plain values: safe to share, compose, and build more
// than once.
package el
