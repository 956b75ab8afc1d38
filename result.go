package propmods

import (
	"strings"

	"github.com/a-h/templ"
)

var _ templ.CSSClass = Result{}

// Result is the output of a Block call.
//
// It satisfies templ.CSSClass, so it can be passed to a class attribute in
// templ directly:
//
//	<button class={ button.Class(props) }>
type Result struct {
	className string
}

// ClassName returns the space-separated class string.
func (r Result) ClassName() string {
	return r.className
}

// String returns the class string.
func (r Result) String() string {
	return r.className
}

// Fields returns the individual classes.
func (r Result) Fields() []string {
	return strings.Fields(r.className)
}

// Attrs returns the class as templ attributes, for spreading onto an element:
//
//	<div { card.Class("body").Attrs()... }>
func (r Result) Attrs() templ.Attributes {
	return templ.Attributes{"class": r.className}
}

// With returns a copy of r with classes appended verbatim. Empty strings are
// skipped; duplicates are kept.
func (r Result) With(classes ...string) Result {
	out := r.className
	for _, c := range classes {
		if c == "" {
			continue
		}
		if out == "" {
			out = c
		} else {
			out += " " + c
		}
	}
	return Result{className: out}
}

// Merge returns a copy of r followed by the classes of others, in order.
// Empty results are skipped; duplicates are kept.
//
//	card.Class(props).Merge(button.Class("icon"))
func (r Result) Merge(others ...Result) Result {
	classes := make([]string, len(others))
	for i, o := range others {
		classes[i] = o.className
	}
	return r.With(classes...)
}
