package propmods

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Wrap returns a templ component that renders child inside a tag carrying
// r as its class attribute.
//
//	propmods.Wrap("section", card.Class(props), body())
//
// A nil child renders an empty element. tag is written as given and must be
// a trusted element name.
func Wrap(tag string, r Result, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, fmt.Sprintf(`<%s class="%s">`, tag, templ.EscapeString(r.ClassName())))
		if err != nil {
			return err
		}
		if child != nil {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "</"+tag+">")
		return err
	})
}
