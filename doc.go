// Package propmods builds BEM class names (Block, Element, Modifier) for
// server-rendered components, deriving modifiers from props and state.
//
// A Block is created once per component and called for every render:
//
//	var button = propmods.MustNew("Button")
//
//	button.Class().ClassName()                         // "Button"
//	button.Class("icon").ClassName()                   // "Button__icon"
//	button.Class(map[string]any{"size": "lg"}).ClassName()
//	// "Button Button_size_lg"
//
// # Arguments
//
// The first argument is special: a string names an element of the block.
// Every other argument is one of:
//   - Mix or []string: mixin classes, appended verbatim and in order
//   - Mods: modifiers in slice order
//   - any map with string keys, including named types such as
//     templ.Attributes: modifiers in sorted key order
//   - a struct or pointer to struct: modifiers in field order, keyed by the
//     `mod` or `msgpack` struct tag; func and chan fields are dropped
//   - a PropsProvider and/or StateProvider: props, then state, each treated
//     as a modifier source
//
// Later sources override earlier ones key by key. A key keeps the position
// it was first seen at.
//
// # Modifier values
//
// Only values that can become a class name survive:
//   - true renders as a presence modifier: Button_disabled
//   - non-zero integers and non-empty strings render as key/value:
//     Button_size_lg, Button_cols_3
//
// Everything else (false, 0, "", fractions, maps, slices) is dropped without
// an error, and so is any pair whose key + ModValueDelimiter + value is not a
// valid class-name token. Component state can therefore be passed straight
// through. Attach a Logger with WithLogger to see what was dropped.
//
// A "className" key holding a string is not a modifier: its classes are
// appended after everything else, so pre-built class strings pass through.
//
// # Options
//
// Delimiters and the key transform are fixed per block:
//
//	card := propmods.MustNew("Card",
//	    propmods.WithElementDelimiter("--"),
//	    propmods.WithModDelimiter("--"),
//	    propmods.WithTransformKeys(casing.Kebab),
//	)
//
// Configure returns a Factory for sharing one option set across many blocks.
//
// # templ
//
// Result satisfies templ.CSSClass, and Result.Attrs returns a
// templ.Attributes with the class set, so results can be used directly in
// templ templates.
//
// Blocks are immutable; one Block may be used from any number of goroutines.
package propmods
