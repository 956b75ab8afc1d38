package propmods

import (
	"strconv"
	"strings"
)

// Entity is the input to Render: a base and what to append to it.
type Entity struct {
	// Base is the block name, or block + ElementDelimiter + element, already
	// transformed.
	Base string

	// Mods are filtered modifiers in insertion order. Values are true,
	// int64, uint64 or string.
	Mods Mods

	// Mix holds mixin classes, rendered verbatim.
	Mix []string

	// Extra holds pass-through classes from a className entry, rendered last.
	Extra []string
}

// Render writes the class string for e:
//
//	base (base ModDelimiter token)* mixin* extra*
//
// where token is the transformed key, followed by ModValueDelimiter and the
// value unless the modifier is a presence flag. String values are
// transformed; integers are not.
func Render(e Entity, opts Options) string {
	transform := opts.TransformKeys
	if transform == nil {
		transform = identity
	}

	classes := make([]string, 0, 1+len(e.Mods)+len(e.Mix)+len(e.Extra))
	classes = append(classes, e.Base)

	prefix := e.Base + opts.ModDelimiter
	for _, m := range e.Mods {
		token := transform(m.Key)
		switch v := m.Value.(type) {
		case bool:
			// presence flag
		case string:
			token += opts.ModValueDelimiter + transform(v)
		case int64:
			token += opts.ModValueDelimiter + strconv.FormatInt(v, 10)
		case uint64:
			token += opts.ModValueDelimiter + strconv.FormatUint(v, 10)
		default:
			continue
		}
		classes = append(classes, prefix+token)
	}

	classes = append(classes, e.Mix...)
	classes = append(classes, e.Extra...)
	return strings.Join(classes, " ")
}
