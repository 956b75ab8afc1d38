package propmods

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/pthm/propmods/lib/modmap"
)

// ClassNameKey is the modifier key whose string value is passed through as
// raw classes instead of being rendered as a modifier. It is matched without
// regard to case, so a ClassName struct field works too.
const ClassNameKey = "className"

// collector accumulates one call's modifiers and mixins.
type collector struct {
	base  string
	opts  Options
	keys  []string
	mods  map[string]Modifier
	mix   []string
	extra string
}

func newCollector(base string, opts Options) *collector {
	return &collector{
		base: base,
		opts: opts,
		mods: make(map[string]Modifier),
	}
}

// add classifies a single call argument.
func (c *collector) add(arg any) error {
	switch v := arg.(type) {
	case nil:
		return nil
	case Mix:
		c.mix = append(c.mix, v...)
		return nil
	case []string:
		c.mix = append(c.mix, v...)
		return nil
	}
	if isNilPointer(arg) {
		return nil
	}

	if handled, err := c.component(arg); handled {
		return err
	}

	mods, ok, err := toMods(arg)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %T", ErrInvalidArgumentKind, arg)
	}
	c.source(mods)
	return nil
}

// component merges props, then state, of a component-like argument.
func (c *collector) component(arg any) (bool, error) {
	p, hasProps := arg.(PropsProvider)
	s, hasState := arg.(StateProvider)
	if !hasProps && !hasState {
		return false, nil
	}

	if hasProps {
		if err := c.nested("props", p.Props()); err != nil {
			return true, err
		}
	}
	if hasState {
		if err := c.nested("state", s.State()); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (c *collector) nested(field string, v any) error {
	if v == nil {
		return nil
	}
	mods, ok, err := toMods(v)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s is %T", ErrInvalidArgumentKind, field, v)
	}
	c.merge(mods)
	return nil
}

// source merges a mapping argument. Mapping-valued props and state entries
// are unpacked first, in that order, and the remaining entries merged after
// them. Unpacking is one level deep: props inside props is an ordinary entry.
func (c *collector) source(src Mods) {
	var props, state, rest Mods
	var hasProps, hasState bool

	for _, m := range src {
		switch {
		case strings.EqualFold(m.Key, "props"):
			if nested, ok, err := toMods(m.Value); ok && err == nil {
				props, hasProps = nested, true
				continue
			}
		case strings.EqualFold(m.Key, "state"):
			if nested, ok, err := toMods(m.Value); ok && err == nil {
				state, hasState = nested, true
				continue
			}
		}
		rest = append(rest, m)
	}

	if hasProps {
		c.merge(props)
	}
	if hasState {
		c.merge(state)
	}
	c.merge(rest)
}

// merge filters src and sets the survivors, last write wins.
func (c *collector) merge(src Mods) {
	for _, m := range src {
		if strings.EqualFold(m.Key, ClassNameKey) {
			c.className(m)
			continue
		}

		kept, reason, ok := classify(m, c.opts.ModValueDelimiter)
		if !ok {
			if c.opts.Logger != nil {
				c.opts.Logger.Debug("propmods: modifier dropped",
					"base", c.base,
					"key", m.Key,
					"reason", reason,
				)
			}
			continue
		}

		if _, seen := c.mods[kept.Key]; !seen {
			c.keys = append(c.keys, kept.Key)
		}
		c.mods[kept.Key] = kept
	}
}

func (c *collector) className(m Modifier) {
	s, ok := m.Value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		if c.opts.Logger != nil {
			c.opts.Logger.Debug("propmods: className dropped",
				"base", c.base,
				"type", fmt.Sprintf("%T", m.Value),
			)
		}
		return
	}
	c.extra = s
}

func (c *collector) entity() Entity {
	mods := make(Mods, 0, len(c.keys))
	for _, k := range c.keys {
		mods = append(mods, c.mods[k])
	}
	return Entity{
		Base:  c.base,
		Mods:  mods,
		Mix:   c.mix,
		Extra: strings.Fields(c.extra),
	}
}

// toMods converts a mapping-like value to an ordered source. The bool result
// is false when v is not a mapping at all.
func toMods(v any) (Mods, bool, error) {
	switch m := v.(type) {
	case Mods:
		return m, true, nil
	case []Modifier:
		return Mods(m), true, nil
	case map[string]any:
		return sortedMods(m), true, nil
	case map[string]string:
		return sortedMods(m), true, nil
	case map[string]bool:
		return sortedMods(m), true, nil
	case map[string]int:
		return sortedMods(m), true, nil
	}

	if mods, ok := reflectMods(v); ok {
		return mods, true, nil
	}
	if !isStruct(v) {
		return nil, false, nil
	}
	entries, err := modmap.Entries(v)
	if err != nil {
		return nil, true, err
	}
	mods := make(Mods, len(entries))
	for i, e := range entries {
		mods[i] = Modifier{Key: e.Key, Value: e.Value}
	}
	return mods, true, nil
}

func sortedMods[V any](m map[string]V) Mods {
	mods := make(Mods, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		mods = append(mods, Modifier{Key: k, Value: m[k]})
	}
	return mods
}

// reflectMods handles the remaining string-keyed maps, including named map
// types such as templ.Attributes, in sorted key order.
func reflectMods(v any) (Mods, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})

	mods := make(Mods, 0, len(keys))
	for _, k := range keys {
		mods = append(mods, Modifier{Key: k.String(), Value: rv.MapIndex(k).Interface()})
	}
	return mods, true
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
