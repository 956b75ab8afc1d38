package propmods

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Modifier is a single modifier key and value.
type Modifier struct {
	Key   string
	Value any
}

// Mods is an ordered modifier source. Unlike a map, it renders in slice order.
//
//	propmods.Mods{{"size", "lg"}, {"active", true}}
type Mods []Modifier

// Mix is a list of mixin classes, appended to the output verbatim.
type Mix []string

// validClassName is the grammar every key + delimiter + value must satisfy.
var validClassName = regexp.MustCompile(`^-?[_a-zA-Z]+[_a-zA-Z0-9-]*$`)

// Decision records whether an entry survived filtering, and why not.
type Decision struct {
	Modifier
	Kept   bool
	Reason string
}

// FilterMods returns the entries of src that form valid modifiers, in order.
//
// Kept values are normalized: presence flags to true, integers to int64 or
// uint64, strings unchanged. Duplicate keys are kept as given; merging is the
// caller's concern.
func FilterMods(src Mods, modValueDelimiter string) Mods {
	var out Mods
	for _, m := range src {
		if kept, _, ok := classify(m, modValueDelimiter); ok {
			out = append(out, kept)
		}
	}
	return out
}

// InspectMods reports the filtering decision for every entry of src.
func InspectMods(src Mods, modValueDelimiter string) []Decision {
	out := make([]Decision, 0, len(src))
	for _, m := range src {
		kept, reason, ok := classify(m, modValueDelimiter)
		if ok {
			out = append(out, Decision{Modifier: kept, Kept: true})
		} else {
			out = append(out, Decision{Modifier: m, Reason: reason})
		}
	}
	return out
}

// classify normalizes m and checks it against the class-name grammar.
// False, numeric zero and "" are dropped.
func classify(m Modifier, delim string) (Modifier, string, bool) {
	var (
		value any
		text  string
	)

	switch v := m.Value.(type) {
	case nil:
		return m, "nil value", false
	case bool:
		if !v {
			return m, "false value", false
		}
		value, text = true, "true"
	case string:
		if v == "" {
			return m, "empty string", false
		}
		value, text = v, v
	case int:
		return classifyInt(m, int64(v), delim)
	case int8:
		return classifyInt(m, int64(v), delim)
	case int16:
		return classifyInt(m, int64(v), delim)
	case int32:
		return classifyInt(m, int64(v), delim)
	case int64:
		return classifyInt(m, v, delim)
	case uint:
		return classifyUint(m, uint64(v), delim)
	case uint8:
		return classifyUint(m, uint64(v), delim)
	case uint16:
		return classifyUint(m, uint64(v), delim)
	case uint32:
		return classifyUint(m, uint64(v), delim)
	case uint64:
		return classifyUint(m, v, delim)
	case float32:
		return classifyFloat(m, float64(v), delim)
	case float64:
		return classifyFloat(m, v, delim)
	default:
		return m, fmt.Sprintf("unsupported value type %T", m.Value), false
	}

	return validate(m, value, text, delim)
}

// validate checks key + delim + text against the class-name grammar.
func validate(m Modifier, value any, text, delim string) (Modifier, string, bool) {
	if !validClassName.MatchString(m.Key + delim + text) {
		return m, fmt.Sprintf("%q is not a valid class name", m.Key+delim+text), false
	}
	return Modifier{Key: m.Key, Value: value}, "", true
}

// Numeric zero is dropped; the string "0" is not.
func classifyInt(m Modifier, n int64, delim string) (Modifier, string, bool) {
	if n == 0 {
		return m, "zero value", false
	}
	return validate(m, n, strconv.FormatInt(n, 10), delim)
}

func classifyUint(m Modifier, n uint64, delim string) (Modifier, string, bool) {
	if n == 0 {
		return m, "zero value", false
	}
	return validate(m, n, strconv.FormatUint(n, 10), delim)
}

// classifyFloat accepts whole numbers, which is how JSON and YAML decoders
// deliver integers.
func classifyFloat(m Modifier, f float64, delim string) (Modifier, string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return m, "not an integer", false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return m, "integer out of range", false
	}
	return classifyInt(m, int64(f), delim)
}
