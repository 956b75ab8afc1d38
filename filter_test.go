package propmods

import (
	"math"
	"strings"
	"testing"
)

func TestFilterMods(t *testing.T) {
	tests := []struct {
		name  string
		mod   Modifier
		keep  bool
		value any
	}{
		{"true flag", Modifier{"active", true}, true, true},
		{"false flag", Modifier{"active", false}, false, nil},
		{"string", Modifier{"size", "lg"}, true, "lg"},
		{"empty string", Modifier{"size", ""}, false, nil},
		{"string zero", Modifier{"page", "0"}, true, "0"},
		{"string with space", Modifier{"size", "x l"}, false, nil},
		{"string with dot", Modifier{"size", "1.5"}, false, nil},
		{"value starting with digit", Modifier{"foo", "9lives"}, true, "9lives"},
		{"hyphenated value", Modifier{"tone", "baz-quux"}, true, "baz-quux"},
		{"key starting with digit", Modifier{"1st", true}, false, nil},
		{"leading hyphen key", Modifier{"-x", true}, true, true},
		{"double leading hyphen", Modifier{"--x", true}, false, nil},
		{"int", Modifier{"cols", 3}, true, int64(3)},
		{"negative int", Modifier{"offset", -2}, true, int64(-2)},
		{"int8", Modifier{"n", int8(4)}, true, int64(4)},
		{"uint", Modifier{"n", uint(7)}, true, uint64(7)},
		{"uint16", Modifier{"n", uint16(8)}, true, uint64(8)},
		{"zero int", Modifier{"cols", 0}, false, nil},
		{"zero uint", Modifier{"cols", uint32(0)}, false, nil},
		{"whole float", Modifier{"cols", 4.0}, true, int64(4)},
		{"whole float32", Modifier{"cols", float32(5)}, true, int64(5)},
		{"fraction", Modifier{"cols", 1.5}, false, nil},
		{"zero float", Modifier{"cols", 0.0}, false, nil},
		{"NaN", Modifier{"cols", math.NaN()}, false, nil},
		{"Inf", Modifier{"cols", math.Inf(1)}, false, nil},
		{"huge float", Modifier{"cols", 1e30}, false, nil},
		{"nil", Modifier{"x", nil}, false, nil},
		{"map", Modifier{"x", map[string]any{"b": "c"}}, false, nil},
		{"slice", Modifier{"x", []string{"a"}}, false, nil},
		{"struct", Modifier{"x", struct{}{}}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FilterMods(Mods{tt.mod}, "_")
			if !tt.keep {
				if len(out) != 0 {
					t.Errorf("FilterMods() = %v, want dropped", out)
				}
				return
			}
			if len(out) != 1 {
				t.Fatalf("FilterMods() = %v, want one entry", out)
			}
			if out[0].Key != tt.mod.Key || out[0].Value != tt.value {
				t.Errorf("FilterMods() = %#v, want {%s %#v}", out[0], tt.mod.Key, tt.value)
			}
		})
	}
}

func TestFilterModsDelimiterTakesPart(t *testing.T) {
	// "a.b" is not a class name, "a_b" is
	if out := FilterMods(Mods{{"a", "b"}}, "."); len(out) != 0 {
		t.Errorf("FilterMods() with '.' delimiter = %v, want dropped", out)
	}
	if out := FilterMods(Mods{{"a", "b"}}, "-"); len(out) != 1 {
		t.Errorf("FilterMods() with '-' delimiter = %v, want kept", out)
	}
}

func TestFilterModsKeepsOrderAndDuplicates(t *testing.T) {
	out := FilterMods(Mods{{"b", "1x"}, {"a", true}, {"b", "2x"}}, "_")
	if len(out) != 3 || out[0].Key != "b" || out[1].Key != "a" || out[2].Value != "2x" {
		t.Errorf("FilterMods() = %v", out)
	}
}

func TestInspectMods(t *testing.T) {
	decisions := InspectMods(Mods{
		{"size", "lg"},
		{"open", false},
		{"cols", 0},
		{"bad", "a b"},
		{"nested", map[string]any{}},
	}, "_")

	if len(decisions) != 5 {
		t.Fatalf("InspectMods() returned %d decisions, want 5", len(decisions))
	}

	expect := []struct {
		kept   bool
		reason string
	}{
		{true, ""},
		{false, "false value"},
		{false, "zero value"},
		{false, "not a valid class name"},
		{false, "unsupported value type"},
	}

	for i, want := range expect {
		d := decisions[i]
		if d.Kept != want.kept {
			t.Errorf("decision %d (%s): Kept = %v, want %v", i, d.Key, d.Kept, want.kept)
		}
		if !strings.Contains(d.Reason, want.reason) {
			t.Errorf("decision %d (%s): Reason = %q, want it to contain %q", i, d.Key, d.Reason, want.reason)
		}
	}
}
