package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/propmods"
)

// run executes the CLI in an empty directory with a clean environment.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	for _, key := range []string{
		"PROPMODS_ELEMENT_DELIMITER",
		"PROPMODS_MOD_DELIMITER",
		"PROPMODS_MOD_VALUE_DELIMITER",
		"PROPMODS_TRANSFORM",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{"block", []string{"render", "Test"}, "Test"},
		{"element", []string{"render", "Test", "el"}, "Test__el"},
		{"mods", []string{"render", "Test", "-m", "foo=bar", "-m", "baz=quux"}, "Test Test_foo_bar Test_baz_quux"},
		{"presence and ints", []string{"render", "Grid", "-m", "dense", "-m", "cols=3", "-m", "gap=0", "-m", "flat=false"}, "Grid Grid_dense Grid_cols_3"},
		{"mixins", []string{"render", "Test", "el", "-m", "foo=bar", "--mix", "foo", "--mix", "bar"}, "Test__el Test__el_foo_bar foo bar"},
		{
			"custom delimiters",
			[]string{"render", "Test", "el", "-m", "foo=bar", "--element-delimiter=--", "--mod-delimiter=__"},
			"Test--el Test--el__foo_bar",
		},
		{"kebab", []string{"render", "B", "ElEment", "-m", "fooBar=bazQuux", "--transform", "kebab"}, "b__el-ement b__el-ement_foo-bar_baz-quux"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expect+"\n", out)
		})
	}
}

func TestRenderFromStdin(t *testing.T) {
	out, _, err := run(t, "size: lg\nopen: true\n", "render", "Menu", "-f", "-", "-m", "size=sm")
	require.NoError(t, err)
	assert.Equal(t, "Menu Menu_size_sm Menu_open\n", out)
}

func TestRenderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mods.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tone": "warn", "nested": {"a": 1}}`), 0o644))

	out, _, err := run(t, "", "render", "Alert", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "Alert Alert_tone_warn\n", out)
}

func TestRenderVerboseLogsDropped(t *testing.T) {
	out, stderr, err := run(t, "", "render", "Test", "-m", "bad=a b", "-v")
	require.NoError(t, err)
	assert.Equal(t, "Test\n", out)
	assert.Contains(t, stderr, "modifier dropped")
	assert.Contains(t, stderr, "key=bad")
}

func TestRenderConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propmods.yaml")
	require.NoError(t, os.WriteFile(path, []byte("element_delimiter: \"-\"\ntransform: snake\n"), 0o644))

	out, _, err := run(t, "", "render", "PageHeader", "navItem", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "page_header-nav_item\n", out)

	out, _, err = run(t, "", "render", "PageHeader", "navItem", "--config", path, "--transform", "identity")
	require.NoError(t, err)
	assert.Equal(t, "PageHeader-navItem\n", out)
}

func TestRenderErrors(t *testing.T) {
	_, _, err := run(t, "", "render")
	require.Error(t, err)

	_, _, err = run(t, "", "render", "Test", "-m", "=x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty key")

	_, _, err = run(t, "", "render", "Test", "--transform", "pascal")
	require.Error(t, err)

	_, _, err = run(t, "", "render", " ")
	require.Error(t, err)
	assert.True(t, propmods.IsEmptyBlock(err))
}

func TestCheck(t *testing.T) {
	doc := `
size: lg
open: false
props:
  tone: info
  bad: "a b"
className: "btn btn-primary"
`
	out, _, err := run(t, doc, "check", "-f", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Regexp(t, `^kept\s+size\s+lg$`, lines[0])
	assert.Regexp(t, `^dropped\s+open\s+false\s+false value$`, lines[1])
	assert.Regexp(t, `^kept\s+props\.tone\s+info$`, lines[2])
	assert.Regexp(t, `^dropped\s+props\.bad\s+a b\s+.*not a valid class name$`, lines[3])
	assert.Regexp(t, `^pass\s+className\s+btn btn-primary$`, lines[4])
}

func TestCheckNestedSectionsOneLevel(t *testing.T) {
	doc := "props:\n  page: \"0\"\n  props:\n    hidden: true\n"
	out, _, err := run(t, doc, "check", "-f", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^kept\s+props\.page\s+0$`, lines[0])
	assert.Regexp(t, `^dropped\s+props\.props\s+.*unsupported value type`, lines[1])
}

func TestCheckStrict(t *testing.T) {
	_, _, err := run(t, "ok: yes\nzero: 0\n", "check", "-f", "-", "--strict")
	require.ErrorIs(t, err, errDropped)

	_, _, err = run(t, "ok: yes\n", "check", "-f", "-", "--strict")
	require.NoError(t, err)
}

func TestCheckRequiresFile(t *testing.T) {
	_, _, err := run(t, "", "check")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "propmods version "+version+"\n", out)
}

func TestParseModFlag(t *testing.T) {
	tests := []struct {
		in     string
		expect propmods.Modifier
	}{
		{"open", propmods.Modifier{Key: "open", Value: true}},
		{"open=true", propmods.Modifier{Key: "open", Value: true}},
		{"open=false", propmods.Modifier{Key: "open", Value: false}},
		{"cols=3", propmods.Modifier{Key: "cols", Value: int64(3)}},
		{"size=lg", propmods.Modifier{Key: "size", Value: "lg"}},
		{"expr=a=b", propmods.Modifier{Key: "expr", Value: "a=b"}},
		{"empty=", propmods.Modifier{Key: "empty", Value: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseModFlag(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}
