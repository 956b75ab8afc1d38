package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pthm/propmods"
)

var errDropped = errors.New("some modifiers were dropped")

func newCheckCmd(g *globalFlags) *cobra.Command {
	var (
		file   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show which entries of a modifier document become classes",
		Long: `Reads a YAML or JSON modifier document and reports, entry by entry,
whether it would be rendered as a modifier and why not. Nested props and
state sections are reported with a props. or state. prefix.`,
		Example: `  propmods check -f state.yaml
  echo '{"size": "lg", "open": false}' | propmods check -f - --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}

			cfg, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			delim := propmods.DefaultModValueDelimiter
			if cfg.ModValueDelimiter != nil {
				delim = *cfg.ModValueDelimiter
			}

			mods, err := readModsFile(cmd, file)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			dropped := report(w, "", mods, delim)
			if err := w.Flush(); err != nil {
				return err
			}

			if strict && dropped > 0 {
				return fmt.Errorf("%w: %d", errDropped, dropped)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "YAML or JSON modifier document, - for stdin")
	f.BoolVar(&strict, "strict", false, "exit with an error if any entry is dropped")

	return cmd
}

// report writes one line per entry and returns the number dropped.
func report(w io.Writer, prefix string, mods propmods.Mods, delim string) int {
	dropped := 0
	for _, d := range propmods.InspectMods(mods, delim) {
		key := prefix + d.Key

		if nested, ok := d.Value.(propmods.Mods); ok && prefix == "" && isSection(d.Key) {
			dropped += report(w, key+".", nested, delim)
			continue
		}
		if strings.EqualFold(d.Key, propmods.ClassNameKey) {
			if s, ok := d.Value.(string); ok && strings.TrimSpace(s) != "" {
				fmt.Fprintf(w, "pass\t%s\t%s\n", key, s)
				continue
			}
		}

		if d.Kept {
			fmt.Fprintf(w, "kept\t%s\t%v\n", key, d.Value)
		} else {
			dropped++
			fmt.Fprintf(w, "dropped\t%s\t%v\t%s\n", key, d.Value, d.Reason)
		}
	}
	return dropped
}

func isSection(key string) bool {
	return strings.EqualFold(key, "props") || strings.EqualFold(key, "state")
}
