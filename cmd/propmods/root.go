package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/propmods"
	"github.com/pthm/propmods/internal/config"
	"github.com/pthm/propmods/lib/casing"
	"github.com/pthm/propmods/lib/modsfile"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath        string
	elementDelimiter  string
	modDelimiter      string
	modValueDelimiter string
	transform         string
	verbose           bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "propmods",
		Short: "Build BEM class names from modifiers",
		Long: `propmods - BEM class names from props and state

Renders block, element, modifier and mixin classes the same way the Go
package does, using .propmods.yaml, .env and PROPMODS_* variables for the
delimiters and key transform.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default: nearest .propmods.yaml)")
	pf.StringVar(&g.elementDelimiter, "element-delimiter", propmods.DefaultElementDelimiter, "delimiter between block and element")
	pf.StringVar(&g.modDelimiter, "mod-delimiter", propmods.DefaultModDelimiter, "delimiter before a modifier")
	pf.StringVar(&g.modValueDelimiter, "mod-value-delimiter", propmods.DefaultModValueDelimiter, "delimiter between modifier key and value")
	pf.StringVar(&g.transform, "transform", "", "key transform: "+strings.Join(casing.Names(), ", "))
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log dropped modifiers to stderr")

	cmd.AddCommand(
		newRenderCmd(g),
		newCheckCmd(g),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "propmods version %s\n", version)
		},
	}
}

// resolve loads the config file and environment, then applies any flags the
// user set explicitly.
func (g *globalFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("element-delimiter") {
		cfg.ElementDelimiter = &g.elementDelimiter
	}
	if flags.Changed("mod-delimiter") {
		cfg.ModDelimiter = &g.modDelimiter
	}
	if flags.Changed("mod-value-delimiter") {
		cfg.ModValueDelimiter = &g.modValueDelimiter
	}
	if flags.Changed("transform") {
		cfg.Transform = g.transform
	}
	return cfg, nil
}

func (g *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// readModsFile reads a modifier document; "-" means stdin.
func readModsFile(cmd *cobra.Command, path string) (propmods.Mods, error) {
	if path == "-" {
		return modsfile.Read(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return modsfile.Parse(data)
}

// parseModFlag turns key=value into a modifier. A bare key is a presence
// flag; true/false become booleans and integers become int64.
func parseModFlag(s string) (propmods.Modifier, error) {
	key, value, found := strings.Cut(s, "=")
	if key == "" {
		return propmods.Modifier{}, fmt.Errorf("invalid modifier %q: empty key", s)
	}
	if !found {
		return propmods.Modifier{Key: key, Value: true}, nil
	}

	switch value {
	case "true":
		return propmods.Modifier{Key: key, Value: true}, nil
	case "false":
		return propmods.Modifier{Key: key, Value: false}, nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return propmods.Modifier{Key: key, Value: n}, nil
	}
	return propmods.Modifier{Key: key, Value: value}, nil
}
