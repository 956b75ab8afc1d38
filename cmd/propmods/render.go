package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/propmods"
)

func newRenderCmd(g *globalFlags) *cobra.Command {
	var (
		mods  []string
		mixes []string
		file  string
	)

	cmd := &cobra.Command{
		Use:   "render BLOCK [ELEMENT]",
		Short: "Print the class name for a block or element",
		Example: `  propmods render Button -m size=lg -m disabled
  propmods render Card title --mix text-bold
  propmods render Menu -f state.yaml --transform kebab`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, propmods.WithLogger(g.logger(cmd)))

			block, err := propmods.New(args[0], opts...)
			if err != nil {
				return err
			}

			var callArgs []any
			if len(args) == 2 {
				callArgs = append(callArgs, args[1])
			}
			if file != "" {
				fromFile, err := readModsFile(cmd, file)
				if err != nil {
					return err
				}
				callArgs = append(callArgs, fromFile)
			}
			if len(mods) > 0 {
				flagMods := make(propmods.Mods, 0, len(mods))
				for _, m := range mods {
					mod, err := parseModFlag(m)
					if err != nil {
						return err
					}
					flagMods = append(flagMods, mod)
				}
				callArgs = append(callArgs, flagMods)
			}
			if len(mixes) > 0 {
				callArgs = append(callArgs, propmods.Mix(mixes))
			}

			result, err := block.Classes(callArgs...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.ClassName())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&mods, "mod", "m", nil, "modifier as key=value or key (repeatable)")
	f.StringArrayVar(&mixes, "mix", nil, "mixin class (repeatable)")
	f.StringVarP(&file, "file", "f", "", "YAML or JSON modifier document, - for stdin")

	return cmd
}
