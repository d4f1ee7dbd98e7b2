package main

import (
	"fmt"

	"github.com/Veraticus/robot-taxonomy/internal/cli"
	"github.com/Veraticus/robot-taxonomy/internal/config"
	"github.com/spf13/cobra"
)

func taxonomyCmd() *cobra.Command {
	var taxonomyPath string

	cmd := &cobra.Command{
		Use:   "taxonomy [level]",
		Short: "Show taxonomy levels and categories",
		Long: `List the categories of every taxonomy level, or of a single level, with
their descriptions and matching keywords.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("taxonomy") {
				cfg.Taxonomy.Path = config.ExpandPath(taxonomyPath)
			}

			levels, err := parseLevels(args)
			if err != nil {
				return err
			}

			reg := loadRegistry(cfg.Taxonomy.Path)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.SubtleStyle.Render("Source: "+reg.Source()))
			for _, f := range reg.Fallbacks() {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning(f.Error()+" (using built-in categories)"))
			}

			return cli.RenderTaxonomy(out, reg, levels)
		},
	}

	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "taxonomy definition document (default: built-in)")

	return cmd
}
