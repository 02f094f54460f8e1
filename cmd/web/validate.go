package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SnakeO/dominion-llc/internal/assets"
	"github.com/SnakeO/dominion-llc/internal/catalog"
)

func newValidateCmd() *cobra.Command {
	var flags siteFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and folder map without serving",
		Long: "Loads the folder map and catalog, reports every invalid record,\n" +
			"duplicate id and id missing from a folder table, and exits non-zero\n" +
			"when any problem is found.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fm, err := assets.Load(cfg.Site.FoldersFile)
			if err != nil {
				return fmt.Errorf("load folder map: %w", err)
			}
			cat, err := catalog.Load(cfg.Site.CatalogFile, fm)
			if err != nil {
				var verr *catalog.ValidationError
				if errors.As(err, &verr) {
					for _, p := range verr.Problems() {
						fmt.Fprintf(out, "FAIL %s\n", p)
					}
					return fmt.Errorf("%s: %d problem(s)", cfg.Site.CatalogFile, len(verr.Problems()))
				}
				return err
			}
			if err := fm.Validate(cat.IDs()); err != nil {
				fmt.Fprintf(out, "FAIL %s\n", err)
				return fmt.Errorf("%s: folder map out of date", cfg.Site.FoldersFile)
			}
			fmt.Fprintf(out, "OK %s: %d properties\n", cfg.Site.CatalogFile, cat.Len())
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}
