package main

import (
	"html/template"
	"os"

	"github.com/spf13/cobra"

	"github.com/SnakeO/dominion-llc/internal/assets"
	"github.com/SnakeO/dominion-llc/internal/catalog"
	"github.com/SnakeO/dominion-llc/internal/config"
	handlersPkg "github.com/SnakeO/dominion-llc/internal/handlers"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates on every request (DOMINION_WEB_DEV or --dev).
	devMode   bool
	tmplCache *template.Template

	// Loaded once at startup and shared read-only by every handler.
	listings  *catalog.Catalog
	folders   *assets.FolderMap
	site      config.SiteConfig
	analytics handlersPkg.Analytics
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "web",
		Short:        "Dominion Investors property listings site",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newValidateCmd())
	return root
}
