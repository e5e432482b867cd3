// Package cli implements the site command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fremyrosso/site/internal/config"
	"github.com/fremyrosso/site/internal/content"
)

// NewRootCmd creates the top-level "site" command with all subcommands
// registered against v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:          "site",
		Short:        "Serve the Fremy Rosso portfolio page",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("content", "", "YAML content file (default: built-in content)")
	_ = v.BindPFlag(config.KeyContent, root.PersistentFlags().Lookup("content"))

	root.AddCommand(newServeCmd(v))
	root.AddCommand(newRenderCmd(v))
	root.AddCommand(newSectionsCmd(v))
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd(config.NewViper()).Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSite(v *viper.Viper) (*content.Site, error) {
	return content.Load(v.GetString(config.KeyContent))
}
