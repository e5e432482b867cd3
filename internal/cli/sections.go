package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSectionsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the section anchors the page renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite(v)
			if err != nil {
				return err
			}
			for _, sec := range site.EnabledSections() {
				fmt.Fprintf(cmd.OutOrStdout(), "#%s\t%s\n", sec.ID(), sec.Title())
			}
			return nil
		},
	}
}
