package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/nav"
	"github.com/fremyrosso/site/internal/view"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the page as a static HTML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite(v)
			if err != nil {
				return err
			}

			if out != "" && out != "-" {
				return writePage(out, site, time.Now())
			}
			return renderPage(cmd.OutOrStdout(), site, time.Now())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// writePage renders the page into the file at path. A failed close is
// reported when rendering itself succeeded.
func writePage(path string, site *content.Site, now time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return renderPage(f, site, now)
}

func renderPage(w io.Writer, site *content.Site, now time.Time) error {
	page := view.Page(site, view.State{Panel: nav.Closed, Year: now.Year()})
	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
