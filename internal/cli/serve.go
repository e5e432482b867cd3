package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fremyrosso/site/internal/analytics"
	"github.com/fremyrosso/site/internal/config"
	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("port", "", "listen port (env PORT)")
	cmd.Flags().String("assets", "", "directory holding static/, images/ and videos/ (env ASSET_DIR)")
	cmd.Flags().Bool("analytics", true, "record privacy-conscious visit counters (env ANALYTICS_ENABLED)")
	_ = v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))
	_ = v.BindPFlag(config.KeyAssetDir, cmd.Flags().Lookup("assets"))
	_ = v.BindPFlag(config.KeyAnalyticsEnabled, cmd.Flags().Lookup("analytics"))
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.Mode)

	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}

	opts := server.Options{Site: site, AssetDir: cfg.AssetDir}
	if cfg.Analytics.Enabled {
		store, err := analytics.Open(analytics.Options{
			DSN:       cfg.Analytics.DSN,
			Retention: cfg.Analytics.Retention,
			Salt:      cfg.Analytics.Salt,
		})
		if err != nil {
			return err
		}
		defer store.Close()
		go store.RunCleanup(ctx, cfg.Analytics.CleanupInterval)
		opts.Analytics = store
		log.Println("Privacy: visit counters enabled with hashed IP addresses")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(opts).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Serving %s on %s", site.Owner, srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
