package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merryyellow/route2roslyn/config"
	"github.com/merryyellow/route2roslyn/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configDir string
	siteEnv   string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:           "route2roslyn",
	Short:         "Route to Roslyn - site configuration and header tooling",
	Long:          `route2roslyn validates the Route to Roslyn site configuration and renders the pieces the static site generator consumes at build time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log := logger.WithValues(logger.Get(logLevel, Version), logger.CommandKey, cmd.Name(), logger.EnvKey, siteEnv)
		cmd.SetContext(logger.WithLogger(cmd.Context(), log))
	},
}

func Execute() {
	defer logger.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "site", "Directory holding site.yaml and its environment overlays")
	rootCmd.PersistentFlags().StringVar(&siteEnv, "env", os.Getenv("SITE_ENV"), "Environment overlay to apply (site.<env>.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// loadSite loads the configuration or fails with the offending field named.
// Execute reports the returned error once.
func loadSite(ctx context.Context, dir, env string) (config.Site, error) {
	log := logger.FromContext(ctx)

	site, err := config.LoadEnv(dir, env)
	if err != nil {
		log.V(1).Info("invalid site configuration", "dir", dir, "reason", err.Error())
		return config.Site{}, err
	}

	log.V(1).Info("loaded site configuration", "dir", dir, "title", site.Title, "siteUrl", site.SiteURL)
	return site, nil
}
