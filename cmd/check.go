package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the site configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), cmd.OutOrStdout(), configDir, siteEnv)
	},
}

func runCheck(ctx context.Context, out io.Writer, dir, env string) error {
	site, err := loadSite(ctx, dir, env)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "%s by %s: %d posts per page, %s\n",
		site.Title, site.Author, site.PostsPerPage, site.URL("/")); err != nil {
		return err
	}
	for _, channel := range site.Channels() {
		u, _ := site.SocialURL(channel)
		if _, err := fmt.Fprintf(out, "  %-10s %s\n", channel, u); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
