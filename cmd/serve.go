package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/merryyellow/route2roslyn/handlers"
	"github.com/merryyellow/route2roslyn/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a preview of the header and site settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		staticDir, _ := cmd.Flags().GetString("static")
		headerImage, _ := cmd.Flags().GetString("header-image")

		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		site, err := loadSite(ctx, configDir, siteEnv)
		if err != nil {
			return err
		}

		router, err := handlers.SetupRouter(ctx, handlers.Preview{
			Site:        site,
			StaticDir:   staticDir,
			HeaderImage: headerImage,
		})
		if err != nil {
			return err
		}

		log.Info("starting preview server", "port", port)
		return http.ListenAndServe(":"+port, router)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
	serveCmd.Flags().String("static", "static", "Directory holding bundled assets")
	serveCmd.Flags().String("header-image", "main.png", "Header image, relative to the static directory")
}
