package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/merryyellow/route2roslyn/assets"
	"github.com/merryyellow/route2roslyn/components"
	"github.com/merryyellow/route2roslyn/logger"
)

type buildOptions struct {
	ConfigDir   string
	Env         string
	OutDir      string
	StaticDir   string
	HeaderImage string
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Validate the configuration and emit it with the header partial",
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("out")
		staticDir, _ := cmd.Flags().GetString("static")
		headerImage, _ := cmd.Flags().GetString("header-image")

		return runBuild(cmd.Context(), buildOptions{
			ConfigDir:   configDir,
			Env:         siteEnv,
			OutDir:      outDir,
			StaticDir:   staticDir,
			HeaderImage: headerImage,
		})
	},
}

func runBuild(ctx context.Context, opts buildOptions) error {
	log := logger.FromContext(ctx)

	site, err := loadSite(ctx, opts.ConfigDir, opts.Env)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutDir, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	if site.ShowHeaderImage {
		asset, err := assets.Resolve(opts.StaticDir, opts.HeaderImage)
		if err != nil {
			return errors.Wrap(err, "resolving header image")
		}
		emitted, err := asset.Emit(opts.OutDir)
		if err != nil {
			return err
		}
		log.Info("emitted asset", "source", asset.Source, "path", emitted)

		header, err := components.HeaderImage(asset.PublicPath(site.PathPrefix))
		if err != nil {
			return err
		}
		if err := writeFile(ctx, filepath.Join(opts.OutDir, "partials", "header.html"), []byte(header)); err != nil {
			return err
		}

		style, err := components.HeaderStyle(site.PrimaryColor)
		if err != nil {
			return err
		}
		if err := writeFile(ctx, filepath.Join(opts.OutDir, assets.PublicDir, "header.css"), []byte(style)); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	if err := writeFile(ctx, filepath.Join(opts.OutDir, "site.json"), append(data, '\n')); err != nil {
		return err
	}

	log.Info("site configuration generated", "out", opts.OutDir)
	return nil
}

func writeFile(ctx context.Context, path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WithStack(err)
	}
	logger.FromContext(ctx).Info("generated", "path", path)
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("out", "public", "Output directory")
	buildCmd.Flags().String("static", "static", "Directory holding bundled assets")
	buildCmd.Flags().String("header-image", "main.png", "Header image, relative to the static directory")
}
