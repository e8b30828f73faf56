package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"path"

	"github.com/gobuffalo/plush"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/merryyellow/route2roslyn/assets"
	"github.com/merryyellow/route2roslyn/components"
	"github.com/merryyellow/route2roslyn/config"
	"github.com/merryyellow/route2roslyn/logger"
)

// Preview holds what the preview server renders.
type Preview struct {
	Site        config.Site
	StaticDir   string
	HeaderImage string
}

const previewLayout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title><%= site.Title %></title>
<meta name="description" content="<%= site.Description %>">
<style><%= style %></style>
</head>
<body>
<header><%= if (site.ShowHeaderImage) { %><%= header %><% } %></header>
<main>
<h1><%= site.Title %></h1>
<p><%= site.Description %></p>
<p><%= site.Author %> / <%= site.PostsPerPage %> posts per page</p>
</main>
<footer>
<ul><%= for (i, link) in links { %><li><a href="<%= link.URL %>"><%= link.Channel %></a></li><% } %></ul>
</footer>
</body>
</html>
`

// SetupRouter resolves the header asset and builds the preview router. An
// unresolvable asset fails here rather than at request time.
func SetupRouter(ctx context.Context, p Preview) (*mux.Router, error) {
	log := logger.FromContext(ctx)

	if _, err := assets.Resolve(p.StaticDir, p.HeaderImage); err != nil {
		return nil, errors.Wrap(err, "resolving header image")
	}
	src := "/" + path.Join(assets.PublicDir, p.HeaderImage)

	header, err := components.HeaderImage(src)
	if err != nil {
		return nil, err
	}
	style, err := components.HeaderStyle(p.Site.PrimaryColor)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(Custom404Handler)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.V(1).Info("request", "method", r.Method, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	})

	router.PathPrefix("/" + assets.PublicDir + "/").Handler(
		http.StripPrefix("/"+assets.PublicDir+"/", http.FileServer(http.Dir(p.StaticDir))))

	router.HandleFunc("/site.json", SiteHandler(p.Site)).Methods("GET")
	router.HandleFunc(components.HomeRoute, PreviewHandler(p.Site, header, style)).Methods("GET")

	return router, nil
}

// PreviewHandler renders the preview page.
func PreviewHandler(site config.Site, header template.HTML, style string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := plush.NewContext()
		ctx.Set("site", site)
		ctx.Set("links", site.Links())
		ctx.Set("header", header)
		ctx.Set("style", template.HTML(style))

		page, err := plush.Render(previewLayout, ctx)
		if err != nil {
			logger.FromContext(r.Context()).Error(err, "rendering preview")
			http.Error(w, fmt.Sprintf("Error rendering preview: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(page)); err != nil {
			logger.FromContext(r.Context()).Error(err, "writing preview")
		}
	}
}

// SiteHandler serves the configuration as JSON.
func SiteHandler(site config.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(site); err != nil {
			http.Error(w, fmt.Sprintf("Error encoding site: %v", err), http.StatusInternalServerError)
		}
	}
}
