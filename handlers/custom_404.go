package handlers

import (
	"net/http"

	"github.com/gobuffalo/plush"
)

const notFoundTemplate = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Not found</title></head>
<body><h1>Not found</h1><p><%= path %> does not exist. <a href="/">Home</a></p></body>
</html>
`

func Custom404Handler(w http.ResponseWriter, r *http.Request) {
	ctx := plush.NewContext()
	ctx.Set("path", r.URL.Path)

	page, err := plush.Render(notFoundTemplate, ctx)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(page))
}
