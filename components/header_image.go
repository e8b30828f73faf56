// Package components renders the markup fragments the site generator embeds
// in its layouts.
package components

import (
	"fmt"
	"html/template"

	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"

	"github.com/merryyellow/route2roslyn/assets"
)

// HomeRoute is the link target of the header image. It does not follow
// pathPrefix or siteUrl.
const HomeRoute = "/"

// The image carries an empty alt attribute, so the link has no accessible
// name.
const headerImageTemplate = `<a href="<%= home %>"><img src="<%= src %>" alt=""/></a>`

// HeaderImage renders the header banner linking back to the home route.
func HeaderImage(src string) (template.HTML, error) {
	ctx := plush.NewContext()
	ctx.Set("home", HomeRoute)
	ctx.Set("src", src)

	out, err := plush.Render(headerImageTemplate, ctx)
	if err != nil {
		return "", errors.Wrap(err, "rendering header image")
	}

	return template.HTML(out), nil
}

const headerStyleTemplate = `header a > img {
  display: block;
  max-width: 100%%;
  margin: 0 auto;
  border-bottom: 4px solid %s;
}
`

// HeaderStyle returns the minified stylesheet for the header wrapper.
func HeaderStyle(primaryColor string) (string, error) {
	css, err := assets.MinifyCSS(fmt.Sprintf(headerStyleTemplate, primaryColor))
	if err != nil {
		return "", errors.Wrap(err, "header style")
	}
	return css, nil
}
