// Package config loads the site settings handed to the static site
// generator at build time.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// BaseFile is the name of the site file every environment starts from.
const BaseFile = "site.yaml"

// Site is the validated site configuration. It is built once by Parse, Load
// or LoadEnv and treated as read-only afterwards.
type Site struct {
	Title            string       `json:"title"`
	Author           string       `json:"author"`
	Description      string       `json:"description,omitempty"`
	PrimaryColor     string       `json:"primaryColor"`
	ShowHeaderImage  bool         `json:"showHeaderImage"`
	ShowShareButtons bool         `json:"showShareButtons"`
	PostsPerPage     int          `json:"postsPerPage"`
	Social           []SocialLink `json:"social,omitempty"`
	PathPrefix       string       `json:"pathPrefix,omitempty"`
	SiteURL          string       `json:"siteUrl"`
}

// SocialLink is one shown social channel, in authored order.
type SocialLink struct {
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

// FieldError reports the configuration field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Parse decodes a site document and validates it.
func Parse(data []byte) (Site, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return Site{}, errors.Wrap(err, "decoding site document")
	}
	return finish(doc)
}

// Load reads and validates the site file at path.
func Load(path string) (Site, error) {
	doc, err := readDocument(path)
	if err != nil {
		return Site{}, err
	}
	s, err := finish(doc)
	if err != nil {
		return Site{}, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}

// LoadEnv reads dir/site.yaml and, when env is set, overlays
// dir/site.<env>.yaml on top of it before validating the result. A
// validation error names the file that set the offending field.
func LoadEnv(dir, env string) (Site, error) {
	base := filepath.Join(dir, BaseFile)
	doc, err := readDocument(base)
	if err != nil {
		return Site{}, err
	}

	var overlay siteDocument
	overlayPath := ""
	if env != "" {
		overlayPath = filepath.Join(dir, EnvFile(env))
		overlay, err = readDocument(overlayPath)
		if err != nil {
			return Site{}, err
		}
		doc = doc.overlay(overlay)
	}

	s, err := finish(doc)
	if err != nil {
		source := base
		var fe *FieldError
		if overlayPath != "" && errors.As(err, &fe) && overlay.sets(fe.Field) {
			source = overlayPath
		}
		return Site{}, errors.Wrapf(err, "loading %s", source)
	}
	return s, nil
}

// EnvFile names the overlay file for env.
func EnvFile(env string) string {
	return "site." + env + ".yaml"
}

func readDocument(path string) (siteDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return siteDocument{}, errors.WithStack(err)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return siteDocument{}, errors.Wrapf(err, "decoding %s", path)
	}
	return doc, nil
}

func finish(doc siteDocument) (Site, error) {
	s, err := doc.site()
	if err != nil {
		return Site{}, err
	}
	s.SiteURL = trimSiteURL(s.SiteURL)
	if err := s.Validate(); err != nil {
		return Site{}, err
	}
	return s, nil
}

// SocialURL returns the URL for channel if it is shown.
func (s Site) SocialURL(channel string) (string, bool) {
	for _, l := range s.Social {
		if l.Channel == channel {
			return l.URL, true
		}
	}
	return "", false
}

// Channels lists the shown social channels in authored order.
func (s Site) Channels() []string {
	out := make([]string, 0, len(s.Social))
	for _, l := range s.Social {
		out = append(out, l.Channel)
	}
	return out
}

// Links returns a copy of the shown social links.
func (s Site) Links() []SocialLink {
	out := make([]SocialLink, len(s.Social))
	copy(out, s.Social)
	return out
}

// URL joins the site URL, the path prefix and p.
func (s Site) URL(p string) string {
	return s.SiteURL + s.PathPrefix + p
}
