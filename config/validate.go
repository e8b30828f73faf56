package config

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate checks field contents and returns the first violation found, in
// field order.
func (s Site) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return &FieldError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(s.Author) == "" {
		return &FieldError{Field: "author", Reason: "must not be empty"}
	}
	if s.PrimaryColor == "" {
		return &FieldError{Field: "primaryColor", Reason: "must not be empty"}
	}
	if !hexColor.MatchString(s.PrimaryColor) {
		return &FieldError{Field: "primaryColor", Reason: "must be a hex color such as #3498db"}
	}
	if s.PostsPerPage <= 0 {
		return &FieldError{Field: "postsPerPage", Reason: "must be greater than zero"}
	}

	seen := make(map[string]bool, len(s.Social))
	for _, l := range s.Social {
		field := "social." + l.Channel
		if l.Channel == "" {
			return &FieldError{Field: "social", Reason: "channel name must not be empty"}
		}
		if seen[l.Channel] {
			return &FieldError{Field: field, Reason: "duplicate channel"}
		}
		seen[l.Channel] = true
		if l.URL == "" {
			continue
		}
		if err := checkSocialURL(l.URL); err != "" {
			return &FieldError{Field: field, Reason: err}
		}
	}

	if s.PathPrefix != "" {
		if !strings.HasPrefix(s.PathPrefix, "/") || strings.HasSuffix(s.PathPrefix, "/") {
			return &FieldError{Field: "pathPrefix", Reason: "must start with / and not end with /"}
		}
	}

	if s.SiteURL == "" {
		return &FieldError{Field: "siteUrl", Reason: "must not be empty"}
	}
	u, err := url.Parse(s.SiteURL)
	if err != nil || !isWebURL(u) {
		return &FieldError{Field: "siteUrl", Reason: "must be an absolute http or https URL"}
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return &FieldError{Field: "siteUrl", Reason: "must not carry a path, query or fragment; use pathPrefix"}
	}

	return nil
}

// checkSocialURL returns a reason when raw is neither a web URL nor a mail URI.
func checkSocialURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "not a valid URL"
	}
	if u.Scheme == "mailto" {
		addr := u.Opaque
		if addr == "" {
			addr = u.Path
		}
		if _, err := mail.ParseAddress(addr); err != nil {
			return "mailto URI must carry a valid address"
		}
		return ""
	}
	if !isWebURL(u) {
		return "must be an absolute http(s) URL or a mailto: URI"
	}
	return ""
}

func isWebURL(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func trimSiteURL(raw string) string {
	return strings.TrimRight(raw, "/")
}
