package config

// config/yaml.go

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v2"
)

// siteDocument is the authored form of a site file. Pointers distinguish an
// absent or null key from a zero value so required keys can be enforced;
// present records every key the file names, null ones included.
type siteDocument struct {
	Title            *string
	Author           *string
	Description      *string
	PrimaryColor     *string
	ShowHeaderImage  *bool
	ShowShareButtons *bool
	PostsPerPage     *int
	Social           yaml.MapSlice
	PathPrefix       *string
	SiteURL          *string

	present map[string]bool
}

// decodeDocument converts each top-level key itself so a value of the wrong
// type is reported against its key.
func decodeDocument(data []byte) (siteDocument, error) {
	var raw yaml.MapSlice
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return siteDocument{}, err
	}

	doc := siteDocument{present: make(map[string]bool, len(raw))}
	for _, item := range raw {
		key, ok := item.Key.(string)
		if !ok {
			return siteDocument{}, &FieldError{Field: fmt.Sprint(item.Key), Reason: "key must be a string"}
		}
		if doc.present[key] {
			return siteDocument{}, &FieldError{Field: key, Reason: "duplicate key"}
		}
		doc.present[key] = true

		var err error
		switch key {
		case "title":
			doc.Title, err = stringValue(key, item.Value)
		case "author":
			doc.Author, err = stringValue(key, item.Value)
		case "description":
			doc.Description, err = stringValue(key, item.Value)
		case "primaryColor":
			doc.PrimaryColor, err = stringValue(key, item.Value)
		case "showHeaderImage":
			doc.ShowHeaderImage, err = boolValue(key, item.Value)
		case "showShareButtons":
			doc.ShowShareButtons, err = boolValue(key, item.Value)
		case "postsPerPage":
			doc.PostsPerPage, err = intValue(key, item.Value)
		case "social":
			doc.Social, err = mappingValue(key, item.Value)
		case "pathPrefix":
			doc.PathPrefix, err = stringValue(key, item.Value)
		case "siteUrl":
			doc.SiteURL, err = stringValue(key, item.Value)
		default:
			err = &FieldError{Field: key, Reason: "unknown key"}
		}
		if err != nil {
			return siteDocument{}, err
		}
	}

	return doc, nil
}

func stringValue(key string, v interface{}) (*string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &t, nil
	case int, int64, uint64, float64:
		s := fmt.Sprint(t)
		return &s, nil
	}
	return nil, &FieldError{Field: key, Reason: "must be a string"}
}

func boolValue(key string, v interface{}) (*bool, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return &t, nil
	}
	return nil, &FieldError{Field: key, Reason: "must be true or false"}
}

func intValue(key string, v interface{}) (*int, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case int:
		return &t, nil
	case int64:
		if t >= math.MinInt && t <= math.MaxInt {
			n := int(t)
			return &n, nil
		}
	}
	return nil, &FieldError{Field: key, Reason: "must be an integer"}
}

func mappingValue(key string, v interface{}) (yaml.MapSlice, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		return t, nil
	}
	return nil, &FieldError{Field: key, Reason: "must be a mapping of channel to URL"}
}

// overlay applies every key named in o on top of d; a null key clears the
// base value. Social channels merge by name and a channel present in both
// keeps its base position. A null social key clears every channel.
func (d siteDocument) overlay(o siteDocument) siteDocument {
	if o.present["title"] {
		d.Title = o.Title
	}
	if o.present["author"] {
		d.Author = o.Author
	}
	if o.present["description"] {
		d.Description = o.Description
	}
	if o.present["primaryColor"] {
		d.PrimaryColor = o.PrimaryColor
	}
	if o.present["showHeaderImage"] {
		d.ShowHeaderImage = o.ShowHeaderImage
	}
	if o.present["showShareButtons"] {
		d.ShowShareButtons = o.ShowShareButtons
	}
	if o.present["postsPerPage"] {
		d.PostsPerPage = o.PostsPerPage
	}
	if o.present["pathPrefix"] {
		d.PathPrefix = o.PathPrefix
	}
	if o.present["siteUrl"] {
		d.SiteURL = o.SiteURL
	}

	if o.present["social"] {
		if o.Social == nil {
			d.Social = nil
		} else {
			merged := make(yaml.MapSlice, len(d.Social))
			copy(merged, d.Social)
			for _, item := range o.Social {
				replaced := false
				for i := range merged {
					if merged[i].Key == item.Key {
						merged[i].Value = item.Value
						replaced = true
					}
				}
				if !replaced {
					merged = append(merged, item)
				}
			}
			d.Social = merged
		}
	}

	present := make(map[string]bool, len(d.present)+len(o.present))
	for k := range d.present {
		present[k] = true
	}
	for k := range o.present {
		present[k] = true
	}
	d.present = present

	return d
}

// sets reports whether the document names the key behind field, down to the
// channel for social.<channel> fields.
func (d siteDocument) sets(field string) bool {
	key, channel, nested := strings.Cut(field, ".")
	if !d.present[key] {
		return false
	}
	if !nested || key != "social" {
		return true
	}
	for _, item := range d.Social {
		if item.Key == channel {
			return true
		}
	}
	return false
}

// site checks key presence and converts the document into a Site.
func (d siteDocument) site() (Site, error) {
	switch {
	case d.Title == nil:
		return Site{}, missing("title")
	case d.Author == nil:
		return Site{}, missing("author")
	case d.PrimaryColor == nil:
		return Site{}, missing("primaryColor")
	case d.ShowHeaderImage == nil:
		return Site{}, missing("showHeaderImage")
	case d.ShowShareButtons == nil:
		return Site{}, missing("showShareButtons")
	case d.PostsPerPage == nil:
		return Site{}, missing("postsPerPage")
	case d.SiteURL == nil:
		return Site{}, missing("siteUrl")
	}

	s := Site{
		Title:            *d.Title,
		Author:           *d.Author,
		PrimaryColor:     *d.PrimaryColor,
		ShowHeaderImage:  *d.ShowHeaderImage,
		ShowShareButtons: *d.ShowShareButtons,
		PostsPerPage:     *d.PostsPerPage,
		SiteURL:          *d.SiteURL,
	}
	if d.Description != nil {
		s.Description = *d.Description
	}
	if d.PathPrefix != nil {
		s.PathPrefix = *d.PathPrefix
	}

	seen := make(map[string]bool, len(d.Social))
	for _, item := range d.Social {
		channel, ok := item.Key.(string)
		if !ok || channel == "" {
			return Site{}, &FieldError{Field: "social", Reason: fmt.Sprintf("channel name %v must be a non-empty string", item.Key)}
		}
		field := "social." + channel
		if seen[channel] {
			return Site{}, &FieldError{Field: field, Reason: "duplicate channel"}
		}
		seen[channel] = true

		switch v := item.Value.(type) {
		case nil:
		case string:
			if v != "" {
				s.Social = append(s.Social, SocialLink{Channel: channel, URL: v})
			}
		default:
			return Site{}, &FieldError{Field: field, Reason: "must be a URL string"}
		}
	}

	return s, nil
}

func missing(field string) *FieldError {
	return &FieldError{Field: field, Reason: "is required"}
}
