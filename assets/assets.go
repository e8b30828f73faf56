package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

// PublicDir is the directory, relative to the site root, that emitted assets
// are served from.
const PublicDir = "static"

// Asset is a bundled file resolved at build time.
type Asset struct {
	Source string
	Name   string
	Ext    string
	Hash   string

	contents []byte
}

// Resolve reads ref from staticDir and fingerprints it. A reference that
// cannot be read is a build error.
func Resolve(staticDir, ref string) (Asset, error) {
	if ref == "" || filepath.IsAbs(ref) || strings.HasPrefix(filepath.Clean(ref), "..") {
		return Asset{}, errors.Errorf("asset %q: reference must be relative to %s", ref, staticDir)
	}

	source := filepath.Join(staticDir, ref)
	contents, err := os.ReadFile(source)
	if err != nil {
		return Asset{}, errors.Wrapf(err, "asset %q", ref)
	}

	sum := sha256.Sum256(contents)
	ext := filepath.Ext(ref)
	base := filepath.Base(ref)

	return Asset{
		Source:   source,
		Name:     base[:len(base)-len(ext)],
		Ext:      ext,
		Hash:     hex.EncodeToString(sum[:])[:12],
		contents: contents,
	}, nil
}

// FileName is the fingerprinted file name, name_hash.ext.
func (a Asset) FileName() string {
	return fmt.Sprintf("%s_%s%s", a.Name, a.Hash, a.Ext)
}

// PublicPath is the URL path the emitted asset is served at.
func (a Asset) PublicPath(prefix string) string {
	return prefix + "/" + path.Join(PublicDir, a.FileName())
}

// Emit writes the fingerprinted file into outDir/static and returns its path.
func (a Asset) Emit(outDir string) (string, error) {
	dir := filepath.Join(outDir, PublicDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.WithStack(err)
	}

	dest := filepath.Join(dir, a.FileName())
	if err := os.WriteFile(dest, a.contents, 0644); err != nil {
		return "", errors.WithStack(err)
	}
	return dest, nil
}

// MinifyCSS runs a stylesheet through esbuild's CSS transform.
func MinifyCSS(css string) (string, error) {
	result := api.Transform(css, api.TransformOptions{
		Loader:            api.LoaderCSS,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Engines: []api.Engine{
			{Name: api.EngineChrome, Version: "100"},
			{Name: api.EngineFirefox, Version: "100"},
			{Name: api.EngineSafari, Version: "15"},
			{Name: api.EngineEdge, Version: "100"},
		},
	})

	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		return "", errors.Errorf("minifying css: %s", msg.Text)
	}

	return strings.TrimSpace(string(result.Code)), nil
}
