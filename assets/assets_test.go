package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeStatic(t *testing.T, name string, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	return dir
}

func TestResolveFingerprintsContents(t *testing.T) {
	dir := writeStatic(t, "main.png", []byte("png-bytes"))

	a, err := Resolve(dir, "main.png")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "main.png"), a.Source)
	require.Equal(t, "main", a.Name)
	require.Equal(t, ".png", a.Ext)
	require.Len(t, a.Hash, 12)
	require.Equal(t, "main_"+a.Hash+".png", a.FileName())
	require.Equal(t, "/static/main_"+a.Hash+".png", a.PublicPath(""))
	require.Equal(t, "/devblog/static/main_"+a.Hash+".png", a.PublicPath("/devblog"))

	again, err := Resolve(dir, "main.png")
	require.NoError(t, err)
	require.Equal(t, a.Hash, again.Hash)
}

func TestResolveHashFollowsContents(t *testing.T) {
	a, err := Resolve(writeStatic(t, "main.png", []byte("one")), "main.png")
	require.NoError(t, err)
	b, err := Resolve(writeStatic(t, "main.png", []byte("two")), "main.png")
	require.NoError(t, err)
	require.NotEqual(t, a.Hash, b.Hash)
}

func TestResolveMissingAsset(t *testing.T) {
	_, err := Resolve(t.TempDir(), "main.png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "main.png")
}

func TestResolveRejectsEscapingReferences(t *testing.T) {
	dir := t.TempDir()
	for _, ref := range []string{"", "../main.png", "/etc/passwd"} {
		_, err := Resolve(dir, ref)
		require.Error(t, err, ref)
	}
}

func TestEmitWritesFingerprintedFile(t *testing.T) {
	a, err := Resolve(writeStatic(t, "main.png", []byte("png-bytes")), "main.png")
	require.NoError(t, err)

	out := t.TempDir()
	dest, err := a.Emit(out)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, PublicDir, a.FileName()), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
}

func TestMinifyCSS(t *testing.T) {
	css, err := MinifyCSS("header a > img {\n  display: block;\n  margin: 0 auto;\n}\n")
	require.NoError(t, err)
	require.NotContains(t, css, "\n")
	require.True(t, strings.HasPrefix(css, "header a>img{"), css)
}
