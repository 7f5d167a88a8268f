package locate

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileURLForPlainName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.locate")
	defer teardown()
	//
	u, err := MakeURL("local.html", nil)
	require.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.Path, filepath.ToSlash(cwd)))
	assert.True(t, strings.HasSuffix(u.Path, "/local.html"))
}

func TestURLRelativeToCurrent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.locate")
	defer teardown()
	//
	for _, c := range []struct {
		current, s, path string
	}{
		{"http://example.com", "index.html", "/index.html"},
		{"http://example.com/", "index.html", "/index.html"},
		{"http://example.com/index.html", "crumpet.html", "/crumpet.html"},
		{"http://example.com/snarf/index.html", "crumpet.html", "/snarf/crumpet.html"},
	} {
		current, err := MakeURL(c.current, nil)
		require.NoError(t, err)
		u, err := MakeURL(c.s, current)
		require.NoError(t, err)
		assert.Equal(t, "http", u.Scheme, c.current)
		assert.Equal(t, "example.com", u.Host, c.current)
		assert.Equal(t, c.path, u.Path, c.current)
	}
}

func TestOpenLocalFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.locate")
	defer teardown()
	//
	dir := t.TempDir()
	name := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(name, []byte("<p>hi</p>"), 0644))
	u, err := MakeURL(name, nil)
	require.NoError(t, err)
	r, err := Open(u)
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(b))
	//
	_, err = Open(&url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Join(dir, "missing.html"))})
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = Open(&url.URL{Scheme: "gopher", Host: "x"})
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestResolveFontFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.locate")
	defer teardown()
	//
	_, err := ResolveFontFace("", 12)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ResolveFontFace("no-such-font-4711.ttf", 12)
	assert.Equal(t, core.EMISSING, core.Code(err))
	junk := filepath.Join(t.TempDir(), "junk.ttf")
	require.NoError(t, os.WriteFile(junk, []byte("not a font"), 0644))
	_, err = ResolveFontFace(junk, 12)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ResolveFontFace(junk, 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
	fpath, err := FindFont(junk)
	require.NoError(t, err)
	assert.Equal(t, junk, fpath)
}
