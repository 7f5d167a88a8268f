/*
Package locate resolves locations of documents and resources.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locate

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowlayout.locate'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.locate")
}

// MakeURL creates a URL from a string.
//
// If s carries a scheme, it is taken as is. Otherwise, if there is no
// current URL, s is interpreted as a local file, relative to the working
// directory. If there is a current URL, s is resolved relative to it: a
// current path ending in "/" is extended, otherwise its last segment is
// replaced.
func MakeURL(s string, current *url.URL) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse location %q", s)
	}
	if u.Scheme != "" {
		return u, nil
	}
	if current == nil {
		abs, err := filepath.Abs(s)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot locate file %q", s)
		}
		u = &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
		tracer().Debugf("make URL: %q is local file %s", s, u)
		return u, nil
	}
	tracer().Debugf("make URL: current URL = %s", current)
	base := *current
	if base.Path == "" {
		base.Path = "/"
	}
	return base.ResolveReference(u), nil
}

// Open opens the resource addressed by u for reading. Supported schemes are
// "file", "http" and "https".
func Open(u *url.URL) (io.ReadCloser, error) {
	if u == nil {
		return nil, core.Error(core.EINVALID, "cannot open nil URL")
	}
	switch u.Scheme {
	case "file":
		f, err := os.Open(filepath.FromSlash(u.Path))
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "cannot open %s", u)
		}
		return f, nil
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, core.WrapError(err, core.ECONNECTION, "cannot fetch %s", u)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, core.Error(core.EMISSING, "fetching %s: %s", u, resp.Status)
		}
		return resp.Body, nil
	}
	return nil, core.Error(core.EINVALID, "unsupported URL scheme %q", u.Scheme)
}
