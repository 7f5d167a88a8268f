package layout

import (
	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Defaults for layout parameters not set in the configuration.
const (
	DefaultViewportWidth  = 800 * dimen.PX
	DefaultViewportHeight = 600 * dimen.PX
	DefaultLineHeight     = 12 * dimen.PT
)

// Context is the environment for a layout run. Layout passes read it but
// never modify it.
type Context struct {
	Viewport   dimen.Size
	LineHeight dimen.DU // minimum height of a line of an inline flow
	Tracer     tracing.Trace
}

// NewContext creates a layout context for a viewport.
func NewContext(viewport dimen.Size) *Context {
	return &Context{
		Viewport:   viewport,
		LineHeight: DefaultLineHeight,
		Tracer:     tracer(),
	}
}

// ContextFromConfig creates a layout context from the global configuration.
// Keys are
//
//	layout.viewport.width
//	layout.viewport.height
//	layout.line-height
//
// with values in CSS units, e.g. "640px". Missing keys get defaults.
// The global configuration has to be initialized (see package gconf).
func ContextFromConfig() (*Context, error) {
	return contextFrom(gconf.GetString)
}

// ContextFrom creates a layout context from a configuration source, using the
// same keys as ContextFromConfig.
func ContextFrom(conf schuko.Configuration) (*Context, error) {
	return contextFrom(conf.GetString)
}

func contextFrom(getString func(key string) string) (*Context, error) {
	ctx := NewContext(dimen.Size{W: DefaultViewportWidth, H: DefaultViewportHeight})
	for _, p := range []struct {
		key string
		dst *dimen.DU
	}{
		{"layout.viewport.width", &ctx.Viewport.W},
		{"layout.viewport.height", &ctx.Viewport.H},
		{"layout.line-height", &ctx.LineHeight},
	} {
		s := getString(p.key)
		if s == "" {
			continue
		}
		d, ispcnt, err := dimen.ParseDimen(s)
		if err != nil || ispcnt || d < 0 {
			return nil, core.Error(core.EINVALID, "configuration %s: illegal dimension %q", p.key, s)
		}
		*p.dst = d
	}
	tracer().Debugf("layout context: viewport %v x %v, line height %v",
		ctx.Viewport.W, ctx.Viewport.H, ctx.LineHeight)
	return ctx, nil
}

func (ctx *Context) trace() tracing.Trace {
	if ctx.Tracer == nil {
		return tracer()
	}
	return ctx.Tracer
}
