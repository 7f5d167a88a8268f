package locate

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
	"github.com/npillmayer/flowlayout/core"
	"golang.org/x/image/font"
)

// FindFont returns the path of a font file. name may be the path of a font
// file or the file name of a font installed on the system
// (e.g. "DejaVuSans.ttf").
func FindFont(name string) (string, error) {
	if name == "" {
		return "", core.Error(core.EINVALID, "cannot find font without a name")
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	fpath, err := findfont.Find(name) // try to find as system font
	if err != nil || fpath == "" {
		return "", core.WrapError(err, core.EMISSING, "font %s not found", name)
	}
	tracer().Debugf("%s is a system font: %s", name, fpath)
	return fpath, nil
}

// ResolveFontFace loads a TrueType font and returns a face for it, scaled to
// size points. See FindFont for the interpretation of name.
func ResolveFontFace(name string, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, core.Error(core.EINVALID, "illegal font size %g", size)
	}
	fpath, err := FindFont(name)
	if err != nil {
		return nil, err
	}
	face, err := gg.LoadFontFace(fpath, size)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot load font %s", fpath)
	}
	return face, nil
}
