package raster

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/frame/displaylist"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaintSolidColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.raster")
	defer teardown()
	//
	list := &displaylist.DisplayList{}
	list.Append(displaylist.Item{
		Kind:   displaylist.SolidColor,
		Bounds: dimen.R(10*dimen.PX, 10*dimen.PX, 20*dimen.PX, 20*dimen.PX),
		Color:  color.RGBA{R: 0xff, A: 0xff},
	})
	list.Append(displaylist.Item{
		Kind:   displaylist.Text,
		Bounds: dimen.R(40*dimen.PX, 0, 21*dimen.PX, 13*dimen.PX),
		Text:   "abc",
		Color:  displaylist.TextColor,
	})
	c := NewCanvas(dimen.Size{W: 100 * dimen.PX, H: 50 * dimen.PX}, nil)
	c.Paint(list)
	img := c.Image()
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
	r, g, b, _ := img.At(20, 20).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b}, "inside red rect")
	r, g, b, _ = img.At(5, 40).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b}, "white background")
	//
	name := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.SavePNG(name))
	_, err := os.Stat(name)
	assert.NoError(t, err)
}
