package app

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/suxatcode/nbody-barnes-hut/quadtree"
	"github.com/suxatcode/nbody-barnes-hut/simulation"
)

const drawWidth = 800

// drawRegions renders the outlines of the quadtree regions and the bodies
// inside of bounds into a PNG file.
func drawRegions(regions map[quadtree.Path]quadtree.Rect, bodies []*simulation.Particle, bounds quadtree.Rect, filename string, invertColor bool) error {
	scale := drawWidth / bounds.Width
	width := drawWidth
	height := int(math.Ceil(bounds.Height * scale))
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	background := color.White
	if invertColor {
		background = color.Black
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, background)
		}
	}
	toPixel := func(x, y float64) (int, int) {
		return int((x - bounds.X) * scale), int((y - bounds.Y) * scale)
	}
	regionColor := color.Gray{Y: 0xaa}
	for _, r := range regions {
		x0, y0 := toPixel(r.X, r.Y)
		x1, y1 := toPixel(r.X+r.Width, r.Y+r.Height)
		for x := x0; x <= x1; x++ {
			img.Set(x, y0, regionColor)
			img.Set(x, y1, regionColor)
		}
		for y := y0; y <= y1; y++ {
			img.Set(x0, y, regionColor)
			img.Set(x1, y, regionColor)
		}
	}
	bodyColor := color.Black
	if invertColor {
		bodyColor = color.White
	}
	for _, body := range bodies {
		pos := body.Position()
		if !bounds.Contains(pos) {
			continue
		}
		x, y := toPixel(pos.X(), pos.Y())
		img.Set(x, y, bodyColor)
	}
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create '%s'", filename)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return errors.Wrapf(err, "failed to encode '%s'", filename)
	}
	return nil
}
