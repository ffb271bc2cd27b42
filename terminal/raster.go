package terminal

import (
	"image/color"
	"math"

	"github.com/automoto/fireworks/sim"
)

// rgb is linear light accumulated in one cell, 0..1 per channel
type rgb struct {
	r, g, b float64
}

// Raster is the terminal stand-in for the trail canvas. Each cell covers
// cellW x cellH virtual pixels; items add light into the cell under them
// and Fade pulls every cell toward the background.
type Raster struct {
	cols, rows   int
	cellW, cellH float64
	cells        []rgb
	bg           rgb
}

func NewRaster(cols, rows, cellW, cellH int, bg color.RGBA) *Raster {
	r := &Raster{
		cellW: float64(cellW),
		cellH: float64(cellH),
		bg:    toRGB(bg, 1),
	}
	r.Resize(cols, rows)
	return r
}

// Resize reallocates the cells and clears them to the background
func (r *Raster) Resize(cols, rows int) {
	r.cols, r.rows = max(cols, 0), max(rows, 0)
	r.cells = make([]rgb, r.cols*r.rows)
	for i := range r.cells {
		r.cells[i] = r.bg
	}
}

// Size returns the raster dimensions in cells
func (r *Raster) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Virtual returns the simulation surface the raster stands for
func (r *Raster) Virtual() (width, height float64) {
	return float64(r.cols) * r.cellW, float64(r.rows) * r.cellH
}

// Fade blends every cell toward the background by alpha
func (r *Raster) Fade(alpha float64) {
	for i := range r.cells {
		c := &r.cells[i]
		c.r += (r.bg.r - c.r) * alpha
		c.g += (r.bg.g - c.g) * alpha
		c.b += (r.bg.b - c.b) * alpha
	}
}

// Add accumulates one projected item. Light is weighted by the share of the
// cell the item would cover, so a spark lights its cell dimly and a large
// near particle saturates it.
func (r *Raster) Add(it *sim.RenderItem, shellRadius, shellLight float64) {
	col := int(math.Floor(it.X / r.cellW))
	row := int(math.Floor(it.Y / r.cellH))
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}

	var c color.RGBA
	var area float64
	switch it.Kind {
	case sim.ItemShell:
		c = sim.HueColor(it.Hue, shellLight)
		rad := shellRadius * it.Scale
		area = math.Pi * rad * rad
	case sim.ItemSpark:
		c = it.Color
		rad := it.Size * it.Scale
		area = math.Pi * rad * rad
	default:
		c = it.Color
		rad := it.Size * it.Scale / 2
		area = math.Pi * rad * rad
	}

	weight := it.Alpha * math.Min(1, 4*area/(r.cellW*r.cellH))
	if it.Kind == sim.ItemShell {
		weight = math.Max(weight, it.Alpha)
	}
	add := toRGB(c, weight)

	cell := &r.cells[row*r.cols+col]
	cell.r = math.Min(1, cell.r+add.r)
	cell.g = math.Min(1, cell.g+add.g)
	cell.b = math.Min(1, cell.b+add.b)
}

// Cell returns the glyph and color for one cell. The glyph comes from ramp
// by brightness above the background.
func (r *Raster) Cell(col, row int, ramp []rune) (rune, color.RGBA) {
	c := r.cells[row*r.cols+col]
	lum := 0.2126*(c.r-r.bg.r) + 0.7152*(c.g-r.bg.g) + 0.0722*(c.b-r.bg.b)
	if len(ramp) == 0 {
		return ' ', fromRGB(c)
	}
	i := int(math.Round(math.Sqrt(math.Max(lum, 0)) * float64(len(ramp)-1)))
	i = min(max(i, 0), len(ramp)-1)
	return ramp[i], fromRGB(c)
}

func toRGB(c color.RGBA, weight float64) rgb {
	return rgb{
		r: float64(c.R) / 255 * weight,
		g: float64(c.G) / 255 * weight,
		b: float64(c.B) / 255 * weight,
	}
}

func fromRGB(c rgb) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(math.Min(c.r, 1) * 255)),
		G: uint8(math.Round(math.Min(c.g, 1) * 255)),
		B: uint8(math.Round(math.Min(c.b, 1) * 255)),
		A: 255,
	}
}
