package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vertex is a real-valued point in working image coordinates.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dot is a filled disc drawn at a point of interest.
type Dot struct {
	At     Vertex
	Radius float64
	Color  string // "#RRGGBB"
}

// Marks lists what to draw on top of a working image.
type Marks struct {
	// Outline is a closed polygon; empty means no polygon.
	Outline      []Vertex
	OutlineColor string
	Dots         []Dot
	Grid         Grid
}

// OverlayResult contains the annotated image as base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Overlay draws marks on a copy of img and scales the result up by scale
// using nearest-neighbor interpolation. img itself is not modified.
//
// Polygon edges and dots are clipped to the image; vertices may lie far
// outside it.
func Overlay(img image.Image, marks Marks, scale int) (*OverlayResult, error) {
	if scale < 1 {
		scale = 1
	}

	bounds := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	if marks.Grid.Spacing > 0 {
		hex := marks.Grid.Color
		if hex == "" {
			hex = DefaultGridColor
		}
		c, err := parseColor(hex)
		if err != nil {
			return nil, err
		}
		drawGrid(canvas, marks.Grid.Spacing, c)
	}

	if len(marks.Outline) > 1 {
		c, err := parseColor(marks.OutlineColor)
		if err != nil {
			return nil, err
		}
		for i := range marks.Outline {
			drawLine(canvas, marks.Outline[i], marks.Outline[(i+1)%len(marks.Outline)], c)
		}
	}

	for _, d := range marks.Dots {
		c, err := parseColor(d.Color)
		if err != nil {
			return nil, err
		}
		fillDisc(canvas, d.At, d.Radius, c)
	}

	var out image.Image = canvas
	if scale > 1 {
		out = imaging.Resize(canvas, canvas.Bounds().Dx()*scale, canvas.Bounds().Dy()*scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &OverlayResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Scale:       scale,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func parseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid overlay color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawLine walks from a to b one pixel step at a time along the major axis.
func drawLine(img *image.NRGBA, a, b Vertex, c color.NRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		setClipped(img, int(math.Round(a.X)), int(math.Round(a.Y)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setClipped(img, int(math.Round(a.X+dx*t)), int(math.Round(a.Y+dy*t)), c)
	}
}

func fillDisc(img *image.NRGBA, center Vertex, radius float64, c color.NRGBA) {
	r2 := radius * radius
	x0 := int(math.Floor(center.X - radius))
	x1 := int(math.Ceil(center.X + radius))
	y0 := int(math.Floor(center.Y - radius))
	y1 := int(math.Ceil(center.Y + radius))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ddx := float64(x) - center.X
			ddy := float64(y) - center.Y
			if ddx*ddx+ddy*ddy <= r2 {
				setClipped(img, x, y, c)
			}
		}
	}
}

func setClipped(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}
