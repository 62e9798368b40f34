package marker

import (
	"fmt"
	"image"
)

// Class is one of the marker's color classes.
//
// Classes are independent predicates, not an exclusive labeling: the same
// pixel, and the same cell, can satisfy more than one.
type Class int

const (
	Orange Class = iota
	White
	DarkerOrange

	numClasses
)

// Classes lists every class in reporting order.
var Classes = [numClasses]Class{Orange, White, DarkerOrange}

func (c Class) String() string {
	switch c {
	case Orange:
		return "orange"
	case White:
		return "white"
	case DarkerOrange:
		return "darker_orange"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Levels are 8-bit channel values quantized to 16 levels (0-15).
type Levels struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Quantize maps 8-bit channels to levels by integer division by 16.
func Quantize(r, g, b uint8) Levels {
	return Levels{R: r / 16, G: g / 16, B: b / 16}
}

// Matches reports whether l satisfies the class thresholds.
func (c Class) Matches(l Levels) bool {
	switch c {
	case Orange:
		return l.R >= 12 && l.G >= 4 && l.G <= 11 && l.B <= 4
	case White:
		return l.R >= 13 && l.G >= 13 && l.B >= 13
	case DarkerOrange:
		return l.R >= 6 && l.R <= 12 && l.G >= 3 && l.G <= 8 && l.B <= 3
	default:
		return false
	}
}

// Sampling lattice. BlockSize is exported for drawing the lattice.
const (
	BlockSize     = 16
	cellsPerBlock = 4
	cellStride    = BlockSize / cellsPerBlock
	patchSize     = 4

	// minVotes is how many of a cell's 8 sampled pixels must match a class
	// for the cell to register under it.
	minVotes = 3
)

// Point is a sample point: the center of a cell in working image pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ClassSets holds the sample points of each class found in one run.
type ClassSets struct {
	Orange       []Point `json:"orange"`
	White        []Point `json:"white"`
	DarkerOrange []Point `json:"darker_orange"`
}

// Of returns the points of class c.
func (s *ClassSets) Of(c Class) []Point {
	switch c {
	case Orange:
		return s.Orange
	case White:
		return s.White
	case DarkerOrange:
		return s.DarkerOrange
	default:
		return nil
	}
}

func (s *ClassSets) add(c Class, p Point) {
	switch c {
	case Orange:
		s.Orange = append(s.Orange, p)
	case White:
		s.White = append(s.White, p)
	case DarkerOrange:
		s.DarkerOrange = append(s.DarkerOrange, p)
	}
}

// Classify samples img on a sparse lattice and returns the cells matching
// each class.
//
// The image is split into 16×16 blocks. Each block holds a 4×4 grid of 4×4
// cells of which only the checker-board half with even (cx+cy) is visited.
// Inside a visited cell the pixels with even (px+py) are sampled, 8 of 16.
// A cell registers its center (anchor + 2,2) under every class matched by at
// least 3 of those 8 pixels.
//
// Blocks that do not fit entirely inside img are skipped; a 224×96 working
// image has none. The amount of work depends only on the image size.
func Classify(img *image.NRGBA) ClassSets {
	var sets ClassSets

	b := img.Bounds()
	for by := 0; by+BlockSize <= b.Dy(); by += BlockSize {
		for bx := 0; bx+BlockSize <= b.Dx(); bx += BlockSize {
			for cy := 0; cy < cellsPerBlock; cy++ {
				for cx := 0; cx < cellsPerBlock; cx++ {
					if (cx+cy)%2 != 0 {
						continue
					}
					x, y := bx+cx*cellStride, by+cy*cellStride
					votes := cellVotes(img, x, y)
					center := Point{X: x + patchSize/2, Y: y + patchSize/2}
					for _, c := range Classes {
						if votes[c] >= minVotes {
							sets.add(c, center)
						}
					}
				}
			}
		}
	}

	return sets
}

// cellVotes counts, per class, the sampled pixels of the cell anchored at
// (x, y) relative to the image origin.
func cellVotes(img *image.NRGBA, x, y int) [numClasses]int {
	var votes [numClasses]int
	origin := img.Bounds().Min
	for py := 0; py < patchSize; py++ {
		for px := 0; px < patchSize; px++ {
			if (px+py)%2 != 0 {
				continue
			}
			i := img.PixOffset(origin.X+x+px, origin.Y+y+py)
			l := Quantize(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
			for _, c := range Classes {
				if c.Matches(l) {
					votes[c]++
				}
			}
		}
	}
	return votes
}
