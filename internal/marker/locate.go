package marker

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ironsheep/marker-tools-mcp/internal/imaging"
)

// Overlay colors, matching the selection tool's viewer.
const (
	TriangleColor  = "#00FF00"
	ApexColor      = "#FF0000"
	OrangeColor    = "#0000FF"
	SecondaryColor = "#00FF00"
)

// Status summarizes how far a run got.
type Status string

const (
	StatusFound           Status = "found"
	StatusMarkerNotFound  Status = "marker not found"
	StatusHeadingNotFound Status = "heading not found"
)

// Result is everything one run over a working image produced. Nil fields are
// stages that found nothing or were skipped.
type Result struct {
	Status  Status    `json:"status"`
	Samples ClassSets `json:"samples"`

	// Orange is the median of the orange points.
	Orange *imaging.Vertex `json:"orange,omitempty"`

	// White is the median of all white points, close or not.
	White *imaging.Vertex `json:"white,omitempty"`

	// Apex and Triangle come from the heading; both are nil without one.
	Apex     *imaging.Vertex  `json:"apex,omitempty"`
	Triangle []imaging.Vertex `json:"triangle,omitempty"`

	// Secondary is the median of the darker-orange points inside the triangle.
	Secondary *imaging.Vertex `json:"secondary,omitempty"`
	Inside    []Point         `json:"inside,omitempty"`

	// Features is nil when no orange centroid was found.
	Features *FeatureSummary `json:"features,omitempty"`

	Heading *Heading `json:"-"`
}

// Locate runs the whole pipeline over one working image.
//
// Without orange points the heading, secondary point and feature check are
// skipped. Without a close white point only the heading and secondary point
// are skipped; the feature check around the orange centroid still runs.
func Locate(img *image.NRGBA, detector KeypointDetector) *Result {
	res := &Result{
		Status:  StatusMarkerNotFound,
		Samples: Classify(img),
	}

	if w, ok := Median(res.Samples.White); ok {
		res.White = vertex(w)
	}

	orange, ok := Median(res.Samples.Orange)
	if !ok {
		return res
	}
	res.Orange = vertex(orange)
	res.Status = StatusHeadingNotFound

	if h, ok := BuildHeading(orange, res.Samples.White); ok {
		res.Status = StatusFound
		res.Heading = &h
		res.Apex = vertex(h.Apex)
		res.Triangle = make([]imaging.Vertex, len(h.Triangle))
		for i, v := range h.Triangle {
			res.Triangle[i] = *vertex(v)
		}

		if c, inside, ok := SecondaryPoint(res.Samples.DarkerOrange, h.Triangle); ok {
			res.Secondary = vertex(c)
			res.Inside = inside
		}
	}

	summary := Verifier{Detector: detector}.Verify(img, orange)
	res.Features = &summary

	return res
}

// LocateRegion resamples region of src to the working size and runs Locate
// on it. It returns the working image with the result so callers can render
// an overlay.
//
// Selections smaller than imaging.MinRegionSide on either side are rejected
// with imaging.ErrRegionTooSmall before any work is done.
func LocateRegion(src image.Image, region imaging.Region, detector KeypointDetector) (*image.NRGBA, *Result, error) {
	work, err := imaging.Resample(src, region)
	if err != nil {
		return nil, nil, err
	}
	return work, Locate(work, detector), nil
}

// Marks returns the overlay drawing for the result: the triangle outline and
// dots at the apex, orange centroid and secondary point.
func (r *Result) Marks() imaging.Marks {
	var m imaging.Marks
	if len(r.Triangle) > 0 {
		m.Outline = r.Triangle
		m.OutlineColor = TriangleColor
	}
	if r.Secondary != nil {
		m.Dots = append(m.Dots, imaging.Dot{At: *r.Secondary, Radius: 4, Color: SecondaryColor})
	}
	if r.Apex != nil {
		m.Dots = append(m.Dots, imaging.Dot{At: *r.Apex, Radius: 3, Color: ApexColor})
	}
	if r.Orange != nil {
		m.Dots = append(m.Dots, imaging.Dot{At: *r.Orange, Radius: 3, Color: OrangeColor})
	}
	return m
}

func vertex(v r2.Vec) *imaging.Vertex {
	return &imaging.Vertex{X: v.X, Y: v.Y}
}
