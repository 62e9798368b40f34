package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ironsheep/marker-tools-mcp/internal/imaging"
	"github.com/ironsheep/marker-tools-mcp/internal/marker"
)

var errLocateUsage = errors.New("usage: locate <image> <x1> <y1> <x2> <y2>")

// runLocate runs the pipeline once on the region given in args and writes the
// keypoint summary followed by the full result as JSON.
func runLocate(args []string, det marker.KeypointDetector, out io.Writer) error {
	if len(args) != 5 {
		return errLocateUsage
	}

	var corners [4]int
	for i, s := range args[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: bad coordinate %q", errLocateUsage, s)
		}
		corners[i] = n
	}
	region := imaging.Region{X1: corners[0], Y1: corners[1], X2: corners[2], Y2: corners[3]}

	img, err := imaging.NewImageCache().Load(args[0])
	if err != nil {
		return err
	}

	_, res, err := marker.LocateRegion(img, region, det)
	if err != nil {
		return err
	}

	if res.Features != nil {
		fmt.Fprintf(out, "Number of keypoints: %d\n", res.Features.Count)
		if res.Features.Count > 0 {
			fmt.Fprintf(out, "Average keypoint quality: %g\n", res.Features.AverageQuality)
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
