package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/marker-tools-mcp/internal/imaging"
	"github.com/ironsheep/marker-tools-mcp/internal/marker"
)

// maxOverlayScale bounds the overlay upscale so a single call cannot ask for
// an arbitrarily large PNG.
const maxOverlayScale = 8

// errInvalidArgs marks failures caused by the caller's arguments rather than
// by running the tool. They are reported with CodeInvalidParams.
var errInvalidArgs = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "marker_locate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Malformed or missing arguments return -32602. Anything that goes wrong
// while running the tool, including a selection that is too small, returns
// -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if errors.Is(err, errInvalidArgs) {
		return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
	}
	if err != nil {
		s.debugf("%s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, CodeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "marker_load":
		return s.handleMarkerLoad(args)
	case "marker_locate":
		return s.handleMarkerLocate(args)
	case "marker_classify":
		return s.handleMarkerClassify(args)
	case "marker_overlay":
		return s.handleMarkerOverlay(args)
	case "marker_sample":
		return s.handleMarkerSample(args)
	case "marker_probe_luma":
		return s.handleMarkerProbeLuma(args)
	default:
		return nil, fmt.Errorf("%w: unknown tool: %s", errInvalidArgs, name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and checks that a path was given.
func decodeArgs(args json.RawMessage, v interface{ path() string }) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing arguments", errInvalidArgs)
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	if v.path() == "" {
		return fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	return nil
}

// === Image Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (a *pathArgs) path() string { return a.Path }

func (s *Server) handleMarkerLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	// Frames are often rewritten in place, so an explicit load rereads the file.
	s.cache.Evict(a.Path)
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	s.debugf("marker_load %s: %dx%d, %d cached", a.Path, info.Width, info.Height, s.cache.Len())
	return info, nil
}

type markerProbeResult struct {
	Found bool    `json:"found"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func (s *Server) handleMarkerProbeLuma(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	c, ok := marker.ProbeLuma(imaging.Luma(img))
	if !ok {
		return &markerProbeResult{}, nil
	}
	return &markerProbeResult{Found: true, X: c.X, Y: c.Y}, nil
}

// === Region Handlers ===

type regionArgs struct {
	Path string `json:"path"`
	X1   int    `json:"x1"`
	Y1   int    `json:"y1"`
	X2   int    `json:"x2"`
	Y2   int    `json:"y2"`
}

func (a *regionArgs) path() string { return a.Path }

func (a *regionArgs) region() imaging.Region {
	return imaging.Region{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2}
}

func (s *Server) handleMarkerLocate(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	_, res, err := marker.LocateRegion(img, a.region(), s.detector)
	if err != nil {
		return nil, err
	}
	s.debugf("marker_locate %s %+v: %s", a.Path, a.region(), res.Status)
	return res, nil
}

type markerClassifyResult struct {
	Samples marker.ClassSets `json:"samples"`
	Counts  map[string]int   `json:"counts"`
}

func (s *Server) handleMarkerClassify(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	work, err := imaging.Resample(img, a.region())
	if err != nil {
		return nil, err
	}

	sets := marker.Classify(work)
	counts := make(map[string]int, len(marker.Classes))
	for _, c := range marker.Classes {
		counts[c.String()] = len(sets.Of(c))
	}
	return &markerClassifyResult{Samples: sets, Counts: counts}, nil
}

type markerOverlayArgs struct {
	regionArgs
	Scale      int  `json:"scale"`
	ShowBlocks bool `json:"show_blocks"`
}

type markerOverlayResult struct {
	Status marker.Status `json:"status"`
	*imaging.OverlayResult
}

func (s *Server) handleMarkerOverlay(args json.RawMessage) (interface{}, error) {
	var a markerOverlayArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale < 0 || a.Scale > maxOverlayScale {
		return nil, fmt.Errorf("%w: scale must be between 1 and %d, got %d", errInvalidArgs, maxOverlayScale, a.Scale)
	}
	if a.Scale == 0 {
		a.Scale = s.overlayScale
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	work, res, err := marker.LocateRegion(img, a.region(), s.detector)
	if err != nil {
		return nil, err
	}

	marks := res.Marks()
	if a.ShowBlocks {
		marks.Grid = imaging.Grid{Spacing: marker.BlockSize}
	}
	overlay, err := imaging.Overlay(work, marks, a.Scale)
	if err != nil {
		return nil, err
	}
	return &markerOverlayResult{Status: res.Status, OverlayResult: overlay}, nil
}

type markerSampleArgs struct {
	regionArgs
	X *int `json:"x"`
	Y *int `json:"y"`
}

type markerSampleResult struct {
	*imaging.ColorResult
	Levels  marker.Levels `json:"levels"`
	Classes []string      `json:"classes"`
}

// handleMarkerSample reports one working image pixel the way the classifier
// sees it: its color, quantized levels and every class those levels match.
func (s *Server) handleMarkerSample(args json.RawMessage) (interface{}, error) {
	var a markerSampleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.X == nil || a.Y == nil {
		return nil, fmt.Errorf("%w: x and y are required", errInvalidArgs)
	}
	if *a.X < 0 || *a.X >= imaging.WorkingWidth || *a.Y < 0 || *a.Y >= imaging.WorkingHeight {
		return nil, fmt.Errorf("%w: (%d,%d) is outside the %dx%d working image",
			errInvalidArgs, *a.X, *a.Y, imaging.WorkingWidth, imaging.WorkingHeight)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	work, err := imaging.Resample(img, a.region())
	if err != nil {
		return nil, err
	}

	c, err := imaging.SampleColor(work, *a.X, *a.Y)
	if err != nil {
		return nil, err
	}

	levels := marker.Quantize(c.RGB.R, c.RGB.G, c.RGB.B)
	classes := []string{}
	for _, cl := range marker.Classes {
		if cl.Matches(levels) {
			classes = append(classes, cl.String())
		}
	}
	return &markerSampleResult{ColorResult: c, Levels: levels, Classes: classes}, nil
}
