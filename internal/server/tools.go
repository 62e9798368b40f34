package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// regionProperties describes the path and selection corners shared by the
// region tools. Corners may be given in any order.
func regionProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"x1": map[string]interface{}{
			"type":        "integer",
			"description": "X coordinate of one selection corner (0-based)",
		},
		"y1": map[string]interface{}{
			"type":        "integer",
			"description": "Y coordinate of one selection corner (0-based)",
		},
		"x2": map[string]interface{}{
			"type":        "integer",
			"description": "X coordinate of the opposite corner (exclusive)",
		},
		"y2": map[string]interface{}{
			"type":        "integer",
			"description": "Y coordinate of the opposite corner (exclusive)",
		},
	}
}

var regionRequired = []string{"path", "x1", "y1", "x2", "y2"}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	overlayProps := regionProperties()
	overlayProps["scale"] = map[string]interface{}{
		"type":        "integer",
		"description": "Optional integer upscale of the 224x96 working image (1-8). Defaults to the server setting, normally 3",
		"minimum":     1,
		"maximum":     maxOverlayScale,
	}
	overlayProps["show_blocks"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Draw the 16x16 block lattice the classifier samples on",
	}

	sampleProps := regionProperties()
	sampleProps["x"] = map[string]interface{}{
		"type":        "integer",
		"description": "X coordinate in the 224x96 working image",
	}
	sampleProps["y"] = map[string]interface{}{
		"type":        "integer",
		"description": "Y coordinate in the 224x96 working image",
	}

	return []Tool{
		{
			Name:        "marker_load",
			Description: "Load an image file and return its dimensions, format and the working size selections are resampled to.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "marker_locate",
			Description: "Locate the checker-board marker inside a selected region. The region is resampled to 224x96 and the result " +
				"reports the orange and white centroids, the heading triangle, the secondary point and a keypoint summary of the " +
				"30x30 neighborhood around the orange centroid, all in working image pixels.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": regionProperties(),
				"required":   regionRequired,
			},
		},
		{
			Name:        "marker_classify",
			Description: "Return the orange, white and darker-orange sample points found in a selected region, in working image pixels.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": regionProperties(),
				"required":   regionRequired,
			},
		},
		{
			Name: "marker_overlay",
			Description: "Locate the marker in a selected region and return the working image as base64-encoded PNG with the heading " +
				"triangle (green), apex (red), orange centroid (blue) and secondary point (green) drawn on it.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": overlayProps,
				"required":   regionRequired,
			},
		},
		{
			Name: "marker_sample",
			Description: "Sample one pixel of the working image made from a selected region and report its color (hex, RGB, HSL), " +
				"its channels quantized to 16 levels and the color classes those levels match. Use it to see why a cell did or did not classify.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sampleProps,
				"required":   append(append([]string{}, regionRequired...), "x", "y"),
			},
		},
		{
			Name:        "marker_probe_luma",
			Description: "Quick presence check on the grayscale of a whole image: the median position of sparse samples with luminance between 100 and 255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
