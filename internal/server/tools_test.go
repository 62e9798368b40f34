package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"marker_load",
		"marker_locate",
		"marker_classify",
		"marker_overlay",
		"marker_sample",
		"marker_probe_luma",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Tool %s defined twice", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}

			// Every required parameter must be described.
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property", r)
				}
			}

			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
					break
				}
			}
			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_RegionCoordinates(t *testing.T) {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, name := range []string{"marker_locate", "marker_classify", "marker_overlay", "marker_sample"} {
		t.Run(name, func(t *testing.T) {
			tool, ok := toolMap[name]
			if !ok {
				t.Fatalf("%s tool not found", name)
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("required should be a string slice")
			}

			expectedRequired := map[string]bool{
				"path": true,
				"x1":   true,
				"y1":   true,
				"x2":   true,
				"y2":   true,
			}
			for _, r := range required {
				delete(expectedRequired, r)
			}
			for missing := range expectedRequired {
				t.Errorf("%s should require '%s' parameter", name, missing)
			}
		})
	}
}

func TestToolDefinitions_OverlayScale(t *testing.T) {
	var tool Tool
	for _, tt := range GetToolDefinitions() {
		if tt.Name == "marker_overlay" {
			tool = tt
			break
		}
	}
	if tool.Name == "" {
		t.Fatal("marker_overlay tool not found")
	}

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}
	scale, ok := props["scale"].(map[string]interface{})
	if !ok {
		t.Fatal("scale property should exist and be a map")
	}
	if scale["maximum"] != maxOverlayScale {
		t.Errorf("scale maximum: got %v, want %d", scale["maximum"], maxOverlayScale)
	}

	required, _ := tool.InputSchema["required"].([]string)
	for _, r := range required {
		if r == "scale" {
			t.Error("scale should be optional")
		}
	}

	// The shared region schema must not pick up the overlay-only parameter.
	for _, tt := range GetToolDefinitions() {
		if tt.Name == "marker_locate" {
			p := tt.InputSchema["properties"].(map[string]interface{})
			if _, ok := p["scale"]; ok {
				t.Error("marker_locate should not accept scale")
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(nil, nil)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}
