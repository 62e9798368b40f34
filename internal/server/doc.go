// Package server implements the MCP (Model Context Protocol) server for the
// checker-board marker locator.
//
// This package provides a JSON-RPC 2.0 server that exposes the marker
// pipeline through the MCP protocol, so a client can select a region of a
// captured frame and get back the marker position and heading.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - marker_load: Load image and get metadata
//   - marker_locate: Run the full pipeline on a selected region
//   - marker_classify: Color sample points of a selected region
//   - marker_overlay: Pipeline result drawn on the working image (base64 PNG)
//   - marker_sample: One working image pixel as the classifier sees it
//   - marker_probe_luma: Luminance presence check on a whole frame
//
// Region tools take the selection corners x1, y1, x2, y2 in source pixels, in
// any order. All coordinates in results are working image pixels (224x96).
//
// # Image Caching
//
// Images are cached by path and reused across tool calls for the lifetime of
// the server process. marker_load always rereads the file, which refreshes
// the cache for frames rewritten in place.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses:
//   - -32602: malformed params, unknown tool, missing path or bad argument
//   - -32000: the tool ran and failed (unreadable file, region too small or
//     outside the image)
//   - -32601: unknown method
//
// A marker that is not found is not an error: the result carries a status
// and omits the missing outputs.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg, detection.NewFAST(cfg.MaxFeatures, cfg.FastThreshold))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
