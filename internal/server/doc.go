// Package server implements the MCP (Model Context Protocol) server for shape detection.
//
// This package provides a JSON-RPC 2.0 server that exposes the detection
// pipeline through the MCP protocol, so an MCP client can turn a diagram or
// screenshot into a list of classified geometric shapes.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Operations:
//   - image_sample_color: Get color at pixel
//
// Shape Detection:
//   - image_detect_shapes: Detect and classify shapes, with fill color
//   - image_shape_overlay: Render detected outlines over the source image
//
// Both detection tools accept threshold, min_area, douglas_peucker_ratio,
// colinear_tolerance_deg and invert. Omitted or zero values fall back to
// the defaults in detection.DefaultConfig.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process, so a
// detect call followed by an overlay call decodes the file once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithDebug(true))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
