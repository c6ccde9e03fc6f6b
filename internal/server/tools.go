package server

import (
	"github.com/ironsheep/shape-detect-mcp/internal/detection"
	"github.com/ironsheep/shape-detect-mcp/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool's "path" argument.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// detectionProperties returns the argument schema shared by the detection
// tools. Defaults mirror detection.DefaultConfig.
func detectionProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty,
		"threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Luminance cutoff 0-255; pixels darker than this are foreground (default 128)",
			"default":     detection.DefaultThreshold,
		},
		"min_area": map[string]interface{}{
			"type":        "integer",
			"description": "Minimum region size in pixels; smaller regions are treated as noise (default 28)",
			"default":     detection.DefaultMinArea,
		},
		"douglas_peucker_ratio": map[string]interface{}{
			"type":        "number",
			"description": "Outline simplification tolerance as a fraction of the perimeter, floored at 4 pixels (default 0.02)",
			"default":     detection.DefaultDouglasPeuckerRatio,
		},
		"colinear_tolerance_deg": map[string]interface{}{
			"type":        "number",
			"description": "Corners within this many degrees of straight are removed (default 6)",
			"default":     detection.DefaultColinearToleranceDeg,
		},
		"invert": map[string]interface{}{
			"type":        "boolean",
			"description": "Invert colors first, for light shapes on a dark background",
			"default":     false,
		},
		"region": map[string]interface{}{
			"type":        "string",
			"enum":        imaging.RegionNames,
			"description": "Restrict detection to part of the image; coordinates stay relative to the full image (default full)",
			"default":     "full",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Shape Detection
		{
			Name: "image_detect_shapes",
			Description: "Detect dark filled shapes on a light background and classify each as circle, triangle, square, rectangle, or polygon. " +
				"Returns bounding box, center, area, perimeter, circularity, confidence, outline vertices, and fill color per shape.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectionProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_shape_overlay",
			Description: "Detect shapes and return the image with each outline, bounding box, and center drawn on top, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectionProperties(),
				"required":   []string{"path"},
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
