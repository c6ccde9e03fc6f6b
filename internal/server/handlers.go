package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/shape-detect-mcp/internal/detection"
	"github.com/ironsheep/shape-detect-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_detect_shapes").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for omitted parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/detection function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Shape Detection
	case "image_detect_shapes":
		return s.handleImageDetectShapes(args)
	case "image_shape_overlay":
		return s.handleImageShapeOverlay(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Shape Detection Handlers ===

type imageDetectShapesArgs struct {
	Path                 string  `json:"path"`
	Threshold            int     `json:"threshold"`
	MinArea              int     `json:"min_area"`
	DouglasPeuckerRatio  float64 `json:"douglas_peucker_ratio"`
	ColinearToleranceDeg float64 `json:"colinear_tolerance_deg"`
	Invert               bool    `json:"invert"`
	Region               string  `json:"region"`
}

// config builds the detection config, substituting defaults for zero values.
func (a imageDetectShapesArgs) config() detection.Config {
	cfg := detection.DefaultConfig()
	if a.Threshold != 0 {
		cfg.Threshold = a.Threshold
	}
	if a.MinArea != 0 {
		cfg.MinArea = a.MinArea
	}
	if a.DouglasPeuckerRatio != 0 {
		cfg.DouglasPeuckerRatio = a.DouglasPeuckerRatio
	}
	if a.ColinearToleranceDeg != 0 {
		cfg.ColinearToleranceDeg = a.ColinearToleranceDeg
	}
	return cfg
}

// DetectedShape is a detection.Shape annotated with the source color at its
// center.
type DetectedShape struct {
	detection.Shape

	// FillColor is "#RRGGBB" sampled at Center. For concave shapes the
	// center may fall outside the region, in which case this is the
	// background color there.
	FillColor string `json:"fill_color,omitempty"`
}

// DetectShapesResult is the image_detect_shapes tool result.
type DetectShapesResult struct {
	Shapes         []DetectedShape `json:"shapes"`
	ProcessingTime float64         `json:"processingTime"`
	ImageWidth     int             `json:"imageWidth"`
	ImageHeight    int             `json:"imageHeight"`
}

// detect loads the image and runs detection with the given arguments.
// Shape coordinates in the result are relative to the full image even when
// a region is selected; ImageWidth and ImageHeight describe the region.
func (s *Server) detect(a imageDetectShapesArgs) (image.Image, *detection.Result, error) {
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, nil, err
	}

	cfg := a.config()
	result, err := imaging.DetectInImage(img, a.Region, a.Invert, cfg)
	if err != nil {
		return nil, nil, err
	}

	s.debugf("detect %s: %d shapes in %.2fms (threshold=%d minArea=%d invert=%t region=%q)",
		a.Path, len(result.Shapes), result.ProcessingTime, cfg.Threshold, cfg.MinArea, a.Invert, a.Region)
	return img, result, nil
}

func (s *Server) handleImageDetectShapes(args json.RawMessage) (interface{}, error) {
	var a imageDetectShapesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, result, err := s.detect(a)
	if err != nil {
		return nil, err
	}

	shapes := make([]DetectedShape, len(result.Shapes))
	for i, shape := range result.Shapes {
		shapes[i].Shape = shape
		// Center always lies within the bounding box, so sampling cannot fail.
		if hex, err := imaging.SampleColorHex(img, shape.Center.X, shape.Center.Y); err == nil {
			shapes[i].FillColor = hex
		}
	}

	return &DetectShapesResult{
		Shapes:         shapes,
		ProcessingTime: result.ProcessingTime,
		ImageWidth:     result.ImageWidth,
		ImageHeight:    result.ImageHeight,
	}, nil
}

func (s *Server) handleImageShapeOverlay(args json.RawMessage) (interface{}, error) {
	var a imageDetectShapesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, result, err := s.detect(a)
	if err != nil {
		return nil, err
	}
	return imaging.RenderOverlay(img, result.Shapes, imaging.DefaultOverlayOptions())
}
