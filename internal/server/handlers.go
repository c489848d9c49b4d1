package server

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
	"github.com/ironsheep/canny-edge-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_detect").
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

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.cfg.Debug {
		log.Printf("Tool %s finished in %v (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
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
//  2. Merges optional pipeline parameters over the server defaults
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_edge_stages":
		return s.handleImageEdgeStages(args)
	case "image_edge_overlay":
		return s.handleImageEdgeOverlay(args)
	case "image_gaussian_kernel":
		return s.handleGaussianKernel(args)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// pipelineArgs are the optional pipeline parameters shared by the edge tools.
// Zero kernel_size and sigma mean "use the server default". Thresholds are
// pointers because 0 is a meaningful low threshold.
type pipelineArgs struct {
	KernelSize    int     `json:"kernel_size"`
	Sigma         float64 `json:"sigma"`
	ThresholdLow  *int    `json:"threshold_low"`
	ThresholdHigh *int    `json:"threshold_high"`
}

// options merges the arguments over base and validates the result.
func (p pipelineArgs) options(base canny.Options) (canny.Options, error) {
	opts := base
	if p.KernelSize != 0 {
		opts.KernelSize = p.KernelSize
	}
	if p.Sigma != 0 {
		opts.Sigma = p.Sigma
	}
	if p.ThresholdLow != nil {
		v, err := thresholdValue("threshold_low", *p.ThresholdLow)
		if err != nil {
			return opts, err
		}
		opts.Low = v
	}
	if p.ThresholdHigh != nil {
		v, err := thresholdValue("threshold_high", *p.ThresholdHigh)
		if err != nil {
			return opts, err
		}
		opts.High = v
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func thresholdValue(name string, v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %s %d outside 0-255", canny.ErrInvalidParameter, name, v)
	}
	return uint8(v), nil
}

// === Image Information Handlers ===

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

// === Edge Detection Handlers ===

type imageEdgeDetectArgs struct {
	Path string `json:"path"`
	pipelineArgs
	Region     *imaging.Region `json:"region"`
	OutputPath string          `json:"output_path"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options(s.cfg.Defaults)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.EdgeDetect(img, opts, a.Region)
	if err != nil {
		return nil, err
	}
	if a.OutputPath != "" {
		if err := imaging.SaveMask(a.OutputPath, result.Mask); err != nil {
			return nil, err
		}
		result.SavedPath = a.OutputPath
	}
	return result, nil
}

type imageEdgeStagesArgs struct {
	Path string `json:"path"`
	pipelineArgs
	OutputDir string `json:"output_dir"`
}

func (s *Server) handleImageEdgeStages(args json.RawMessage) (interface{}, error) {
	var a imageEdgeStagesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options(s.cfg.Defaults)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.EdgeStages(img, opts)
	if err != nil {
		return nil, err
	}
	if a.OutputDir != "" {
		if err := os.MkdirAll(a.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		for _, stage := range result.Rendered {
			if err := imaging.SaveImage(filepath.Join(a.OutputDir, stage.Name+".png"), stage.Image); err != nil {
				return nil, err
			}
		}
		result.SavedDir = a.OutputDir
	}
	return result, nil
}

type imageEdgeOverlayArgs struct {
	Path string `json:"path"`
	pipelineArgs
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

func (s *Server) handleImageEdgeOverlay(args json.RawMessage) (interface{}, error) {
	var a imageEdgeOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Opacity == 0 {
		a.Opacity = 1.0
	}
	opts, err := a.options(s.cfg.Defaults)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EdgeOverlay(img, opts, a.Color, a.Opacity)
}

// === Kernel Handlers ===

type gaussianKernelArgs struct {
	KernelSize int     `json:"kernel_size"`
	Sigma      float64 `json:"sigma"`
}

// GaussianKernelResult describes a normalized smoothing kernel.
type GaussianKernelResult struct {
	Size    int         `json:"size"`
	Sigma   float64     `json:"sigma"`
	Sum     float64     `json:"sum"`
	Weights [][]float64 `json:"weights"`
}

func (s *Server) handleGaussianKernel(args json.RawMessage) (interface{}, error) {
	var a gaussianKernelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.KernelSize == 0 {
		a.KernelSize = s.cfg.Defaults.KernelSize
	}
	if a.Sigma == 0 {
		a.Sigma = s.cfg.Defaults.Sigma
	}

	k, err := canny.GaussianKernel(a.KernelSize, a.Sigma)
	if err != nil {
		return nil, err
	}
	return &GaussianKernelResult{
		Size:    k.Size,
		Sigma:   a.Sigma,
		Sum:     k.Sum(),
		Weights: k.Rows(),
	}, nil
}
