package server

import (
	"github.com/ironsheep/canny-edge-mcp/internal/canny"
	"github.com/ironsheep/canny-edge-mcp/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pipelineProperties returns the optional pipeline parameters shared by the
// edge tools, merged with extra.
func pipelineProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"kernel_size": map[string]interface{}{
			"type":        "integer",
			"description": "Gaussian kernel length, odd and >= 3. Default 5",
			"default":     canny.DefaultKernelSize,
		},
		"sigma": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian standard deviation, > 0. Default 1.4",
			"default":     canny.DefaultSigma,
		},
		"threshold_low": map[string]interface{}{
			"type":        "integer",
			"description": "Hysteresis low threshold (0-255). Suppressed magnitudes <= low are never edges. Default 40",
			"minimum":     0,
			"maximum":     255,
			"default":     canny.DefaultLow,
		},
		"threshold_high": map[string]interface{}{
			"type":        "integer",
			"description": "Hysteresis high threshold (0-255), must exceed threshold_low. Magnitudes >= high always start an edge. Default 100",
			"minimum":     0,
			"maximum":     255,
			"default":     canny.DefaultHigh,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and the edge mask size the default pipeline would produce.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Edge Detection
		{
			Name:        "image_edge_detect",
			Description: "Run Canny edge detection (Gaussian smoothing, Sobel gradient, non-maximum suppression, hysteresis) and return a binary edge mask as base64 PNG. The mask is smaller than the source; offset_x/offset_y give its position.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": pipelineProperties(map[string]interface{}{
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to process: either {\"name\": \"top-left\"|\"top-right\"|\"bottom-left\"|\"bottom-right\"|\"top-half\"|\"bottom-half\"|\"left-half\"|\"right-half\"|\"center\"} or {\"x1\",\"y1\",\"x2\",\"y2\"} with exclusive x2/y2",
						"properties": map[string]interface{}{
							"name": map[string]interface{}{"type": "string"},
							"x1":   map[string]interface{}{"type": "integer"},
							"y1":   map[string]interface{}{"type": "integer"},
							"x2":   map[string]interface{}{"type": "integer"},
							"y2":   map[string]interface{}{"type": "integer"},
						},
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to also write the mask to (.png, .jpg or .bmp)",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_edge_stages",
			Description: "Run Canny edge detection and return every intermediate stage (smoothed, magnitude, direction, suppressed, edges) as base64 PNG. Useful for tuning sigma and thresholds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": pipelineProperties(map[string]interface{}{
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional directory to also write <stage>.png files to",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_edge_overlay",
			Description: "Run Canny edge detection and return the source image with edge pixels painted in a colour, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": pipelineProperties(map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Edge colour as #rgb or #rrggbb. Default #ff0000",
						"default":     imaging.DefaultOverlayColor,
					},
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Edge opacity in (0,1]. Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path"},
			},
		},

		// Kernel Inspection
		{
			Name:        "image_gaussian_kernel",
			Description: "Return the normalized Gaussian smoothing kernel for a kernel size and sigma.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"kernel_size": map[string]interface{}{
						"type":        "integer",
						"description": "Kernel length, odd and >= 3. Default 5",
						"default":     canny.DefaultKernelSize,
					},
					"sigma": map[string]interface{}{
						"type":        "number",
						"description": "Standard deviation, > 0. Default 1.4",
						"default":     canny.DefaultSigma,
					},
				},
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
