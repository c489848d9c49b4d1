// Package server implements the MCP (Model Context Protocol) server for Canny
// edge detection.
//
// This package provides a JSON-RPC 2.0 server that exposes the edge pipeline
// through the MCP protocol, so MCP-compatible clients can extract edge maps
// from image files and inspect the intermediate stages.
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
//   - image_load: Load image and get metadata
//   - image_edge_detect: Binary edge mask, optionally for a region
//   - image_edge_stages: Every intermediate pipeline stage
//   - image_edge_overlay: Edges painted over the source image
//   - image_gaussian_kernel: Normalized smoothing kernel weights
//
// The edge tools accept kernel_size, sigma, threshold_low and threshold_high.
// Omitted parameters fall back to the server's Config.Defaults, which
// ConfigFromEnv reads from CANNY_MCP_* environment variables.
//
// # Image Caching
//
// The server keeps decoded images and their grayscale grids in memory, keyed
// by path, for the lifetime of the process. Re-running detection with new
// thresholds does not re-read the file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params) or
//     -32601 (unknown method)
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
