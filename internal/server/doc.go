// Package server implements the MCP (Model Context Protocol) server for the
// pixel pipeline.
//
// This package provides a JSON-RPC 2.0 server that exposes lazy filter
// chains and the blend engine through the MCP protocol, so that MCP clients
// can transform and inspect images without writing code.
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
// Pipeline Operations:
//   - pipeline_render: Apply filter steps and return PNG
//   - pipeline_sample: Evaluate filter steps at chosen pixels
//
// Blend Operations:
//   - blend_colors: Blend two hex colors
//   - blend_images: Blend two images, padding to common bounds
//
// Discovery:
//   - list_blend_modes
//   - list_filters
//
// A pipeline step names a filter and the fields it needs:
//
//	{"path": "/img/a.png", "steps": [
//	  {"filter": "grayscale"},
//	  {"filter": "unsharp_mask", "scale": 0.8},
//	  {"filter": "threshold", "low": "#000080", "high": "#FFFF00"}
//	]}
//
// Steps are built over a named source and bound against the server's image
// cache before any pixel is read. pipeline_sample evaluates only the
// requested pixels; pipeline_render materializes the whole chain.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.WithSequential(false))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
