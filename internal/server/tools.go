package server

import (
	"strings"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/blend"
	"github.com/ironsheep/pixel-pipeline-mcp/internal/filter"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// filterNames lists every filter kind a pipeline step may name.
func filterNames() []string {
	kinds := filter.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// blendModeNames lists every blend mode a tool may name.
func blendModeNames() []string {
	modes := blend.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// stepsProperty describes the filter chain accepted by the pipeline tools.
func stepsProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Filter stages applied in order, each wrapping the previous one. An empty list leaves the image unchanged.",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"filter": map[string]interface{}{
					"type":        "string",
					"enum":        filterNames(),
					"description": "Filter to apply",
				},
				"scale": map[string]interface{}{
					"type":        "number",
					"description": "unsharp_mask only: sharpening strength (0 leaves pixels unchanged)",
				},
				"low": map[string]interface{}{
					"type":        "string",
					"description": "threshold only: hex color for dark pixels (default #000000)",
				},
				"high": map[string]interface{}{
					"type":        "string",
					"description": "threshold only: hex color for light pixels (default #FFFFFF)",
				},
				"reference": map[string]interface{}{
					"type":        "string",
					"description": "canvas_pad only: absolute path of the image whose size the canvas grows to",
				},
			},
			"required": []string{"filter"},
		},
	}
}

func scaleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": "Resize factor applied to the rendered output (default 1.0)",
		"default":     1.0,
	}
}

func modeProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        blendModeNames(),
		"description": "Blend mode, e.g. " + strings.Join([]string{blend.Multiply.String(), blend.Screen.String(), blend.Overlay.String()}, ", "),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file into the cache and return its dimensions and format. Pipelines that name the same path reuse the cached image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
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
					"path": pathProperty("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},

		// Pipeline Operations
		{
			Name:        "pipeline_render",
			Description: "Apply a chain of pixel filters to an image and return the result as base64-encoded PNG. Neighborhood filters leave the one-pixel border unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty("Absolute path to the base image"),
					"steps": stepsProperty(),
					"scale": scaleProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pipeline_sample",
			Description: "Evaluate a filter chain at specific pixels without rendering the whole image. Returns each color as hex, RGB, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty("Absolute path to the base image"),
					"steps": stepsProperty(),
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Pixels to evaluate",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},

		// Blend Operations
		{
			Name:        "blend_colors",
			Description: "Blend a source color over a destination color. The result keeps the source alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"mode": modeProperty(),
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Source (top layer) hex color: #RGB, #RRGGBB or #RRGGBBAA",
					},
					"destination": map[string]interface{}{
						"type":        "string",
						"description": "Destination (bottom layer) hex color",
					},
				},
				"required": []string{"mode", "source", "destination"},
			},
		},
		{
			Name:        "blend_images",
			Description: "Blend two images pixel by pixel and return base64-encoded PNG. Images of different sizes are padded with transparent pixels to their common bounds first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source":      pathProperty("Absolute path to the source (top layer) image"),
					"destination": pathProperty("Absolute path to the destination (bottom layer) image"),
					"mode":        modeProperty(),
					"scale":       scaleProperty(),
				},
				"required": []string{"source", "destination", "mode"},
			},
		},

		// Discovery
		{
			Name:        "list_blend_modes",
			Description: "List the blend modes accepted by blend_colors and blend_images.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "list_filters",
			Description: "List the filters accepted as pipeline steps.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
