package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/blend"
	"github.com/ironsheep/pixel-pipeline-mcp/internal/filter"
	"github.com/ironsheep/pixel-pipeline-mcp/internal/imaging"
	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "pipeline_render").
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
		pixel.Logger().Debug("tool failed", "tool", params.Name, "err", err)
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
//  2. Applies default values for optional parameters
//  3. Builds a lazy source chain over named images
//  4. Binds the chain against the image cache
//  5. Samples or renders the chain and returns the result
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Pipeline Operations
	case "pipeline_render":
		return s.handlePipelineRender(args)
	case "pipeline_sample":
		return s.handlePipelineSample(args)

	// Blend Operations
	case "blend_colors":
		return s.handleBlendColors(args)
	case "blend_images":
		return s.handleBlendImages(args)

	// Discovery
	case "list_blend_modes":
		return s.handleListBlendModes()
	case "list_filters":
		return s.handleListFilters()

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

// === Pipeline Handlers ===

// pipelineStep is the wire form of a filter.Spec.
type pipelineStep struct {
	Filter    *filter.Kind `json:"filter"`
	Scale     float64      `json:"scale"`
	Low       string       `json:"low"`
	High      string       `json:"high"`
	Reference string       `json:"reference"`
}

// spec converts a step to a filter.Spec. Image paths stay unresolved until
// the chain is bound.
func (p pipelineStep) spec() (filter.Spec, error) {
	if p.Filter == nil {
		return filter.Spec{}, fmt.Errorf("step is missing a filter name")
	}
	spec := filter.Spec{Kind: *p.Filter, Scale: p.Scale}

	switch spec.Kind {
	case filter.KindThreshold:
		if p.Low != "" {
			c, err := imaging.ParseHexColor(p.Low)
			if err != nil {
				return filter.Spec{}, err
			}
			spec.Low = &c
		}
		if p.High != "" {
			c, err := imaging.ParseHexColor(p.High)
			if err != nil {
				return filter.Spec{}, err
			}
			spec.High = &c
		}
	case filter.KindCanvasPad:
		if p.Reference == "" {
			return filter.Spec{}, fmt.Errorf("canvas_pad step needs a reference image path")
		}
		spec.Reference = pixel.NewNamed(p.Reference)
	}
	return spec, nil
}

// buildPipeline wraps the image at path in the given steps and binds the
// result against the server cache.
func (s *Server) buildPipeline(path string, steps []pipelineStep) (pixel.Source, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	specs := make([]filter.Spec, len(steps))
	for i, step := range steps {
		spec, err := step.spec()
		if err != nil {
			return nil, fmt.Errorf("invalid step %d: %w", i, err)
		}
		specs[i] = spec
	}

	chain, err := filter.Chain(pixel.NewNamed(path), specs...)
	if err != nil {
		return nil, err
	}
	if err := chain.Bind(s.cache); err != nil {
		return nil, err
	}
	return chain, nil
}

type pipelineRenderArgs struct {
	Path  string         `json:"path"`
	Steps []pipelineStep `json:"steps"`
	Scale float64        `json:"scale"`
}

func (s *Server) handlePipelineRender(args json.RawMessage) (interface{}, error) {
	var a pipelineRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	chain, err := s.buildPipeline(a.Path, a.Steps)
	if err != nil {
		return nil, err
	}
	return imaging.Render(chain, a.Scale, s.materializeOptions()...)
}

type pipelineSampleArgs struct {
	Path   string         `json:"path"`
	Steps  []pipelineStep `json:"steps"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label"`
	} `json:"points"`
}

// PipelineSampleResult holds colors sampled from a filter chain.
type PipelineSampleResult struct {
	Width   int                          `json:"width"`
	Height  int                          `json:"height"`
	Samples []imaging.LabeledColorResult `json:"samples"`
}

func (s *Server) handlePipelineSample(args json.RawMessage) (interface{}, error) {
	var a pipelineSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	chain, err := s.buildPipeline(a.Path, a.Steps)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	samples, err := imaging.SampleColorsMulti(chain, points)
	if err != nil {
		return nil, err
	}
	return &PipelineSampleResult{
		Width:   chain.Width(),
		Height:  chain.Height(),
		Samples: samples.Samples,
	}, nil
}

// === Blend Handlers ===

type blendColorsArgs struct {
	Mode        *blend.Mode `json:"mode"`
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
}

func (s *Server) handleBlendColors(args json.RawMessage) (interface{}, error) {
	var a blendColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Mode == nil {
		return nil, fmt.Errorf("mode is required")
	}
	src, err := imaging.ParseHexColor(a.Source)
	if err != nil {
		return nil, fmt.Errorf("invalid source: %w", err)
	}
	dst, err := imaging.ParseHexColor(a.Destination)
	if err != nil {
		return nil, fmt.Errorf("invalid destination: %w", err)
	}

	out, err := blend.Blend(*a.Mode, src, dst)
	if err != nil {
		return nil, err
	}
	result := imaging.NewColorResult(out)
	return &result, nil
}

type blendImagesArgs struct {
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Mode        *blend.Mode `json:"mode"`
	Scale       float64     `json:"scale"`
}

func (s *Server) handleBlendImages(args json.RawMessage) (interface{}, error) {
	var a blendImagesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Mode == nil {
		return nil, fmt.Errorf("mode is required")
	}
	if a.Source == "" || a.Destination == "" {
		return nil, fmt.Errorf("source and destination paths are required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	// Each layer is padded against the other so both cover the union of
	// their bounds.
	src := pixel.NewNamed(a.Source)
	dst := pixel.NewNamed(a.Destination)
	paddedSrc, err := filter.NewCanvasPad(src, dst)
	if err != nil {
		return nil, err
	}
	paddedDst, err := filter.NewCanvasPad(dst, src)
	if err != nil {
		return nil, err
	}
	composite, err := blend.NewComposite(paddedSrc, paddedDst, *a.Mode)
	if err != nil {
		return nil, err
	}
	if err := composite.Bind(s.cache); err != nil {
		return nil, err
	}
	return imaging.Render(composite, a.Scale, s.materializeOptions()...)
}

// === Discovery Handlers ===

// BlendModesResult lists the supported blend modes.
type BlendModesResult struct {
	Modes []string `json:"modes"`
}

func (s *Server) handleListBlendModes() (interface{}, error) {
	return &BlendModesResult{Modes: blendModeNames()}, nil
}

// FilterInfo describes one pipeline filter and the step fields it reads.
type FilterInfo struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
}

// FiltersResult lists the supported pipeline filters.
type FiltersResult struct {
	Filters []FilterInfo `json:"filters"`
}

var filterParameters = map[filter.Kind][]string{
	filter.KindThreshold:   {"low", "high"},
	filter.KindUnsharpMask: {"scale"},
	filter.KindCanvasPad:   {"reference"},
}

func (s *Server) handleListFilters() (interface{}, error) {
	kinds := filter.Kinds()
	result := &FiltersResult{Filters: make([]FilterInfo, len(kinds))}
	for i, k := range kinds {
		params := filterParameters[k]
		if params == nil {
			params = []string{}
		}
		result.Filters[i] = FilterInfo{Name: k.String(), Parameters: params}
	}
	return result, nil
}
