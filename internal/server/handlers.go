package server

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/bruh/internal/bruh"
	"github.com/ironsheep/bruh/internal/imaging"
	"github.com/ironsheep/bruh/internal/storage"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bruh_compile").
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
		log.Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return s.toolResponse(req.ID, params.Name, result)
}

// toolResponse wraps a tool result as MCP text content. A result that cannot
// be marshaled yields a -32603 internal error instead of empty content.
func (s *Server) toolResponse(id interface{}, tool string, result interface{}) *MCPResponse {
	text, err := marshalJSON(result)
	if err != nil {
		log.Error("failed to marshal tool result", "tool", tool, "err", err)
		return s.errorResponse(id, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "bruh_load":
		return s.handleLoad(args)
	case "bruh_compile":
		return s.handleCompile(args)
	case "bruh_preview":
		return s.handlePreview(args)
	case "bruh_inspect":
		return s.handleInspect(args)
	case "bruh_sample_color":
		return s.handleSampleColor(args)
	case "bruh_encode_pixels":
		return s.handleEncodePixels(args)
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

// marshalJSON converts a value to a pretty-printed JSON string.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(b), nil
}

// unmarshalArgs decodes tool arguments, treating absent arguments as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// ConvertResult describes a file written by a conversion tool.
type ConvertResult struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	SizeBytes int    `json:"size_bytes"`
}

type compileArgs struct {
	Path    string `json:"path"`
	Output  string `json:"output"`
	Workers int    `json:"workers"`
}

func (s *Server) handleCompile(args json.RawMessage) (interface{}, error) {
	var a compileArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Output == "" {
		a.Output = imaging.BruhPath(a.Path)
	}
	if storage.SamePath(a.Output, a.Path) {
		return nil, fmt.Errorf("output %s would overwrite the input", a.Output)
	}
	if a.Workers == 0 {
		a.Workers = s.cfg.Compile.Workers
	}

	raw, err := imaging.LoadRaw(a.Path)
	if err != nil {
		return nil, err
	}
	return s.writeDocument(raw, a.Path, a.Output, a.Workers)
}

// writeDocument encodes raw and stores it atomically at output.
func (s *Server) writeDocument(raw *bruh.RawImage, input, output string, workers int) (*ConvertResult, error) {
	enc := bruh.Encoder{Workers: workers}
	doc, err := enc.Encode(raw)
	if err != nil {
		return nil, err
	}
	if err := storage.WriteFileAtomic(output, doc, storage.DefaultPerm); err != nil {
		return nil, err
	}
	s.cache.Evict(output)

	return &ConvertResult{
		Input:     input,
		Output:    output,
		Width:     raw.Width,
		Height:    raw.Height,
		SizeBytes: len(doc),
	}, nil
}

type previewArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
	Scale  int    `json:"scale"`
}

func (s *Server) handlePreview(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Output == "" {
		a.Output = s.cfg.Preview.Output
	}
	if a.Scale == 0 {
		a.Scale = s.cfg.Preview.Scale
	}

	data, err := storage.ReadFile(a.Path)
	if err != nil {
		return nil, err
	}
	dec := bruh.Decoder{StrictRows: s.cfg.Decode.StrictRows}
	raw, err := dec.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := imaging.SaveRaw(raw, a.Output, imaging.SaveOptions{Scale: a.Scale}); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)

	return &ConvertResult{
		Input:     a.Path,
		Output:    a.Output,
		Width:     raw.Width,
		Height:    raw.Height,
		SizeBytes: len(data),
	}, nil
}

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleInspect(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	data, err := storage.ReadFile(a.Path)
	if err != nil {
		return nil, err
	}
	if s.cfg.Decode.StrictRows {
		strict := bruh.Decoder{StrictRows: true}
		if _, err := strict.Decode(data); err != nil {
			return nil, err
		}
	}
	return imaging.InspectDocument(data)
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type encodePixelsArgs struct {
	Width  uint32  `json:"width"`
	Height uint32  `json:"height"`
	Pixels [][]int `json:"pixels"`
	Output string  `json:"output"`
}

func (s *Server) handleEncodePixels(args json.RawMessage) (interface{}, error) {
	var a encodePixelsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, fmt.Errorf("output is required")
	}

	channels := make([]int, 0, 3*len(a.Pixels))
	for i, p := range a.Pixels {
		if len(p) != 3 {
			return nil, fmt.Errorf("pixel %d has %d channels, want 3", i, len(p))
		}
		channels = append(channels, p...)
	}

	raw, err := bruh.RawImageFromChannels(a.Width, a.Height, channels)
	if err != nil {
		return nil, err
	}
	return s.writeDocument(raw, "", a.Output, s.cfg.Compile.Workers)
}
