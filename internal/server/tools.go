package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "bruh_load",
			Description: "Load a BRUH document or raster image and return its dimensions, format and file size. The image is cached for later calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a .bruh document or raster image",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bruh_compile",
			Description: "Convert a raster image (PNG, JPEG, GIF, TIFF, BMP, WebP) into a BRUH document. Alpha is dropped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster image",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional output path. Default: input path with its extension replaced by .bruh",
					},
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Optional number of goroutines encoding rows. Default from configuration",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bruh_preview",
			Description: "Decode a BRUH document and write it as a raster image. The output extension selects the format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the .bruh document",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional raster output path. Default from configuration (temp.png)",
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Optional nearest-neighbor upscale factor. Default 1",
						"default":     1,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bruh_inspect",
			Description: "Report the dimensions, token and newline counts, row alignment and average color of a BRUH document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the .bruh document",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bruh_sample_color",
			Description: "Get the color at a pixel of a BRUH document or raster image, including its BRUH token.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a .bruh document or raster image",
					},
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
		{
			Name:        "bruh_encode_pixels",
			Description: "Encode explicit RGB pixel values into a BRUH document. Channels must be integers in 0-255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels",
					},
					"pixels": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":     "array",
							"items":    map[string]interface{}{"type": "integer"},
							"minItems": 3,
							"maxItems": 3,
						},
						"description": "Row-major [r, g, b] triples, width*height entries",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the .bruh document to write",
					},
				},
				"required": []string{"width", "height", "pixels", "output"},
			},
		},
	}
}
