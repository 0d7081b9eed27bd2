// Package server exposes the BRUH codec to MCP (Model Context Protocol)
// clients.
//
// Requests arrive as JSON-RPC 2.0 objects, one per line, and each response is
// written as a single line:
//   - initialize: protocol handshake
//   - tools/list: enumerate the tools below
//   - tools/call: execute a tool with arguments
//   - ping: health check
//
// # Tools
//
//   - bruh_load: dimensions, format and size of a document or raster image
//   - bruh_compile: raster image to .bruh document
//   - bruh_preview: .bruh document to raster image (default temp.png)
//   - bruh_inspect: header, token and newline counts, row alignment, average color
//   - bruh_sample_color: color and token at one pixel
//   - bruh_encode_pixels: explicit [r, g, b] triples to .bruh document
//
// Loaded images are cached by path for the lifetime of the server. Any file
// a tool writes is evicted from the cache.
//
// # Errors
//
// A failing tool yields code -32000 with the Go error string as data.
// Unknown methods yield -32601, unparseable tools/call params -32602 and a
// result that cannot be marshaled -32603. bruh_compile refuses an output
// path that resolves to its input. With decode.strict_rows set, bruh_inspect
// and bruh_preview fail on misaligned rows.
//
//	srv := server.New(cfg, version)
//	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
