// Package imaging connects the BRUH codec to standard raster image files.
//
// It loads PNG, JPEG, GIF, TIFF, BMP and WebP files into packed RGB buffers
// for the encoder, writes decoded RGBA buffers back out as rasters, and
// reports colors of loaded images. Codec rules live in package bruh; this
// package only moves pixels between image.Image values and raw buffers.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Alpha
//
// LoadRaw and FromImage drop alpha and keep the stored color values, so a
// half-transparent red pixel encodes as ff0000. Decoded documents are always
// fully opaque.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless.
//
// # Error Handling
//
// Failures to read, decode, encode or write files wrap storage.ErrIO.
// Malformed BRUH documents surface the bruh package's sentinel errors.
package imaging
