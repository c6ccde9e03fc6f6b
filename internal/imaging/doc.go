// Package imaging bridges decoded image files and the detection pipeline.
//
// It loads and caches images from disk (PNG, JPEG, GIF, BMP, TIFF, WebP),
// converts them into detection.PixelBuffer values, samples pixel colors and
// renders detected shapes back over the source image.
//
// # Coordinate System
//
// All pixel coordinates are 0-based and relative to the image's top-left
// corner, even when image.Bounds() does not start at the origin.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and never modify the image they are given.
//
// # Color Representation
//
// Sampled colors are reported as:
//   - Hex: "#RRGGBB" uppercase (alpha excluded)
//   - RGB and RGBA: 8-bit non-premultiplied components
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
package imaging
