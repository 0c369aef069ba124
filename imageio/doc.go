// Package imageio moves canvas buffers across the image I/O boundary.
//
// Canvas buffers are packed 3-channel RGB. Encoders and displays consume
// image.Image values with interleaved RGBA pixels, so every buffer crosses
// the boundary through [ToImage], exactly once per save or show.
//
// # Formats
//
// Encoders are registered by format name, following the database/sql
// driver pattern. The built-in formats are png, jpeg, gif, bmp and tiff:
//
//	err := imageio.Save("out.png", buf)
//
// Register adds more:
//
//	func init() {
//	    imageio.Register("webp", myWebPEncoder{}, ".webp")
//	}
//
// # Display
//
// A [Display] shows an image under a window name. [Terminal] renders
// images as colored half-block characters.
package imageio
