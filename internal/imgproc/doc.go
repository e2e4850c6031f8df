// Package imgproc implements the task body of the pipeline: decode an image
// file, apply a pixel transform and encode the result into the output
// directory.
//
// The default transform is color inversion, which is where the tool's output
// naming convention ("inverted_" + input name) comes from. Grayscale and
// horizontal/vertical flips are available as alternatives, each with its own
// conventional prefix.
//
// Decoding honors EXIF orientation, so photos shot sideways come out the
// right way up. Encoding format follows the output file extension; JPEG
// quality is configurable.
//
// A Processor is stateless apart from its configuration, so one instance is
// safe to share across all pipeline workers.
package imgproc
