// Package gks is a device-independent 2D graphics kernel in the tradition of
// the Graphical Kernel System.
//
// A [Kernel] owns the drawing state: current attributes, ten normalization
// transformations, clipping, the aspect source flags and the attribute
// bundles. Applications draw in world coordinates (WC); the kernel maps them
// to normalized device coordinates (NDC) and forwards every operation, as an
// opcode plus a [displaylist.Record], to its workstations.
//
// # Workstations
//
// Up to [MaxWorkstations] workstations may be open at once. Each is served by
// a [Driver] registered for a workstation type, the same way database/sql
// registers drivers:
//
//	import _ "github.com/gogpu/gks/driver/raster"
//
// Output goes to every active workstation whose category accepts output.
// A driver error is logged and does not stop delivery to the others.
// Drivers that report a display size get a default viewport fitted to it,
// keeping the NDC unit square's aspect ratio.
//
// # Segments
//
// While a segment is open, output and attribute changes are recorded into it.
// A segment can later be redrawn, copied or associated with other
// workstations under its own 2x3 transformation:
//
//	k.CreateSegment(1)
//	k.Polyline(xs, ys)
//	k.CloseSegment()
//	k.SetSegmentTransform(1, gks.Rotate(math.Pi/4))
//	k.RedrawSegments(1)
//
// # Errors
//
// Operations return a *[Error] carrying the classic error number and the
// failing function. Every error wraps one of the package sentinels, so
// callers can test with errors.Is:
//
//	if errors.Is(err, gks.ErrNotOpen) { ... }
//
// # Logging
//
// The kernel logs nothing by default. Use [SetLogger] or [WithLogger] to
// install a *slog.Logger.
//
// # Related packages
//
//   - [github.com/gogpu/gks/emul] turns dashed lines, markers, text and fill
//     areas into primitives a simple device can draw.
//   - [github.com/gogpu/gks/font] provides stroke fonts.
//   - [github.com/gogpu/gks/displaylist] encodes the records drivers receive
//     and the metafile format.
//   - [github.com/gogpu/gks/driver/raster] draws PNG images.
//   - [github.com/gogpu/gks/driver/metafile] writes and reads metafiles.
package gks
