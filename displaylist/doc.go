// Package displaylist encodes kernel function invocations into a compact,
// self-describing binary form.
//
// A Record captures one call: a function id, the three cell-array
// dimensions, an integer array, two float arrays and a character array.
// Records are appended to a Buffer for segment storage, or streamed through
// a Writer/Reader pair for metafiles. Every encoded record starts with its
// own total length, so a reader can skip or replay records without knowing
// anything about the function ids they carry.
//
// # Wire Format
//
// All integers are little-endian. Floats are IEEE-754 binary64.
//
//	u32  total length in bytes, including this field
//	i32  function id
//	i32  dx
//	i32  dy
//	i32  dimx
//	i32  n, followed by n × i32      integer array
//	i32  n, followed by n × f64      float array 1
//	i32  n, followed by n × f64      float array 2
//	i32  n, followed by n bytes      character array
//
// A metafile stream is a 6-byte header ("GKDL" followed by a u16 format
// version) and a sequence of records.
//
// The format is stable within a major version. Function ids are never
// renumbered; see the gks package for the registry.
package displaylist
