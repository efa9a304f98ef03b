// Package raster provides a PNG workstation that draws into an in-memory
// RGBA image with the emulation layer and golang.org/x/image/vector.
//
// Importing the package registers workstation type 140 ("png"):
//
//	import _ "github.com/gogpu/gks/driver/raster"
//
//	k.OpenWorkstation(1, "out.png", raster.TypePNG)
//
// The image is written to the workstation's path on UPDATE_WS and
// CLOSE_WS. An empty path keeps the image in memory only.
package raster

import "github.com/gogpu/gks"

// TypePNG is the workstation type of the PNG driver.
const TypePNG = 140

// DefaultSize is the width and height of images created through the
// registry.
const DefaultSize = 500

func init() {
	gks.RegisterDriver(TypePNG, gks.DriverType{
		Name:     "png",
		Category: gks.CategoryOutput,
		New:      func() gks.Driver { return New(DefaultSize, DefaultSize) },
	})
}
