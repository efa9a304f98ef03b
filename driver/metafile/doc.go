// Package metafile provides the metafile workstation types.
//
// A metafile output workstation (type "mo") writes every output primitive,
// attribute, transformation and extension call it receives to a displaylist
// stream. A metafile input workstation (type "mi") reads such a stream back
// one item at a time for GetItem, ReadItem and InterpretItem:
//
//	import _ "github.com/gogpu/gks/driver/metafile"
//
//	k.OpenWorkstation(1, "picture.gkdl", metafile.TypeMO)
//	k.ActivateWorkstation(1)
//	// draw ...
//	k.CloseWorkstation(1)
//
// Replaying a metafile into another kernel reproduces the calls exactly:
//
//	k.OpenWorkstation(2, "picture.gkdl", metafile.TypeMI)
//	for {
//	    item, err := k.GetItem(2)
//	    if err != nil {
//	        break
//	    }
//	    data, _ := k.ReadItem(2, item.Length)
//	    k.InterpretItem(item.Type, data)
//	}
package metafile

import "github.com/gogpu/gks"

// Workstation types.
const (
	TypeMO = 2
	TypeMI = 3
)

func init() {
	gks.RegisterDriver(TypeMO, gks.DriverType{
		Name:     "mo",
		Category: gks.CategoryMO,
		New:      func() gks.Driver { return NewWriter() },
	})
	gks.RegisterDriver(TypeMI, gks.DriverType{
		Name:     "mi",
		Category: gks.CategoryMI,
		New:      func() gks.Driver { return NewReader() },
	})
}
