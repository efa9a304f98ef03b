package gks

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/gogpu/gks/displaylist"
)

// Driver renders, persists or reads kernel calls for one workstation.
//
// The kernel calls Call once per dispatched function with the encoded
// operands and the current state. Arrays are non-nil whenever they have
// elements. DX, DY and DimX are zero except for cell arrays and images.
// Output drivers must not modify rec; input and metafile input drivers
// write their results back into it.
//
// A driver error during fan-out to several workstations is logged and does
// not stop the remaining workstations.
type Driver interface {
	Call(fctid Opcode, rec *displaylist.Record, st *State) error
}

// DisplaySizer is implemented by drivers with a bounded display surface.
// The size, in device units, bounds the workstation viewport.
type DisplaySizer interface {
	DisplaySize() (width, height float64)
}

// Category classifies what a workstation can do.
type Category int

const (
	CategoryOutput Category = iota
	CategoryInput
	CategoryOutIn
	CategoryMO // metafile output
	CategoryMI // metafile input
)

var categoryNames = [...]string{
	CategoryOutput: "OUTPUT",
	CategoryInput:  "INPUT",
	CategoryOutIn:  "OUTIN",
	CategoryMO:     "MO",
	CategoryMI:     "MI",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// Output reports whether workstations of this category receive output.
func (c Category) Output() bool {
	return c == CategoryOutput || c == CategoryOutIn || c == CategoryMO
}

// Input reports whether workstations of this category serve input requests.
func (c Category) Input() bool {
	return c == CategoryInput || c == CategoryOutIn
}

// DriverFactory creates the driver for a newly opened workstation.
type DriverFactory func() Driver

// DriverType describes a registered workstation type.
type DriverType struct {
	Name     string
	Category Category
	New      DriverFactory
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[int]DriverType)
)

// RegisterDriver registers a workstation type. Driver packages call it
// from init, following the database/sql driver pattern:
//
//	func init() {
//	    gks.RegisterDriver(TypeMO, gks.DriverType{
//	        Name: "mo", Category: gks.CategoryMO, New: func() gks.Driver { return NewWriter() },
//	    })
//	}
//
// RegisterDriver panics if wtype is not positive, the factory is nil, or
// the type or name is already registered.
func RegisterDriver(wtype int, dt DriverType) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if wtype <= 0 {
		panic("gks: RegisterDriver with non-positive type " + strconv.Itoa(wtype))
	}
	if dt.New == nil {
		panic("gks: RegisterDriver factory is nil")
	}
	if _, dup := drivers[wtype]; dup {
		panic("gks: RegisterDriver called twice for type " + strconv.Itoa(wtype))
	}
	for _, other := range drivers {
		if dt.Name != "" && other.Name == dt.Name {
			panic("gks: RegisterDriver called twice for " + dt.Name)
		}
	}
	drivers[wtype] = dt
}

// UnregisterDriver removes a workstation type. It is mainly useful in
// tests; unknown types are ignored.
func UnregisterDriver(wtype int) {
	driversMu.Lock()
	defer driversMu.Unlock()
	delete(drivers, wtype)
}

// LookupDriver returns the registered workstation type.
func LookupDriver(wtype int) (DriverType, bool) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	dt, ok := drivers[wtype]
	return dt, ok
}

// DriverTypes returns the registered workstation types in ascending order.
func DriverTypes() []int {
	driversMu.RLock()
	defer driversMu.RUnlock()

	types := make([]int, 0, len(drivers))
	for t := range drivers {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// ParseWorkstationType resolves a workstation type given as a number or a
// registered driver name.
func ParseWorkstationType(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	driversMu.RLock()
	defer driversMu.RUnlock()
	for t, dt := range drivers {
		if dt.Name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("gks: unknown workstation type %q (forgotten import?)", s)
}
