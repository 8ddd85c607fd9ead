package devicedesc

import (
	"fmt"

	"github.com/gp4par/gp4par/pkg/par"
)

// catalog maps a known part number to its built-in site-catalog
// constructor, for projects that don't supply a device descriptor file.
var catalog = map[par.PartID]func() *Device{
	par.PartSLG46620: NewSLG46620,
}

// ByPart returns the built-in Device for a known part number.
func ByPart(part par.PartID) (*Device, error) {
	newFn, ok := catalog[part]
	if !ok {
		return nil, fmt.Errorf("devicedesc: no built-in descriptor for part %q (supply a device file instead)", part)
	}
	return newFn(), nil
}

// KnownParts returns the part numbers with a built-in site catalog, for
// `gp4par devices list`.
func KnownParts() []par.PartID {
	parts := make([]par.PartID, 0, len(catalog))
	for p := range catalog {
		parts = append(parts, p)
	}
	return parts
}
