package memtype

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// MaxMemoryTypes is the number of memory type slots a physical device can advertise. Bit i of a
// memory type bitmask refers to slot i.
const MaxMemoryTypes int = 32

// Catalog is an immutable snapshot of the memory types advertised by a physical device.
// Slots past Len are never eligible for selection.
type Catalog struct {
	flags [MaxMemoryTypes]core1_0.MemoryPropertyFlags
	count int
}

// NewCatalog builds a Catalog from the memory types reported by the driver
func NewCatalog(memoryTypes []core1_0.MemoryType) (Catalog, error) {
	var catalog Catalog
	if len(memoryTypes) > MaxMemoryTypes {
		return catalog, errors.Newf("physical device reported %d memory types, but at most %d are addressable", len(memoryTypes), MaxMemoryTypes)
	}

	for i, memoryType := range memoryTypes {
		catalog.flags[i] = memoryType.PropertyFlags
	}
	catalog.count = len(memoryTypes)

	return catalog, nil
}

// CatalogFromFlags builds a Catalog directly from property flag sets, one per memory type
func CatalogFromFlags(flags ...core1_0.MemoryPropertyFlags) (Catalog, error) {
	memoryTypes := make([]core1_0.MemoryType, 0, len(flags))
	for _, f := range flags {
		memoryTypes = append(memoryTypes, core1_0.MemoryType{PropertyFlags: f})
	}

	return NewCatalog(memoryTypes)
}

// Len returns the number of memory types the device advertised
func (c Catalog) Len() int {
	return c.count
}

// Flags returns the property flags of the memory type at the provided index
func (c Catalog) Flags(memoryTypeIndex int) core1_0.MemoryPropertyFlags {
	if memoryTypeIndex < 0 || memoryTypeIndex >= c.count {
		return 0
	}
	return c.flags[memoryTypeIndex]
}

// IsHostNonCoherent returns true if the memory type can be mapped but requires explicit
// flushes and invalidations
func (c Catalog) IsHostNonCoherent(memoryTypeIndex int) bool {
	flags := c.Flags(memoryTypeIndex)

	return flags&(core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent) == core1_0.MemoryPropertyHostVisible
}

// TypeBits returns a bitmask with one bit set for every advertised memory type
func (c Catalog) TypeBits() uint32 {
	var typeBits uint32
	for memoryTypeIndex := 0; memoryTypeIndex < c.count; memoryTypeIndex++ {
		typeBits |= 1 << memoryTypeIndex
	}

	return typeBits
}
