package memtype

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// ErrNoSuitableMemoryType is returned when no memory type is both permitted by the candidate bitmask
// and carries every required property flag
var ErrNoSuitableMemoryType = errors.New("no suitable memory type")

// Find returns the lowest memory type index that is set in typeBits and whose property flags
// include every flag in required. Lower indices win ties: drivers list their preferred memory
// types first.
//
// An empty required set matches the first eligible memory type regardless of its flags. Only
// the catalog's advertised types are eligible: bits in typeBits at or past Len never match,
// even with an empty required set.
func Find(typeBits uint32, required core1_0.MemoryPropertyFlags, catalog Catalog) (int, error) {
	for memTypeIndex := 0; memTypeIndex < catalog.count; memTypeIndex++ {
		memTypeBit := uint32(1) << memTypeIndex

		if memTypeBit&typeBits == 0 {
			continue
		}

		if catalog.flags[memTypeIndex]&required == required {
			return memTypeIndex, nil
		}
	}

	return -1, errors.Wrapf(ErrNoSuitableMemoryType, "type bits %#x, required flags %s", typeBits, required)
}

// FindPreferred returns the memory type index in typeBits that carries every required flag and
// has the lowest cost, where cost is the number of preferred flags the type is missing plus the
// number of notPreferred flags it has. A zero-cost type is returned immediately; otherwise
// ties go to the lowest index.
func FindPreferred(
	typeBits uint32,
	required, preferred, notPreferred core1_0.MemoryPropertyFlags,
	catalog Catalog,
) (int, error) {
	bestMemoryTypeIndex := -1
	minCost := math.MaxInt

	for memTypeIndex := 0; memTypeIndex < catalog.count; memTypeIndex++ {
		memTypeBit := uint32(1) << memTypeIndex

		if memTypeBit&typeBits == 0 {
			// This memory type is banned by the bitmask
			continue
		}

		flags := catalog.flags[memTypeIndex]
		if flags&required != required {
			// This memory type is missing required flags
			continue
		}

		missingPreferredFlags := preferred & ^flags
		presentNotPreferredFlags := notPreferred & flags
		cost := bits.OnesCount32(uint32(missingPreferredFlags)) + bits.OnesCount32(uint32(presentNotPreferredFlags))
		if cost == 0 {
			return memTypeIndex, nil
		} else if cost < minCost {
			bestMemoryTypeIndex = memTypeIndex
			minCost = cost
		}
	}

	if bestMemoryTypeIndex < 0 {
		return -1, errors.Wrapf(ErrNoSuitableMemoryType, "type bits %#x, required flags %s", typeBits, required)
	}

	return bestMemoryTypeIndex, nil
}
