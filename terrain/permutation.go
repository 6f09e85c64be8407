package terrain

import (
	"math/rand"
)

// PermutationTable keys the classic gradient noise. Entries 256..511 repeat
// 0..255 so hashed lookups never wrap.
type PermutationTable [512]int

// NewPermutationTable fills a table from rng.
func NewPermutationTable(rng *rand.Rand, mode PermutationMode) *PermutationTable {
	var base [256]int
	switch mode {
	case PermutationShuffle:
		copy(base[:], rng.Perm(256))
	default:
		for i := range base {
			base[i] = rng.Intn(256)
		}
	}
	return tableFrom(base)
}

// tableFrom duplicates base into a full table.
func tableFrom(base [256]int) *PermutationTable {
	var p PermutationTable
	for i := 0; i < 256; i++ {
		p[i] = base[i] & 255
		p[256+i] = p[i]
	}
	return &p
}
