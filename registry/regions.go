package registry

import (
	"strings"

	"github.com/samber/lo"
)

// Region is a contiguous block of the national dex, one per historical generation.
// First and Last are zero-based, inclusive indices.
type Region struct {
	Name  string
	First int
	Last  int
}

var regions = []Region{
	{Name: "kanto", First: 0, Last: 150},
	{Name: "johto", First: 151, Last: 250},
	{Name: "hoenn", First: 251, Last: 385},
	{Name: "sinnoh", First: 386, Last: 492},
	{Name: "unova", First: 493, Last: 648},
	{Name: "kalos", First: 649, Last: 720},
	{Name: "alola", First: 721, Last: 808},
	{Name: "galar", First: 809, Last: 897},
	{Name: "hisui", First: 898, Last: 904},
	{Name: "paldea", First: 905, Last: 1024},
}

// Regions returns the region table in dex order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// ParseRegion matches a region by name, ignoring case.
func ParseRegion(name string) (Region, bool) {
	return lo.Find(regions, func(r Region) bool {
		return strings.EqualFold(r.Name, name)
	})
}

// Contains reports whether the zero-based index falls within the region.
func (r Region) Contains(index int) bool {
	return index >= r.First && index <= r.Last
}
