package galactic

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Universe holds the curated data tables for a single sci-fi universe.
// Every field is expected to be nonempty for the generators to produce
// results from this universe alone; an empty category falls back to mixed
// mode at draw time. A Universe is immutable after registration and callers
// must not modify slices obtained from it.
type Universe struct {
	FirstNamesMale   []string
	FirstNamesFemale []string
	LastNamesMale    []string
	LastNamesFemale  []string
	Ranks            []string
	Starships        []string
	StarshipClasses  []string
	Registries       []RegistryPattern
	BaseLocations    []string
	LocationDetails  []string
	Languages        []string
	Quotes           []string
	Characters       []Character
}

// RegistryPattern describes one starship registry format, e.g. an "NCC"
// prefix followed by four digits. Weight is the pattern's relative
// probability among the candidate patterns of a draw.
type RegistryPattern struct {
	Prefix string
	Digits int
	Weight float32
}

// Static universe registry. Register appends to it before first use.
var universes = map[string]Universe{
	"startrek": starTrek,
}

// Register adds a universe under the given name. It must be called before
// any generator runs; the registry is read-only afterwards and Register is
// not safe for concurrent use. Registering an existing name is an error.
func Register(name string, u Universe) error {
	if name == "" {
		return ErrEmptyUniverseName
	}
	if _, ok := universes[name]; ok {
		return fmt.Errorf("%w: %q", ErrUniverseExists, name)
	}
	universes[name] = u
	return nil
}

// Universes returns the names of all registered universes in sorted order.
func Universes() []string {
	return slices.Sorted(maps.Keys(universes))
}

// Lookup returns the universe registered under name. The name must match a
// registered key exactly; there is no normalization.
func Lookup(name string) (Universe, error) {
	u, ok := universes[name]
	if !ok {
		return Universe{}, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownUniverse, name, strings.Join(Universes(), ", "))
	}
	return u, nil
}

// collect resolves the items of one category. A named universe must exist;
// if its list for the category is empty the provider logs a warning and
// falls back to mixed mode, pooling the category across all universes.
// Pooling iterates universes in sorted-name order so that draws stay
// reproducible under a fixed seed.
func collect[T any](p *Provider, universe, category string, get func(Universe) []T) ([]T, error) {
	if universe != "" {
		u, err := Lookup(universe)
		if err != nil {
			return nil, err
		}
		if items := get(u); len(items) > 0 {
			return items, nil
		}
		p.log.Warn("universe does not provide category, falling back to mixed mode",
			"universe", universe, "category", category)
	}

	var items []T
	for _, name := range Universes() {
		items = append(items, get(universes[name])...)
	}
	return items, nil
}
