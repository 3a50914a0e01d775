// Package galactic is a science-fiction data provider for the gofakeit
// fake-data framework. It supplies hand-curated lists of sci-fi themed
// strings (names, ranks, starships, registries, locations, languages,
// quotes) and canonical character records, grouped into universes, and
// exposes generator methods that pick random entries or assemble a few
// random entries into composite strings.
//
// All data is static and immutable: a Universe is a plain record of string
// slices constructed once at package load. Generation is a non-destructive
// read plus a random draw, so every method is side-effect-free and safe to
// call from multiple goroutines.
//
// # Architecture
//
//   - Universes live in a package-level registry keyed by universe name
//     (e.g. "startrek"). Register extends the registry with new universes
//     before first use; the registry is never mutated afterwards.
//   - A Provider wraps a *gofakeit.Faker. All randomness (uniform draws,
//     weighted registry-pattern draws, digit generation) flows through the
//     Faker, so seeding the host framework seeds the provider.
//   - When no universe key is given, category lists are pooled across all
//     registered universes (plain concatenation) before the draw.
//   - RegisterLookups wires every generator into gofakeit's function-lookup
//     table, making the provider usable from templates and by-name
//     generation under names such as "scifi_name" and "starship_registry".
//
// # Usage
//
// Import the package:
//
//	import galactic "github.com/jasonleibowitz/faker-galactic"
//
// Generate values through a Provider bound to a seeded Faker:
//
//	faker := gofakeit.New(42)
//	p := galactic.New(faker)
//
//	name, _ := p.Name("startrek")            // "Kathryn Sisko"
//	reg, _ := p.StarshipRegistry("startrek") // "NCC-1947"
//	loc, _ := p.Location("")                 // pooled across universes
//
// Or register the lookups once and use gofakeit by name:
//
//	galactic.RegisterLookups()
//	v, _ := gofakeit.Generate("{scifi_quote}")
//
// # Universes
//
// The only error any generator returns is an unknown universe key, wrapped
// around ErrUnknownUniverse. An empty key is not an error: it selects mixed
// mode, pooling the requested category across every registered universe.
// Custom universes can be added with Register before generators run:
//
//	err := galactic.Register("starwars", galactic.Universe{ ... })
//
// Composite generators draw their parts independently: Name draws a first
// and a last name with no gender-consistency guarantee unless the gendered
// variants are used, and Location joins an independently drawn base and
// detail.
package galactic
