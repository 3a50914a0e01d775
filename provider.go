package galactic

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
)

// Provider generates sci-fi themed fake data from the universe registry.
// All randomness flows through the wrapped gofakeit Faker, so a seeded
// Faker produces a reproducible sequence of values.
//
// Every generator takes a universe key. A registered key draws from that
// universe only; the empty string selects mixed mode, pooling the requested
// category across all registered universes. Any other value fails with
// ErrUnknownUniverse.
type Provider struct {
	faker *gofakeit.Faker
	log   *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for data-fallback warnings.
// Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		p.log = l
	}
}

// New returns a Provider drawing randomness from f. A nil f gets a
// randomly seeded Faker.
func New(f *gofakeit.Faker, opts ...Option) *Provider {
	if f == nil {
		f = gofakeit.New(0)
	}
	p := &Provider{
		faker: f,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// pick draws one element uniformly from the resolved category list.
func (p *Provider) pick(universe, category string, get func(Universe) []string) (string, error) {
	items, err := collect(p, universe, category, get)
	if err != nil {
		return "", err
	}
	return p.faker.RandomString(items), nil
}

// FirstName returns a first name of any gender.
func (p *Provider) FirstName(universe string) (string, error) {
	return p.pick(universe, "first names", func(u Universe) []string {
		return slices.Concat(u.FirstNamesMale, u.FirstNamesFemale)
	})
}

// FirstNameMale returns a first name from the male list.
func (p *Provider) FirstNameMale(universe string) (string, error) {
	return p.pick(universe, "male first names", func(u Universe) []string { return u.FirstNamesMale })
}

// FirstNameFemale returns a first name from the female list.
func (p *Provider) FirstNameFemale(universe string) (string, error) {
	return p.pick(universe, "female first names", func(u Universe) []string { return u.FirstNamesFemale })
}

// LastName returns a last name of any gender.
func (p *Provider) LastName(universe string) (string, error) {
	return p.pick(universe, "last names", func(u Universe) []string {
		return slices.Concat(u.LastNamesMale, u.LastNamesFemale)
	})
}

// LastNameMale returns a last name from the male list.
func (p *Provider) LastNameMale(universe string) (string, error) {
	return p.pick(universe, "male last names", func(u Universe) []string { return u.LastNamesMale })
}

// LastNameFemale returns a last name from the female list.
func (p *Provider) LastNameFemale(universe string) (string, error) {
	return p.pick(universe, "female last names", func(u Universe) []string { return u.LastNamesFemale })
}

// Name returns a full name. The first and last names are drawn
// independently, so there is no guarantee a "male" first name pairs with a
// "male" last name; use the gendered variants for that.
func (p *Provider) Name(universe string) (string, error) {
	first, err := p.FirstName(universe)
	if err != nil {
		return "", err
	}
	last, err := p.LastName(universe)
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}

// Rank returns a military or organizational rank.
func (p *Provider) Rank(universe string) (string, error) {
	return p.pick(universe, "ranks", func(u Universe) []string { return u.Ranks })
}

// Starship returns a starship name.
func (p *Provider) Starship(universe string) (string, error) {
	return p.pick(universe, "starships", func(u Universe) []string { return u.Starships })
}

// StarshipClass returns a starship class name.
func (p *Provider) StarshipClass(universe string) (string, error) {
	return p.pick(universe, "starship classes", func(u Universe) []string { return u.StarshipClasses })
}

// registryConfig holds StarshipRegistry output selection.
type registryConfig struct {
	prefixOnly bool
	numberOnly bool
}

// RegistryOption narrows StarshipRegistry output.
type RegistryOption func(*registryConfig)

// PrefixOnly returns only the registry prefix, e.g. "NCC".
// It takes precedence over NumberOnly when both are given.
func PrefixOnly() RegistryOption {
	return func(c *registryConfig) {
		c.prefixOnly = true
	}
}

// NumberOnly returns only the registry number, e.g. "1701".
func NumberOnly() RegistryOption {
	return func(c *registryConfig) {
		c.numberOnly = true
	}
}

// StarshipRegistry returns a starship registry such as "NCC-1701". The
// pattern is drawn by weight among the resolved universe's patterns, and
// the number has exactly the pattern's digit count with a nonzero leading
// digit.
func (p *Provider) StarshipRegistry(universe string, opts ...RegistryOption) (string, error) {
	patterns, err := collect(p, universe, "registries", func(u Universe) []RegistryPattern { return u.Registries })
	if err != nil {
		return "", err
	}
	pattern, err := p.weightedPattern(patterns)
	if err != nil {
		return "", err
	}

	var cfg registryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.prefixOnly {
		return pattern.Prefix, nil
	}
	number := p.registryNumber(pattern.Digits)
	if cfg.numberOnly {
		return number, nil
	}
	return pattern.Prefix + "-" + number, nil
}

// weightedPattern draws one pattern with probability weight/sum(weights).
func (p *Provider) weightedPattern(patterns []RegistryPattern) (RegistryPattern, error) {
	options := make([]any, len(patterns))
	weights := make([]float32, len(patterns))
	for i, pattern := range patterns {
		options[i] = pattern
		weights[i] = pattern.Weight
	}
	picked, err := p.faker.Weighted(options, weights)
	if err != nil {
		return RegistryPattern{}, err
	}
	return picked.(RegistryPattern), nil
}

// registryNumber generates a number with exactly the given digit count.
// The leading digit is never zero.
func (p *Provider) registryNumber(digits int) string {
	low := 1
	for i := 1; i < digits; i++ {
		low *= 10
	}
	return strconv.Itoa(p.faker.Number(low, low*10-1))
}

// Location returns a location such as "USS Enterprise Recreation Deck" or
// "Starfleet Academy Holodeck". The base is drawn from the starships and
// base locations pooled together; the detail is drawn independently.
func (p *Provider) Location(universe string) (string, error) {
	base, err := p.pick(universe, "locations", func(u Universe) []string {
		return slices.Concat(u.Starships, u.BaseLocations)
	})
	if err != nil {
		return "", err
	}
	detail, err := p.pick(universe, "location details", func(u Universe) []string { return u.LocationDetails })
	if err != nil {
		return "", err
	}
	return base + " " + detail, nil
}

// Language returns a language or dialect name.
func (p *Provider) Language(universe string) (string, error) {
	return p.pick(universe, "languages", func(u Universe) []string { return u.Languages })
}

// Quote returns a famous quote.
func (p *Provider) Quote(universe string) (string, error) {
	return p.pick(universe, "quotes", func(u Universe) []string { return u.Quotes })
}

// CanonicalCharacter returns one canonical character record, uniformly
// drawn and unmodified from the resolved universe's character table.
func (p *Provider) CanonicalCharacter(universe string) (Character, error) {
	characters, err := collect(p, universe, "canonical characters", func(u Universe) []Character { return u.Characters })
	if err != nil {
		return Character{}, err
	}
	if len(characters) == 0 {
		return Character{}, nil
	}
	return characters[p.faker.Number(0, len(characters)-1)], nil
}
