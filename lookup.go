package galactic

import (
	"github.com/brianvoe/gofakeit/v7"
)

// Lookup function names registered by RegisterLookups.
const (
	LookupName               = "scifi_name"
	LookupFirstName          = "scifi_first_name"
	LookupFirstNameMale      = "scifi_first_name_male"
	LookupFirstNameFemale    = "scifi_first_name_female"
	LookupLastName           = "scifi_last_name"
	LookupLastNameMale       = "scifi_last_name_male"
	LookupLastNameFemale     = "scifi_last_name_female"
	LookupRank               = "scifi_rank"
	LookupStarship           = "starship"
	LookupStarshipRegistry   = "starship_registry"
	LookupStarshipClass      = "starship_class"
	LookupLocation           = "scifi_location"
	LookupLanguage           = "scifi_language"
	LookupQuote              = "scifi_quote"
	LookupCanonicalCharacter = "scifi_canonical_character"
)

const lookupCategory = "galactic"

// mixedUniverse is the universe param value selecting mixed mode. gofakeit
// params cannot default to an empty string, so the lookups use this marker
// instead.
const mixedUniverse = "mixed"

func universeParam() gofakeit.Param {
	return gofakeit.Param{
		Field:       "universe",
		Display:     "Universe",
		Type:        "string",
		Default:     mixedUniverse,
		Description: "Universe key to draw from, or mixed to pool all universes",
	}
}

// lookupUniverse extracts the universe param and maps the mixed marker to
// the provider's empty-key convention.
func lookupUniverse(m *gofakeit.MapParams, info *gofakeit.Info) (string, error) {
	u, err := info.GetString(m, "universe")
	if err != nil {
		return "", err
	}
	if u == mixedUniverse {
		return "", nil
	}
	return u, nil
}

// stringLookup builds an Info for a generator returning a plain string.
func stringLookup(description, example string, gen func(p *Provider, universe string) (string, error)) gofakeit.Info {
	return gofakeit.Info{
		Category:    lookupCategory,
		Description: description,
		Example:     example,
		Output:      "string",
		Params:      []gofakeit.Param{universeParam()},
		Generate: func(f *gofakeit.Faker, m *gofakeit.MapParams, info *gofakeit.Info) (any, error) {
			universe, err := lookupUniverse(m, info)
			if err != nil {
				return nil, err
			}
			return gen(New(f), universe)
		},
	}
}

func lookups() map[string]gofakeit.Info {
	infos := map[string]gofakeit.Info{
		LookupName: stringLookup("Full sci-fi name", "Jean-Luc Janeway",
			func(p *Provider, universe string) (string, error) { return p.Name(universe) }),
		LookupFirstName: stringLookup("Sci-fi first name of any gender", "Kathryn",
			func(p *Provider, universe string) (string, error) { return p.FirstName(universe) }),
		LookupFirstNameMale: stringLookup("Male sci-fi first name", "James",
			func(p *Provider, universe string) (string, error) { return p.FirstNameMale(universe) }),
		LookupFirstNameFemale: stringLookup("Female sci-fi first name", "Deanna",
			func(p *Provider, universe string) (string, error) { return p.FirstNameFemale(universe) }),
		LookupLastName: stringLookup("Sci-fi last name of any gender", "Sisko",
			func(p *Provider, universe string) (string, error) { return p.LastName(universe) }),
		LookupLastNameMale: stringLookup("Male sci-fi last name", "Kirk",
			func(p *Provider, universe string) (string, error) { return p.LastNameMale(universe) }),
		LookupLastNameFemale: stringLookup("Female sci-fi last name", "Uhura",
			func(p *Provider, universe string) (string, error) { return p.LastNameFemale(universe) }),
		LookupRank: stringLookup("Military or organizational rank", "Lieutenant Commander",
			func(p *Provider, universe string) (string, error) { return p.Rank(universe) }),
		LookupStarship: stringLookup("Starship name", "USS Voyager",
			func(p *Provider, universe string) (string, error) { return p.Starship(universe) }),
		LookupStarshipClass: stringLookup("Starship class name", "Galaxy-class",
			func(p *Provider, universe string) (string, error) { return p.StarshipClass(universe) }),
		LookupLocation: stringLookup("Sci-fi location, base plus detail", "USS Enterprise Recreation Deck",
			func(p *Provider, universe string) (string, error) { return p.Location(universe) }),
		LookupLanguage: stringLookup("Language or dialect name", "Klingon",
			func(p *Provider, universe string) (string, error) { return p.Language(universe) }),
		LookupQuote: stringLookup("Famous sci-fi quote", "Make it so.",
			func(p *Provider, universe string) (string, error) { return p.Quote(universe) }),
	}

	infos[LookupStarshipRegistry] = gofakeit.Info{
		Category:    lookupCategory,
		Description: "Starship registry number",
		Example:     "NCC-1701",
		Output:      "string",
		Params: []gofakeit.Param{
			universeParam(),
			{Field: "prefix_only", Display: "Prefix Only", Type: "bool", Default: "false", Description: "Return only the registry prefix"},
			{Field: "number_only", Display: "Number Only", Type: "bool", Default: "false", Description: "Return only the registry number"},
		},
		Generate: func(f *gofakeit.Faker, m *gofakeit.MapParams, info *gofakeit.Info) (any, error) {
			universe, err := lookupUniverse(m, info)
			if err != nil {
				return nil, err
			}
			prefixOnly, err := info.GetBool(m, "prefix_only")
			if err != nil {
				return nil, err
			}
			numberOnly, err := info.GetBool(m, "number_only")
			if err != nil {
				return nil, err
			}
			var opts []RegistryOption
			if prefixOnly {
				opts = append(opts, PrefixOnly())
			}
			if numberOnly {
				opts = append(opts, NumberOnly())
			}
			return New(f).StarshipRegistry(universe, opts...)
		},
	}

	infos[LookupCanonicalCharacter] = gofakeit.Info{
		Category:    lookupCategory,
		Description: "Canonical sci-fi character record",
		Example:     `{"first_name":"Jean-Luc","last_name":"Picard","rank":"Captain"}`,
		Output:      "map[string]any",
		Params:      []gofakeit.Param{universeParam()},
		Generate: func(f *gofakeit.Faker, m *gofakeit.MapParams, info *gofakeit.Info) (any, error) {
			universe, err := lookupUniverse(m, info)
			if err != nil {
				return nil, err
			}
			return New(f).CanonicalCharacter(universe)
		},
	}

	return infos
}

// RegisterLookups adds all provider generators to gofakeit's function
// lookup table so they can be used by name, e.g. via gofakeit.Generate
// with "{scifi_name}" or "{starship_registry:startrek}".
func RegisterLookups() {
	for name, info := range lookups() {
		gofakeit.AddFuncLookup(name, info)
	}
}

// RemoveLookups removes every lookup added by RegisterLookups.
func RemoveLookups() {
	for name := range lookups() {
		gofakeit.RemoveFuncLookup(name)
	}
}
