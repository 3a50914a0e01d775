package galactic_test

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	galactic "github.com/jasonleibowitz/faker-galactic"
)

func registerLookups(t *testing.T) {
	t.Helper()
	galactic.RegisterLookups()
	t.Cleanup(galactic.RemoveLookups)
}

func TestRegisterLookupsAddsAllFunctions(t *testing.T) {
	registerLookups(t)

	names := []string{
		galactic.LookupName,
		galactic.LookupFirstName,
		galactic.LookupFirstNameMale,
		galactic.LookupFirstNameFemale,
		galactic.LookupLastName,
		galactic.LookupLastNameMale,
		galactic.LookupLastNameFemale,
		galactic.LookupRank,
		galactic.LookupStarship,
		galactic.LookupStarshipRegistry,
		galactic.LookupStarshipClass,
		galactic.LookupLocation,
		galactic.LookupLanguage,
		galactic.LookupQuote,
		galactic.LookupCanonicalCharacter,
	}
	for _, name := range names {
		info := gofakeit.GetFuncLookup(name)
		require.NotNil(t, info, "lookup %q not registered", name)
		assert.Equal(t, "galactic", info.Category)
	}
}

func TestRemoveLookups(t *testing.T) {
	galactic.RegisterLookups()
	galactic.RemoveLookups()

	assert.Nil(t, gofakeit.GetFuncLookup(galactic.LookupName))
	assert.Nil(t, gofakeit.GetFuncLookup(galactic.LookupStarshipRegistry))
}

func TestLookupGenerateDefaultsToMixedMode(t *testing.T) {
	registerLookups(t)

	info := gofakeit.GetFuncLookup(galactic.LookupQuote)
	require.NotNil(t, info)

	valid := pooled(t, func(u galactic.Universe) []string { return u.Quotes })

	faker := gofakeit.New(7)
	v, err := info.Generate(faker, nil, info)
	require.NoError(t, err)
	assert.Contains(t, valid, v)
}

func TestLookupGenerateWithUniverseParam(t *testing.T) {
	registerLookups(t)

	info := gofakeit.GetFuncLookup(galactic.LookupStarship)
	require.NotNil(t, info)

	params := gofakeit.NewMapParams()
	params.Add("universe", "startrek")

	faker := gofakeit.New(7)
	v, err := info.Generate(faker, params, info)
	require.NoError(t, err)
	assert.Contains(t, startrek(t).Starships, v)
}

func TestLookupGenerateUnknownUniverse(t *testing.T) {
	registerLookups(t)

	info := gofakeit.GetFuncLookup(galactic.LookupRank)
	require.NotNil(t, info)

	params := gofakeit.NewMapParams()
	params.Add("universe", "starwars")

	faker := gofakeit.New(7)
	_, err := info.Generate(faker, params, info)
	require.ErrorIs(t, err, galactic.ErrUnknownUniverse)
}

func TestLookupStarshipRegistryFlags(t *testing.T) {
	registerLookups(t)

	info := gofakeit.GetFuncLookup(galactic.LookupStarshipRegistry)
	require.NotNil(t, info)

	faker := gofakeit.New(7)

	t.Run("full registry", func(t *testing.T) {
		v, err := info.Generate(faker, nil, info)
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z]+-[1-9]\d*$`, v)
	})

	t.Run("prefix only", func(t *testing.T) {
		params := gofakeit.NewMapParams()
		params.Add("universe", "startrek")
		params.Add("prefix_only", "true")

		v, err := info.Generate(faker, params, info)
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z]+$`, v)
	})

	t.Run("number only", func(t *testing.T) {
		params := gofakeit.NewMapParams()
		params.Add("universe", "startrek")
		params.Add("number_only", "true")

		v, err := info.Generate(faker, params, info)
		require.NoError(t, err)
		assert.Regexp(t, `^[1-9]\d*$`, v)
	})
}

func TestLookupCanonicalCharacter(t *testing.T) {
	registerLookups(t)

	info := gofakeit.GetFuncLookup(galactic.LookupCanonicalCharacter)
	require.NotNil(t, info)

	params := gofakeit.NewMapParams()
	params.Add("universe", "startrek")

	faker := gofakeit.New(7)
	v, err := info.Generate(faker, params, info)
	require.NoError(t, err)

	c, ok := v.(galactic.Character)
	require.True(t, ok, "expected galactic.Character, got %T", v)
	assert.Contains(t, startrek(t).Characters, c)
}

func TestLookupTemplateGeneration(t *testing.T) {
	registerLookups(t)

	valid := pooled(t, func(u galactic.Universe) []string { return u.Quotes })

	v, err := gofakeit.Generate("{scifi_quote}")
	require.NoError(t, err)
	assert.Contains(t, valid, v)

	name, err := gofakeit.Generate("{scifi_name}")
	require.NoError(t, err)
	assert.True(t, strings.Contains(name, " "), "name %q should contain a space", name)
}
