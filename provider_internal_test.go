package galactic

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
)

func TestRegistryNumberDigits(t *testing.T) {
	p := New(gofakeit.New(7))

	for digits := 1; digits <= 6; digits++ {
		for range 50 {
			number := p.registryNumber(digits)
			if len(number) != digits {
				t.Errorf("registryNumber(%d) = %q, want %d digits", digits, number, digits)
			}
			if number[0] == '0' {
				t.Errorf("registryNumber(%d) = %q, leading digit must be nonzero", digits, number)
			}
			if _, err := strconv.Atoi(number); err != nil {
				t.Errorf("registryNumber(%d) = %q, not numeric: %v", digits, number, err)
			}
		}
	}
}

func TestWeightedPatternEmpty(t *testing.T) {
	p := New(gofakeit.New(7))
	if _, err := p.weightedPattern(nil); err == nil {
		t.Error("weightedPattern(nil) should fail")
	}
}

func TestEmptyCategoryFallback(t *testing.T) {
	universes["sparseverse"] = Universe{
		Ranks: []string{"Pathfinder"},
		// Quotes intentionally empty to trigger the fallback.
	}
	t.Cleanup(func() { delete(universes, "sparseverse") })

	var buf bytes.Buffer
	p := New(gofakeit.New(7), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	quote, err := p.Quote("sparseverse")
	if err != nil {
		t.Fatalf("Quote(sparseverse) failed: %v", err)
	}

	pooledQuotes := make(map[string]bool)
	for _, name := range Universes() {
		for _, q := range universes[name].Quotes {
			pooledQuotes[q] = true
		}
	}
	if !pooledQuotes[quote] {
		t.Errorf("fallback quote %q not in pooled quotes", quote)
	}

	if !bytes.Contains(buf.Bytes(), []byte("falling back to mixed mode")) {
		t.Errorf("expected fallback warning in log output, got: %s", buf.String())
	}

	// A category the sparse universe does provide stays universe-local.
	rank, err := p.Rank("sparseverse")
	if err != nil {
		t.Fatalf("Rank(sparseverse) failed: %v", err)
	}
	if rank != "Pathfinder" {
		t.Errorf("Rank(sparseverse) = %q, want %q", rank, "Pathfinder")
	}
}
