package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v7"

	galactic "github.com/jasonleibowitz/faker-galactic"
)

func main() {
	var (
		universe  = flag.String("universe", "", "universe key to draw from (empty pools all universes)")
		seed      = flag.Uint64("seed", 0, "random seed (0 picks a random one)")
		count     = flag.Int("n", 5, "number of crew lines to generate")
		character = flag.Bool("character", false, "print one canonical character as JSON instead")
		list      = flag.Bool("list", false, "list registered universes and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range galactic.Universes() {
			fmt.Println(name)
		}
		return
	}

	p := galactic.New(gofakeit.New(*seed))

	if *character {
		c, err := p.CanonicalCharacter(*universe)
		if err != nil {
			log.Fatalf("Failed to generate canonical character: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			log.Fatalf("Failed to encode character: %v", err)
		}
		return
	}

	for range *count {
		line, err := crewLine(p, *universe)
		if err != nil {
			log.Fatalf("Failed to generate crew line: %v", err)
		}
		fmt.Println(line)
	}
}

// crewLine assembles one human-readable line like
// "Lieutenant Nyota Chekov, USS Voyager (NCC-3421), Astrometrics Lab".
func crewLine(p *galactic.Provider, universe string) (string, error) {
	rank, err := p.Rank(universe)
	if err != nil {
		return "", err
	}
	name, err := p.Name(universe)
	if err != nil {
		return "", err
	}
	ship, err := p.Starship(universe)
	if err != nil {
		return "", err
	}
	registry, err := p.StarshipRegistry(universe)
	if err != nil {
		return "", err
	}
	location, err := p.Location(universe)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s, %s (%s), %s", rank, name, ship, registry, location), nil
}
