package galactic

// Character is a canonical character record as it appears in a universe's
// literal data table. FirstName and LastName are always set; the remaining
// fields are optional and hold their zero value when the source material
// leaves them undefined.
type Character struct {
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Rank             string   `json:"rank,omitempty"`
	Starship         string   `json:"starship,omitempty"`
	StarshipRegistry string   `json:"starship_registry,omitempty"`
	StarshipClass    string   `json:"starship_class,omitempty"`
	Language         string   `json:"language,omitempty"`
	Quotes           []string `json:"quotes,omitempty"`
}

// Name returns the character's full name in "First Last" form.
func (c Character) Name() string {
	return c.FirstName + " " + c.LastName
}
