package galactic

// Star Trek universe data, registered under "startrek".
var starTrek = Universe{
	FirstNamesMale: []string{
		"James", "Jean-Luc", "Benjamin", "Jonathan", "Christopher", "William",
		"Geordi", "Miles", "Julian", "Montgomery", "Leonard", "Hikaru",
		"Pavel", "Thomas", "Harry", "Wesley", "Reginald", "Richard",
		"Charles", "Malcolm", "Travis", "Owen", "Spock", "Sarek",
		"Worf", "Tuvok", "Chakotay", "Elim", "Martok", "Gowron",
		"Quark", "Rom", "Nog", "Odo",
	},
	FirstNamesFemale: []string{
		"Kathryn", "Beverly", "Deanna", "Nyota", "Jadzia", "Ezri",
		"Kira", "B'Elanna", "Hoshi", "T'Pol", "Kes", "Lwaxana",
		"Guinan", "Leah", "Keiko", "Naomi", "Amanda", "Christine",
		"Janice", "Tasha", "Sylvia", "Beckett",
	},
	LastNamesMale: []string{
		"Kirk", "Picard", "Sisko", "Archer", "Riker", "La Forge",
		"O'Brien", "Bashir", "Scott", "McCoy", "Sulu", "Chekov",
		"Pike", "Paris", "Kim", "Barclay", "Garak", "Dukat",
		"Mayweather", "Reed", "Tucker", "Boimler", "Rutherford", "Ransom",
		"Vance", "Decker", "Mendez", "Komack", "Stiles", "Daystrom",
	},
	LastNamesFemale: []string{
		"Janeway", "Crusher", "Troi", "Uhura", "Dax", "Nerys",
		"Torres", "Sato", "Yar", "Chapel", "Rand", "Pulaski",
		"Ogawa", "Wildman", "Hansen", "Seska", "Brahms", "Mariner",
		"Freeman", "Tendi",
	},
	Ranks: []string{
		"Cadet", "Crewman", "Yeoman", "Petty Officer", "Chief Petty Officer",
		"Ensign", "Lieutenant Junior Grade", "Lieutenant",
		"Lieutenant Commander", "Commander", "Captain", "Fleet Captain",
		"Commodore", "Rear Admiral", "Vice Admiral", "Admiral",
		"Fleet Admiral",
	},
	Starships: []string{
		"USS Enterprise", "USS Voyager", "USS Defiant", "USS Discovery",
		"USS Excelsior", "USS Reliant", "USS Titan", "USS Cerritos",
		"USS Stargazer", "USS Grissom", "USS Hood", "USS Lexington",
		"USS Potemkin", "USS Saratoga", "USS Intrepid", "USS Farragut",
		"USS Yorktown", "USS Constellation", "USS Equinox", "USS Prometheus",
		"USS Pasteur", "USS Sutherland", "USS Bozeman", "USS Thunderchild",
	},
	StarshipClasses: []string{
		"Constitution-class", "Galaxy-class", "Intrepid-class",
		"Defiant-class", "Sovereign-class", "Excelsior-class",
		"Miranda-class", "Nebula-class", "Akira-class", "Ambassador-class",
		"Oberth-class", "Nova-class", "Prometheus-class", "Luna-class",
		"California-class", "Crossfield-class", "Steamrunner-class",
		"Saber-class",
	},
	Registries: []RegistryPattern{
		{Prefix: "NCC", Digits: 4, Weight: 10},
		{Prefix: "NCC", Digits: 5, Weight: 5},
		{Prefix: "NX", Digits: 2, Weight: 1},
		{Prefix: "NAR", Digits: 5, Weight: 1},
	},
	BaseLocations: []string{
		"Starfleet Academy", "Starfleet Headquarters", "Deep Space Nine",
		"Starbase 1", "Starbase 74", "Starbase 375",
		"Utopia Planitia Shipyards", "Jupiter Station", "Earth Spacedock",
		"Quark's Bar", "Ten Forward", "Vulcan Science Academy",
		"Khitomer Outpost", "Regula I Station", "Memory Alpha",
	},
	LocationDetails: []string{
		"Main Bridge", "Engineering", "Sickbay", "Transporter Room",
		"Ready Room", "Observation Lounge", "Holodeck 2", "Shuttlebay",
		"Cargo Bay 1", "Mess Hall", "Recreation Deck", "Brig",
		"Science Lab", "Astrometrics Lab", "Torpedo Bay",
		"Jefferies Tube 32", "Captain's Quarters", "Docking Ring",
	},
	Languages: []string{
		"Federation Standard", "Klingon", "Vulcan", "Romulan", "Ferengi",
		"Cardassian", "Bajoran", "Andorian", "Tellarite", "Betazoid",
		"Trill", "Tamarian",
	},
	Quotes: []string{
		"Live long and prosper.",
		"Make it so.",
		"Engage!",
		"Resistance is futile.",
		"To boldly go where no one has gone before.",
		"Highly illogical.",
		"I'm a doctor, not an engineer.",
		"Beam me up, Scotty.",
		"Tea, Earl Grey, hot.",
		"There are four lights!",
		"Today is a good day to die.",
		"Infinite diversity in infinite combinations.",
		"The needs of the many outweigh the needs of the few.",
		"It is possible to commit no mistakes and still lose.",
	},
	Characters: []Character{
		{
			FirstName:        "James",
			LastName:         "Kirk",
			Rank:             "Captain",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701",
			StarshipClass:    "Constitution-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"Risk is our business.",
				"Beam me up, Scotty.",
			},
		},
		{
			FirstName:        "Jean-Luc",
			LastName:         "Picard",
			Rank:             "Captain",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701-D",
			StarshipClass:    "Galaxy-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"Engage!",
				"Make it so.",
				"Tea, Earl Grey, hot.",
			},
		},
		{
			FirstName:        "Kathryn",
			LastName:         "Janeway",
			Rank:             "Captain",
			Starship:         "USS Voyager",
			StarshipRegistry: "NCC-74656",
			StarshipClass:    "Intrepid-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"There's coffee in that nebula.",
				"Do it.",
			},
		},
		{
			FirstName:        "Benjamin",
			LastName:         "Sisko",
			Rank:             "Captain",
			Starship:         "USS Defiant",
			StarshipRegistry: "NX-74205",
			StarshipClass:    "Defiant-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"It's easy to be a saint in paradise.",
			},
		},
		{
			FirstName:        "Jonathan",
			LastName:         "Archer",
			Rank:             "Captain",
			Starship:         "Enterprise NX-01",
			StarshipRegistry: "NX-01",
			StarshipClass:    "NX-class",
			Language:         "Federation Standard",
		},
		{
			FirstName:        "William",
			LastName:         "Riker",
			Rank:             "Commander",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701-D",
			StarshipClass:    "Galaxy-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"You want to know what my first duty is? The truth.",
			},
		},
		{
			FirstName:        "Deanna",
			LastName:         "Troi",
			Rank:             "Commander",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701-D",
			StarshipClass:    "Galaxy-class",
			Language:         "Betazoid",
		},
		{
			FirstName:        "Beverly",
			LastName:         "Crusher",
			Rank:             "Commander",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701-D",
			StarshipClass:    "Galaxy-class",
			Language:         "Federation Standard",
		},
		{
			FirstName:        "Geordi",
			LastName:         "La Forge",
			Rank:             "Lieutenant Commander",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701-D",
			StarshipClass:    "Galaxy-class",
			Language:         "Federation Standard",
		},
		{
			FirstName:        "Miles",
			LastName:         "O'Brien",
			Rank:             "Chief Petty Officer",
			Starship:         "USS Defiant",
			StarshipRegistry: "NX-74205",
			StarshipClass:    "Defiant-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"I'm an engineer, not a doctor.",
			},
		},
		{
			FirstName:        "Julian",
			LastName:         "Bashir",
			Rank:             "Lieutenant",
			Starship:         "USS Defiant",
			StarshipRegistry: "NX-74205",
			StarshipClass:    "Defiant-class",
			Language:         "Federation Standard",
		},
		{
			FirstName: "Jadzia",
			LastName:  "Dax",
			Rank:      "Lieutenant Commander",
			Starship:  "USS Defiant",
			Language:  "Trill",
		},
		{
			FirstName: "Kira",
			LastName:  "Nerys",
			Rank:      "Commander",
			Language:  "Bajoran",
			Quotes: []string{
				"I don't apologize for doing my job.",
			},
		},
		{
			FirstName:        "B'Elanna",
			LastName:         "Torres",
			Rank:             "Lieutenant",
			Starship:         "USS Voyager",
			StarshipRegistry: "NCC-74656",
			StarshipClass:    "Intrepid-class",
			Language:         "Klingon",
		},
		{
			FirstName:        "Thomas",
			LastName:         "Paris",
			Rank:             "Lieutenant",
			Starship:         "USS Voyager",
			StarshipRegistry: "NCC-74656",
			StarshipClass:    "Intrepid-class",
			Language:         "Federation Standard",
		},
		{
			FirstName:        "Nyota",
			LastName:         "Uhura",
			Rank:             "Lieutenant",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701",
			StarshipClass:    "Constitution-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"Hailing frequencies open.",
			},
		},
		{
			FirstName:        "Leonard",
			LastName:         "McCoy",
			Rank:             "Lieutenant Commander",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701",
			StarshipClass:    "Constitution-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"I'm a doctor, not an engineer.",
				"He's dead, Jim.",
			},
		},
		{
			FirstName:        "Montgomery",
			LastName:         "Scott",
			Rank:             "Lieutenant Commander",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701",
			StarshipClass:    "Constitution-class",
			Language:         "Federation Standard",
			Quotes: []string{
				"I'm givin' her all she's got, Captain!",
			},
		},
		{
			FirstName:        "Hikaru",
			LastName:         "Sulu",
			Rank:             "Captain",
			Starship:         "USS Excelsior",
			StarshipRegistry: "NCC-2000",
			StarshipClass:    "Excelsior-class",
			Language:         "Federation Standard",
		},
		{
			FirstName:        "Pavel",
			LastName:         "Chekov",
			Rank:             "Ensign",
			Starship:         "USS Enterprise",
			StarshipRegistry: "NCC-1701",
			StarshipClass:    "Constitution-class",
			Language:         "Federation Standard",
		},
	},
}
