package pokedex

// Default returns the built-in dataset baked into the binary.
func Default() Pokedex {
	return New(map[string]Record{
		"pikachu": {
			Name:        "Pikachu",
			Type:        "Electric",
			Description: "A Mouse Pokémon. It can generate electric attacks from the electric pouches located in both of its cheeks.",
			Stats:       Stats{HP: 35, Attack: 55, Defense: 40, Speed: 90},
		},
	})
}
