package card

// NewDeck returns the 52 distinct cards in suit-major order
// The returned slice is indexed by ID
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Clubs; s < SuitCount; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// IDs returns every handle 0..DeckSize-1 in order
func IDs() []ID {
	ids := make([]ID, DeckSize)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
