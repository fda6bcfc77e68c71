// Package card defines the immutable identity of a playing card.
package card

import "strconv"

// Suit of a card
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	SuitCount
)

// Rank of a card, Ace = 1 through King = 13
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// RankCount is the number of ranks per suit
const RankCount = 13

// DeckSize is the number of distinct cards in a full deck
const DeckSize = int(SuitCount) * RankCount

// Color groups suits for alternating-color rules
type Color uint8

const (
	Black Color = iota
	Red
)

// ID is a stable handle for a card, 0..DeckSize-1
type ID int16

// None marks the absence of a card
const None ID = -1

// Card is the immutable (suit, rank) identity
type Card struct {
	Suit Suit
	Rank Rank
}

// ID returns the card's stable handle
func (c Card) ID() ID {
	return ID(int(c.Suit)*RankCount + int(c.Rank) - 1)
}

// Valid reports whether suit and rank are in range
func (c Card) Valid() bool {
	return c.Suit < SuitCount && c.Rank >= Ace && c.Rank <= King
}

// Color returns Red for diamonds and hearts, Black otherwise
func (c Card) Color() Color {
	if c.Suit == Diamonds || c.Suit == Hearts {
		return Red
	}
	return Black
}

// Label returns the short face text, e.g. "10♥"
func (c Card) Label() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Valid reports whether the handle refers to a card of the deck
func (id ID) Valid() bool {
	return id >= 0 && int(id) < DeckSize
}

// Card resolves the handle; the result is invalid for out-of-range handles
func (id ID) Card() Card {
	if !id.Valid() {
		return Card{}
	}
	return Card{Suit: Suit(int(id) / RankCount), Rank: Rank(int(id)%RankCount + 1)}
}

func (id ID) String() string {
	if !id.Valid() {
		return "none"
	}
	return id.Card().Label()
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return strconv.Itoa(int(r))
	}
}

// Short returns the one or two character rank label
func (r Rank) Short() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}
