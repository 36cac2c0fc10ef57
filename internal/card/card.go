package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/inbetween/internal/apperrors"
)

// DeckSize is the number of distinct card identities in a standard deck.
const DeckSize = 52

// Suit 定义花色
type Suit int

// Rank 定义点数，Ace 为 1，King 为 13
type Rank int

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// suitLetters 花色输入字母
var suitLetters = map[Suit]string{
	Club:    "C",
	Diamond: "D",
	Heart:   "H",
	Spade:   "S",
}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Club:    "♣",
	Diamond: "♦",
	Heart:   "♥",
	Spade:   "♠",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Letter returns the single-letter token used to type the suit.
func (s Suit) Letter() string {
	return suitLetters[s]
}

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

// MinRank and MaxRank bound the rank domain.
const (
	MinRank = RankA
	MaxRank = RankK
)

// rankNames 牌面值字符串映射表，其余点数直接输出数字
var rankNames = map[Rank]string{
	RankA: "A",
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
}

// String returns the display name of the rank: A, J, Q, K or the decimal value.
func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Valid reports whether r lies in [MinRank, MaxRank].
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// tokenToRank 用于快速查找输入对应的 Rank
var tokenToRank = map[string]Rank{
	"A":  RankA,
	"2":  Rank2,
	"3":  Rank3,
	"4":  Rank4,
	"5":  Rank5,
	"6":  Rank6,
	"7":  Rank7,
	"8":  Rank8,
	"9":  Rank9,
	"10": Rank10,
	"T":  Rank10,
	"J":  RankJ,
	"Q":  RankQ,
	"K":  RankK,
}

var letterToSuit = map[byte]Suit{
	'C': Club,
	'D': Diamond,
	'H': Heart,
	'S': Spade,
}

// Parse reads a card token such as "AS", "10h", "TC" or " qd ".
// Any token outside the grammar fails with apperrors.ErrInvalidFormat.
func Parse(token string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(token))
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidFormat, token)
	}

	suit, ok := letterToSuit[s[len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidFormat, token)
	}
	rank, ok := tokenToRank[s[:len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidFormat, token)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ID returns the dense identity suit*13 + (rank-1) in [0, DeckSize).
func (c Card) ID() int {
	return int(c.Suit)*13 + int(c.Rank) - 1
}

// FromID is the inverse of Card.ID. The caller guarantees 0 <= id < DeckSize.
func FromID(id int) Card {
	return Card{Suit: Suit(id / 13), Rank: Rank(id%13 + 1)}
}

// Token returns the card in input form, e.g. "10H", so Parse(c.Token()) == c.
func (c Card) Token() string {
	return c.Rank.String() + c.Suit.Letter()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
