// Package gameid generates sortable identifiers for simulated games.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the size of an encoded ID.
const Length = 26

// RandSource supplies the random bits of an ID. *rand.Rand from math/rand/v2
// satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generator creates UUIDv7 game IDs encoded as 26-character base32 strings.
type Generator struct {
	rand  RandSource
	clock quartz.Clock
}

// NewGenerator creates a generator. A nil RandSource uses crypto/rand and a
// nil clock uses the real clock.
func NewGenerator(rand RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{rand: rand, clock: clock}
}

// Generate creates a game ID from the real clock and crypto/rand.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new game ID.
func (g *Generator) Generate() string {
	return encode(g.uuid())
}

// uuid lays out a UUIDv7: 48-bit millisecond timestamp, version 7, variant
// 10, and random bits everywhere else.
func (g *Generator) uuid() [16]byte {
	var id [16]byte

	ms := g.clock.Now("gameid").UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rand != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rand.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("gameid: failed to read random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

// encode writes the 128 bits as 26 five-bit digits, padding with two leading
// zero bits so the first digit is at most 7.
func encode(id [16]byte) string {
	bit := func(k int) byte {
		if k < 0 {
			return 0
		}
		return (id[k/8] >> (7 - k%8)) & 1
	}

	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		var v byte
		for j := 0; j < 5; j++ {
			v = v<<1 | bit(i*5+j-2)
		}
		b.WriteByte(alphabet[v])
	}
	return b.String()
}

// Validate checks that id is a well-formed game ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
