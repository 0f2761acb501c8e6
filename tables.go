package base32

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"
)

const (
	b32Invalid  = 0xFF
	b32UpToLow  = ('a' - 'A')
	alphabetLen = 32
)

var (
	ErrInvalidAlphabet   = errors.New("invalid base32 alphabet")
	ErrInvalidAliasTable = errors.New("invalid base32 alias table")
	ErrInvalidPadding    = errors.New("invalid base32 padding")
)

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - b32UpToLow
	}

	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + b32UpToLow
	}

	return c
}

// singleByte reports whether s holds exactly one character and that
// character occupies exactly one byte.
func singleByte(s string) bool {
	return len(s) == 1 && s[0] < utf8.RuneSelf
}

// register maps c to v in the decode table. Case insensitive encodings
// also map the other case of c.
//
// Because both cases are always registered together, a single lookup of
// either case is enough to detect a collision.
func (enc *Encoding) register(c, v byte) {
	enc.decodeTab[c] = v
	if !enc.caseSensitive {
		enc.decodeTab[toUpper(c)] = v
		enc.decodeTab[toLower(c)] = v
	}
}

func (enc *Encoding) setAlphabet(alphabet string) error {
	if len(alphabet) != alphabetLen {
		return fmt.Errorf("%w: must be %d single byte symbols, got %d bytes", ErrInvalidAlphabet, alphabetLen, len(alphabet))
	}

	for i := range enc.decodeTab {
		enc.decodeTab[i] = b32Invalid
	}

	for i := range alphabetLen {
		c := alphabet[i]

		// a byte outside of ascii is part of a multi-byte character
		if c >= utf8.RuneSelf {
			return fmt.Errorf("%w: symbol at offset %d is not a single byte character", ErrInvalidAlphabet, i)
		}

		if !enc.caseSensitive {
			c = toUpper(c)
		}

		if enc.decodeTab[c] != b32Invalid {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, c)
		}

		enc.encodeTab[i] = c
		enc.register(c, byte(i))
	}

	return nil
}

func (enc *Encoding) setAliases(aliases map[string]string) error {
	if len(aliases) == 0 {
		return nil
	}

	// targets resolve against the alphabet only, never against other aliases
	alphabetTab := enc.decodeTab

	for _, alias := range slices.Sorted(maps.Keys(aliases)) {
		target := aliases[alias]

		if !singleByte(alias) {
			return fmt.Errorf("%w: alias %q is not a single byte character", ErrInvalidAliasTable, alias)
		}

		if !singleByte(target) || alphabetTab[target[0]] == b32Invalid {
			return fmt.Errorf("%w: alias %q targets %q which is not an alphabet symbol", ErrInvalidAliasTable, alias, target)
		}

		if enc.decodeTab[alias[0]] != b32Invalid {
			return fmt.Errorf("%w: alias %q collides with an existing symbol", ErrInvalidAliasTable, alias)
		}

		enc.register(alias[0], alphabetTab[target[0]])
	}

	return nil
}

func (enc *Encoding) setPadding(padding string) error {
	if !singleByte(padding) {
		return fmt.Errorf("%w: %q is not a single byte character", ErrInvalidPadding, padding)
	}

	c := padding[0]
	if enc.decodeTab[c] != b32Invalid {
		return fmt.Errorf("%w: %q collides with an alphabet or alias symbol", ErrInvalidPadding, padding)
	}

	enc.padChar = c

	return nil
}
