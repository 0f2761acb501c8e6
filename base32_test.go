package base32

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedEncodings(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", StdEncoding.Alphabet())
	is.Equal(byte('='), StdEncoding.Padding())
	is.False(StdEncoding.IsCaseSensitive())

	is.Equal("0123456789ABCDEFGHIJKLMNOPQRSTUV", HexEncoding.Alphabet())
	is.Equal(byte('='), HexEncoding.Padding())
	is.False(HexEncoding.IsCaseSensitive())
}

func TestMustNewEncoding(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.PanicsWithValue("base32: invalid base32 alphabet: must be 32 single byte symbols, got 3 bytes", func() {
		MustNewEncoding("ABC")
	})

	is.PanicsWithValue(`base32: invalid base32 padding: "A" collides with an alphabet or alias symbol`, func() {
		MustNewEncoding(stdAlphabet, WithPadding("A"))
	})

	is.NotPanics(func() {
		MustNewEncoding(testCustomAlphabet, CaseSensitive(true), WithPadding("-"))
	})
}

// roundTripEncodings covers the option space that affects round trips.
func roundTripEncodings() map[string]*Encoding {
	return map[string]*Encoding{
		"std":                   StdEncoding,
		"hex":                   HexEncoding,
		"custom":                MustNewEncoding(testCustomAlphabet),
		"custom-case-sensitive": MustNewEncoding(testCustomAlphabet, CaseSensitive(true)),
		"hex-aliases":           MustNewEncoding(hexAlphabet, WithAliases(map[string]string{"Y": "1", "W": "0"})),
		"std-hash-padding":      MustNewEncoding(stdAlphabet, WithPadding("#")),
	}
}

func assertDecodesTo(is *assert.Assertions, enc *Encoding, exp []byte, s string) {
	resp, err := enc.Decode(s)
	if !is.Nil(err, "decoding %q", s) {
		return
	}

	if len(exp) == 0 {
		is.Empty(resp)
		return
	}

	is.Equal(exp, resp, "decoding %q", s)
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("f"))
	f.Add([]byte("fo"))
	f.Add([]byte("foo"))
	f.Add([]byte("foob"))
	f.Add([]byte("fooba"))
	f.Add([]byte("foobar"))
	f.Add([]byte("hello!"))
	f.Add([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte("1234567890123456789"))

	encs := roundTripEncodings()

	f.Fuzz(func(t *testing.T, src []byte) {
		is := assert.New(t)

		for name, enc := range encs {
			unpadded := enc.Encode(src, false)
			padded := enc.Encode(src, true)

			is.Equal(enc.EncodedLen(len(src), false), len(unpadded), name)
			is.Equal(enc.EncodedLen(len(src), true), len(padded), name)
			is.True(strings.HasPrefix(padded, unpadded), name)

			assertDecodesTo(is, enc, src, unpadded)
			assertDecodesTo(is, enc, src, padded)

			if enc.IsCaseSensitive() {
				continue
			}

			// padding symbols used here are not letters so they survive case changes
			assertDecodesTo(is, enc, src, strings.ToLower(padded))
			assertDecodesTo(is, enc, src, strings.ToUpper(padded))
		}
	})
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for name, enc := range roundTripEncodings() {
		is.Equal("", enc.Encode(nil, false), name)
		is.Equal("", enc.Encode([]byte{}, true), name)

		resp, err := enc.Decode("")
		is.Nil(err, name)
		is.Empty(resp, name)
	}
}

func TestCaseSensitiveRejectsOtherCase(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	enc := MustNewEncoding(testCustomAlphabet, CaseSensitive(true))

	s := enc.Encode([]byte("hello!"), true)
	is.Equal("pb1sa5dxrr======", s)

	_, err := enc.Decode(strings.ToUpper(s))
	is.ErrorIs(err, ErrInvalidBase32String)

	// the same alphabet is case insensitive by default
	enc = MustNewEncoding(testCustomAlphabet)
	assertDecodesTo(is, enc, []byte("hello!"), strings.ToUpper(s))
	assertDecodesTo(is, enc, []byte("hello!"), s)
}

func TestAliasSubstitution(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	enc := MustNewEncoding(hexAlphabet, WithAliases(map[string]string{"Y": "1"}))

	src := []byte("foobar")
	s := enc.Encode(src, true)
	is.Equal("CPNMUOJ1E8======", s)

	// aliases are only ever decoded, never emitted
	is.NotContains(s, "Y")

	assertDecodesTo(is, enc, src, strings.ReplaceAll(s, "1", "Y"))
	assertDecodesTo(is, enc, src, strings.ReplaceAll(s, "1", "y"))

	// the predefined encoding does not know the alias
	_, err := HexEncoding.Decode(strings.ReplaceAll(s, "1", "Y"))
	is.ErrorIs(err, ErrInvalidBase32String)
}

func TestDecodeErrorLeavesEncodingUsable(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	_, err := StdEncoding.Decode("MZXW6YT!")
	is.ErrorIs(err, ErrInvalidBase32String)

	assertDecodesTo(is, StdEncoding, []byte("fooba"), "MZXW6YTB")
}

func TestEncodingConcurrentUse(t *testing.T) {
	t.Parallel()

	enc := MustNewEncoding(testCustomAlphabet, WithAliases(map[string]string{"0": "o"}))
	src := []byte("1234567890123456789")
	exp := enc.Encode(src, true)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 100 {
				s := enc.Encode(src, true)
				resp, err := enc.Decode(s)

				assert.Equal(t, exp, s)
				assert.Nil(t, err)
				assert.Equal(t, src, resp)
			}
		})
	}
	wg.Wait()
}
