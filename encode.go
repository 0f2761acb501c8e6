package base32

import (
	"math"
	"slices"
)

// EncodedLen returns the number of bytes required to encode n bytes. It
// returns -1 if n is negative or the encoded length cannot be represented
// as an int.
//
// If n is zero, zero will be returned regardless of withPadding.
func (enc *Encoding) EncodedLen(n int, withPadding bool) int {
	if n < 0 || n > maxEncodeSrcLen(withPadding) {
		return -1
	}

	return encodedLenExpression(n, withPadding)
}

// maxEncodeSrcLen is the largest source length whose encoded length fits in
// an int.
func maxEncodeSrcLen(withPadding bool) int {
	n := math.MaxInt / 8 * 5
	if withPadding {
		return n
	}

	return n + (math.MaxInt%8*5)/8
}

func encodedLenExpression(n int, withPadding bool) int {
	if withPadding {
		result := (n / 5) * 8
		if n%5 != 0 {
			result += 8
		}

		return result
	}

	return (n/5)*8 + ((n%5)*8+4)/5
}

func encodedLen(n int, withPadding bool) int {
	if n > maxEncodeSrcLen(withPadding) {
		panic("base32: invalid encode source length")
	}

	return encodedLenExpression(n, withPadding)
}

// encode writes the unpadded encoded form of src to the start of dst and
// returns the number of symbols written.
//
// invariants:
//
// - len(dst) >= encodedLen(len(src), false)
func (enc *Encoding) encode(dst, src []byte) int {
	tab := &enc.encodeTab
	n := 0

	for len(src) >= 5 {
		b0, b1, b2, b3, b4 := src[0], src[1], src[2], src[3], src[4]

		d := dst[n : n+8 : n+8]
		d[0] = tab[b0>>3]
		d[1] = tab[((b0<<2)|(b1>>6))&31]
		d[2] = tab[(b1>>1)&31]
		d[3] = tab[((b1<<4)|(b2>>4))&31]
		d[4] = tab[((b2<<1)|(b3>>7))&31]
		d[5] = tab[(b3>>2)&31]
		d[6] = tab[((b3<<3)|(b4>>5))&31]
		d[7] = tab[b4&31]

		src = src[5:]
		n += 8
	}

	// Tail, remaining bits are zero filled on the right.
	switch len(src) {
	case 1:
		b0 := src[0]

		d := dst[n : n+2 : n+2]
		d[0] = tab[b0>>3]
		d[1] = tab[(b0<<2)&31]
		n += 2
	case 2:
		b0, b1 := src[0], src[1]

		d := dst[n : n+4 : n+4]
		d[0] = tab[b0>>3]
		d[1] = tab[((b0<<2)|(b1>>6))&31]
		d[2] = tab[(b1>>1)&31]
		d[3] = tab[(b1<<4)&31]
		n += 4
	case 3:
		b0, b1, b2 := src[0], src[1], src[2]

		d := dst[n : n+5 : n+5]
		d[0] = tab[b0>>3]
		d[1] = tab[((b0<<2)|(b1>>6))&31]
		d[2] = tab[(b1>>1)&31]
		d[3] = tab[((b1<<4)|(b2>>4))&31]
		d[4] = tab[(b2<<1)&31]
		n += 5
	case 4:
		b0, b1, b2, b3 := src[0], src[1], src[2], src[3]

		d := dst[n : n+7 : n+7]
		d[0] = tab[b0>>3]
		d[1] = tab[((b0<<2)|(b1>>6))&31]
		d[2] = tab[(b1>>1)&31]
		d[3] = tab[((b1<<4)|(b2>>4))&31]
		d[4] = tab[((b2<<1)|(b3>>7))&31]
		d[5] = tab[(b3>>2)&31]
		d[6] = tab[(b3<<3)&31]
		n += 7
	}

	return n
}

// encodeInto fills dst, which must be exactly encodedLen(len(src),
// withPadding) long, with the encoded form of src.
func (enc *Encoding) encodeInto(dst, src []byte) {
	for i := enc.encode(dst, src); i < len(dst); i++ {
		dst[i] = enc.padChar
	}
}

// Encode returns "" if src is empty, otherwise it returns the encoded form
// of src. When withPadding is true the result is padded to a multiple of 8
// symbols.
func (enc *Encoding) Encode(src []byte, withPadding bool) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	dst := make([]byte, encodedLen(n, withPadding))
	enc.encodeInto(dst, src)

	return string(dst)
}

// EncodeString is like Encode but accepts the source as a string.
func (enc *Encoding) EncodeString(src string, withPadding bool) string {
	return enc.Encode([]byte(src), withPadding)
}

// AppendEncode returns the encoded form of src appended to dst if src is
// not empty. If src is empty dst is returned as-is.
func (enc *Encoding) AppendEncode(dst, src []byte, withPadding bool) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n, withPadding)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	enc.encodeInto(dst[orig:], src)

	return dst
}
