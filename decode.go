// This base32 decoding implementation rejects inputs that contain non-canonical
// tail bits that are non-zero. Other implementations may ignore them as useless
// noise but this algorithm strictly interprets them as a signal to fail decoding.
// If you are bit packing at a higher level to utilize these empty bits you are
// required to clear them before passing bytes to these functions. It is unsafe to
// assume the contents are noise as it could indicate a failure to preserve the
// encoded value full length.

package base32

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidBase32String = errors.New("invalid base32 string")

// DecodedLen returns the maximum number of bytes that n base32 symbols
// decode to. It returns -1 if n is negative.
//
// Trailing padding symbols count towards n, so the result is an upper bound
// for padded input.
func (enc *Encoding) DecodedLen(n int) int {
	if n < 0 {
		return -1
	}

	return decodedLen(n)
}

// decodedLen returns floor(n*5/8) without overflowing for large n.
//
// invariants:
//
// - n must not be negative
func decodedLen(n int) int {
	return (n/8)*5 + ((n%8)*5)/8
}

// trimPadding strips trailing padding symbols. Padding is matched exactly,
// it is never case folded.
func (enc *Encoding) trimPadding(s string) string {
	n := len(s)
	for n > 0 && s[n-1] == enc.padChar {
		n--
	}

	return s[:n]
}

// invalidCharError reports the first symbol of src that is not in the
// decode table. off is the offset of src within the full input.
func (enc *Encoding) invalidCharError(src string, off int) error {
	for i := range len(src) {
		if c := src[i]; enc.decodeTab[c] == b32Invalid {
			return fmt.Errorf("%w: illegal character %q at offset %d", ErrInvalidBase32String, c, off+i)
		}
	}

	return ErrInvalidBase32String
}

var errTrailingBits = fmt.Errorf("%w: non-zero trailing bits", ErrInvalidBase32String)

// decode writes the decoded form of src to dst.
//
// invariants:
//
// - src has been stripped of padding
//
// - len(dst) >= decodedLen(len(src))
func (enc *Encoding) decode(dst []byte, src string) error {
	tab := &enc.decodeTab
	off := 0

	for len(src) >= 8 {
		c0 := tab[src[0]]
		c1 := tab[src[1]]
		c2 := tab[src[2]]
		c3 := tab[src[3]]
		c4 := tab[src[4]]
		c5 := tab[src[5]]
		c6 := tab[src[6]]
		c7 := tab[src[7]]

		if (c0 | c1 | c2 | c3 | c4 | c5 | c6 | c7) == b32Invalid {
			return enc.invalidCharError(src[:8], off)
		}

		d := dst[:5:5]
		d[0] = (c0<<3 | c1>>2)
		d[1] = ((c1&0x03)<<6 | c2<<1 | c3>>4)
		d[2] = ((c3&0x0F)<<4 | c4>>1)
		d[3] = ((c4&0x01)<<7 | c5<<2 | c6>>3)
		d[4] = ((c6&0x07)<<5 | c7)

		src = src[8:]
		dst = dst[5:]
		off += 8
	}

	if len(src) == 0 {
		return nil
	}

	// Tail.
	var c [7]byte
	for i := range len(src) {
		v := tab[src[i]]
		if v == b32Invalid {
			return enc.invalidCharError(src, off)
		}
		c[i] = v
	}

	// Each case checks that the bits left over after the last whole byte
	// are zero before writing anything.
	switch len(src) {
	case 1:
		if c[0] != 0 {
			return errTrailingBits
		}
	case 2:
		if (c[1] & 0x03) != 0 {
			return errTrailingBits
		}

		dst[0] = (c[0]<<3 | c[1]>>2)
	case 3:
		if (c[1]&0x03) != 0 || c[2] != 0 {
			return errTrailingBits
		}

		dst[0] = (c[0]<<3 | c[1]>>2)
	case 4:
		if (c[3] & 0x0F) != 0 {
			return errTrailingBits
		}

		d := dst[:2:2]
		d[0] = (c[0]<<3 | c[1]>>2)
		d[1] = ((c[1]&0x03)<<6 | c[2]<<1 | c[3]>>4)
	case 5:
		if (c[4] & 0x01) != 0 {
			return errTrailingBits
		}

		d := dst[:3:3]
		d[0] = (c[0]<<3 | c[1]>>2)
		d[1] = ((c[1]&0x03)<<6 | c[2]<<1 | c[3]>>4)
		d[2] = ((c[3]&0x0F)<<4 | c[4]>>1)
	case 6:
		if (c[4]&0x01) != 0 || c[5] != 0 {
			return errTrailingBits
		}

		d := dst[:3:3]
		d[0] = (c[0]<<3 | c[1]>>2)
		d[1] = ((c[1]&0x03)<<6 | c[2]<<1 | c[3]>>4)
		d[2] = ((c[3]&0x0F)<<4 | c[4]>>1)
	case 7:
		if (c[6] & 0x07) != 0 {
			return errTrailingBits
		}

		d := dst[:4:4]
		d[0] = (c[0]<<3 | c[1]>>2)
		d[1] = ((c[1]&0x03)<<6 | c[2]<<1 | c[3]>>4)
		d[2] = ((c[3]&0x0F)<<4 | c[4]>>1)
		d[3] = ((c[4]&0x01)<<7 | c[5]<<2 | c[6]>>3)
	}

	return nil
}

// Decode returns the decoded form of s. Trailing padding symbols are
// ignored. If s holds no symbols nil is returned.
//
// If an error occurs during decoding the returned error wraps
// ErrInvalidBase32String and the returned slice is nil.
func (enc *Encoding) Decode(s string) ([]byte, error) {
	s = enc.trimPadding(s)

	n := len(s)
	if n == 0 {
		return nil, nil
	}

	dst := make([]byte, decodedLen(n))

	if err := enc.decode(dst, s); err != nil {
		return nil, err
	}

	return dst, nil
}

// AppendDecode returns the decoded form of s appended to dst if s holds
// any symbols. Otherwise dst is returned as-is.
//
// If an error occurs during decoding the returned error wraps
// ErrInvalidBase32String and dst is returned as-is. When dst had spare
// capacity it may hold partially decoded bytes beyond its length. If the
// data is sensitive consider clearing it.
func (enc *Encoding) AppendDecode(dst []byte, s string) ([]byte, error) {
	s = enc.trimPadding(s)

	n := len(s)
	if n == 0 {
		return dst, nil
	}

	n = decodedLen(n)
	orig := len(dst)

	resp := slices.Grow(dst, n)
	resp = resp[:orig+n]

	if err := enc.decode(resp[orig:], s); err != nil {
		return dst, err
	}

	return resp, nil
}
