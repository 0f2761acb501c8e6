// Package base32 implements RFC 4648 style base32 encoding over any
// alphabet of 32 distinct single byte symbols.
//
// Encodings are case insensitive by default and may accept alias symbols
// and use a padding symbol other than '='.
package base32

const (
	// DefaultPadding is the padding symbol used unless WithPadding is given.
	DefaultPadding = "="

	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	hexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

var (
	// StdEncoding is the standard base32 encoding, as defined in RFC 4648.
	StdEncoding = MustNewEncoding(stdAlphabet)

	// HexEncoding is the "Extended Hex Alphabet" defined in RFC 4648.
	HexEncoding = MustNewEncoding(hexAlphabet)
)

// Encoding is an immutable base32 configuration. It is safe for concurrent
// use by multiple goroutines.
type Encoding struct {
	encodeTab     [32]byte
	decodeTab     [256]byte
	padChar       byte
	caseSensitive bool
}

// NewEncoding validates alphabet and options and returns the Encoding
// they describe.
//
// Unless CaseSensitive(true) is given the alphabet is folded to upper case,
// so encoded output is always upper case and decoding accepts either case.
//
// The returned error wraps one of ErrInvalidAlphabet, ErrInvalidAliasTable
// or ErrInvalidPadding.
func NewEncoding(alphabet string, options ...Option) (*Encoding, error) {
	cfg := config{
		padding: DefaultPadding,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	enc := &Encoding{
		caseSensitive: cfg.caseSensitive,
	}

	if err := enc.setAlphabet(alphabet); err != nil {
		return nil, err
	}

	if err := enc.setAliases(cfg.aliases); err != nil {
		return nil, err
	}

	if err := enc.setPadding(cfg.padding); err != nil {
		return nil, err
	}

	return enc, nil
}

// MustNewEncoding is like NewEncoding but panics if the configuration is
// invalid. It simplifies safe initialization of global variables.
func MustNewEncoding(alphabet string, options ...Option) *Encoding {
	enc, err := NewEncoding(alphabet, options...)
	if err != nil {
		panic("base32: " + err.Error())
	}

	return enc
}

// Alphabet returns the encode alphabet in its canonical case.
func (enc *Encoding) Alphabet() string {
	return string(enc.encodeTab[:])
}

func (enc *Encoding) Padding() byte {
	return enc.padChar
}

func (enc *Encoding) IsCaseSensitive() bool {
	return enc.caseSensitive
}
