package base32

import "maps"

type config struct {
	caseSensitive bool
	aliases       map[string]string
	padding       string
}

// Option configures an Encoding built by NewEncoding.
type Option func(*config)

// CaseSensitive controls whether symbols are matched exactly. When disabled
// (the default) both cases of every alphabet and alias symbol decode.
func CaseSensitive(enabled bool) Option {
	return func(cfg *config) {
		cfg.caseSensitive = enabled
	}
}

// WithAliases registers extra symbols that decode to the same value as an
// existing alphabet symbol. Keys are the alias symbols and values are the
// alphabet symbols they stand in for, e.g. {"O": "0", "L": "1"}.
//
// The map is copied, changes made to it afterwards have no effect.
func WithAliases(aliases map[string]string) Option {
	aliases = maps.Clone(aliases)

	return func(cfg *config) {
		cfg.aliases = aliases
	}
}

// WithPadding sets the padding symbol. It must be a single byte symbol
// that is not part of the alphabet or the alias table.
func WithPadding(padding string) Option {
	return func(cfg *config) {
		cfg.padding = padding
	}
}
