package quantum

import (
	"github.com/typotools/quantum/core"
)

// Config collects the tunables of the generator. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Seed fixes the pseudorandom partitioning of the glyph inventory,
	// making generation deterministic. Change it to get a different
	// random texture for the same typeface.
	Seed int64

	// Depth controls the distance of the lookbehind the feature will
	// use. The greater the depth, the longer-range the feature triggers
	// are, and the more work a shaping engine has to do when setting
	// text.
	Depth int

	// Partitions is the number of pseudorandom context classes the
	// glyph inventory is split into. Two is the classic choice; more
	// partitions change the texture of the randomness.
	Partitions int

	// Indent is prepended to every emitted line, so the output can be
	// pasted into an already indented context.
	Indent string

	// WrapFeature emits a complete 'feature calt { … } calt;' block
	// instead of the bare feature body. Font editors usually want the
	// bare body in their calt panel; standalone feature files want the
	// full definition.
	WrapFeature bool
}

// DefaultConfig returns the generator defaults: seed 0, lookbehind
// depth 10, two partitions, bare body without indentation.
func DefaultConfig() Config {
	return Config{
		Seed:       0,
		Depth:      10,
		Partitions: 2,
	}
}

func (config Config) check() error {
	if config.Depth < 1 {
		return core.Error(core.EINVALID, "lookbehind depth must be at least 1, is %d", config.Depth)
	}
	if config.Partitions < 1 {
		return core.Error(core.EINVALID, "partition count must be at least 1, is %d", config.Partitions)
	}
	return nil
}
