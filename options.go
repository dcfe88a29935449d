package bloomset

import "fmt"

// Option configures a filter at construction time.
type Option func(*options)

type options struct {
	hasher Hasher
}

// WithHasher selects the index hasher. The default is [SHA256]. A nil
// hasher leaves the default in place.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{hasher: SHA256}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validateParams checks explicit construction parameters.
func validateParams(bitCount uint64, hashCount uint32) error {
	if bitCount == 0 {
		return fmt.Errorf("%w: bit count must be positive", ErrInvalidArgument)
	}
	if bitCount > MaxBitCount {
		return fmt.Errorf("%w: bit count %d exceeds %d", ErrInvalidArgument, bitCount, MaxBitCount)
	}
	if hashCount == 0 {
		return fmt.Errorf("%w: hash count must be positive", ErrInvalidArgument)
	}
	return nil
}
