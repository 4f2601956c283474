package fftdct

import "fmt"

type Option func(*config) error

type config struct {
	norm     Norm
	workers  int
	twiddles *TwiddleCache
}

// WithNorm selects the normalization. The default is NormNone.
func WithNorm(norm Norm) Option {
	return func(c *config) error {
		if !norm.valid() {
			return fmt.Errorf("%w: unknown norm %s", ErrInvalidArgument, norm)
		}
		c.norm = norm
		return nil
	}
}

// WithWorkers processes batch rows on up to n goroutines. Rows are
// independent, so the result does not depend on n. The default is 1.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: workers %d < 1", ErrInvalidArgument, n)
		}
		c.workers = n
		return nil
	}
}

// WithTwiddleCache shares twiddle tables with other transforms built from
// the same cache. Without it every transform owns a private table.
func WithTwiddleCache(c *TwiddleCache) Option {
	return func(cfg *config) error {
		cfg.twiddles = c
		return nil
	}
}

func (c *config) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.workers == 0 {
		c.workers = 1
	}
	return nil
}
