package listqueue

type options struct {
	values []string
}

// Option configures a queue created by New.
type Option func(*options)

// WithValues seeds the new queue with values, inserted at the tail in order.
func WithValues(values ...string) Option {
	return func(opts *options) {
		opts.values = append(opts.values[:0], values...)
	}
}
