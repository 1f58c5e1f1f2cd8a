package console

import (
	"io"
	"log/slog"
)

const defaultBufSize = 1024

type options struct {
	logger  *slog.Logger
	bufSize int
	echo    bool
}

func defaultOptions() options {
	return options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		bufSize: defaultBufSize,
	}
}

// Option configures a Console.
type Option func(*options)

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithBufSize sets the size of the buffer removed values are copied into.
// Values longer than size-1 bytes are shown truncated.
func WithBufSize(size int) Option {
	return func(opts *options) {
		if size > 0 {
			opts.bufSize = size
		}
	}
}

// WithEcho makes Run print every command before executing it.
func WithEcho(echo bool) Option {
	return func(opts *options) {
		opts.echo = echo
	}
}
