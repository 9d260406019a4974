package vec

import (
	"reflect"

	"github.com/hupe1980/rawkit"
	"github.com/hupe1980/rawkit/alloc"
)

type options struct {
	allocator alloc.Allocator
	logger    *rawkit.Logger
}

// Option configures a RawBuf or Vec.
type Option func(*options)

// WithAllocator sets the allocator that admits and retires the buffer's memory.
//
// If nil is passed, alloc.Default is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default
		}
		o.allocator = a
	}
}

// WithLogger sets the logger for growth and release events.
//
// Growth and release are logged at debug level; failed reservations at
// error level right before they panic. If nil is passed, logging is disabled.
func WithLogger(l *rawkit.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

var noopLogger = rawkit.NoopLogger()

func applyOptions[T any](elem alloc.Layout, opts []Option) options {
	o := options{allocator: alloc.Default}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = noopLogger
	} else {
		o.logger = o.logger.WithElemType(reflect.TypeFor[T]().String()).WithElemSize(elem.Size)
	}
	return o
}
