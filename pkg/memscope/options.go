package memscope

type options struct {
	limit    int
	logScale bool
	exclude  []string
}

// Option configures a Graph call.
type Option func(*options)

// WithLimit sets how many of the highest-peaked series are drawn.
// Default: 15. A negative limit draws everything.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithLogScale plots the y axis logarithmically.
func WithLogScale() Option {
	return func(o *options) {
		o.logScale = true
	}
}

// WithExclude drops the named scopes before ranking. Names match exactly.
func WithExclude(names ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, names...)
	}
}

func defaultOptions() options {
	return options{
		limit: 15,
	}
}
