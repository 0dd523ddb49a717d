package parser

// Options bounds the parser's resource use.
type Options struct {
	// MaxDepth limits nesting of expressions, blocks and types.
	MaxDepth int
	// MaxParameters limits the parameters of one function declaration.
	MaxParameters int
	// MaxArguments limits the arguments of one call.
	MaxArguments int
}

const (
	DefaultMaxDepth      = 256
	DefaultMaxParameters = 255
	DefaultMaxArguments  = 255
)

func DefaultOptions() Options {
	return Options{
		MaxDepth:      DefaultMaxDepth,
		MaxParameters: DefaultMaxParameters,
		MaxArguments:  DefaultMaxArguments,
	}
}

// withDefaults replaces non-positive limits with the defaults.
func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxParameters <= 0 {
		o.MaxParameters = DefaultMaxParameters
	}
	if o.MaxArguments <= 0 {
		o.MaxArguments = DefaultMaxArguments
	}
	return o
}
