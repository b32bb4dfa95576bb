package response

// Option customizes an envelope at construction time. Options cover the
// optional fields shared by every factory: message, meta and status code.
type Option func(*settings)

type settings struct {
	message *string
	meta    map[string]any
	code    int
}

func newSettings(defaultCode int, opts []Option) settings {
	s := settings{code: defaultCode}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithMessage sets the human-readable envelope message.
func WithMessage(message string) Option {
	return func(s *settings) {
		s.message = &message
	}
}

// WithCode overrides the envelope's HTTP status code.
func WithCode(code int) Option {
	return func(s *settings) {
		s.code = code
	}
}

// WithMeta replaces the envelope's meta map.
func WithMeta(meta map[string]any) Option {
	return func(s *settings) {
		s.meta = meta
	}
}

// WithMetaValue adds a single key to the envelope's meta map.
func WithMetaValue(key string, value any) Option {
	return func(s *settings) {
		if s.meta == nil {
			s.meta = make(map[string]any)
		}
		s.meta[key] = value
	}
}
