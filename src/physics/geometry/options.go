package geometry

import "log/slog"

// Option configures a ConvexHull during construction.
type Option func(*hullOptions)

type hullOptions struct {
	logger   *slog.Logger
	validate bool
}

func defaultOptions() hullOptions {
	return hullOptions{
		logger: nil, // falls back to Logger()
	}
}

// WithLogger routes the hull's diagnostics to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *hullOptions) {
		o.logger = l
	}
}

// WithValidation runs Validate after every insertion that changes the mesh
// and aborts construction on the first violation. It is quadratic in the hull
// size and intended for tests and debugging.
func WithValidation(enabled bool) Option {
	return func(o *hullOptions) {
		o.validate = enabled
	}
}
