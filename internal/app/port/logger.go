package port

// Logger is the structured logger handed to providers, handlers and the verifier.
// args are alternating key/value pairs; keys are snake_case (route_prefix, chain_id).
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
