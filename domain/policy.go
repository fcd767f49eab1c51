package domain

// Policy is the pluggable per-tier content acceptance check consulted
// before a message is handed to the mediator. Validate is pure: it never
// mutates state across calls, and rejection reasons are narrated, not
// returned.
type Policy interface {
	Validate(message, sender string) bool
	Name() string
	// MaxLength returns the policy's length ceiling in characters,
	// or -1 when unlimited.
	MaxLength() int
}
