package chain

// Elimination decides when a player without cells drops out of the rotation.
type Elimination uint8

const (
	// ProtectUnmoved keeps a player alive until they have made a first move.
	ProtectUnmoved Elimination = iota
	// EliminateUnmoved drops every player that owns no cell at a win check.
	EliminateUnmoved
)

func (e Elimination) String() string {
	switch e {
	case ProtectUnmoved:
		return "protect-unmoved"
	case EliminateUnmoved:
		return "eliminate-unmoved"
	default:
		return "unknown"
	}
}

// Option configures a Board at construction.
type Option func(*Board)

// WithElimination selects the elimination policy. The default is ProtectUnmoved.
func WithElimination(e Elimination) Option {
	return func(b *Board) { b.elimination = e }
}
