package particle

// InteractionType tags the kind of interaction a particle undergoes. The tag
// space is open; the values below are reserved.
type InteractionType int

// Reserved interaction types.
const (
	NoInteraction    InteractionType = 0
	ChargedCurrent   InteractionType = 1
	NeutralCurrent   InteractionType = 2
	Decay            InteractionType = 3
	ShowerMax        InteractionType = 100
	OtherInteraction InteractionType = -1
)

// InteractionInfo describes a particle's next interaction: the column depth
// at which a medium interaction occurs [g/cm^2], or the lab-frame lifetime
// after which a decay occurs [ns]. A negative grammage or lifetime never
// triggers in the propagator.
type InteractionInfo struct {
	Type     InteractionType
	Grammage float64
	Lifetime float64
}

// NoInteractionInfo returns the sentinel info that never triggers,
// effectively terminating the particle.
func NoInteractionInfo() InteractionInfo {
	return InteractionInfo{Type: NoInteraction, Grammage: -1, Lifetime: -1}
}
