// Package event holds the records emitted by the propagator: single
// interactions, the per-trial interaction tree, and batches of trees.
package event

import (
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

// Interaction is one detected interaction.
type Interaction struct {
	// Trials is the number of failed trials before this interaction when
	// produced by a retry-until-success propagation; zero otherwise.
	Trials int

	// PDGID identifies the interacting particle.
	PDGID particle.ID

	// Energy is the particle energy [log10(eV)].
	Energy float64

	// Type is the interaction that occurred.
	Type particle.InteractionType

	// Location is the geocentric interaction location [km].
	Location geom.Vec

	// Direction is the unit momentum direction.
	Direction geom.Vec

	// Weight is the dot product of the outward normal at the trial origin
	// with the sampled direction, used as a geometric acceptance weight by
	// downstream aggregators.
	Weight float64

	// Altitude is the interaction altitude above the local surface [km].
	Altitude float64
}

// Tree is the ordered sequence of interactions emitted by one trial. A
// failed trial produces an empty tree.
type Tree []Interaction

// Events is a batch of trees, one per trial.
type Events []Tree

// Detected returns the number of non-empty trees in the batch.
func (e Events) Detected() int {
	n := 0
	for _, t := range e {
		if len(t) > 0 {
			n++
		}
	}
	return n
}

// Flatten returns all interactions in the batch in trial order.
func (e Events) Flatten() []Interaction {
	var out []Interaction
	for _, t := range e {
		out = append(out, t...)
	}
	return out
}
