package particle

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pthm-cable/stratos/random"
)

// FinalState holds the fractional energy transferred to each component of a
// tau decay.
type FinalState struct {
	NuTau    float64
	NuMu     float64
	NuE      float64
	Hadronic float64
	Muon     float64
	Electron float64
}

// DecayTable is a collection of pre-simulated tau decay final states, loaded
// once and sampled uniformly. The table is an external data product: a text
// file with one final state per row, six whitespace-separated fractional
// energies per row in the order (nu_tau, nu_mu, nu_e, hadronic, muon,
// electron).
type DecayTable struct {
	states []FinalState
}

// LoadDecayTable reads a decay table from the given file.
func LoadDecayTable(path string) (*DecayTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening decay table: %w", err)
	}
	defer f.Close()

	var states []FinalState
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 6 {
			return nil, fmt.Errorf("decay table %s line %d: want 6 fields, got %d", path, line, len(fields))
		}
		var vals [6]float64
		for i, field := range fields {
			vals[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("decay table %s line %d: %w", path, line, err)
			}
		}
		states = append(states, FinalState{
			NuTau:    vals[0],
			NuMu:     vals[1],
			NuE:      vals[2],
			Hadronic: vals[3],
			Muon:     vals[4],
			Electron: vals[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading decay table: %w", err)
	}
	if len(states) == 0 {
		return nil, fmt.Errorf("decay table %s: no final states", path)
	}
	return &DecayTable{states: states}, nil
}

// Len returns the number of final states in the table.
func (t *DecayTable) Len() int {
	return len(t.states)
}

// RandomFinalState returns a uniformly chosen final state. A nil table
// reports an error rather than panicking, so callers can propagate a missing
// data file.
func (t *DecayTable) RandomFinalState(rng *random.Engine) (FinalState, error) {
	if t == nil || len(t.states) == 0 {
		return FinalState{}, fmt.Errorf("decay table not loaded")
	}
	return t.states[rng.UniformInt(0, len(t.states)-1)], nil
}
