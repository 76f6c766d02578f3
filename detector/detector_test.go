package detector

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

func TestPerfect(t *testing.T) {
	var d Perfect
	p := particle.NewProton(19)

	if !d.IsGood(p, geom.Vec{}, geom.Vec{Z: 1}) {
		t.Error("IsGood should accept everything")
	}
	if !d.Detectable(particle.InteractionInfo{}, p, geom.Vec{}, geom.Vec{Z: 1}) {
		t.Error("Detectable should accept everything")
	}
	if d.Cut(p, geom.Vec{Z: earth.Volumetric + 99}, geom.Vec{Z: 1}) {
		t.Error("should not cut inside the volume")
	}
	if !d.Cut(p, geom.Vec{Z: earth.Volumetric + 101}, geom.Vec{Z: 1}) {
		t.Error("should cut above the volume")
	}
}

func TestEnergyCut(t *testing.T) {
	d := NewEnergyCut(16, 20)

	tests := []struct {
		name       string
		energy     float64
		detectable bool
		cut        bool
	}{
		{"inside window", 18, true, false},
		{"below window", 15, false, true},
		{"above window", 21, false, false},
		{"at min", 16, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := particle.NewMuon(tt.energy)
			if got := d.Detectable(particle.InteractionInfo{}, p, geom.Vec{}, geom.Vec{}); got != tt.detectable {
				t.Errorf("Detectable = %v, want %v", got, tt.detectable)
			}
			if got := d.Cut(p, geom.Vec{}, geom.Vec{}); got != tt.cut {
				t.Errorf("Cut = %v, want %v", got, tt.cut)
			}
		})
	}
}

func TestModeFromString(t *testing.T) {
	for s, want := range map[string]Mode{"direct": ModeDirect, "reflected": ModeReflected, "both": ModeBoth} {
		got, err := ModeFromString(s)
		if err != nil || got != want {
			t.Errorf("ModeFromString(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ModeFromString("sideways"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}

func TestOrbitalDirectVisibility(t *testing.T) {
	e := earth.NewSpherical(earth.Polar)
	payload := geom.Vec{Z: earth.Polar + 400}
	d := NewOrbital(e, payload, 5, ModeDirect)

	loc := geom.Vec{Z: earth.Polar}
	p := particle.NewTauNeutrino(18, particle.ConnollyMiddle)
	info := particle.InteractionInfo{Type: particle.ChargedCurrent}

	// Shower pointed straight up at the payload.
	if !d.Detectable(info, p, loc, geom.Vec{Z: 1}) {
		t.Error("upward shower under the payload should be visible")
	}

	// Shower pointed sideways, 90 degrees off the payload view.
	if d.Detectable(info, p, loc, geom.Vec{X: 1}) {
		t.Error("sideways shower should not be visible at 5 degrees maxview")
	}

	// Shower pointed down toward the Earth past the payload: visible back
	// along the axis.
	if !d.Detectable(info, p, geom.Vec{Z: earth.Polar + 50}, geom.Vec{Z: -1}) {
		t.Error("downward shower between surface and payload should be visible back along the axis")
	}
}

func TestOrbitalOcclusion(t *testing.T) {
	e := earth.NewSpherical(earth.Polar)
	payload := geom.Vec{Z: earth.Polar + 400}
	d := NewOrbital(e, payload, 5, ModeDirect)

	p := particle.NewTauNeutrino(18, particle.ConnollyMiddle)
	info := particle.InteractionInfo{Type: particle.ChargedCurrent}

	// An interaction on the far side of the Earth aimed at the payload: the
	// line of sight passes through the planet.
	loc := geom.Vec{Z: -(earth.Polar + 10)}
	dir := geom.Unit(payload.Sub(loc))
	if d.Detectable(info, p, loc, dir) {
		t.Error("far-side interaction should be occluded by the Earth")
	}
}

func TestOrbitalReflectedVisibility(t *testing.T) {
	e := earth.NewSpherical(earth.Polar)
	payload := geom.Vec{Z: earth.Polar + 400}
	d := NewOrbital(e, payload, 5, ModeReflected)

	p := particle.NewTauNeutrino(18, particle.ConnollyMiddle)
	info := particle.InteractionInfo{Type: particle.ChargedCurrent}

	// A shower above the pole pointed straight down reflects back up into
	// the payload.
	if !d.Detectable(info, p, geom.Vec{Z: earth.Polar + 20}, geom.Vec{Z: -1}) {
		t.Error("nadir-pointed shower should be visible via reflection")
	}

	// A shower that never hits the surface cannot reflect.
	if d.Detectable(info, p, geom.Vec{Z: earth.Polar + 20}, geom.Vec{Z: 1}) {
		t.Error("upward shower cannot be visible via reflection")
	}
}

func TestOrbitalCut(t *testing.T) {
	e := earth.NewSpherical(earth.Polar)
	d := NewOrbital(e, geom.Vec{Z: earth.Polar + 400}, 5, ModeBoth)
	p := particle.NewTauNeutrino(18, particle.ConnollyMiddle)

	if d.Cut(p, geom.Vec{Z: earth.Polar + 50}, geom.Vec{Z: 1}) {
		t.Error("should not cut inside the altitude band")
	}
	if !d.Cut(p, geom.Vec{Z: earth.Polar + 101}, geom.Vec{Z: 1}) {
		t.Error("should cut above the maximum altitude")
	}
	if !d.Cut(p, geom.Vec{Z: earth.Polar - 0.02}, geom.Vec{Z: 1}) {
		t.Error("should cut below the surface")
	}

	d.SetMaxAltitude(200)
	if d.Cut(p, geom.Vec{Z: earth.Polar + 150}, geom.Vec{Z: 1}) {
		t.Error("raised altitude limit should not cut at 150 km")
	}
}

func TestOrbitalPayloadAngle(t *testing.T) {
	e := earth.NewSpherical(earth.Polar)
	payload := geom.Vec{Z: earth.Polar + 400}
	d := NewOrbital(e, payload, 5, ModeBoth)

	// The point directly below the payload sits at the nadir, -90 degrees
	// from the payload horizontal.
	got := d.PayloadAngle(geom.Vec{Z: earth.Polar})
	if math.Abs(got-(-math.Pi/2)) > 1e-9 {
		t.Errorf("PayloadAngle below payload = %v, want -pi/2", got)
	}
}

func TestPolarCap(t *testing.T) {
	e := earth.NewSpherical(earth.Polar)
	d := NewPolarCap(e, 16, 21, 3, 4)

	info := particle.InteractionInfo{Type: particle.ChargedCurrent}
	p := particle.NewTauNeutrino(18, particle.ConnollyMiddle)

	// On the surface at the south pole.
	if !d.Detectable(info, p, geom.Vec{Z: -earth.Polar}, geom.Vec{Z: 1}) {
		t.Error("south-pole surface interaction should be detectable")
	}

	// North pole is outside the cap.
	if d.Detectable(info, p, geom.Vec{Z: earth.Polar}, geom.Vec{Z: 1}) {
		t.Error("north-pole interaction should not be detectable")
	}

	// Too deep below the surface.
	if d.Detectable(info, p, geom.Vec{Z: -(earth.Polar - 5)}, geom.Vec{Z: 1}) {
		t.Error("interaction 5 km deep should not be detectable")
	}

	// Outside the energy window.
	low := particle.NewTauNeutrino(12, particle.ConnollyMiddle)
	if d.Detectable(info, low, geom.Vec{Z: -earth.Polar}, geom.Vec{Z: 1}) {
		t.Error("interaction below the energy window should not be detectable")
	}
}
