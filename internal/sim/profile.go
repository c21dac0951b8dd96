package sim

import (
	"fmt"
	"time"
)

// signupReserveDays keeps the tail of the horizon free of new signups so
// every user has some observable lifecycle before the run ends.
const signupReserveDays = 30

// Profile holds the immutable per-user parameters drawn once before the
// lifecycle loop starts.
type Profile struct {
	UserID           string
	Archetype        Archetype
	SignupDate       time.Time
	PrimaryDevice    Device
	WillConvert      bool
	ConversionOffset int // days after signup; meaningful only when WillConvert
}

// Horizon is the date range a run simulates over. Start is truncated to day
// granularity; Days must be positive.
type Horizon struct {
	Start time.Time
	Days  int
}

// End returns the last simulated date.
func (h Horizon) End() time.Time {
	return h.Start.AddDate(0, 0, h.Days-1)
}

// NewProfile draws one user's fixed parameters. Besides propagated catalog
// or distribution errors it cannot fail.
func NewProfile(index int, h Horizon, catalog *Catalog, v *Variates) (Profile, error) {
	archetypeIdx, err := v.Categorical(archetypeWeights)
	if err != nil {
		return Profile{}, fmt.Errorf("draw archetype: %w", err)
	}
	archetype := Archetype(archetypeIdx)

	// Reserve the final stretch of the horizon so signups are observable.
	// Short horizons collapse the window to the start date.
	signup := h.Start
	if window := h.Days - signupReserveDays; window > 0 {
		signup = h.Start.AddDate(0, 0, v.IntBetween(0, window))
	}

	device, err := catalog.DrawDevice(v)
	if err != nil {
		return Profile{}, fmt.Errorf("draw primary device: %w", err)
	}

	p := Profile{
		UserID:        fmt.Sprintf("U%04d", index+1),
		Archetype:     archetype,
		SignupDate:    signup,
		PrimaryDevice: device,
	}

	if v.Bernoulli(archetype.params().convertProb) {
		p.WillConvert = true
		p.ConversionOffset = v.IntBetween(3, 30)
	}
	return p, nil
}
