package sim

import "fmt"

// Archetype is a user's fixed behavioral class. It drives how often the user
// shows up, how many sessions an active day has, how quickly their daily
// activity probability decays with account age, and how likely they are to
// convert to premium.
type Archetype int

const (
	ArchetypeEngaged Archetype = iota
	ArchetypeCasual
	ArchetypeTrial
)

// String returns the archetype label used in logs and reports.
func (a Archetype) String() string {
	switch a {
	case ArchetypeEngaged:
		return "engaged"
	case ArchetypeCasual:
		return "casual"
	case ArchetypeTrial:
		return "trial"
	default:
		return fmt.Sprintf("archetype(%d)", int(a))
	}
}

// archetypeParams are the per-class behavior constants. Trial users start the
// most active but decay the fastest, modeling short-lived high-intensity
// trial periods.
type archetypeParams struct {
	sessionProb    float64 // daily activity probability at age zero
	sessionsPerDay float64 // Poisson mean for sessions on an active day
	retentionDecay float64 // weekly decay base for the activity probability
	convertProb    float64 // chance the user ever converts to premium
}

var archetypeTable = [...]archetypeParams{
	ArchetypeEngaged: {sessionProb: 0.7, sessionsPerDay: 2.5, retentionDecay: 0.95, convertProb: 0.4},
	ArchetypeCasual:  {sessionProb: 0.4, sessionsPerDay: 1.0, retentionDecay: 0.85, convertProb: 0.1},
	ArchetypeTrial:   {sessionProb: 0.9, sessionsPerDay: 2.0, retentionDecay: 0.70, convertProb: 0.1},
}

// archetypeWeights is the population mix used when drawing archetypes.
// Order matches the Archetype constants.
var archetypeWeights = []float64{
	ArchetypeEngaged: 0.2,
	ArchetypeCasual:  0.6,
	ArchetypeTrial:   0.2,
}

func (a Archetype) params() archetypeParams {
	return archetypeTable[a]
}
