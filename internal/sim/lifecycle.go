package sim

import (
	"fmt"
	"math"
	"time"

	"edpulse/internal/domain"
)

const (
	// churnCutoff is the consecutive-inactive-day threshold past which a
	// user's simulation stops for good, even mid-horizon.
	churnCutoff = 14

	// coolingBase suppresses activity further for every consecutive
	// inactive day, on top of the age-based retention decay.
	coolingBase = 0.7
)

// state is the mutable per-user lifecycle state. It is owned exclusively by
// simulateUser and never escapes the loop.
type state struct {
	cursor              time.Time
	tier                domain.SubscriptionTier
	consecutiveInactive int
}

// simulateUser walks one user day-by-day from signup to the horizon end and
// returns the user's full event stream. The tier transition is monotonic:
// once premium, every later session is premium.
func simulateUser(p Profile, h Horizon, catalog *Catalog, v *Variates) ([]domain.ActivityEvent, error) {
	params := p.Archetype.params()
	end := h.End()

	st := state{cursor: p.SignupDate, tier: domain.TierFree}
	var events []domain.ActivityEvent

	for !st.cursor.After(end) {
		age := daysBetween(p.SignupDate, st.cursor)

		// Conversion runs before the activity decision so a session on
		// the conversion day already carries the premium tier.
		if p.WillConvert && st.tier == domain.TierFree && age >= p.ConversionOffset {
			st.tier = domain.TierPremium
		}

		prob := params.sessionProb * math.Pow(params.retentionDecay, float64(age)/7)
		if st.consecutiveInactive > 0 {
			prob *= math.Pow(coolingBase, float64(st.consecutiveInactive))
		}

		if v.Uniform() < prob {
			st.consecutiveInactive = 0
			sessions, err := emitSessions(p, st.cursor, st.tier, catalog, v)
			if err != nil {
				return nil, fmt.Errorf("user %s day %s: %w", p.UserID, st.cursor.Format("2006-01-02"), err)
			}
			events = append(events, sessions...)
		} else {
			st.consecutiveInactive++
			if st.consecutiveInactive > churnCutoff {
				break // definitive churn, stop simulating this user
			}
		}

		st.cursor = st.cursor.AddDate(0, 0, 1)
	}

	return events, nil
}

// daysBetween counts whole days from a to b at day granularity.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
