package sim

import (
	"fmt"
	"math"
	"time"

	"edpulse/internal/domain"
)

const (
	// primaryDeviceProb is the chance a session happens on the user's
	// primary device; the rest model occasional off-device usage.
	primaryDeviceProb = 0.8

	// minSessionMinutes floors the normal duration draw so degenerate or
	// negative samples never reach the stream.
	minSessionMinutes = 5

	// completionCap keeps lesson completion from ever being certain.
	completionCap = 0.95

	premiumDurationFactor   = 1.4
	premiumCompletionFactor = 1.2
	engagedCompletionFactor = 1.1
)

// emitSessions produces the 1..N session events for one active day. At least
// one session is guaranteed. The caller owns all state; this function only
// draws and appends.
func emitSessions(p Profile, date time.Time, tier domain.SubscriptionTier, catalog *Catalog, v *Variates) ([]domain.ActivityEvent, error) {
	count := v.Poisson(p.Archetype.params().sessionsPerDay)
	if count < 1 {
		count = 1
	}

	events := make([]domain.ActivityEvent, 0, count)
	for i := 0; i < count; i++ {
		course, err := catalog.DrawCourse(v)
		if err != nil {
			return nil, fmt.Errorf("draw course: %w", err)
		}

		device := p.PrimaryDevice
		if !v.Bernoulli(primaryDeviceProb) {
			device, err = catalog.DrawDevice(v)
			if err != nil {
				return nil, fmt.Errorf("draw device: %w", err)
			}
		}

		base := device.MeanSessionMinutes
		if tier == domain.TierPremium {
			base *= premiumDurationFactor
		}
		duration := int(math.Round(v.Normal(base, base*0.3)))
		if duration < minSessionMinutes {
			duration = minSessionMinutes
		}

		completionProb := device.BaseCompletionRate
		if tier == domain.TierPremium {
			completionProb *= premiumCompletionFactor
		}
		if p.Archetype == ArchetypeEngaged {
			completionProb *= engagedCompletionFactor
		}
		if completionProb > completionCap {
			completionProb = completionCap
		}

		events = append(events, domain.ActivityEvent{
			Date:             date,
			UserID:           p.UserID,
			CourseID:         course.ID,
			LessonCompleted:  v.Bernoulli(completionProb),
			TimeSpent:        duration,
			DeviceType:       device.Kind,
			SubscriptionType: tier,
		})
	}
	return events, nil
}
