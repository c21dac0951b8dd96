package domain

import "time"

// SubscriptionTier enumerates supported subscription states. A user starts
// free and may convert to premium exactly once; the transition never reverts.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
)

// DeviceKind enumerates the device classes sessions are attributed to.
type DeviceKind string

const (
	DeviceMobile  DeviceKind = "mobile"
	DeviceDesktop DeviceKind = "desktop"
	DeviceTablet  DeviceKind = "tablet"
)

// ActivityEvent is one user-session row in the activity stream. Events are
// immutable once emitted; the generator appends them in user order and hands
// the finished stream to a sink.
type ActivityEvent struct {
	Date             time.Time
	UserID           string
	CourseID         string
	LessonCompleted  bool
	TimeSpent        int // minutes, never below 5
	DeviceType       DeviceKind
	SubscriptionType SubscriptionTier
}

// IsPremium reports whether the event was recorded under a premium tier.
func (e ActivityEvent) IsPremium() bool {
	return e.SubscriptionType == TierPremium
}
