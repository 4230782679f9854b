package entity

// SubscriptionTier is the plan a user account is on.
type SubscriptionTier string

const (
	// SubscriptionStarter is the default tier for new accounts.
	SubscriptionStarter SubscriptionTier = "starter"
	// SubscriptionPro is the mid tier.
	SubscriptionPro SubscriptionTier = "pro"
	// SubscriptionBusiness is the top tier.
	SubscriptionBusiness SubscriptionTier = "business"
)

// String returns the string representation of the tier.
func (t SubscriptionTier) String() string {
	return string(t)
}

// IsValid checks if the tier is one of the known values.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	default:
		return false
	}
}
