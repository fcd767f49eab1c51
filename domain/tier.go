package domain

import (
	"strings"

	"petspace/errors"
)

// Tier is the fixed user classification. It is assigned at construction
// and never changes for the lifetime of the user.
type Tier int

const (
	TierFree Tier = iota
	TierPremium
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierFree:
		return "Free"
	case TierPremium:
		return "Premium"
	case TierAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// ParseTier maps a configuration or menu string to a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free":
		return TierFree, nil
	case "premium":
		return TierPremium, nil
	case "admin":
		return TierAdmin, nil
	default:
		return TierFree, errors.ErrUnknownTier
	}
}
