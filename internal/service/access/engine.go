// Package access decides whether an authenticated user may enter the app,
// and where the client should send them when they may not.
package access

import "celula-igreja/internal/domain"

const (
	// ReasonLeaderInactive covers both an unapproved leader account and a
	// group whose pro-mode subscription has lapsed; the redirect target
	// distinguishes the payable case.
	ReasonLeaderInactive = "leader account inactive or group subscription inactive"

	ReasonPendingApproval = "pending leader approval"
)

// Decide is a pure function of the user and group records. Leaders enter only
// when their account is approved and the group subscription is active;
// members enter once approved, regardless of the subscription. Missing
// records never reach this function.
func Decide(user *domain.User, group *domain.Group) domain.AccessDecision {
	if user.IsLeader {
		if user.Approved && group.ProModeActive {
			return domain.AccessGranted()
		}
		if !group.ProModeActive {
			return domain.AccessDeniedRedirect(ReasonLeaderInactive, domain.ScreenPayment)
		}
		return domain.AccessDenied(ReasonLeaderInactive)
	}

	if user.Approved {
		return domain.AccessGranted()
	}
	return domain.AccessDenied(ReasonPendingApproval)
}
