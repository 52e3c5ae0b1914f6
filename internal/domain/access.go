package domain

// Screen identifies a client screen a denied user should be redirected to.
type Screen string

const ScreenPayment Screen = "payment"

// AccessDecision is the outcome of an authentication attempt. It is computed
// fresh on every attempt and never persisted. A missing user or group record
// is not a decision; those surface as errors one level above.
type AccessDecision struct {
	Granted        bool    `json:"granted"`
	Reason         string  `json:"reason,omitempty"`
	RedirectTarget *Screen `json:"redirect_target,omitempty"`
}

func AccessGranted() AccessDecision {
	return AccessDecision{Granted: true}
}

func AccessDenied(reason string) AccessDecision {
	return AccessDecision{Reason: reason}
}

func AccessDeniedRedirect(reason string, target Screen) AccessDecision {
	return AccessDecision{Reason: reason, RedirectTarget: &target}
}
