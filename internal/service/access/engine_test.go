package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/service/access"
)

func TestDecide_Leader(t *testing.T) {
	t.Run("Approved With Active Subscription", func(t *testing.T) {
		decision := access.Decide(
			&domain.User{IsLeader: true, Approved: true},
			&domain.Group{ProModeActive: true},
		)

		assert.True(t, decision.Granted)
		assert.Empty(t, decision.Reason)
		assert.Nil(t, decision.RedirectTarget)
	})

	t.Run("Inactive Subscription Redirects To Payment", func(t *testing.T) {
		decision := access.Decide(
			&domain.User{IsLeader: true, Approved: true},
			&domain.Group{ProModeActive: false},
		)

		assert.False(t, decision.Granted)
		assert.Equal(t, access.ReasonLeaderInactive, decision.Reason)
		require.NotNil(t, decision.RedirectTarget)
		assert.Equal(t, domain.ScreenPayment, *decision.RedirectTarget)
	})

	t.Run("Unapproved And Inactive Still Redirects", func(t *testing.T) {
		decision := access.Decide(
			&domain.User{IsLeader: true, Approved: false},
			&domain.Group{ProModeActive: false},
		)

		assert.False(t, decision.Granted)
		require.NotNil(t, decision.RedirectTarget)
		assert.Equal(t, domain.ScreenPayment, *decision.RedirectTarget)
	})

	t.Run("Unapproved With Active Subscription Has No Redirect", func(t *testing.T) {
		decision := access.Decide(
			&domain.User{IsLeader: true, Approved: false},
			&domain.Group{ProModeActive: true},
		)

		assert.False(t, decision.Granted)
		assert.Equal(t, access.ReasonLeaderInactive, decision.Reason)
		assert.Nil(t, decision.RedirectTarget)
	})
}

func TestDecide_Member(t *testing.T) {
	t.Run("Approved Enters Regardless Of Subscription", func(t *testing.T) {
		for _, proMode := range []bool{true, false} {
			decision := access.Decide(
				&domain.User{IsLeader: false, Approved: true},
				&domain.Group{ProModeActive: proMode},
			)

			assert.True(t, decision.Granted)
			assert.Nil(t, decision.RedirectTarget)
		}
	})

	t.Run("Pending Approval Is Denied", func(t *testing.T) {
		for _, proMode := range []bool{true, false} {
			decision := access.Decide(
				&domain.User{IsLeader: false, Approved: false},
				&domain.Group{ProModeActive: proMode},
			)

			assert.False(t, decision.Granted)
			assert.Equal(t, access.ReasonPendingApproval, decision.Reason)
			assert.Nil(t, decision.RedirectTarget)
		}
	})
}
