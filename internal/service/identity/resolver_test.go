package identity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/service/identity"
)

func strPtr(s string) *string { return &s }

func TestResolveSender_RosterPrecedence(t *testing.T) {
	senderID := uuid.New()
	roster := []domain.User{
		{ID: uuid.New(), Name: "Pedro", Surname: "Lima"},
		{ID: senderID, Name: "Maria", Surname: "Oliveira", PhotoURL: strPtr("https://cdn/maria-new.jpg")},
	}

	// The snapshot predates a profile edit; the roster record wins.
	n := &domain.Notification{
		Type:          domain.NotifMembershipRequest,
		CreatedBy:     &senderID,
		Message:       "Maria Souza solicitou entrada no grupo",
		SenderName:    strPtr("Maria"),
		SenderSurname: strPtr("Souza"),
		SenderPhoto:   strPtr("https://cdn/maria-old.jpg"),
	}

	id := identity.ResolveSender(n, roster)

	assert.Equal(t, "Maria", id.FirstName)
	assert.Equal(t, "Oliveira", id.LastName)
	assert.Equal(t, "https://cdn/maria-new.jpg", *id.PhotoURL)
}

func TestResolveSender_SnapshotFallback(t *testing.T) {
	senderID := uuid.New()

	t.Run("Sender Absent From Roster", func(t *testing.T) {
		n := &domain.Notification{
			Type:          domain.NotifMembershipRequest,
			CreatedBy:     &senderID,
			SenderName:    strPtr("João"),
			SenderSurname: strPtr("Batista"),
			SenderPhoto:   strPtr("https://cdn/joao.jpg"),
		}

		id := identity.ResolveSender(n, []domain.User{{ID: uuid.New(), Name: "Outro"}})

		assert.Equal(t, "João", id.FirstName)
		assert.Equal(t, "Batista", id.LastName)
		assert.Equal(t, "https://cdn/joao.jpg", *id.PhotoURL)
	})

	t.Run("Nil Roster", func(t *testing.T) {
		n := &domain.Notification{
			Type:       domain.NotifMentionComment,
			CreatedBy:  &senderID,
			SenderName: strPtr("Ana"),
		}

		id := identity.ResolveSender(n, nil)

		assert.Equal(t, "Ana", id.FirstName)
		assert.Empty(t, id.LastName)
	})
}

func TestResolveSender_MessageHeuristic(t *testing.T) {
	t.Run("Membership Request", func(t *testing.T) {
		n := &domain.Notification{
			Type:    domain.NotifMembershipRequest,
			Message: "Maria Souza solicitou entrada no grupo",
		}

		id := identity.ResolveSender(n, nil)

		assert.Equal(t, "Maria", id.FirstName)
		assert.Equal(t, "Souza", id.LastName)
		assert.Nil(t, id.PhotoURL)
	})

	t.Run("Mention", func(t *testing.T) {
		n := &domain.Notification{
			Type:    domain.NotifMentionComment,
			Message: "Carlos Eduardo Santos mencionou você em um comentário",
		}

		id := identity.ResolveSender(n, nil)

		assert.Equal(t, "Carlos", id.FirstName)
		assert.Equal(t, "Eduardo Santos", id.LastName)
	})

	t.Run("Single Name", func(t *testing.T) {
		n := &domain.Notification{
			Type:    domain.NotifMembershipRequest,
			Message: "Maria solicitou entrada no grupo",
		}

		id := identity.ResolveSender(n, nil)

		assert.Equal(t, "Maria", id.FirstName)
		assert.Empty(t, id.LastName)
	})

	t.Run("No Marker Yields Empty Identity", func(t *testing.T) {
		n := &domain.Notification{
			Type:    domain.NotifMembershipRequest,
			Message: "mensagem sem o formato esperado",
		}

		id := identity.ResolveSender(n, nil)

		assert.Empty(t, id.FirstName)
		assert.Empty(t, id.LastName)
		assert.Nil(t, id.PhotoURL)
	})

	t.Run("Generic Type Never Parsed", func(t *testing.T) {
		n := &domain.Notification{
			Type:    domain.NotifGeneric,
			Message: "Maria solicitou entrada no grupo",
		}

		id := identity.ResolveSender(n, nil)

		assert.Empty(t, id.FirstName)
	})
}
