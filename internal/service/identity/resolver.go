// Package identity resolves a notification's sender against the best source
// available at render time.
package identity

import (
	"strings"

	"celula-igreja/internal/domain"
)

type SenderIdentity struct {
	FirstName string
	LastName  string
	PhotoURL  *string
}

// A resolver returns the sender identity and whether it had usable data.
type resolver func(n *domain.Notification, roster []domain.User) (SenderIdentity, bool)

// Tried in priority order: the live roster record (reflects later profile
// edits), then the snapshot captured at creation time, then a best-effort
// parse of the message text for notifications that predate snapshot fields.
var resolvers = []resolver{
	fromRoster,
	fromSnapshot,
	fromMessage,
}

// ResolveSender is pure: it is re-evaluated whenever the roster snapshot or
// the notification changes, since the roster arrives asynchronously and may
// land after the list first renders.
func ResolveSender(n *domain.Notification, roster []domain.User) SenderIdentity {
	for _, resolve := range resolvers {
		if id, ok := resolve(n, roster); ok {
			return id
		}
	}
	return SenderIdentity{}
}

func fromRoster(n *domain.Notification, roster []domain.User) (SenderIdentity, bool) {
	if n.CreatedBy == nil {
		return SenderIdentity{}, false
	}
	for i := range roster {
		if roster[i].ID == *n.CreatedBy {
			return SenderIdentity{
				FirstName: roster[i].Name,
				LastName:  roster[i].Surname,
				PhotoURL:  roster[i].PhotoURL,
			}, true
		}
	}
	return SenderIdentity{}, false
}

func fromSnapshot(n *domain.Notification, _ []domain.User) (SenderIdentity, bool) {
	if n.SenderName == nil || *n.SenderName == "" {
		return SenderIdentity{}, false
	}
	id := SenderIdentity{
		FirstName: *n.SenderName,
		PhotoURL:  n.SenderPhoto,
	}
	if n.SenderSurname != nil {
		id.LastName = *n.SenderSurname
	}
	return id, true
}

// fromMessage extracts the leading name phrase before the verb the message
// template used ("Maria Souza solicitou entrada no grupo"). It exists only so
// legacy notifications still display a plausible name; a non-matching message
// yields no identity rather than an error.
func fromMessage(n *domain.Notification, _ []domain.User) (SenderIdentity, bool) {
	var marker string
	switch n.Type {
	case domain.NotifMembershipRequest:
		marker = "solicitou"
	case domain.NotifMentionComment:
		marker = "mencionou"
	default:
		return SenderIdentity{}, false
	}

	idx := strings.Index(n.Message, marker)
	if idx < 0 {
		return SenderIdentity{}, false
	}

	fields := strings.Fields(n.Message[:idx])
	if len(fields) == 0 {
		return SenderIdentity{}, false
	}

	return SenderIdentity{
		FirstName: fields[0],
		LastName:  strings.Join(fields[1:], " "),
	}, true
}
