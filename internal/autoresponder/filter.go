package autoresponder

import (
	"time"

	"github.com/anoop23822/Autoresponder-Telegram/internal/autoresponder/types"
)

// FilterToday returns the contacts whose birthday month and day match
// today. The year is ignored and input order is preserved.
func FilterToday(contacts []types.Contact, today time.Time) []types.Contact {
	var matched []types.Contact
	for _, c := range contacts {
		if c.Birthday.Month() == today.Month() && c.Birthday.Day() == today.Day() {
			matched = append(matched, c)
		}
	}
	return matched
}

// DedupeByPhone drops repeated phone numbers, keeping the first
// occurrence, so a duplicated row does not get greeted twice.
func DedupeByPhone(contacts []types.Contact) []types.Contact {
	seen := make(map[string]struct{}, len(contacts))
	var out []types.Contact
	for _, c := range contacts {
		if _, ok := seen[c.Phone]; ok {
			continue
		}
		seen[c.Phone] = struct{}{}
		out = append(out, c)
	}
	return out
}
