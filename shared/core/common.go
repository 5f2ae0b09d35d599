package core

import (
	"slices"
	"time"
)

// Alias types instead of full value objects.

type UserIDString = string

type EventIDString = string

type SessionIDString = string

type EventTypeString = string

// OccurredAtTS is when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt normalizes to UTC with microsecond precision, which is what postgres stores.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// DefaultEventImage is used when an event is created without an image.
const DefaultEventImage = "/community-event.png"

// CategoryAll matches every category in catalog searches.
const CategoryAll = "all"

var eventCategories = []string{"workshop", "meetup", "webinar", "conference", "concert", "sports"}

// EventCategories returns the valid event categories in display order.
func EventCategories() []string {
	return slices.Clone(eventCategories)
}

func IsValidEventCategory(category string) bool {
	return slices.Contains(eventCategories, category)
}

// FullName is how organizers are displayed: "First Last".
func FullName(firstName, lastName string) string {
	switch {
	case firstName == "":
		return lastName
	case lastName == "":
		return firstName
	default:
		return firstName + " " + lastName
	}
}
