package models

import "strings"

// Category is one of the recognized inspection event categories. Categories
// are matched against event types by prefix, so "desk approval" and
// "desk review" both fall under CategoryDesk.
type Category string

// Recognized categories, in lifecycle order.
const (
	CategoryComplaint    Category = "complaint"
	CategoryReinspection Category = "reinspection"
	CategoryField        Category = "field"
	CategoryDesk         Category = "desk"
	CategoryAdmin        Category = "admin"
)

// CategorySet holds the ordered list of recognized category prefixes and the
// subset that closes a complaint.
type CategorySet struct {
	Order    []Category
	Terminal []Category
}

// DefaultCategories returns the standard category configuration: five
// recognized prefixes with desk and admin as the closure categories.
func DefaultCategories() CategorySet {
	return CategorySet{
		Order: []Category{
			CategoryComplaint,
			CategoryReinspection,
			CategoryField,
			CategoryDesk,
			CategoryAdmin,
		},
		Terminal: []Category{CategoryDesk, CategoryAdmin},
	}
}

// Match resolves an event type (or a composite label) to its category by
// prefix. The second return is false for unrecognized types.
func (s CategorySet) Match(eventType string) (Category, bool) {
	for _, c := range s.Order {
		if strings.HasPrefix(eventType, string(c)) {
			return c, true
		}
	}

	return "", false
}

// IsTerminal reports whether c closes a complaint.
func (s CategorySet) IsTerminal(c Category) bool {
	for _, t := range s.Terminal {
		if t == c {
			return true
		}
	}

	return false
}

// Contains reports whether c is a recognized category.
func (s CategorySet) Contains(c Category) bool {
	for _, o := range s.Order {
		if o == c {
			return true
		}
	}

	return false
}
