package entities

import "time"

// LifecycleStatus is shared by configuration entries, pricing rules and route pricing.
type LifecycleStatus string

const (
	StatusDraft     LifecycleStatus = "draft"
	StatusPublished LifecycleStatus = "published"
	StatusArchived  LifecycleStatus = "archived"
)

func (s LifecycleStatus) String() string {
	return string(s)
}

func (s LifecycleStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ValidityWindow is a closed interval [From, Until], nil bound is unbounded on that side.
type ValidityWindow struct {
	From  *time.Time
	Until *time.Time
}

func (w ValidityWindow) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.Until != nil && t.After(*w.Until) {
		return false
	}
	return true
}

func (w ValidityWindow) IsValid() bool {
	if w.From != nil && w.Until != nil {
		return !w.From.After(*w.Until)
	}
	return true
}

func (w ValidityWindow) Overlaps(other ValidityWindow) bool {
	// [a1,a2] и [b1,b2] пересекаются если a1 <= b2 и b1 <= a2
	if w.From != nil && other.Until != nil && w.From.After(*other.Until) {
		return false
	}
	if other.From != nil && w.Until != nil && other.From.After(*w.Until) {
		return false
	}
	return true
}
