package domain

import "fmt"

type FilterKind string

const (
	FilterMute  FilterKind = "mute"
	FilterBlock FilterKind = "block"
)

func (k FilterKind) IsValid() bool {
	return k == FilterMute || k == FilterBlock
}

// TargetKind enumerates the entities a filter may point at. The stored
// filterable_type column holds one of these names.
type TargetKind string

const (
	TargetProfile TargetKind = "profile"
)

// SuppressionTarget is a closed set of filterable entities.
type SuppressionTarget interface {
	Kind() TargetKind
	TargetID() int64
	isSuppressionTarget()
}

type ProfileTarget struct {
	ID int64
}

func (t ProfileTarget) Kind() TargetKind { return TargetProfile }
func (t ProfileTarget) TargetID() int64 { return t.ID }
func (ProfileTarget) isSuppressionTarget() {}

// FilterRule is the "{type}.{kind}" pair checked against the allow-list.
type FilterRule string

func NewFilterRule(targetType string, kind FilterKind) FilterRule {
	return FilterRule(fmt.Sprintf("%s.%s", targetType, kind))
}

type UserFilter struct {
	ID             int64      `json:"id" db:"id"`
	UserID         int64      `json:"user_id" db:"user_id"`
	FilterableID   int64      `json:"filterable_id" db:"filterable_id"`
	FilterableType TargetKind `json:"filterable_type" db:"filterable_type"`
	FilterType     FilterKind `json:"filter_type" db:"filter_type"`
}

func NewUserFilter(userID int64, target SuppressionTarget, kind FilterKind) *UserFilter {
	return &UserFilter{
		UserID:         userID,
		FilterableID:   target.TargetID(),
		FilterableType: target.Kind(),
		FilterType:     kind,
	}
}

type ApplyFilterInput struct {
	Type string `json:"type" form:"type" validate:"required"`
	Item int64  `json:"item" form:"item" validate:"required,min=1"`
}
