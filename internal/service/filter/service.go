package filter

import (
	"context"
	"fmt"

	"social-account/internal/domain"
	"social-account/internal/repository"
)

// allowed lists the "{type}.{kind}" pairs a caller may apply.
var allowed = map[domain.FilterRule]domain.TargetKind{
	domain.NewFilterRule("user", domain.FilterMute):  domain.TargetProfile,
	domain.NewFilterRule("user", domain.FilterBlock): domain.TargetProfile,
}

// selfTarget reports whether a profile may apply the kind to itself.
// Muting yourself is refused; blocking yourself is accepted.
var selfTarget = map[domain.FilterKind]bool{
	domain.FilterMute:  false,
	domain.FilterBlock: true,
}

type Service interface {
	Apply(ctx context.Context, profileID int64, kind domain.FilterKind, input domain.ApplyFilterInput) (*domain.UserFilter, error)
}

type service struct {
	filterRepo  repository.UserFilterRepository
	profileRepo repository.ProfileRepository
}

func NewService(filterRepo repository.UserFilterRepository, profileRepo repository.ProfileRepository) Service {
	return &service{
		filterRepo:  filterRepo,
		profileRepo: profileRepo,
	}
}

func (s *service) Apply(ctx context.Context, profileID int64, kind domain.FilterKind, input domain.ApplyFilterInput) (*domain.UserFilter, error) {
	targetKind, ok := allowed[domain.NewFilterRule(input.Type, kind)]
	if !ok || !kind.IsValid() {
		return nil, fmt.Errorf("%w: cannot %s %s", domain.ErrNotAllowed, kind, input.Type)
	}

	target, err := s.resolve(ctx, targetKind, input.Item)
	if err != nil {
		return nil, err
	}

	if target.TargetID() == profileID && !selfTarget[kind] {
		return nil, fmt.Errorf("%w: cannot %s yourself", domain.ErrForbidden, kind)
	}

	filter := domain.NewUserFilter(profileID, target, kind)
	if _, err := s.filterRepo.FirstOrCreate(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", kind, err)
	}
	return filter, nil
}

func (s *service) resolve(ctx context.Context, kind domain.TargetKind, id int64) (domain.SuppressionTarget, error) {
	switch kind {
	case domain.TargetProfile:
		profile, err := s.profileRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, fmt.Errorf("%w: profile", domain.ErrNotFound)
		}
		return domain.ProfileTarget{ID: profile.ID}, nil
	default:
		return nil, fmt.Errorf("%w: unknown target %s", domain.ErrNotAllowed, kind)
	}
}
