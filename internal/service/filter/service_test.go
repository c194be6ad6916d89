package filter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"social-account/internal/domain"
	"social-account/internal/mocks"
	"social-account/internal/service/filter"
)

func TestFilterService_Apply(t *testing.T) {
	ctx := context.Background()
	const me int64 = 5

	newSvc := func() (filter.Service, *mocks.UserFilterRepository, *mocks.ProfileRepository) {
		filterRepo := new(mocks.UserFilterRepository)
		profileRepo := new(mocks.ProfileRepository)
		return filter.NewService(filterRepo, profileRepo), filterRepo, profileRepo
	}

	t.Run("Mute Another Profile", func(t *testing.T) {
		svc, filterRepo, profileRepo := newSvc()
		profileRepo.On("GetByID", ctx, int64(9)).Return(&domain.Profile{ID: 9}, nil).Once()
		filterRepo.On("FirstOrCreate", ctx, mock.MatchedBy(func(f *domain.UserFilter) bool {
			return f.UserID == me && f.FilterableID == 9 &&
				f.FilterableType == domain.TargetProfile && f.FilterType == domain.FilterMute
		})).Return(true, nil).Once()

		f, err := svc.Apply(ctx, me, domain.FilterMute, domain.ApplyFilterInput{Type: "user", Item: 9})
		require.NoError(t, err)
		assert.Equal(t, domain.TargetProfile, f.FilterableType)
		filterRepo.AssertExpectations(t)
	})

	t.Run("Repeated Apply Is Accepted", func(t *testing.T) {
		svc, filterRepo, profileRepo := newSvc()
		profileRepo.On("GetByID", ctx, int64(9)).Return(&domain.Profile{ID: 9}, nil).Twice()
		filterRepo.On("FirstOrCreate", ctx, mock.Anything).Return(true, nil).Once()
		filterRepo.On("FirstOrCreate", ctx, mock.Anything).Return(false, nil).Once()

		input := domain.ApplyFilterInput{Type: "user", Item: 9}
		_, err := svc.Apply(ctx, me, domain.FilterBlock, input)
		require.NoError(t, err)
		_, err = svc.Apply(ctx, me, domain.FilterBlock, input)
		require.NoError(t, err)
	})

	t.Run("Type Not In Allow List", func(t *testing.T) {
		svc, _, profileRepo := newSvc()

		_, err := svc.Apply(ctx, me, domain.FilterMute, domain.ApplyFilterInput{Type: "post", Item: 9})
		assert.ErrorIs(t, err, domain.ErrNotAllowed)
		_, err = svc.Apply(ctx, me, domain.FilterKind("hide"), domain.ApplyFilterInput{Type: "user", Item: 9})
		assert.ErrorIs(t, err, domain.ErrNotAllowed)
		profileRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Target", func(t *testing.T) {
		svc, _, profileRepo := newSvc()
		profileRepo.On("GetByID", ctx, int64(404)).Return(nil, nil).Once()

		_, err := svc.Apply(ctx, me, domain.FilterBlock, domain.ApplyFilterInput{Type: "user", Item: 404})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Mute Self Is Forbidden", func(t *testing.T) {
		svc, filterRepo, profileRepo := newSvc()
		profileRepo.On("GetByID", ctx, me).Return(&domain.Profile{ID: me}, nil).Once()

		_, err := svc.Apply(ctx, me, domain.FilterMute, domain.ApplyFilterInput{Type: "user", Item: me})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		filterRepo.AssertNotCalled(t, "FirstOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("Block Self Is Allowed", func(t *testing.T) {
		svc, filterRepo, profileRepo := newSvc()
		profileRepo.On("GetByID", ctx, me).Return(&domain.Profile{ID: me}, nil).Once()
		filterRepo.On("FirstOrCreate", ctx, mock.Anything).Return(true, nil).Once()

		_, err := svc.Apply(ctx, me, domain.FilterBlock, domain.ApplyFilterInput{Type: "user", Item: me})
		assert.NoError(t, err)
	})
}
