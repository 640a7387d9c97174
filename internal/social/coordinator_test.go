// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package social_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonteiro/meliponario/internal/platform/apperr"
	"github.com/rmonteiro/meliponario/internal/social"
)

const (
	testUser    = "user-abc"
	testBreeder = "0195b230-41aa-7bbf-9d1c-3f13a6a64310"
)

var errRemoteDown = errors.New("remote write refused")

// memoryRepository is an in-memory [social.Repository] with configurable
// latency and failure, standing in for both the backend and the journal.
type memoryRepository struct {
	mu        sync.Mutex
	favorites map[string]map[string]bool
	verified  map[string]bool
	ratings   map[string][]*social.Rating

	writeDelay   time.Duration
	failWrites   bool
	failRefresh  bool
	refreshCalls int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		favorites: make(map[string]map[string]bool),
		verified:  make(map[string]bool),
		ratings:   make(map[string][]*social.Rating),
	}
}

func (repo *memoryRepository) gate() error {
	if repo.writeDelay > 0 {
		time.Sleep(repo.writeDelay)
	}
	if repo.failWrites {
		return errRemoteDown
	}
	return nil
}

func (repo *memoryRepository) AddFavorite(_ context.Context, userID, breederID string) error {
	if err := repo.gate(); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.favorites[userID] == nil {
		repo.favorites[userID] = make(map[string]bool)
	}
	repo.favorites[userID][breederID] = true
	return nil
}

func (repo *memoryRepository) RemoveFavorite(_ context.Context, userID, breederID string) error {
	if err := repo.gate(); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.favorites[userID], breederID)
	return nil
}

func (repo *memoryRepository) ListFavorites(_ context.Context, userID string) ([]string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	var breederIDs []string
	for breederID, favored := range repo.favorites[userID] {
		if favored {
			breederIDs = append(breederIDs, breederID)
		}
	}
	return breederIDs, nil
}

func (repo *memoryRepository) SetVerification(_ context.Context, breederID string, verified bool) error {
	if err := repo.gate(); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.verified[breederID] = verified
	return nil
}

func (repo *memoryRepository) InsertRating(_ context.Context, rating *social.Rating) error {
	if err := repo.gate(); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.ratings[rating.BreederID] = append(repo.ratings[rating.BreederID], rating)
	return nil
}

func (repo *memoryRepository) ListRatings(_ context.Context, breederID string) ([]*social.Rating, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.ratings[breederID], nil
}

func (repo *memoryRepository) RefreshRatingAggregate(_ context.Context, _ string) error {
	repo.mu.Lock()
	repo.refreshCalls++
	failRefresh := repo.failRefresh
	repo.mu.Unlock()
	if failRefresh {
		return errRemoteDown
	}
	return nil
}

/*
TestCoordinator_OptimisticAcknowledgement verifies that a favorite toggle
is acknowledged before the remote write settles: with a slow backend the
caller gets an immediate Accepted result and the new state is visible to
reads, while the remote store converges later.
*/
func TestCoordinator_OptimisticAcknowledgement(t *testing.T) {
	remote := newMemoryRepository()
	remote.writeDelay = 80 * time.Millisecond
	coordinator := social.NewCoordinator(social.CoordinatorConfig{
		Remote:   remote,
		Fallback: newMemoryRepository(),
	})

	started := time.Now()
	result := coordinator.ToggleFavorite(context.Background(), testUser, testBreeder, true)
	elapsed := time.Since(started)

	assert.True(t, result.Accepted)
	assert.False(t, result.Deferred)
	assert.Less(t, elapsed, 40*time.Millisecond, "acknowledgement must not wait for the remote write")

	// The optimistic state is immediately readable.
	favorites, err := coordinator.Favorites(context.Background(), testUser)
	require.NoError(t, err)
	assert.Contains(t, favorites, testBreeder)

	// And the remote store converges once the write lands.
	coordinator.Wait()
	stored, err := remote.ListFavorites(context.Background(), testUser)
	require.NoError(t, err)
	assert.Contains(t, stored, testBreeder)
}

/*
TestCoordinator_RevertsOnDelayedRemoteFailure verifies the rollback path:
the remote write fails 50ms after the caller was acknowledged, the local
state reverts to its previous value, and the failure is reported through
the revert hook.
*/
func TestCoordinator_RevertsOnDelayedRemoteFailure(t *testing.T) {
	remote := newMemoryRepository()
	remote.writeDelay = 50 * time.Millisecond
	remote.failWrites = true

	var reverts []social.Revert
	var revertMu sync.Mutex
	coordinator := social.NewCoordinator(social.CoordinatorConfig{
		Remote:   remote,
		Fallback: newMemoryRepository(),
		OnRevert: func(revert social.Revert) {
			revertMu.Lock()
			reverts = append(reverts, revert)
			revertMu.Unlock()
		},
	})

	result := coordinator.ToggleFavorite(context.Background(), testUser, testBreeder, true)
	assert.True(t, result.Accepted)

	// Optimistic state is visible while the doomed write is in flight.
	favorites, err := coordinator.Favorites(context.Background(), testUser)
	require.NoError(t, err)
	assert.Contains(t, favorites, testBreeder)

	coordinator.Wait()

	// After the failure the overlay is rolled back.
	favorites, err = coordinator.Favorites(context.Background(), testUser)
	require.NoError(t, err)
	assert.NotContains(t, favorites, testBreeder)

	revertMu.Lock()
	defer revertMu.Unlock()
	require.Len(t, reverts, 1)
	assert.Equal(t, "toggle_favorite", reverts[0].Operation)
	assert.ErrorIs(t, reverts[0].Err, errRemoteDown)
}

/*
TestCoordinator_OfflineDefersToFallback verifies that with no backend the
mutation is journaled durably and acknowledged as deferred.
*/
func TestCoordinator_OfflineDefersToFallback(t *testing.T) {
	fallback := newMemoryRepository()
	coordinator := social.NewCoordinator(social.CoordinatorConfig{
		Fallback: fallback,
	})

	result := coordinator.ToggleFavorite(context.Background(), testUser, testBreeder, true)

	assert.True(t, result.Accepted)
	assert.True(t, result.Deferred)

	journaled, err := fallback.ListFavorites(context.Background(), testUser)
	require.NoError(t, err)
	assert.Contains(t, journaled, testBreeder)
}

/*
TestCoordinator_ProbeRoutesToFallback verifies that a failing availability
probe sends mutations to the journal even with a remote store configured.
*/
func TestCoordinator_ProbeRoutesToFallback(t *testing.T) {
	remote := newMemoryRepository()
	fallback := newMemoryRepository()
	coordinator := social.NewCoordinator(social.CoordinatorConfig{
		Remote:   remote,
		Fallback: fallback,
		Probe:    func() bool { return false },
	})

	result := coordinator.SetVerification(context.Background(), testBreeder, true)

	assert.True(t, result.Accepted)
	assert.True(t, result.Deferred)
	assert.True(t, fallback.verified[testBreeder])
	assert.Empty(t, remote.verified)
}

/*
TestCoordinator_VerificationRevert mirrors the favorite rollback for the
verification mark, including restoration of a pre-existing overlay value.
*/
func TestCoordinator_VerificationRevert(t *testing.T) {
	remote := newMemoryRepository()
	coordinator := social.NewCoordinator(social.CoordinatorConfig{
		Remote:   remote,
		Fallback: newMemoryRepository(),
	})

	// First mark sticks.
	coordinator.SetVerification(context.Background(), testBreeder, true)
	coordinator.Wait()

	// Second mutation fails remotely and must restore the first value.
	remote.failWrites = true
	result := coordinator.SetVerification(context.Background(), testBreeder, false)
	assert.True(t, result.Accepted)
	coordinator.Wait()

	verified, known := coordinator.Verified(testBreeder)
	assert.True(t, known)
	assert.True(t, verified)
}

/*
TestCoordinator_SubmitRating covers the rating write path: validation
failures surface synchronously, the primary insert is awaited, and an
aggregate refresh failure stays internal.
*/
func TestCoordinator_SubmitRating(t *testing.T) {
	t.Run("invalid_score_rejected", func(t *testing.T) {
		coordinator := social.NewCoordinator(social.CoordinatorConfig{
			Remote:   newMemoryRepository(),
			Fallback: newMemoryRepository(),
		})

		_, err := coordinator.SubmitRating(context.Background(), &social.Rating{
			BreederID: testBreeder, AuthorID: testUser, Score: 9,
		})

		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	})

	t.Run("aggregate_failure_not_surfaced", func(t *testing.T) {
		remote := newMemoryRepository()
		remote.failRefresh = true
		coordinator := social.NewCoordinator(social.CoordinatorConfig{
			Remote:   remote,
			Fallback: newMemoryRepository(),
		})

		result, err := coordinator.SubmitRating(context.Background(), &social.Rating{
			BreederID: testBreeder, AuthorID: testUser, Score: 5, Comment: "Enxame forte e bem embalado.",
		})

		require.NoError(t, err)
		assert.True(t, result.Accepted)
		coordinator.Wait()

		repoRatings, err := remote.ListRatings(context.Background(), testBreeder)
		require.NoError(t, err)
		assert.Len(t, repoRatings, 1)
		assert.Equal(t, 1, remote.refreshCalls)
	})

	t.Run("offline_rating_journaled", func(t *testing.T) {
		fallback := newMemoryRepository()
		coordinator := social.NewCoordinator(social.CoordinatorConfig{
			Fallback: fallback,
		})

		result, err := coordinator.SubmitRating(context.Background(), &social.Rating{
			BreederID: testBreeder, AuthorID: testUser, Score: 4,
		})

		require.NoError(t, err)
		assert.True(t, result.Deferred)
		journaled, err := fallback.ListRatings(context.Background(), testBreeder)
		require.NoError(t, err)
		assert.Len(t, journaled, 1)
	})
}
