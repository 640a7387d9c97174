// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package social

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rmonteiro/meliponario/internal/catalog"
	"github.com/rmonteiro/meliponario/pkg/slice"
)

// remoteWriteTimeout bounds an asynchronous remote write; the caller has
// already been acknowledged, so this only limits goroutine lifetime.
const remoteWriteTimeout = 10 * time.Second

// Result is the synchronous outcome of an optimistic mutation.
type Result struct {
	// Accepted is true when the mutation was applied locally; with the
	// optimistic contract this is the caller-visible success.
	Accepted bool `json:"accepted"`
	// Deferred is true when the mutation landed in the durable fallback
	// store instead of the remote backend.
	Deferred bool `json:"deferred"`
}

// Revert describes a remote write failure that undid a local mutation.
// It is delivered to the configured hook after the caller was already
// acknowledged.
type Revert struct {
	Operation string
	UserID    string
	BreederID string
	Err       error
}

// CoordinatorConfig carries the coordinator's collaborators. Remote may
// be nil (permanent offline mode); Fallback is required.
type CoordinatorConfig struct {
	Remote   Repository
	Fallback Repository
	Probe    catalog.AvailabilityProbe
	Logger   *slog.Logger
	// OnRevert is invoked after a failed remote write has been rolled
	// back locally. Optional; reverts are always logged.
	OnRevert func(Revert)
}

// Coordinator applies social mutations optimistically.
//
// The local favorites/verification state is updated synchronously and the
// caller acknowledged immediately. The remote write then runs in the
// background: if it fails, the local state is reverted and the failure
// reported through the revert hook — never to the original caller, who is
// long gone. With no backend available the mutation is journaled to the
// Redis fallback store and acknowledged as deferred.
type Coordinator struct {
	remote   Repository
	fallback Repository
	probe    catalog.AvailabilityProbe
	logger   *slog.Logger
	onRevert func(Revert)

	mu sync.RWMutex
	// favorites is the optimistic overlay: userID → breederID → favored.
	// Entries exist only for pairs mutated in this process.
	favorites map[string]map[string]bool
	// verified is the optimistic overlay for verification marks.
	verified map[string]bool

	pending sync.WaitGroup
}

// NewCoordinator constructs a coordinator from its configuration.
func NewCoordinator(config CoordinatorConfig) *Coordinator {
	coordinator := &Coordinator{
		remote:    config.Remote,
		fallback:  config.Fallback,
		probe:     config.Probe,
		logger:    config.Logger,
		onRevert:  config.OnRevert,
		favorites: make(map[string]map[string]bool),
		verified:  make(map[string]bool),
	}
	if coordinator.probe == nil {
		coordinator.probe = func() bool { return true }
	}
	if coordinator.logger == nil {
		coordinator.logger = slog.Default()
	}
	return coordinator
}

func (coordinator *Coordinator) remoteEligible() bool {
	return coordinator.remote != nil && coordinator.probe()
}

// Wait blocks until all in-flight background writes have settled. Called
// during graceful shutdown, and by tests.
func (coordinator *Coordinator) Wait() {
	coordinator.pending.Wait()
}

// # Favorites

/*
ToggleFavorite applies a favorite (or unfavorite) mutation optimistically.

Description: The overlay entry is written synchronously, making the new
state immediately visible to Favorites reads. Online, the remote write is
dispatched in the background and a failure restores the previous overlay
state; offline, the pair is journaled to the fallback store.

Parameters:
  - context: context.Context (caller's; background writes get their own)
  - userID: string gateway-issued user identifier
  - breederID: string breeder UUID
  - favored: bool, true to add the bookmark

Returns:
  - Result: Accepted (always true online and offline) and Deferred
*/
func (coordinator *Coordinator) ToggleFavorite(context context.Context, userID, breederID string, favored bool) Result {
	previous, hadPrevious := coordinator.setFavoriteOverlay(userID, breederID, favored)

	if !coordinator.remoteEligible() {
		err := coordinator.writeFavoriteTo(context, coordinator.fallback, userID, breederID, favored)
		if err != nil {
			// Even the durable journal failed; roll back and refuse.
			coordinator.restoreFavoriteOverlay(userID, breederID, previous, hadPrevious)
			coordinator.logger.Error("favorite journal write failed", "user_id", userID, "error", err)
			return Result{}
		}
		return Result{Accepted: true, Deferred: true}
	}

	coordinator.dispatchFavoriteWrite(userID, breederID, favored, previous, hadPrevious)

	return Result{Accepted: true}
}

/*
Favorites returns the breeder UUIDs the user has bookmarked, as currently
believed: the backing store's view merged with the optimistic overlay.
*/
func (coordinator *Coordinator) Favorites(context context.Context, userID string) ([]string, error) {
	store := coordinator.fallback
	if coordinator.remoteEligible() {
		store = coordinator.remote
	}

	stored, err := store.ListFavorites(context, userID)
	if err != nil {
		return nil, err
	}

	coordinator.mu.RLock()
	overlay := coordinator.favorites[userID]
	merged := make([]string, 0, len(stored)+len(overlay))
	for _, breederID := range stored {
		if favored, known := overlay[breederID]; !known || favored {
			merged = append(merged, breederID)
		}
	}
	for breederID, favored := range overlay {
		if favored && !slice.Contains(merged, breederID) {
			merged = append(merged, breederID)
		}
	}
	coordinator.mu.RUnlock()

	return merged, nil
}

// # Verification

/*
SetVerification applies a breeder verification mark optimistically, with
the same acknowledge-then-write contract as ToggleFavorite.
*/
func (coordinator *Coordinator) SetVerification(context context.Context, breederID string, verified bool) Result {
	previous, hadPrevious := coordinator.setVerifiedOverlay(breederID, verified)

	if !coordinator.remoteEligible() {
		if err := coordinator.fallback.SetVerification(context, breederID, verified); err != nil {
			coordinator.restoreVerifiedOverlay(breederID, previous, hadPrevious)
			coordinator.logger.Error("verification journal write failed", "breeder_id", breederID, "error", err)
			return Result{}
		}
		return Result{Accepted: true, Deferred: true}
	}

	coordinator.dispatchVerificationWrite(breederID, verified, previous, hadPrevious)

	return Result{Accepted: true}
}

// Verified reports the optimistic verification mark for a breeder, if any
// mutation touched it in this process. The catalogue handler merges it
// into breeder reads so a toggled mark is visible before the remote
// write lands.
func (coordinator *Coordinator) Verified(breederID string) (bool, bool) {
	coordinator.mu.RLock()
	defer coordinator.mu.RUnlock()
	verified, known := coordinator.verified[breederID]
	return verified, known
}

// # Ratings

/*
SubmitRating validates and persists a rating.

Description: Ratings are not blindly optimistic like the membership
toggles — the primary insert is awaited so validation and storage errors
reach the author. Only the denormalized aggregate refresh is a dependent
background write whose failure is logged, never surfaced: the rating
itself is already safe.

Returns:
  - Result: Accepted/Deferred
  - error: Validation or primary-insert failures
*/
func (coordinator *Coordinator) SubmitRating(context context.Context, rating *Rating) (Result, error) {
	if err := rating.Validate(); err != nil {
		return Result{}, err
	}

	if !coordinator.remoteEligible() {
		if err := coordinator.fallback.InsertRating(context, rating); err != nil {
			return Result{}, err
		}
		return Result{Accepted: true, Deferred: true}, nil
	}

	if err := coordinator.remote.InsertRating(context, rating); err != nil {
		return Result{}, err
	}

	coordinator.dispatchAggregateRefresh(rating.BreederID)

	return Result{Accepted: true}, nil
}

/*
Ratings returns a breeder's ratings from whichever store is reachable.
*/
func (coordinator *Coordinator) Ratings(context context.Context, breederID string) ([]*Rating, error) {
	store := coordinator.fallback
	if coordinator.remoteEligible() {
		store = coordinator.remote
	}
	return store.ListRatings(context, breederID)
}

// # Overlay Bookkeeping

func (coordinator *Coordinator) setFavoriteOverlay(userID, breederID string, favored bool) (previous bool, hadPrevious bool) {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	overlay := coordinator.favorites[userID]
	if overlay == nil {
		overlay = make(map[string]bool)
		coordinator.favorites[userID] = overlay
	}
	previous, hadPrevious = overlay[breederID]
	overlay[breederID] = favored
	return previous, hadPrevious
}

func (coordinator *Coordinator) restoreFavoriteOverlay(userID, breederID string, previous, hadPrevious bool) {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	overlay := coordinator.favorites[userID]
	if overlay == nil {
		return
	}
	if hadPrevious {
		overlay[breederID] = previous
	} else {
		delete(overlay, breederID)
	}
}

func (coordinator *Coordinator) setVerifiedOverlay(breederID string, verified bool) (previous bool, hadPrevious bool) {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	previous, hadPrevious = coordinator.verified[breederID]
	coordinator.verified[breederID] = verified
	return previous, hadPrevious
}

func (coordinator *Coordinator) restoreVerifiedOverlay(breederID string, previous, hadPrevious bool) {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	if hadPrevious {
		coordinator.verified[breederID] = previous
	} else {
		delete(coordinator.verified, breederID)
	}
}

// # Background Dispatch

// The background writers run detached from the caller's request context
// with their own deadline: the caller was acknowledged before the write
// started, so cancellation must not propagate.

func (coordinator *Coordinator) dispatchFavoriteWrite(userID, breederID string, favored, previous, hadPrevious bool) {
	coordinator.pending.Add(1)
	go func() {
		defer coordinator.pending.Done()
		background, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		err := coordinator.writeFavoriteTo(background, coordinator.remote, userID, breederID, favored)
		if err == nil {
			return
		}
		coordinator.restoreFavoriteOverlay(userID, breederID, previous, hadPrevious)
		coordinator.reportRevert(Revert{Operation: "toggle_favorite", UserID: userID, BreederID: breederID, Err: err})
	}()
}

func (coordinator *Coordinator) dispatchVerificationWrite(breederID string, verified, previous, hadPrevious bool) {
	coordinator.pending.Add(1)
	go func() {
		defer coordinator.pending.Done()
		background, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		err := coordinator.remote.SetVerification(background, breederID, verified)
		if err == nil {
			return
		}
		coordinator.restoreVerifiedOverlay(breederID, previous, hadPrevious)
		coordinator.reportRevert(Revert{Operation: "set_verification", BreederID: breederID, Err: err})
	}()
}

func (coordinator *Coordinator) dispatchAggregateRefresh(breederID string) {
	coordinator.pending.Add(1)
	go func() {
		defer coordinator.pending.Done()
		background, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		if err := coordinator.remote.RefreshRatingAggregate(background, breederID); err != nil {
			coordinator.logger.Warn("rating aggregate refresh failed",
				"breeder_id", breederID, "error", err)
		}
	}()
}

func (coordinator *Coordinator) writeFavoriteTo(context context.Context, store Repository, userID, breederID string, favored bool) error {
	if favored {
		return store.AddFavorite(context, userID, breederID)
	}
	return store.RemoveFavorite(context, userID, breederID)
}

func (coordinator *Coordinator) reportRevert(revert Revert) {
	coordinator.logger.Warn("remote write failed, local state reverted",
		"operation", revert.Operation,
		"user_id", revert.UserID,
		"breeder_id", revert.BreederID,
		"error", revert.Err,
	)
	if coordinator.onRevert != nil {
		coordinator.onRevert(revert)
	}
}
