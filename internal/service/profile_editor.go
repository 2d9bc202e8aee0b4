package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Eursukkul/hustle-events/internal/draft"
	"github.com/Eursukkul/hustle-events/internal/models"
	"github.com/Eursukkul/hustle-events/pkg/cache"
	"github.com/rs/zerolog"
)

// ProfileEditor stages profile changes in a draft. The committed profile is
// only touched by Submit.
type ProfileEditor interface {
	Begin(ctx context.Context, userID string) (*draft.Profile, error)
	Current(ctx context.Context, userID string) (*draft.Profile, error)
	Edit(ctx context.Context, userID string, patch draft.ProfilePatch) (*draft.Profile, error)
	Cancel(ctx context.Context, userID string) error
	Submit(ctx context.Context, userID string) (*SubmitResult, error)
}

type SubmitResult struct {
	Profile *models.UserProfile
	Notice  *Notice
}

type profileEditor struct {
	profiles ProfileService
	store    cache.Store
	ttl      time.Duration
	log      zerolog.Logger

	mu         sync.Mutex
	submitting map[string]struct{}
}

func NewProfileEditor(profiles ProfileService, store cache.Store, draftTTL time.Duration, log zerolog.Logger) ProfileEditor {
	return &profileEditor{
		profiles:   profiles,
		store:      store,
		ttl:        draftTTL,
		log:        log.With().Str("component", "profile_editor").Logger(),
		submitting: make(map[string]struct{}),
	}
}

func draftKey(id string) string { return "draft:" + id }

// Begin starts an edit from the committed profile, replacing any draft
// already in progress.
func (e *profileEditor) Begin(ctx context.Context, userID string) (*draft.Profile, error) {
	profile, _, err := e.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := draft.FromProfile(profile)
	if err := e.save(ctx, userID, d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (e *profileEditor) Current(ctx context.Context, userID string) (*draft.Profile, error) {
	var d draft.Profile
	if err := e.store.Get(ctx, draftKey(userID), &d); err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, ErrDraftNotFound
		}
		return nil, persistErr("load draft", err)
	}
	return &d, nil
}

func (e *profileEditor) Edit(ctx context.Context, userID string, patch draft.ProfilePatch) (*draft.Profile, error) {
	d, err := e.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := d.Apply(patch)
	if err := e.save(ctx, userID, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Cancel discards the draft. Cancelling with no draft is not an error.
func (e *profileEditor) Cancel(ctx context.Context, userID string) error {
	if err := e.store.Delete(ctx, draftKey(userID)); err != nil {
		return persistErr("discard draft", err)
	}
	e.log.Debug().Str("user_id", userID).Msg("edit cancelled")
	return nil
}

// Submit commits the draft. A draft that fails validation is kept so the
// edit can continue.
func (e *profileEditor) Submit(ctx context.Context, userID string) (*SubmitResult, error) {
	if !e.acquire(userID) {
		return nil, ErrSubmissionInProgress
	}
	defer e.release(userID)

	d, err := e.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, notice, err := e.profiles.UpdateProfile(ctx, userID, *d)
	if err != nil {
		return nil, err
	}

	if err := e.store.Delete(ctx, draftKey(userID)); err != nil {
		e.log.Warn().Err(err).Str("user_id", userID).Msg("discard submitted draft")
	}
	return &SubmitResult{Profile: profile, Notice: notice}, nil
}

func (e *profileEditor) save(ctx context.Context, userID string, d draft.Profile) error {
	if err := e.store.Set(ctx, draftKey(userID), d, e.ttl); err != nil {
		return persistErr("save draft", err)
	}
	return nil
}

func (e *profileEditor) acquire(userID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.submitting[userID]; busy {
		return false
	}
	e.submitting[userID] = struct{}{}
	return true
}

func (e *profileEditor) release(userID string) {
	e.mu.Lock()
	delete(e.submitting, userID)
	e.mu.Unlock()
}
