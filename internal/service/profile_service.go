package service

import (
	"context"
	"errors"
	"time"

	"github.com/Eursukkul/hustle-events/internal/draft"
	"github.com/Eursukkul/hustle-events/internal/models"
	"github.com/Eursukkul/hustle-events/internal/repository"
	"github.com/Eursukkul/hustle-events/pkg/cache"
	"github.com/Eursukkul/hustle-events/pkg/rabbitmq"
	"github.com/rs/zerolog"
)

const ProfileSavedMessage = "Profile updated successfully!"

// Notice is a transient confirmation shown after a save.
type Notice struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProfileService interface {
	// GetProfile returns the committed profile and the active notice, if any.
	GetProfile(ctx context.Context, id string) (*models.UserProfile, *Notice, error)
	// UpdateProfile validates and commits d, returning the saved profile and
	// the success notice.
	UpdateProfile(ctx context.Context, id string, d draft.Profile) (*models.UserProfile, *Notice, error)
	ListMemberships(ctx context.Context, userID string) ([]models.Membership, error)
}

type profileService struct {
	profiles    repository.ProfileRepository
	memberships repository.MembershipRepository
	store       cache.Store
	publisher   Publisher
	log         zerolog.Logger
	noticeTTL   time.Duration
	now         func() time.Time
}

func NewProfileService(
	profiles repository.ProfileRepository,
	memberships repository.MembershipRepository,
	store cache.Store,
	publisher Publisher,
	log zerolog.Logger,
	noticeTTL time.Duration,
) ProfileService {
	return &profileService{
		profiles:    profiles,
		memberships: memberships,
		store:       store,
		publisher:   publisher,
		log:         log.With().Str("component", "profile_service").Logger(),
		noticeTTL:   noticeTTL,
		now:         time.Now,
	}
}

func noticeKey(id string) string { return "notice:" + id }

func (s *profileService) GetProfile(ctx context.Context, id string) (*models.UserProfile, *Notice, error) {
	profile, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var n Notice
	if err := s.store.Get(ctx, noticeKey(id), &n); err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn().Err(err).Str("user_id", id).Msg("read notice")
		}
		return profile, nil, nil
	}
	return profile, &n, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, id string, d draft.Profile) (*models.UserProfile, *Notice, error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	next, err := d.Commit(*current)
	if err != nil {
		return nil, nil, err
	}

	if err := s.profiles.Update(ctx, &next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, persistErr("update profile", err)
	}

	n := Notice{Message: ProfileSavedMessage, ExpiresAt: s.now().Add(s.noticeTTL)}
	if err := s.store.Set(ctx, noticeKey(id), n, s.noticeTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("store notice")
	}

	s.log.Info().Str("user_id", id).Msg("profile updated")
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, rabbitmq.KeyProfileUpdated, next); err != nil {
			s.log.Warn().Err(err).Msg("publish failed")
		}
	}
	return &next, &n, nil
}

func (s *profileService) ListMemberships(ctx context.Context, userID string) ([]models.Membership, error) {
	list, err := s.memberships.FindByUser(ctx, userID)
	if err != nil {
		return nil, persistErr("list memberships", err)
	}
	return list, nil
}

func (s *profileService) find(ctx context.Context, id string) (*models.UserProfile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, persistErr("get profile", err)
	}
	return profile, nil
}
