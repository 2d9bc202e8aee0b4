package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Eursukkul/hustle-events/internal/draft"
	"github.com/Eursukkul/hustle-events/internal/models"
	"github.com/Eursukkul/hustle-events/internal/repository"
	"github.com/Eursukkul/hustle-events/pkg/rabbitmq"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

type EventService interface {
	// CreateEvent assembles and stores the draft. Calls sharing a non-empty
	// formID while one is running receive that call's result.
	CreateEvent(ctx context.Context, formID string, d draft.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, id uint, d draft.Event) (*models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	// ResolveEvent looks up an event by its id as written in a URL. With the
	// lookup fallback enabled, malformed ids are treated as misses.
	ResolveEvent(ctx context.Context, ref string) (*models.Event, error)
	ListEvents(ctx context.Context, f Filter) ([]models.Event, error)
}

type EventOption func(*eventService)

// WithLookupFallback makes GetEvent answer a miss with the first catalog
// event instead of ErrEventNotFound.
func WithLookupFallback(enabled bool) EventOption {
	return func(s *eventService) { s.fallback = enabled }
}

func WithClock(now func() time.Time) EventOption {
	return func(s *eventService) { s.now = now }
}

type eventService struct {
	repo      repository.EventRepository
	publisher Publisher
	log       zerolog.Logger
	fallback  bool
	now       func() time.Time
	inflight  singleflight.Group
}

func NewEventService(repo repository.EventRepository, publisher Publisher, log zerolog.Logger, opts ...EventOption) EventService {
	s := &eventService{
		repo:      repo,
		publisher: publisher,
		log:       log.With().Str("component", "event_service").Logger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *eventService) CreateEvent(ctx context.Context, formID string, d draft.Event) (*models.Event, error) {
	if formID == "" {
		return s.createEvent(ctx, d)
	}

	// the shared call outlives any single caller giving up
	shared := context.WithoutCancel(ctx)
	v, err, dup := s.inflight.Do(formID, func() (any, error) {
		return s.createEvent(shared, d)
	})
	if dup {
		s.log.Info().Str("form_id", formID).Msg("duplicate submission collapsed")
	}
	if err != nil {
		return nil, err
	}
	event := *v.(*models.Event)
	return &event, nil
}

func (s *eventService) createEvent(ctx context.Context, d draft.Event) (*models.Event, error) {
	event, err := d.Assemble()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, persistErr("create event", err)
	}

	s.log.Info().Uint("event_id", event.ID).Str("title", event.Title).Msg("event created")
	s.publish(ctx, rabbitmq.KeyEventCreated, event)
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, d draft.Event) (*models.Event, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, persistErr("get event", err)
	}

	next, err := d.Assemble()
	if err != nil {
		return nil, err
	}
	next.ID = current.ID
	next.Attending = current.Attending
	next.CreatedAt = current.CreatedAt
	if next.OrganizerID == "" {
		next.OrganizerID = current.OrganizerID
	}
	if next.OrganizerImage == "" {
		next.OrganizerImage = current.OrganizerImage
	}

	if err := s.repo.Update(ctx, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, persistErr("update event", err)
	}

	s.log.Info().Uint("event_id", next.ID).Msg("event updated")
	s.publish(ctx, rabbitmq.KeyEventUpdated, next)
	return next, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, persistErr("get event", err)
	}
	if !s.fallback {
		return nil, ErrEventNotFound
	}
	return s.first(ctx, strconv.FormatUint(uint64(id), 10))
}

func (s *eventService) ResolveEvent(ctx context.Context, ref string) (*models.Event, error) {
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil || id == 0 {
		if !s.fallback {
			return nil, ErrInvalidEventID
		}
		return s.first(ctx, ref)
	}
	return s.GetEvent(ctx, uint(id))
}

func (s *eventService) first(ctx context.Context, requested string) (*models.Event, error) {
	event, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, persistErr("get event", err)
	}
	s.log.Debug().Str("requested_id", requested).Uint("served_id", event.ID).Msg("event lookup fell back to first event")
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, f Filter) ([]models.Event, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, persistErr("list events", err)
	}
	if f.IsZero() {
		return events, nil
	}

	now := s.now()
	matched := make([]models.Event, 0, len(events))
	for i := range events {
		if f.Match(&events[i], now) {
			matched = append(matched, events[i])
		}
	}
	return matched, nil
}

func (s *eventService) publish(ctx context.Context, key string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		s.log.Warn().Err(err).Str("routing_key", key).Msg("publish failed")
	}
}
