package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Eursukkul/hustle-events/internal/models"
	"github.com/Eursukkul/hustle-events/internal/repository"
	"github.com/Eursukkul/hustle-events/pkg/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// errMalformed marks messages that will never succeed and must not be requeued.
var errMalformed = errors.New("malformed message")

// MembershipConsumer records the organizer of every newly created event as a
// published membership of that organizer's profile.
type MembershipConsumer struct {
	memberships repository.MembershipRepository
	log         zerolog.Logger
}

func NewMembershipConsumer(memberships repository.MembershipRepository, log zerolog.Logger) *MembershipConsumer {
	return &MembershipConsumer{
		memberships: memberships,
		log:         log.With().Str("component", "membership_consumer").Logger(),
	}
}

// Start processes deliveries until msgs is closed.
func (mc *MembershipConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			mc.deliver(ctx, msg)
		}
		mc.log.Info().Msg("channel closed, stopping consumer")
	}()
}

func (mc *MembershipConsumer) deliver(ctx context.Context, msg amqp.Delivery) {
	err := mc.handle(ctx, msg.Body)
	switch {
	case err == nil:
		if err := msg.Ack(false); err != nil {
			mc.log.Error().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Msg("ack failed")
		}
	case errors.Is(err, errMalformed):
		mc.log.Error().Err(err).Msg("dropping message")
		mc.nack(msg, false)
	default:
		mc.log.Error().Err(err).Msg("handle message, requeueing")
		mc.nack(msg, true)
	}
}

func (mc *MembershipConsumer) nack(msg amqp.Delivery, requeue bool) {
	if err := msg.Nack(false, requeue); err != nil {
		mc.log.Error().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Bool("requeue", requeue).Msg("nack failed")
	}
}

func (mc *MembershipConsumer) handle(ctx context.Context, body []byte) error {
	var envelope rabbitmq.Message
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	if envelope.Type != rabbitmq.KeyEventCreated {
		mc.log.Debug().Str("type", envelope.Type).Msg("ignoring message")
		return nil
	}

	var event models.Event
	if err := json.Unmarshal(envelope.Payload, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	if event.ID == 0 {
		return fmt.Errorf("%w: event without id", errMalformed)
	}
	if event.OrganizerID == "" {
		return nil
	}

	created, err := mc.memberships.Register(ctx, &models.Membership{
		UserID:  event.OrganizerID,
		EventID: event.ID,
		Role:    models.RoleOrganizer,
		Status:  models.StatusPublished,
	})
	if err != nil {
		return fmt.Errorf("register organizer of event %d: %w", event.ID, err)
	}
	if created {
		mc.log.Info().Uint("event_id", event.ID).Str("user_id", event.OrganizerID).Msg("organizer membership recorded")
	}
	return nil
}
