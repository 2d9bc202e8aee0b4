package repository

import (
	"context"

	"github.com/Eursukkul/hustle-events/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindFirst(ctx context.Context) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	Seed(ctx context.Context, events []models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	res := r.db.WithContext(ctx).Model(&models.Event{ID: event.ID}).Select("*").Omit("id", "created_at").Updates(event)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// FindFirst returns the event with the lowest id.
func (r *eventRepository) FindFirst(ctx context.Context) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Order("id ASC").First(&event).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Seed inserts events keeping their ids; rows that already exist are left alone.
func (r *eventRepository) Seed(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&events).Error; err != nil {
		return err
	}
	// Explicit ids do not advance a postgres serial sequence.
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`SELECT setval(pg_get_serial_sequence('events', 'id'), (SELECT MAX(id) FROM events))`).Error
	}
	return nil
}
