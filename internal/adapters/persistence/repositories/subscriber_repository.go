package repositories

import (
	"context"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/pkg/filters"

	"gorm.io/gorm"
)

// subscriberRepository implements SubscriberRepository interface
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create creates a new subscriber record
func (r *subscriberRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	return r.db.WithContext(ctx).Create(subscriber).Error
}

// List lists the entire subscriber collection, unfiltered
func (r *subscriberRepository) List(ctx context.Context) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.WithContext(ctx).Find(&subscribers).Error
	return subscribers, err
}

// Search lists subscribers matching the filter params, paginated.
// The date range applies to the port_on column.
func (r *subscriberRepository) Search(ctx context.Context, params *filters.Params) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.WithContext(ctx).
		Scopes(params.Scope("port_on")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&subscribers).Error
	return subscribers, err
}

// Count counts all subscriber records
func (r *subscriberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscriber{}).Count(&count).Error
	return count, err
}
