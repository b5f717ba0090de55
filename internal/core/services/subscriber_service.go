package services

import (
	"context"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/adapters/persistence/repositories"
	"mnp-portal/internal/pkg/filters"
)

// SubscriberService handles subscriber records
type SubscriberService struct {
	subscriberRepo repositories.SubscriberRepository
}

// NewSubscriberService creates a new subscriber service
func NewSubscriberService(subscriberRepo repositories.SubscriberRepository) *SubscriberService {
	return &SubscriberService{subscriberRepo: subscriberRepo}
}

// List returns the entire subscriber collection
func (s *SubscriberService) List(ctx context.Context) ([]models.Subscriber, error) {
	return s.subscriberRepo.List(ctx)
}

// Create persists a new subscriber record
func (s *SubscriberService) Create(ctx context.Context, subscriber *models.Subscriber) (*models.Subscriber, error) {
	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// Search returns subscribers matching the filter params, paginated
func (s *SubscriberService) Search(ctx context.Context, params *filters.Params) ([]models.Subscriber, error) {
	return s.subscriberRepo.Search(ctx, params)
}
