package services

import (
	"context"
	"errors"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/adapters/persistence/repositories"
	"mnp-portal/internal/core/domain"

	"gorm.io/gorm"
)

// ComplaintService handles complaint business logic
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repositories.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

// Submit creates a new complaint. The owner is always the authenticated
// caller; any owner value in the payload is discarded.
func (s *ComplaintService) Submit(ctx context.Context, userID uint, reason string) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Reason: reason,
		Status: models.ComplaintStatusPending,
		UserID: userID,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

// List returns the complaints owned by the calling user
func (s *ComplaintService) List(ctx context.Context, userID uint) ([]models.Complaint, error) {
	return s.complaintRepo.ListByUserID(ctx, userID)
}

// UpdateStatus overwrites a complaint's status and returns the updated
// record. Any authenticated user may update any complaint; there is no
// ownership check on this path.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return complaint, nil
}
