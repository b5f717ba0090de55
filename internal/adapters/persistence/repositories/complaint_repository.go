package repositories

import (
	"context"

	"mnp-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// complaintRepository implements ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint
func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// GetByID gets a complaint by ID
func (r *complaintRepository) GetByID(ctx context.Context, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListByUserID lists complaints owned by the given user
func (r *complaintRepository) ListByUserID(ctx context.Context, userID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&complaints).Error
	return complaints, err
}

// UpdateStatus overwrites the status field and returns the updated row
func (r *complaintRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&complaint).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&complaint).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &complaint, nil
}

// Count counts all complaints
func (r *complaintRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

// CountByStatus counts complaints with the given status
func (r *complaintRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByReason groups complaints by reason, most frequent first.
// Rows with equal counts come back in engine scan order.
func (r *complaintRepository) CountByReason(ctx context.Context) ([]ReasonCount, error) {
	var rows []ReasonCount
	err := r.db.WithContext(ctx).Model(&models.Complaint{}).
		Select("reason, COUNT(*) AS count").
		Group("reason").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}
