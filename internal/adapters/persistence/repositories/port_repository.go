package repositories

import (
	"context"
	"time"

	"mnp-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// portInRepository implements PortInRepository interface
type portInRepository struct {
	db *gorm.DB
}

// NewPortInRepository creates a new port-in repository
func NewPortInRepository(db *gorm.DB) PortInRepository {
	return &portInRepository{db: db}
}

// Create creates a new port-in record
func (r *portInRepository) Create(ctx context.Context, record *models.PortIn) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List lists all port-in records
func (r *portInRepository) List(ctx context.Context) ([]models.PortIn, error) {
	var records []models.PortIn
	err := r.db.WithContext(ctx).Find(&records).Error
	return records, err
}

// CountByDateRange counts port-in records with date in [from, to)
func (r *portInRepository) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PortIn{}).
		Where("date >= ? AND date < ?", from, to).
		Count(&count).Error
	return count, err
}

// portOutRepository implements PortOutRepository interface
type portOutRepository struct {
	db *gorm.DB
}

// NewPortOutRepository creates a new port-out repository
func NewPortOutRepository(db *gorm.DB) PortOutRepository {
	return &portOutRepository{db: db}
}

// Create creates a new port-out record
func (r *portOutRepository) Create(ctx context.Context, record *models.PortOut) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List lists all port-out records
func (r *portOutRepository) List(ctx context.Context) ([]models.PortOut, error) {
	var records []models.PortOut
	err := r.db.WithContext(ctx).Find(&records).Error
	return records, err
}

// CountByDateRange counts port-out records with date in [from, to)
func (r *portOutRepository) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PortOut{}).
		Where("date >= ? AND date < ?", from, to).
		Count(&count).Error
	return count, err
}

// snapbackRepository implements SnapbackRepository interface
type snapbackRepository struct {
	db *gorm.DB
}

// NewSnapbackRepository creates a new snapback repository
func NewSnapbackRepository(db *gorm.DB) SnapbackRepository {
	return &snapbackRepository{db: db}
}

// Create creates a new snapback record
func (r *snapbackRepository) Create(ctx context.Context, record *models.Snapback) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List lists all snapback records
func (r *snapbackRepository) List(ctx context.Context) ([]models.Snapback, error) {
	var records []models.Snapback
	err := r.db.WithContext(ctx).Find(&records).Error
	return records, err
}
