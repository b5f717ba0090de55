package repositories

import (
	"context"
	"time"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/pkg/filters"
)

// ReasonCount is one row of the grouped-by-reason complaint tally.
// The _id key is what the dashboard frontend reads.
type ReasonCount struct {
	Reason string `gorm:"column:reason" json:"_id"`
	Count  int64  `gorm:"column:count" json:"count"`
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ComplaintRepository defines complaint repository interface
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id uint) (*models.Complaint, error)
	ListByUserID(ctx context.Context, userID uint) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Complaint, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByReason(ctx context.Context) ([]ReasonCount, error)
}

// PortInRepository defines port-in repository interface
type PortInRepository interface {
	Create(ctx context.Context, record *models.PortIn) error
	List(ctx context.Context) ([]models.PortIn, error)
	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}

// PortOutRepository defines port-out repository interface.
// Create has no HTTP route; rows arrive through direct inserts.
type PortOutRepository interface {
	Create(ctx context.Context, record *models.PortOut) error
	List(ctx context.Context) ([]models.PortOut, error)
	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}

// SnapbackRepository defines snapback repository interface.
// Read-only over HTTP, same as PortOut.
type SnapbackRepository interface {
	Create(ctx context.Context, record *models.Snapback) error
	List(ctx context.Context) ([]models.Snapback, error)
}

// SubscriberRepository defines subscriber repository interface
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *models.Subscriber) error
	List(ctx context.Context) ([]models.Subscriber, error)
	Search(ctx context.Context, params *filters.Params) ([]models.Subscriber, error)
	Count(ctx context.Context) (int64, error)
}
