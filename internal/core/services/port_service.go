package services

import (
	"context"
	"time"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/adapters/persistence/repositories"
)

// PortService handles port-in, port-out and snapback records
type PortService struct {
	portInRepo   repositories.PortInRepository
	portOutRepo  repositories.PortOutRepository
	snapbackRepo repositories.SnapbackRepository
}

// NewPortService creates a new port service
func NewPortService(
	portInRepo repositories.PortInRepository,
	portOutRepo repositories.PortOutRepository,
	snapbackRepo repositories.SnapbackRepository,
) *PortService {
	return &PortService{
		portInRepo:   portInRepo,
		portOutRepo:  portOutRepo,
		snapbackRepo: snapbackRepo,
	}
}

// CreatePortInInput represents a port-in submission
type CreatePortInInput struct {
	Number   string
	Operator string
	Circle   string
	Date     time.Time
}

// CreatePortIn persists a new port-in record
func (s *PortService) CreatePortIn(ctx context.Context, input *CreatePortInInput) (*models.PortIn, error) {
	record := &models.PortIn{
		Number:   input.Number,
		Operator: input.Operator,
		Circle:   input.Circle,
		Date:     input.Date,
	}

	if err := s.portInRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListPortIn returns all port-in records
func (s *PortService) ListPortIn(ctx context.Context) ([]models.PortIn, error) {
	return s.portInRepo.List(ctx)
}

// ListPortOut returns all port-out records
func (s *PortService) ListPortOut(ctx context.Context) ([]models.PortOut, error) {
	return s.portOutRepo.List(ctx)
}

// ListSnapback returns all snapback records
func (s *PortService) ListSnapback(ctx context.Context) ([]models.Snapback, error) {
	return s.snapbackRepo.List(ctx)
}
