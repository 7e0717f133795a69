package intake

import (
	"context"

	"github.com/batchtrack/backend/internal/domain/intake"
	"github.com/batchtrack/backend/internal/domain/sequence"
	"github.com/batchtrack/backend/internal/domain/shared"
)

// Service provides application services for intake records
type Service struct {
	repo  intake.Repository
	clock sequence.Clock
}

// NewService creates a new intake Service
func NewService(repo intake.Repository, clock sequence.Clock) *Service {
	if clock == nil {
		clock = sequence.SystemClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// GetByID retrieves one record with its history
func (s *Service) GetByID(ctx context.Context, id uint) (*IntakeResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toIntakeResponse(record)
	return &resp, nil
}

// List retrieves a page of records, newest first
func (s *Service) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[IntakeResponse], error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toIntakeResponses(records), total, filter.Offset, filter.Limit)
	return &page, nil
}

// Create books a new lot in. The intake lot identifier is derived from the
// day's current maximum; a concurrent create racing to the same number
// surfaces as an integrity conflict and the caller may retry.
func (s *Service) Create(ctx context.Context, req CreateIntakeRequest) (*IntakeResponse, error) {
	scope := sequence.NewScope("intake", "", s.clock.Now())
	maxID, err := s.repo.MaxLotID(ctx, scope.Pattern())
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = intake.StatusActive
	}

	record := &intake.IntakeRecord{
		IntakeLotID:       scope.Next(maxID),
		LotID:             req.LotID,
		WarehouseLocation: req.WarehouseLocation,
		BlindCode:         req.BlindCode,
		MatSAPCode:        req.MatSAPCode,
		ReCode:            req.ReCode,
		IntakeVol:         req.IntakeVol,
		RemainVol:         req.IntakeVol,
		IntakePackageVol:  req.IntakePackageVol,
		PackageIntake:     req.PackageIntake,
		PONumber:          req.PONumber,
		ManufacturingDate: req.ManufacturingDate,
		ExpireDate:        req.ExpireDate,
		Status:            status,
		IntakeBy:          shared.ActorOrSystem(req.IntakeBy),
	}

	entry := record.CreationEntry()
	if err := s.repo.Create(ctx, record, &entry); err != nil {
		return nil, err
	}

	resp := toIntakeResponse(record)
	return &resp, nil
}

// Update applies a partial update and appends the matching audit row. The
// identifier and the creation stamp are immutable.
func (s *Service) Update(ctx context.Context, id uint, req UpdateIntakeRequest) (*IntakeResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := record.Status
	applyIntakeUpdate(record, req)
	record.EditBy = shared.ActorOrSystem(req.EditBy)

	entry := record.UpdateEntry(oldStatus, req.Status, req.EditBy)
	if err := s.repo.Update(ctx, record, &entry); err != nil {
		return nil, err
	}

	// Reload so the response carries the appended history row.
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toIntakeResponse(updated)
	return &resp, nil
}

// Delete removes a record and its audit trail
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func applyIntakeUpdate(record *intake.IntakeRecord, req UpdateIntakeRequest) {
	if req.LotID != nil {
		record.LotID = *req.LotID
	}
	if req.WarehouseLocation != nil {
		record.WarehouseLocation = *req.WarehouseLocation
	}
	if req.BlindCode != nil {
		record.BlindCode = *req.BlindCode
	}
	if req.MatSAPCode != nil {
		record.MatSAPCode = *req.MatSAPCode
	}
	if req.ReCode != nil {
		record.ReCode = *req.ReCode
	}
	if req.IntakeVol != nil {
		record.IntakeVol = *req.IntakeVol
	}
	if req.RemainVol != nil {
		record.RemainVol = *req.RemainVol
	}
	if req.IntakePackageVol != nil {
		record.IntakePackageVol = *req.IntakePackageVol
	}
	if req.PackageIntake != nil {
		record.PackageIntake = *req.PackageIntake
	}
	if req.PONumber != nil {
		record.PONumber = *req.PONumber
	}
	if req.ManufacturingDate != nil {
		record.ManufacturingDate = req.ManufacturingDate
	}
	if req.ExpireDate != nil {
		record.ExpireDate = req.ExpireDate
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
}
