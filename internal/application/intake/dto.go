package intake

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/batchtrack/backend/internal/domain/intake"
)

// CreateIntakeRequest carries the fields for a new intake record. The lot
// identifier is never accepted from the caller; it is generated.
type CreateIntakeRequest struct {
	LotID             string          `json:"lot_id" binding:"required"`
	WarehouseLocation string          `json:"warehouse_location"`
	BlindCode         string          `json:"blind_code"`
	MatSAPCode        string          `json:"mat_sap_code" binding:"required"`
	ReCode            string          `json:"re_code"`
	IntakeVol         decimal.Decimal `json:"intake_vol" binding:"required,gt=0"`
	IntakePackageVol  decimal.Decimal `json:"intake_package_vol"`
	PackageIntake     int             `json:"package_intake"`
	PONumber          string          `json:"po_number"`
	ManufacturingDate *time.Time      `json:"manufacturing_date"`
	ExpireDate        *time.Time      `json:"expire_date"`
	Status            string          `json:"status"`
	IntakeBy          string          `json:"intake_by"`
}

// UpdateIntakeRequest carries a partial update. Pointer fields distinguish
// "not sent" from zero values; in particular a nil Status means the audit
// row is labelled Modified rather than Status Change.
type UpdateIntakeRequest struct {
	LotID             *string          `json:"lot_id"`
	WarehouseLocation *string          `json:"warehouse_location"`
	BlindCode         *string          `json:"blind_code"`
	MatSAPCode        *string          `json:"mat_sap_code"`
	ReCode            *string          `json:"re_code"`
	IntakeVol         *decimal.Decimal `json:"intake_vol"`
	RemainVol         *decimal.Decimal `json:"remain_vol"`
	IntakePackageVol  *decimal.Decimal `json:"intake_package_vol"`
	PackageIntake     *int             `json:"package_intake"`
	PONumber          *string          `json:"po_number"`
	ManufacturingDate *time.Time       `json:"manufacturing_date"`
	ExpireDate        *time.Time       `json:"expire_date"`
	Status            *string          `json:"status"`
	EditBy            string           `json:"edit_by"`
}

// HistoryResponse is one audit row as served to clients
type HistoryResponse struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Remarks   string    `json:"remarks"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// IntakeResponse is an intake record as served to clients
type IntakeResponse struct {
	ID                uint              `json:"id"`
	IntakeLotID       string            `json:"intake_lot_id"`
	LotID             string            `json:"lot_id"`
	WarehouseLocation string            `json:"warehouse_location"`
	BlindCode         string            `json:"blind_code"`
	MatSAPCode        string            `json:"mat_sap_code"`
	ReCode            string            `json:"re_code"`
	IntakeVol         decimal.Decimal   `json:"intake_vol"`
	RemainVol         decimal.Decimal   `json:"remain_vol"`
	IntakePackageVol  decimal.Decimal   `json:"intake_package_vol"`
	PackageIntake     int               `json:"package_intake"`
	PONumber          string            `json:"po_number"`
	ManufacturingDate *time.Time        `json:"manufacturing_date"`
	ExpireDate        *time.Time        `json:"expire_date"`
	Status            string            `json:"status"`
	IntakeBy          string            `json:"intake_by"`
	EditBy            string            `json:"edit_by"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	History           []HistoryResponse `json:"history,omitempty"`
}

func toHistoryResponses(entries []intake.IntakeHistory) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryResponse{
			ID:        e.ID,
			Action:    e.Action,
			OldStatus: e.OldStatus,
			NewStatus: e.NewStatus,
			Remarks:   e.Remarks,
			ChangedBy: e.ChangedBy,
			ChangedAt: e.ChangedAt,
		})
	}
	return out
}

func toIntakeResponse(r *intake.IntakeRecord) IntakeResponse {
	return IntakeResponse{
		ID:                r.ID,
		IntakeLotID:       r.IntakeLotID,
		LotID:             r.LotID,
		WarehouseLocation: r.WarehouseLocation,
		BlindCode:         r.BlindCode,
		MatSAPCode:        r.MatSAPCode,
		ReCode:            r.ReCode,
		IntakeVol:         r.IntakeVol,
		RemainVol:         r.RemainVol,
		IntakePackageVol:  r.IntakePackageVol,
		PackageIntake:     r.PackageIntake,
		PONumber:          r.PONumber,
		ManufacturingDate: r.ManufacturingDate,
		ExpireDate:        r.ExpireDate,
		Status:            r.Status,
		IntakeBy:          r.IntakeBy,
		EditBy:            r.EditBy,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		History:           toHistoryResponses(r.History),
	}
}

func toIntakeResponses(records []intake.IntakeRecord) []IntakeResponse {
	out := make([]IntakeResponse, 0, len(records))
	for i := range records {
		out = append(out, toIntakeResponse(&records[i]))
	}
	return out
}
