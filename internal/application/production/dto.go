package production

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/batchtrack/backend/internal/domain/production"
)

// CreatePlanRequest carries the fields for a new production plan. The plan
// identifier is generated; NumBatches may be omitted and is then derived
// from TotalVolume and BatchSize.
type CreatePlanRequest struct {
	SkuID       string          `json:"sku_id" binding:"required"`
	SkuName     string          `json:"sku_name"`
	Plant       string          `json:"plant"`
	TotalVolume decimal.Decimal `json:"total_volume"`
	BatchSize   decimal.Decimal `json:"batch_size" binding:"required,gt=0"`
	NumBatches  int             `json:"num_batches"`
	StartDate   *time.Time      `json:"start_date"`
	FinishDate  *time.Time      `json:"finish_date"`
	CreatedBy   string          `json:"created_by"`
}

// UpdatePlanRequest carries a partial plan update. Batch composition is
// fixed at creation; only scheduling fields, progress flags and the status
// can move.
type UpdatePlanRequest struct {
	SkuName    *string    `json:"sku_name"`
	StartDate  *time.Time `json:"start_date"`
	FinishDate *time.Time `json:"finish_date"`
	Status     *string    `json:"status"`

	FlavourHouse   *bool `json:"flavour_house"`
	SPP            *bool `json:"spp"`
	BatchPrepare   *bool `json:"batch_prepare"`
	ReadyToProduct *bool `json:"ready_to_product"`
	Production     *bool `json:"production"`
	Done           *bool `json:"done"`

	UpdatedBy string `json:"updated_by"`
}

// CancelPlanRequest carries the cancellation remarks and actor
type CancelPlanRequest struct {
	Remarks     string `json:"remarks"`
	CancelledBy string `json:"cancelled_by"`
}

// UpdateBatchRequest carries a partial batch update for station screens
type UpdateBatchRequest struct {
	Status *string `json:"status"`

	FlavourHouse   *bool `json:"flavour_house"`
	SPP            *bool `json:"spp"`
	BatchPrepare   *bool `json:"batch_prepare"`
	ReadyToProduct *bool `json:"ready_to_product"`
	Production     *bool `json:"production"`
	Done           *bool `json:"done"`
}

// CreatePrebatchRequest carries one weighed prebatch package
type CreatePrebatchRequest struct {
	BatchRecordID      string          `json:"batch_record_id" binding:"required"`
	PlanID             string          `json:"plan_id"`
	ReCode             string          `json:"re_code"`
	PackageNo          int             `json:"package_no"`
	TotalPackages      int             `json:"total_packages"`
	NetVolume          decimal.Decimal `json:"net_volume"`
	TotalVolume        decimal.Decimal `json:"total_volume"`
	TotalRequestVolume decimal.Decimal `json:"total_request_volume"`
}

// BatchResponse is a production batch as served to clients
type BatchResponse struct {
	ID             uint            `json:"id"`
	BatchID        string          `json:"batch_id"`
	SkuID          string          `json:"sku_id"`
	Plant          string          `json:"plant"`
	BatchSize      decimal.Decimal `json:"batch_size"`
	Status         string          `json:"status"`
	FlavourHouse   bool            `json:"flavour_house"`
	SPP            bool            `json:"spp"`
	BatchPrepare   bool            `json:"batch_prepare"`
	ReadyToProduct bool            `json:"ready_to_product"`
	Production     bool            `json:"production"`
	Done           bool            `json:"done"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PlanResponse is a production plan as served to clients
type PlanResponse struct {
	ID              uint            `json:"id"`
	PlanID          string          `json:"plan_id"`
	SkuID           string          `json:"sku_id"`
	SkuName         string          `json:"sku_name"`
	Plant           string          `json:"plant"`
	TotalVolume     decimal.Decimal `json:"total_volume"`
	TotalPlanVolume decimal.Decimal `json:"total_plan_volume"`
	BatchSize       decimal.Decimal `json:"batch_size"`
	NumBatches      int             `json:"num_batches"`
	StartDate       *time.Time      `json:"start_date"`
	FinishDate      *time.Time      `json:"finish_date"`
	Status          string          `json:"status"`
	FlavourHouse    bool            `json:"flavour_house"`
	SPP             bool            `json:"spp"`
	BatchPrepare    bool            `json:"batch_prepare"`
	ReadyToProduct  bool            `json:"ready_to_product"`
	Production      bool            `json:"production"`
	Done            bool            `json:"done"`
	CreatedBy       string          `json:"created_by"`
	UpdatedBy       string          `json:"updated_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Batches         []BatchResponse `json:"batches,omitempty"`
}

// PlanHistoryResponse is one plan audit row as served to clients
type PlanHistoryResponse struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Remarks   string    `json:"remarks"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// PrebatchResponse is a prebatch record as served to clients
type PrebatchResponse struct {
	ID                 uint            `json:"id"`
	BatchRecordID      string          `json:"batch_record_id"`
	PlanID             string          `json:"plan_id"`
	ReCode             string          `json:"re_code"`
	PackageNo          int             `json:"package_no"`
	TotalPackages      int             `json:"total_packages"`
	NetVolume          decimal.Decimal `json:"net_volume"`
	TotalVolume        decimal.Decimal `json:"total_volume"`
	TotalRequestVolume decimal.Decimal `json:"total_request_volume"`
	CreatedAt          time.Time       `json:"created_at"`
}

func toBatchResponse(b *production.ProductionBatch) BatchResponse {
	return BatchResponse{
		ID:             b.ID,
		BatchID:        b.BatchID,
		SkuID:          b.SkuID,
		Plant:          b.Plant,
		BatchSize:      b.BatchSize,
		Status:         b.Status,
		FlavourHouse:   b.FlavourHouse,
		SPP:            b.SPP,
		BatchPrepare:   b.BatchPrepare,
		ReadyToProduct: b.ReadyToProduct,
		Production:     b.Production,
		Done:           b.Done,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toBatchResponses(batches []production.ProductionBatch) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		out = append(out, toBatchResponse(&batches[i]))
	}
	return out
}

func toPlanResponse(p *production.ProductionPlan) PlanResponse {
	return PlanResponse{
		ID:              p.ID,
		PlanID:          p.PlanID,
		SkuID:           p.SkuID,
		SkuName:         p.SkuName,
		Plant:           p.Plant,
		TotalVolume:     p.TotalVolume,
		TotalPlanVolume: p.TotalPlanVolume,
		BatchSize:       p.BatchSize,
		NumBatches:      p.NumBatches,
		StartDate:       p.StartDate,
		FinishDate:      p.FinishDate,
		Status:          p.Status,
		FlavourHouse:    p.FlavourHouse,
		SPP:             p.SPP,
		BatchPrepare:    p.BatchPrepare,
		ReadyToProduct:  p.ReadyToProduct,
		Production:      p.Production,
		Done:            p.Done,
		CreatedBy:       p.CreatedBy,
		UpdatedBy:       p.UpdatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Batches:         toBatchResponses(p.Batches),
	}
}

func toPlanResponses(plans []production.ProductionPlan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanResponse(&plans[i]))
	}
	return out
}

func toPlanHistoryResponses(entries []production.PlanHistory) []PlanHistoryResponse {
	out := make([]PlanHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, PlanHistoryResponse{
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

func toPrebatchResponse(r *production.PrebatchRecord) PrebatchResponse {
	return PrebatchResponse{
		ID:                 r.ID,
		BatchRecordID:      r.BatchRecordID,
		PlanID:             r.PlanID,
		ReCode:             r.ReCode,
		PackageNo:          r.PackageNo,
		TotalPackages:      r.TotalPackages,
		NetVolume:          r.NetVolume,
		TotalVolume:        r.TotalVolume,
		TotalRequestVolume: r.TotalRequestVolume,
		CreatedAt:          r.CreatedAt,
	}
}

func toPrebatchResponses(records []production.PrebatchRecord) []PrebatchResponse {
	out := make([]PrebatchResponse, 0, len(records))
	for i := range records {
		out = append(out, toPrebatchResponse(&records[i]))
	}
	return out
}
