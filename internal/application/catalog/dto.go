package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/batchtrack/backend/internal/domain/catalog"
)

// CreateIngredientRequest carries the fields for a new ingredient
type CreateIngredientRequest struct {
	BlindCode           string          `json:"blind_code"`
	MatSAPCode          string          `json:"mat_sap_code"`
	ReCode              string          `json:"re_code"`
	IngredientCode      string          `json:"ingredient_code" binding:"required"`
	Name                string          `json:"name" binding:"required"`
	Unit                string          `json:"unit"`
	Group               string          `json:"group"`
	StdPackageSize      decimal.Decimal `json:"std_package_size"`
	StdPrebatchBatchVol decimal.Decimal `json:"std_prebatch_batch_vol"`
	Status              string          `json:"status"`
	CreatedBy           string          `json:"created_by"`
}

// UpdateIngredientRequest carries a partial ingredient update
type UpdateIngredientRequest struct {
	BlindCode           *string          `json:"blind_code"`
	MatSAPCode          *string          `json:"mat_sap_code"`
	ReCode              *string          `json:"re_code"`
	Name                *string          `json:"name"`
	Unit                *string          `json:"unit"`
	Group               *string          `json:"group"`
	StdPackageSize      *decimal.Decimal `json:"std_package_size"`
	StdPrebatchBatchVol *decimal.Decimal `json:"std_prebatch_batch_vol"`
	Status              *string          `json:"status"`
	UpdatedBy           string           `json:"updated_by"`
}

// IngredientResponse is an ingredient as served to clients
type IngredientResponse struct {
	ID                  uint            `json:"id"`
	BlindCode           string          `json:"blind_code"`
	MatSAPCode          string          `json:"mat_sap_code"`
	ReCode              string          `json:"re_code"`
	IngredientCode      string          `json:"ingredient_code"`
	Name                string          `json:"name"`
	Unit                string          `json:"unit"`
	Group               string          `json:"group"`
	StdPackageSize      decimal.Decimal `json:"std_package_size"`
	StdPrebatchBatchVol decimal.Decimal `json:"std_prebatch_batch_vol"`
	Status              string          `json:"status"`
	CreatedBy           string          `json:"created_by"`
	UpdatedBy           string          `json:"updated_by"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CreateReceiptRequest carries one scanned goods receipt
type CreateReceiptRequest struct {
	MatSAPCode        string          `json:"mat_sap_code" binding:"required"`
	ReCode            string          `json:"re_code"`
	ReceiveLotID      string          `json:"receive_lot_id" binding:"required"`
	LotNumber         string          `json:"lot_number" binding:"required"`
	ReceiveVol        decimal.Decimal `json:"receive_vol" binding:"required"`
	StdPackageSize    decimal.Decimal `json:"std_package_size"`
	PackageVol        decimal.Decimal `json:"package_vol"`
	NumberOfPackages  int             `json:"number_of_packages"`
	WarehouseLocation string          `json:"warehouse_location"`
	ExpireDate        *time.Time      `json:"expire_date"`
	CreatedBy         string          `json:"created_by"`
}

// ReceiptResponse is a goods receipt as served to clients
type ReceiptResponse struct {
	ID                uint            `json:"id"`
	MatSAPCode        string          `json:"mat_sap_code"`
	ReCode            string          `json:"re_code"`
	ReceiveLotID      string          `json:"receive_lot_id"`
	LotNumber         string          `json:"lot_number"`
	ReceiveVol        decimal.Decimal `json:"receive_vol"`
	RemainVol         decimal.Decimal `json:"remain_vol"`
	StdPackageSize    decimal.Decimal `json:"std_package_size"`
	PackageVol        decimal.Decimal `json:"package_vol"`
	NumberOfPackages  int             `json:"number_of_packages"`
	WarehouseLocation string          `json:"warehouse_location"`
	ExpireDate        *time.Time      `json:"expire_date"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}

// SkuStepPayload is one recipe step in a create or update request
type SkuStepPayload struct {
	PhaseNumber      string          `json:"phase_number"`
	PhaseID          string          `json:"phase_id"`
	MasterStep       bool            `json:"master_step"`
	SubStep          int             `json:"sub_step"`
	Action           string          `json:"action"`
	ReCode           string          `json:"re_code"`
	ActionCode       string          `json:"action_code"`
	SetupStep        string          `json:"setup_step"`
	Destination      string          `json:"destination"`
	Require          decimal.Decimal `json:"require"`
	UOM              string          `json:"uom"`
	LowTol           decimal.Decimal `json:"low_tol"`
	HighTol          decimal.Decimal `json:"high_tol"`
	StepCondition    string          `json:"step_condition"`
	AgitatorRPM      decimal.Decimal `json:"agitator_rpm"`
	HighShearRPM     decimal.Decimal `json:"high_shear_rpm"`
	Temperature      decimal.Decimal `json:"temperature"`
	TempLow          decimal.Decimal `json:"temp_low"`
	TempHigh         decimal.Decimal `json:"temp_high"`
	StepTime         int             `json:"step_time"`
	StepTimerControl int             `json:"step_timer_control"`

	QCTemp              bool   `json:"qc_temp"`
	RecordSteamPressure bool   `json:"record_steam_pressure"`
	RecordCTW           bool   `json:"record_ctw"`
	OperationBrixRecord bool   `json:"operation_brix_record"`
	OperationPHRecord   bool   `json:"operation_ph_record"`
	BrixSP              string `json:"brix_sp"`
	PHSP                string `json:"ph_sp"`

	ActionDescription string `json:"action_description"`
}

// CreateSkuRequest carries a new recipe with its steps
type CreateSkuRequest struct {
	SkuID        string           `json:"sku_id" binding:"required"`
	SkuName      string           `json:"sku_name" binding:"required"`
	StdBatchSize decimal.Decimal  `json:"std_batch_size"`
	UOM          string           `json:"uom"`
	Status       string           `json:"status"`
	CreatedBy    string           `json:"created_by"`
	Steps        []SkuStepPayload `json:"steps"`
}

// UpdateSkuRequest carries a partial recipe update. Steps replaces the
// whole step set when present; omitting it leaves the stored recipe alone.
type UpdateSkuRequest struct {
	SkuName      *string          `json:"sku_name"`
	StdBatchSize *decimal.Decimal `json:"std_batch_size"`
	UOM          *string          `json:"uom"`
	Status       *string          `json:"status"`
	UpdatedBy    string           `json:"updated_by"`
	Steps        []SkuStepPayload `json:"steps"`
}

// SkuResponse is a recipe as served to clients
type SkuResponse struct {
	ID           uint              `json:"id"`
	SkuID        string            `json:"sku_id"`
	SkuName      string            `json:"sku_name"`
	StdBatchSize decimal.Decimal   `json:"std_batch_size"`
	UOM          string            `json:"uom"`
	Status       string            `json:"status"`
	CreatedBy    string            `json:"created_by"`
	UpdatedBy    string            `json:"updated_by"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Steps        []catalog.SkuStep `json:"steps,omitempty"`
}

// PlantRequest carries a plant create or update
type PlantRequest struct {
	PlantID          string          `json:"plant_id" binding:"required"`
	PlantName        string          `json:"plant_name" binding:"required"`
	PlantCapacity    decimal.Decimal `json:"plant_capacity"`
	PlantDescription string          `json:"plant_description"`
	Status           string          `json:"status"`
}

func toIngredientResponse(i *catalog.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:                  i.ID,
		BlindCode:           i.BlindCode,
		MatSAPCode:          i.MatSAPCode,
		ReCode:              i.ReCode,
		IngredientCode:      i.IngredientCode,
		Name:                i.Name,
		Unit:                i.Unit,
		Group:               i.Group,
		StdPackageSize:      i.StdPackageSize,
		StdPrebatchBatchVol: i.StdPrebatchBatchVol,
		Status:              i.Status,
		CreatedBy:           i.CreatedBy,
		UpdatedBy:           i.UpdatedBy,
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
}

func toIngredientResponses(ingredients []catalog.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, toIngredientResponse(&ingredients[i]))
	}
	return out
}

func toReceiptResponse(r *catalog.IngredientReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                r.ID,
		MatSAPCode:        r.MatSAPCode,
		ReCode:            r.ReCode,
		ReceiveLotID:      r.ReceiveLotID,
		LotNumber:         r.LotNumber,
		ReceiveVol:        r.ReceiveVol,
		RemainVol:         r.RemainVol,
		StdPackageSize:    r.StdPackageSize,
		PackageVol:        r.PackageVol,
		NumberOfPackages:  r.NumberOfPackages,
		WarehouseLocation: r.WarehouseLocation,
		ExpireDate:        r.ExpireDate,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
	}
}

func toReceiptResponses(receipts []catalog.IngredientReceipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		out = append(out, toReceiptResponse(&receipts[i]))
	}
	return out
}

func toSkuResponse(s *catalog.Sku) SkuResponse {
	return SkuResponse{
		ID:           s.ID,
		SkuID:        s.SkuID,
		SkuName:      s.SkuName,
		StdBatchSize: s.StdBatchSize,
		UOM:          s.UOM,
		Status:       s.Status,
		CreatedBy:    s.CreatedBy,
		UpdatedBy:    s.UpdatedBy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Steps:        s.Steps,
	}
}

func toSkuResponses(skus []catalog.Sku) []SkuResponse {
	out := make([]SkuResponse, 0, len(skus))
	for i := range skus {
		out = append(out, toSkuResponse(&skus[i]))
	}
	return out
}

func toSkuSteps(skuID string, payloads []SkuStepPayload) []catalog.SkuStep {
	if payloads == nil {
		return nil
	}
	steps := make([]catalog.SkuStep, 0, len(payloads))
	for _, p := range payloads {
		steps = append(steps, catalog.SkuStep{
			SkuID:            skuID,
			PhaseNumber:      p.PhaseNumber,
			PhaseID:          p.PhaseID,
			MasterStep:       p.MasterStep,
			SubStep:          p.SubStep,
			Action:           p.Action,
			ReCode:           p.ReCode,
			ActionCode:       p.ActionCode,
			SetupStep:        p.SetupStep,
			Destination:      p.Destination,
			Require:          p.Require,
			UOM:              p.UOM,
			LowTol:           p.LowTol,
			HighTol:          p.HighTol,
			StepCondition:    p.StepCondition,
			AgitatorRPM:      p.AgitatorRPM,
			HighShearRPM:     p.HighShearRPM,
			Temperature:      p.Temperature,
			TempLow:          p.TempLow,
			TempHigh:         p.TempHigh,
			StepTime:         p.StepTime,
			StepTimerControl: p.StepTimerControl,

			QCTemp:              p.QCTemp,
			RecordSteamPressure: p.RecordSteamPressure,
			RecordCTW:           p.RecordCTW,
			OperationBrixRecord: p.OperationBrixRecord,
			OperationPHRecord:   p.OperationPHRecord,
			BrixSP:              p.BrixSP,
			PHSP:                p.PHSP,

			ActionDescription: p.ActionDescription,
		})
	}
	return steps
}
