package domain

import "time"

// DeviceRef is a device reference inside a calculation request.
type DeviceRef struct {
	ID int64 `json:"id"`
}

type CalculationRequest struct {
	ConsumerTypeID int64       `json:"tipo_consumidor_id"`
	ConsumerUnitID int64       `json:"unidade_consumidora_id"`
	DependencyIDs  []int64     `json:"dependencias_ids"`
	Devices        []DeviceRef `json:"dispositivos"`
	TariffID       int64       `json:"bandeira_id"`
	Period         string      `json:"periodo"`
}

type CalculationResult struct {
	TotalConsumption float64 `json:"consumo_total"`
	TotalCost        float64 `json:"custo_total"`
}

// CalculationRecord is a calculation kept in the history store.
type CalculationRecord struct {
	ID             string  `json:"id"`
	ConsumerUnitID int64   `json:"unidade_consumidora_id"`
	TariffID       int64   `json:"bandeira_id"`
	Period         Period  `json:"periodo"`
	DeviceIDs      []int64 `json:"dispositivos_ids"`
	CalculationResult
	CreatedAt time.Time `json:"criado_em"`
}

// CalculationReport is the document uploaded for a calculation export.
type CalculationReport struct {
	CalculationRecord
	TotalConsumptionMWh float64 `json:"consumo_total_mwh"`
}
