package domain

type ConsumerType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"nome" json:"nome"`
}

type ConsumerUnit struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"nome" json:"nome"`
	ConsumerTypeID *int64 `db:"tipo_consumidor_id" json:"tipo_consumidor_id"`
}

type Dependency struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"nome" json:"nome"`
	ConsumerUnitID int64  `db:"unidade_consumidora_id" json:"unidade_consumidora_id"`
}

// Device is an appliance. Consumption is its power draw and DailyUsage the
// hours it runs per day, so Consumption*DailyUsage is its daily energy.
type Device struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"nome" json:"nome"`
	Consumption    float64 `db:"consumo" json:"consumo"`
	DailyUsage     float64 `db:"uso_diario" json:"uso_diario"`
	Kind           string  `db:"tipo" json:"tipo"`
	DependencyID   int64   `db:"dependencia_id" json:"dependencia_id"`
	ConsumerUnitID int64   `db:"unidade_consumidora_id" json:"unidade_consumidora_id"`
}

// DailyConsumption returns the energy the device uses in one day.
func (d Device) DailyConsumption() float64 {
	return d.Consumption * d.DailyUsage
}

// DeviceUpdate carries the fields replaced by a full device update.
type DeviceUpdate struct {
	Name        string  `json:"nome"`
	Consumption float64 `json:"consumo"`
	DailyUsage  float64 `json:"uso_diario"`
	Kind        string  `json:"tipo"`
}

// Tariff ("bandeira") holds three independent flat rates, one per period.
type Tariff struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"nome" json:"nome"`
	DailyRate   float64 `db:"tarifa_diaria" json:"tarifa_diaria"`
	MonthlyRate float64 `db:"tarifa_mensal" json:"tarifa_mensal"`
	AnnualRate  float64 `db:"tarifa_anual" json:"tarifa_anual"`
}
