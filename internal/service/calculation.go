package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/aggregator"
	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/converter"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

type HistoryStore interface {
	RecordCalculation(ctx context.Context, rec domain.CalculationRecord) error
	ListCalculations(ctx context.Context, unitID int64) ([]domain.CalculationRecord, error)
}

type Alerter interface {
	SendCostAlert(ctx context.Context, rec domain.CalculationRecord, threshold float64) error
}

type ReportStore interface {
	UploadReport(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Calculator struct {
	store          Store
	tariffs        *TariffService
	history        HistoryStore
	alerts         Alerter
	reports        ReportStore
	alertThreshold float64
	now            func() time.Time
	newID          func() string
}

// Calculate returns the consumption over the requested period and its cost at
// the tariff's rate for that period.
func (c *Calculator) Calculate(ctx context.Context, req domain.CalculationRequest) (domain.CalculationResult, error) {
	rec, err := c.calculate(ctx, req)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	c.afterCalculation(ctx, rec)
	return rec.CalculationResult, nil
}

// Export calculates like Calculate and uploads the result as a JSON report.
// It returns the report and a download URL.
func (c *Calculator) Export(ctx context.Context, req domain.CalculationRequest) (domain.CalculationReport, string, error) {
	if c.reports == nil {
		return domain.CalculationReport{}, "", ErrCloudDisabled
	}

	rec, err := c.calculate(ctx, req)
	if err != nil {
		return domain.CalculationReport{}, "", err
	}

	conv := &converter.EnergyConverter{}
	report := domain.CalculationReport{
		CalculationRecord:   rec,
		TotalConsumptionMWh: conv.KWhToMWh(rec.TotalConsumption),
	}

	data, err := json.Marshal(report)
	if err != nil {
		return domain.CalculationReport{}, "", err
	}
	key := fmt.Sprintf("relatorios/%d/%s/%s.json", rec.ConsumerUnitID, rec.CreatedAt.Format("2006-01-02"), rec.ID)
	url, err := c.reports.UploadReport(ctx, key, data, "application/json")
	if err != nil {
		return domain.CalculationReport{}, "", err
	}

	c.afterCalculation(ctx, rec)
	return report, url, nil
}

// History lists the recorded calculations of a consumer unit, newest first.
func (c *Calculator) History(ctx context.Context, unitID int64) ([]domain.CalculationRecord, error) {
	if c.history == nil {
		return nil, ErrCloudDisabled
	}
	return c.history.ListCalculations(ctx, unitID)
}

func (c *Calculator) calculate(ctx context.Context, req domain.CalculationRequest) (domain.CalculationRecord, error) {
	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return domain.CalculationRecord{}, err
	}

	if err := c.loadContext(ctx, req); err != nil {
		return domain.CalculationRecord{}, err
	}

	daily, deviceIDs, err := c.dailyConsumption(ctx, req.Devices)
	if err != nil {
		return domain.CalculationRecord{}, err
	}
	consumption := period.Scale(daily)

	tariff, err := c.tariffs.Get(ctx, req.TariffID)
	if err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("load tariff %d: %w", req.TariffID, err)
	}
	if tariff == nil {
		log.Warn().Int64("bandeira_id", req.TariffID).Msg("tariff not found, cost is zero")
	}

	return domain.CalculationRecord{
		ID:             c.newID(),
		ConsumerUnitID: req.ConsumerUnitID,
		TariffID:       req.TariffID,
		Period:         period,
		DeviceIDs:      deviceIDs,
		CalculationResult: domain.CalculationResult{
			TotalConsumption: consumption,
			TotalCost:        consumption * period.Rate(tariff),
		},
		CreatedAt: c.now().UTC(),
	}, nil
}

// loadContext resolves the consumer type, unit and dependencies of the
// request. They do not take part in the arithmetic; absence is only logged.
func (c *Calculator) loadContext(ctx context.Context, req domain.CalculationRequest) error {
	consumerType, err := c.store.GetConsumerType(ctx, req.ConsumerTypeID)
	if err != nil {
		return fmt.Errorf("load consumer type %d: %w", req.ConsumerTypeID, err)
	}
	unit, err := c.store.GetConsumerUnit(ctx, req.ConsumerUnitID)
	if err != nil {
		return fmt.Errorf("load consumer unit %d: %w", req.ConsumerUnitID, err)
	}
	deps, err := c.store.ListDependenciesByIDs(ctx, req.DependencyIDs)
	if err != nil {
		return fmt.Errorf("load dependencies: %w", err)
	}

	log.Debug().
		Bool("tipo_consumidor_found", consumerType != nil).
		Bool("unidade_consumidora_found", unit != nil).
		Int("dependencias_found", len(deps)).
		Msg("calculation context loaded")
	return nil
}

// dailyConsumption sums consumption*usage over the referenced devices. A
// device referenced twice counts twice; unknown references count zero.
func (c *Calculator) dailyConsumption(ctx context.Context, refs []domain.DeviceRef) (float64, []int64, error) {
	ids := make([]int64, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}

	devices, err := c.store.ListDevicesByIDs(ctx, ids)
	if err != nil {
		return 0, nil, fmt.Errorf("load devices: %w", err)
	}
	byID := make(map[int64]domain.Device, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
	}

	now := c.now()
	points := make([]aggregator.Point, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			log.Warn().Int64("dispositivo_id", id).Msg("device not found, counted as zero")
			continue
		}
		points = append(points, aggregator.Point{Value: d.DailyConsumption(), Timestamp: now})
	}
	if len(points) == 0 {
		return 0, ids, nil
	}
	return aggregator.Sum(points), ids, nil
}

func (c *Calculator) afterCalculation(ctx context.Context, rec domain.CalculationRecord) {
	log.Info().
		Str("calculo_id", rec.ID).
		Int64("unidade_consumidora_id", rec.ConsumerUnitID).
		Str("periodo", string(rec.Period)).
		Float64("consumo_total", rec.TotalConsumption).
		Float64("custo_total", rec.TotalCost).
		Msg("calculation done")

	if c.history != nil {
		if err := c.history.RecordCalculation(ctx, rec); err != nil {
			log.Error().Err(err).Str("calculo_id", rec.ID).Msg("record calculation failed")
		}
	}

	if c.alerts != nil && c.alertThreshold > 0 && rec.TotalCost > c.alertThreshold {
		if err := c.alerts.SendCostAlert(ctx, rec, c.alertThreshold); err != nil {
			log.Error().Err(err).Str("calculo_id", rec.ID).Msg("cost alert failed")
		}
	}
}
