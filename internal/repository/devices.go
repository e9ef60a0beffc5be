package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

const deviceColumns = `id, nome, consumo, uso_diario, tipo, dependencia_id, unidade_consumidora_id`

func (r *Repos) CreateDevice(ctx context.Context, d *domain.Device) error {
	return r.db.GetContext(ctx, d,
		`INSERT INTO dispositivos(nome, consumo, uso_diario, tipo, dependencia_id, unidade_consumidora_id)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING `+deviceColumns,
		d.Name, d.Consumption, d.DailyUsage, d.Kind, d.DependencyID, d.ConsumerUnitID)
}

func (r *Repos) GetDevice(ctx context.Context, id int64) (*domain.Device, error) {
	return getOne[domain.Device](ctx, r.db,
		`SELECT `+deviceColumns+` FROM dispositivos WHERE id = $1`, id)
}

func (r *Repos) ListDevicesByIDs(ctx context.Context, ids []int64) ([]domain.Device, error) {
	return selectIn[domain.Device](ctx, r.db,
		`SELECT `+deviceColumns+` FROM dispositivos WHERE id IN (?) ORDER BY id`, ids)
}

func (r *Repos) ListDevicesByUnit(ctx context.Context, unitID int64) ([]domain.Device, error) {
	out := []domain.Device{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+deviceColumns+` FROM dispositivos WHERE unidade_consumidora_id = $1 ORDER BY id`, unitID)
	return out, err
}

func (r *Repos) ListDevicesByDependency(ctx context.Context, dependencyID int64) ([]domain.Device, error) {
	out := []domain.Device{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+deviceColumns+` FROM dispositivos WHERE dependencia_id = $1 ORDER BY id`, dependencyID)
	return out, err
}

func (r *Repos) UpdateDevice(ctx context.Context, id int64, u domain.DeviceUpdate) (*domain.Device, error) {
	return getOne[domain.Device](ctx, r.db,
		`UPDATE dispositivos SET nome = $2, consumo = $3, uso_diario = $4, tipo = $5
		 WHERE id = $1 RETURNING `+deviceColumns,
		id, u.Name, u.Consumption, u.DailyUsage, u.Kind)
}

// UpdateDeviceUsage replaces only the daily usage, as reported by a metering plug.
func (r *Repos) UpdateDeviceUsage(ctx context.Context, id int64, usage float64) (*domain.Device, error) {
	return getOne[domain.Device](ctx, r.db,
		`UPDATE dispositivos SET uso_diario = $2 WHERE id = $1 RETURNING `+deviceColumns, id, usage)
}

func (r *Repos) DeleteDevice(ctx context.Context, id int64) (*domain.Device, error) {
	return getOne[domain.Device](ctx, r.db,
		`DELETE FROM dispositivos WHERE id = $1 RETURNING `+deviceColumns, id)
}
