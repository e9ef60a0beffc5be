package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

const tariffColumns = `id, nome, tarifa_diaria, tarifa_mensal, tarifa_anual`

func (r *Repos) CreateConsumerType(ctx context.Context, t *domain.ConsumerType) error {
	return r.db.GetContext(ctx, t, `INSERT INTO tipos_consumidor(nome) VALUES ($1) RETURNING id, nome`, t.Name)
}

func (r *Repos) GetConsumerType(ctx context.Context, id int64) (*domain.ConsumerType, error) {
	return getOne[domain.ConsumerType](ctx, r.db, `SELECT id, nome FROM tipos_consumidor WHERE id = $1`, id)
}

func (r *Repos) ListConsumerTypes(ctx context.Context) ([]domain.ConsumerType, error) {
	out := []domain.ConsumerType{}
	err := r.db.SelectContext(ctx, &out, `SELECT id, nome FROM tipos_consumidor ORDER BY id`)
	return out, err
}

func (r *Repos) CreateConsumerUnit(ctx context.Context, u *domain.ConsumerUnit) error {
	return r.db.GetContext(ctx, u,
		`INSERT INTO unidades_consumidoras(nome, tipo_consumidor_id) VALUES ($1,$2) RETURNING id, nome, tipo_consumidor_id`,
		u.Name, u.ConsumerTypeID)
}

func (r *Repos) GetConsumerUnit(ctx context.Context, id int64) (*domain.ConsumerUnit, error) {
	return getOne[domain.ConsumerUnit](ctx, r.db,
		`SELECT id, nome, tipo_consumidor_id FROM unidades_consumidoras WHERE id = $1`, id)
}

func (r *Repos) ListConsumerUnits(ctx context.Context) ([]domain.ConsumerUnit, error) {
	out := []domain.ConsumerUnit{}
	err := r.db.SelectContext(ctx, &out, `SELECT id, nome, tipo_consumidor_id FROM unidades_consumidoras ORDER BY id`)
	return out, err
}

func (r *Repos) CreateTariff(ctx context.Context, t *domain.Tariff) error {
	return r.db.GetContext(ctx, t,
		`INSERT INTO bandeiras(nome, tarifa_diaria, tarifa_mensal, tarifa_anual) VALUES ($1,$2,$3,$4) RETURNING `+tariffColumns,
		t.Name, t.DailyRate, t.MonthlyRate, t.AnnualRate)
}

func (r *Repos) GetTariff(ctx context.Context, id int64) (*domain.Tariff, error) {
	return getOne[domain.Tariff](ctx, r.db, `SELECT `+tariffColumns+` FROM bandeiras WHERE id = $1`, id)
}

func (r *Repos) ListTariffs(ctx context.Context) ([]domain.Tariff, error) {
	out := []domain.Tariff{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+tariffColumns+` FROM bandeiras ORDER BY id`)
	return out, err
}

func (r *Repos) UpdateTariff(ctx context.Context, t domain.Tariff) (*domain.Tariff, error) {
	return getOne[domain.Tariff](ctx, r.db,
		`UPDATE bandeiras SET nome = $2, tarifa_diaria = $3, tarifa_mensal = $4, tarifa_anual = $5
		 WHERE id = $1 RETURNING `+tariffColumns,
		t.ID, t.Name, t.DailyRate, t.MonthlyRate, t.AnnualRate)
}
