package repository

import (
	"context"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

const dependencyColumns = `id, nome, unidade_consumidora_id`

func (r *Repos) CreateDependency(ctx context.Context, d *domain.Dependency) error {
	return r.db.GetContext(ctx, d,
		`INSERT INTO dependencias(nome, unidade_consumidora_id) VALUES ($1,$2) RETURNING `+dependencyColumns,
		d.Name, d.ConsumerUnitID)
}

func (r *Repos) GetDependency(ctx context.Context, id int64) (*domain.Dependency, error) {
	return getOne[domain.Dependency](ctx, r.db,
		`SELECT `+dependencyColumns+` FROM dependencias WHERE id = $1`, id)
}

func (r *Repos) ListDependenciesByUnit(ctx context.Context, unitID int64) ([]domain.Dependency, error) {
	out := []domain.Dependency{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+dependencyColumns+` FROM dependencias WHERE unidade_consumidora_id = $1 ORDER BY id`, unitID)
	return out, err
}

func (r *Repos) ListDependenciesByIDs(ctx context.Context, ids []int64) ([]domain.Dependency, error) {
	return selectIn[domain.Dependency](ctx, r.db,
		`SELECT `+dependencyColumns+` FROM dependencias WHERE id IN (?) ORDER BY id`, ids)
}

func (r *Repos) UpdateDependencyName(ctx context.Context, id int64, name string) (*domain.Dependency, error) {
	return getOne[domain.Dependency](ctx, r.db,
		`UPDATE dependencias SET nome = $2 WHERE id = $1 RETURNING `+dependencyColumns, id, name)
}

func (r *Repos) DeleteDependency(ctx context.Context, id int64) (*domain.Dependency, error) {
	return getOne[domain.Dependency](ctx, r.db,
		`DELETE FROM dependencias WHERE id = $1 RETURNING `+dependencyColumns, id)
}
