package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

// ErrCloudDisabled is returned by operations that need the AWS integrations
// when they are not configured.
var ErrCloudDisabled = errors.New("cloud services not enabled")

// Store is the persistence the API works against. *repository.Repos implements it.
type Store interface {
	CreateConsumerType(ctx context.Context, t *domain.ConsumerType) error
	GetConsumerType(ctx context.Context, id int64) (*domain.ConsumerType, error)
	ListConsumerTypes(ctx context.Context) ([]domain.ConsumerType, error)

	CreateConsumerUnit(ctx context.Context, u *domain.ConsumerUnit) error
	GetConsumerUnit(ctx context.Context, id int64) (*domain.ConsumerUnit, error)
	ListConsumerUnits(ctx context.Context) ([]domain.ConsumerUnit, error)

	CreateDependency(ctx context.Context, d *domain.Dependency) error
	GetDependency(ctx context.Context, id int64) (*domain.Dependency, error)
	ListDependenciesByUnit(ctx context.Context, unitID int64) ([]domain.Dependency, error)
	ListDependenciesByIDs(ctx context.Context, ids []int64) ([]domain.Dependency, error)
	UpdateDependencyName(ctx context.Context, id int64, name string) (*domain.Dependency, error)
	DeleteDependency(ctx context.Context, id int64) (*domain.Dependency, error)

	CreateDevice(ctx context.Context, d *domain.Device) error
	GetDevice(ctx context.Context, id int64) (*domain.Device, error)
	ListDevicesByIDs(ctx context.Context, ids []int64) ([]domain.Device, error)
	ListDevicesByUnit(ctx context.Context, unitID int64) ([]domain.Device, error)
	ListDevicesByDependency(ctx context.Context, dependencyID int64) ([]domain.Device, error)
	UpdateDevice(ctx context.Context, id int64, u domain.DeviceUpdate) (*domain.Device, error)
	UpdateDeviceUsage(ctx context.Context, id int64, usage float64) (*domain.Device, error)
	DeleteDevice(ctx context.Context, id int64) (*domain.Device, error)

	CreateTariff(ctx context.Context, t *domain.Tariff) error
	GetTariff(ctx context.Context, id int64) (*domain.Tariff, error)
	ListTariffs(ctx context.Context) ([]domain.Tariff, error)
	UpdateTariff(ctx context.Context, t domain.Tariff) (*domain.Tariff, error)
}

// Options wires the optional integrations. Nil fields are disabled.
type Options struct {
	TariffCache        TariffCache
	History            HistoryStore
	Alerts             Alerter
	Reports            ReportStore
	CostAlertThreshold float64
}

type Services struct {
	Repos      Store
	Tariffs    *TariffService
	Calculator *Calculator
	Usage      *UsageService
}

func New(store Store, opts Options) *Services {
	tariffs := &TariffService{store: store, cache: opts.TariffCache}
	return &Services{
		Repos:   store,
		Tariffs: tariffs,
		Calculator: &Calculator{
			store:          store,
			tariffs:        tariffs,
			history:        opts.History,
			alerts:         opts.Alerts,
			reports:        opts.Reports,
			alertThreshold: opts.CostAlertThreshold,
			now:            time.Now,
			newID:          uuid.NewString,
		},
		Usage: &UsageService{store: store},
	}
}
