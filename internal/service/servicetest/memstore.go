// Package servicetest provides an in-memory service.Store for tests.
package servicetest

import (
	"context"
	"sort"
	"sync"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

type MemStore struct {
	mu     sync.Mutex
	nextID int64

	Types        map[int64]domain.ConsumerType
	Units        map[int64]domain.ConsumerUnit
	Dependencies map[int64]domain.Dependency
	Devices      map[int64]domain.Device
	Tariffs      map[int64]domain.Tariff

	// TariffReads counts GetTariff calls.
	TariffReads int
	// Err, when set, is returned by every method.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{
		Types:        map[int64]domain.ConsumerType{},
		Units:        map[int64]domain.ConsumerUnit{},
		Dependencies: map[int64]domain.Dependency{},
		Devices:      map[int64]domain.Device{},
		Tariffs:      map[int64]domain.Tariff{},
	}
}

func (m *MemStore) id() int64 {
	m.nextID++
	return m.nextID
}

func sortedValues[T any](in map[int64]T, keep func(T) bool) []T {
	keys := make([]int64, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := []T{}
	for _, k := range keys {
		if keep == nil || keep(in[k]) {
			out = append(out, in[k])
		}
	}
	return out
}

func lookup[T any](in map[int64]T, id int64) *T {
	v, ok := in[id]
	if !ok {
		return nil
	}
	return &v
}

func (m *MemStore) CreateConsumerType(_ context.Context, t *domain.ConsumerType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	t.ID = m.id()
	m.Types[t.ID] = *t
	return nil
}

func (m *MemStore) GetConsumerType(_ context.Context, id int64) (*domain.ConsumerType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.Types, id), m.Err
}

func (m *MemStore) ListConsumerTypes(_ context.Context) ([]domain.ConsumerType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.Types, nil), m.Err
}

func (m *MemStore) CreateConsumerUnit(_ context.Context, u *domain.ConsumerUnit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	u.ID = m.id()
	m.Units[u.ID] = *u
	return nil
}

func (m *MemStore) GetConsumerUnit(_ context.Context, id int64) (*domain.ConsumerUnit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.Units, id), m.Err
}

func (m *MemStore) ListConsumerUnits(_ context.Context) ([]domain.ConsumerUnit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.Units, nil), m.Err
}

func (m *MemStore) CreateDependency(_ context.Context, d *domain.Dependency) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	d.ID = m.id()
	m.Dependencies[d.ID] = *d
	return nil
}

func (m *MemStore) GetDependency(_ context.Context, id int64) (*domain.Dependency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.Dependencies, id), m.Err
}

func (m *MemStore) ListDependenciesByUnit(_ context.Context, unitID int64) ([]domain.Dependency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.Dependencies, func(d domain.Dependency) bool { return d.ConsumerUnitID == unitID }), m.Err
}

func (m *MemStore) ListDependenciesByIDs(_ context.Context, ids []int64) ([]domain.Dependency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := idSet(ids)
	return sortedValues(m.Dependencies, func(d domain.Dependency) bool { return want[d.ID] }), m.Err
}

func (m *MemStore) UpdateDependencyName(_ context.Context, id int64, name string) (*domain.Dependency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	d, ok := m.Dependencies[id]
	if !ok {
		return nil, nil
	}
	d.Name = name
	m.Dependencies[id] = d
	return &d, nil
}

func (m *MemStore) DeleteDependency(_ context.Context, id int64) (*domain.Dependency, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	d := lookup(m.Dependencies, id)
	delete(m.Dependencies, id)
	return d, nil
}

func (m *MemStore) CreateDevice(_ context.Context, d *domain.Device) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	d.ID = m.id()
	m.Devices[d.ID] = *d
	return nil
}

func (m *MemStore) GetDevice(_ context.Context, id int64) (*domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lookup(m.Devices, id), m.Err
}

func (m *MemStore) ListDevicesByIDs(_ context.Context, ids []int64) ([]domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := idSet(ids)
	return sortedValues(m.Devices, func(d domain.Device) bool { return want[d.ID] }), m.Err
}

func (m *MemStore) ListDevicesByUnit(_ context.Context, unitID int64) ([]domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.Devices, func(d domain.Device) bool { return d.ConsumerUnitID == unitID }), m.Err
}

func (m *MemStore) ListDevicesByDependency(_ context.Context, dependencyID int64) ([]domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.Devices, func(d domain.Device) bool { return d.DependencyID == dependencyID }), m.Err
}

func (m *MemStore) UpdateDevice(_ context.Context, id int64, u domain.DeviceUpdate) (*domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	d, ok := m.Devices[id]
	if !ok {
		return nil, nil
	}
	d.Name, d.Consumption, d.DailyUsage, d.Kind = u.Name, u.Consumption, u.DailyUsage, u.Kind
	m.Devices[id] = d
	return &d, nil
}

func (m *MemStore) UpdateDeviceUsage(_ context.Context, id int64, usage float64) (*domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	d, ok := m.Devices[id]
	if !ok {
		return nil, nil
	}
	d.DailyUsage = usage
	m.Devices[id] = d
	return &d, nil
}

func (m *MemStore) DeleteDevice(_ context.Context, id int64) (*domain.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	d := lookup(m.Devices, id)
	delete(m.Devices, id)
	return d, nil
}

func (m *MemStore) CreateTariff(_ context.Context, t *domain.Tariff) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	t.ID = m.id()
	m.Tariffs[t.ID] = *t
	return nil
}

func (m *MemStore) GetTariff(_ context.Context, id int64) (*domain.Tariff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TariffReads++
	return lookup(m.Tariffs, id), m.Err
}

func (m *MemStore) ListTariffs(_ context.Context) ([]domain.Tariff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedValues(m.Tariffs, nil), m.Err
}

func (m *MemStore) UpdateTariff(_ context.Context, t domain.Tariff) (*domain.Tariff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if _, ok := m.Tariffs[t.ID]; !ok {
		return nil, nil
	}
	m.Tariffs[t.ID] = t
	return &t, nil
}

func idSet(ids []int64) map[int64]bool {
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
