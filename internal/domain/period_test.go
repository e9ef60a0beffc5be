package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"diario", "mensal", "anual"} {
		p, err := ParsePeriod(s)
		require.NoError(t, err)
		assert.Equal(t, Period(s), p)
	}

	for _, s := range []string{"", "semanal", "DIARIO", "diário"} {
		_, err := ParsePeriod(s)
		assert.ErrorIs(t, err, ErrInvalidPeriod, s)
	}
}

func TestPeriodScale(t *testing.T) {
	assert.Equal(t, 10.0, Daily.Scale(10))
	assert.Equal(t, 300.0, Monthly.Scale(10))
	assert.Equal(t, 3600.0, Annual.Scale(10))
	assert.Equal(t, Monthly.Scale(7.5)*12, Annual.Scale(7.5))
}

func TestPeriodRate(t *testing.T) {
	tariff := &Tariff{DailyRate: 0.5, MonthlyRate: 0.4, AnnualRate: 0.3}

	assert.Equal(t, 0.5, Daily.Rate(tariff))
	assert.Equal(t, 0.4, Monthly.Rate(tariff))
	assert.Equal(t, 0.3, Annual.Rate(tariff))
	assert.Zero(t, Annual.Rate(nil))
}

func TestDeviceDailyConsumption(t *testing.T) {
	d := Device{Consumption: 1.5, DailyUsage: 4}
	assert.Equal(t, 6.0, d.DailyConsumption())
}
