package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrInvalidUsage = errors.New("daily usage must be between 0 and 24 hours")

// UsageReport is the MQTT payload a metering plug publishes.
type UsageReport struct {
	DeviceID   int64     `json:"dispositivo_id"`
	DailyUsage float64   `json:"uso_diario"`
	Timestamp  time.Time `json:"timestamp"`
}

type UsageService struct {
	store Store
}

// FromMQTT applies a usage report to the stored device. Reports for unknown
// devices are dropped.
func (s *UsageService) FromMQTT(ctx context.Context, topic string, payload []byte) error {
	var r UsageReport
	if err := json.Unmarshal(payload, &r); err != nil {
		return fmt.Errorf("decode usage report from %s: %w", topic, err)
	}
	if r.DailyUsage < 0 || r.DailyUsage > 24 {
		return fmt.Errorf("device %d: %w", r.DeviceID, ErrInvalidUsage)
	}

	d, err := s.store.UpdateDeviceUsage(ctx, r.DeviceID, r.DailyUsage)
	if err != nil {
		return fmt.Errorf("update usage of device %d: %w", r.DeviceID, err)
	}
	if d == nil {
		log.Warn().Int64("dispositivo_id", r.DeviceID).Str("topic", topic).Msg("usage report for unknown device")
		return nil
	}

	log.Debug().Int64("dispositivo_id", d.ID).Float64("uso_diario", d.DailyUsage).Msg("device usage updated")
	return nil
}
