package agro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/models"
)

// ErrUnknownDevice rejects samples from devices that are not registered and
// enabled. The device id is only ever used as a column value, never as an
// SQL identifier, so the allow-list is the single gate.
var ErrUnknownDevice = errors.New("device is not registered")

func (a *Agro) ingestSample(ctx context.Context, deviceID string, input *models.TelemetrySample) error {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroTelemetry),
	)

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var device models.Device
	if err := a.Db.Conn.WithContext(opCtx).First(&device, "id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownDevice
		}
		return err
	}
	if !device.Enabled {
		return ErrUnknownDevice
	}

	sample := models.TelemetrySample{
		DeviceID:        deviceID,
		MoisturePercent: input.MoisturePercent,
		Temperature:     input.Temperature,
		Timestamp:       time.Now().UTC(),
	}

	logger.Info("Received sample for device", zap.Reflect("sample", sample))

	// The raw insert is the system of record. If it fails nothing below runs:
	// no mirror, no alerts.
	if err := a.Db.Conn.WithContext(opCtx).Create(&sample).Error; err != nil {
		return err
	}

	logger.Info("Stored sample for device", zap.Reflect("sample", sample))

	if a.TimeSeries != nil {
		if err := a.TimeSeries.WriteSample(opCtx, deviceID, &sample); err != nil {
			logger.Warn("Time-series mirror failed",
				zap.String("device_id", deviceID), zap.Error(err))
		}
	}

	if a.Alert == nil {
		return fmt.Errorf("alert service not available")
	}

	a.Alert.EvaluateAndDispatch(ctx, deviceID, &sample)
	return nil
}

func (a *Agro) deviceSamples(ctx context.Context, deviceID string, limit int) ([]models.TelemetrySample, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var samples []models.TelemetrySample
	err := a.Db.Conn.WithContext(opCtx).
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Limit(limit).
		Find(&samples).Error
	return samples, err
}

func (a *Agro) recentSamples(ctx context.Context, limit int) ([]models.TelemetrySample, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var samples []models.TelemetrySample
	err := a.Db.Conn.WithContext(opCtx).
		Order("timestamp desc").
		Limit(limit).
		Find(&samples).Error
	return samples, err
}

func (a *Agro) samplesInRange(ctx context.Context, from, to time.Time) ([]models.TelemetrySample, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var samples []models.TelemetrySample
	err := a.Db.Conn.WithContext(opCtx).
		Where("timestamp BETWEEN ? AND ?", from, to).
		Order("timestamp desc").
		Find(&samples).Error
	return samples, err
}

func (a *Agro) latestSample(ctx context.Context) (*models.TelemetrySample, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var sample models.TelemetrySample
	err := a.Db.Conn.WithContext(opCtx).
		Order("timestamp desc").
		First(&sample).Error
	if err != nil {
		return nil, err
	}
	return &sample, nil
}

type ITelemetryImpl struct {
	agro *Agro
}

func (it *ITelemetryImpl) IngestSample(ctx context.Context, deviceID string, input *models.TelemetrySample) error {
	return it.agro.ingestSample(ctx, deviceID, input)
}

func (it *ITelemetryImpl) DeviceSamples(ctx context.Context, deviceID string, limit int) ([]models.TelemetrySample, error) {
	return it.agro.deviceSamples(ctx, deviceID, limit)
}

func (it *ITelemetryImpl) RecentSamples(ctx context.Context, limit int) ([]models.TelemetrySample, error) {
	return it.agro.recentSamples(ctx, limit)
}

func (it *ITelemetryImpl) SamplesInRange(ctx context.Context, from, to time.Time) ([]models.TelemetrySample, error) {
	return it.agro.samplesInRange(ctx, from, to)
}

func (it *ITelemetryImpl) LatestSample(ctx context.Context) (*models.TelemetrySample, error) {
	return it.agro.latestSample(ctx)
}

func (a *Agro) GetITelemetry() ITelemetry {
	return &ITelemetryImpl{agro: a}
}
