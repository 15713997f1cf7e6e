package agro

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/mail"
	"agrovista.dev/agro-telemetry-service/pkg/models"
)

// Fixed alerting thresholds.
const (
	MoistureMinThreshold    = 30.0
	TemperatureMaxThreshold = 30.0
	TemperatureMinThreshold = 10.0
)

// BreachOutcome reports how far the notify pipeline got for one fired rule,
// so a partial failure (alert recorded but mail failed) stays observable.
type BreachOutcome struct {
	Metric         models.MetricName
	Bound          models.BoundKind
	NotificationID uint
	AlertID        uint
	Err            error
	MailErr        error
}

type breach struct {
	metric  models.MetricName
	bound   models.BoundKind
	title   string
	message string
	value   float64
}

func (a *Agro) evaluateAndDispatch(ctx context.Context, deviceID string, sample *models.TelemetrySample) []BreachOutcome {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var outcomes []BreachOutcome

	timestamp := sample.Timestamp.Format(time.RFC3339)

	if sample.MoisturePercent < MoistureMinThreshold {
		outcomes = append(outcomes, a.recordBreach(opCtx, deviceID, sample, breach{
			metric: models.MetricMoisturePercent,
			bound:  models.BoundMin,
			title:  "Low soil moisture",
			message: fmt.Sprintf("Soil moisture %.2f%% on device %s fell below %.2f%% at %s",
				sample.MoisturePercent, deviceID, MoistureMinThreshold, timestamp),
			value: sample.MoisturePercent,
		}))
	}

	// The two temperature rules are mutually exclusive: max wins.
	switch {
	case sample.Temperature > TemperatureMaxThreshold:
		outcomes = append(outcomes, a.recordBreach(opCtx, deviceID, sample, breach{
			metric: models.MetricTemperature,
			bound:  models.BoundMax,
			title:  "High temperature",
			message: fmt.Sprintf("Temperature %.2f on device %s exceeded %.2f at %s",
				sample.Temperature, deviceID, TemperatureMaxThreshold, timestamp),
			value: sample.Temperature,
		}))
	case sample.Temperature < TemperatureMinThreshold:
		outcomes = append(outcomes, a.recordBreach(opCtx, deviceID, sample, breach{
			metric: models.MetricTemperature,
			bound:  models.BoundMin,
			title:  "Low temperature",
			message: fmt.Sprintf("Temperature %.2f on device %s fell below %.2f at %s",
				sample.Temperature, deviceID, TemperatureMinThreshold, timestamp),
			value: sample.Temperature,
		}))
	}

	return outcomes
}

// recordBreach drives notification insert, then alert insert, then mail. A
// failed insert aborts the remaining steps for this metric only; a mail
// failure is confined to the outcome.
func (a *Agro) recordBreach(ctx context.Context, deviceID string, sample *models.TelemetrySample, b breach) BreachOutcome {
	logger := common.GetLoggerWith(
		common.LoggerNameAgroCore,
		zap.String(common.LoggerFieldAgroCategory, common.LoggerCategoryAgroAlert),
	)

	outcome := BreachOutcome{Metric: b.metric, Bound: b.bound}

	logger.Info("Breach found",
		zap.String("device_id", deviceID),
		zap.String("metric", string(b.metric)),
		zap.String("bound", string(b.bound)),
		zap.Float64("value", b.value))

	if a.Notification == nil {
		outcome.Err = fmt.Errorf("notification service not available")
		return outcome
	}

	metadata, err := json.Marshal(sample)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	notificationID, err := a.Notification.RecordNotification(ctx, &models.Notification{
		UserID:      a.Recipient.UserID,
		TypeID:      models.NotificationTypeAlert,
		Title:       b.title,
		Message:     b.message,
		Metadata:    datatypes.JSON(metadata),
		Destination: a.Recipient.Email,
	})
	if err != nil {
		outcome.Err = err
		logger.Error("Notification insert failed", zap.Error(err))
		return outcome
	}
	outcome.NotificationID = notificationID

	alert := models.Alert{
		NotificationID: notificationID,
		MetricName:     b.metric,
		Value:          b.value,
		SensorID:       deviceID,
		BoundKind:      b.bound,
	}
	if err := a.Db.Conn.WithContext(ctx).Create(&alert).Error; err != nil {
		outcome.Err = err
		logger.Error("Alert insert failed", zap.Error(err))
		return outcome
	}
	outcome.AlertID = alert.ID

	logger.Info("Alert saved", zap.Reflect("alert", alert))

	if a.Mailer != nil {
		if err := a.Mailer.Send(ctx, mail.OutboundMail{
			Destination: a.Recipient.Email,
			Title:       b.title,
			Message:     b.message,
		}); err != nil {
			outcome.MailErr = err
			logger.Warn("Email dispatch failed", zap.Error(err))
		}
	}

	return outcome
}

func (a *Agro) sensorAlerts(ctx context.Context, sensorID string, limit int) ([]models.Alert, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var alerts []models.Alert
	err := a.Db.Conn.WithContext(opCtx).
		Preload("Notification").
		Where("sensor_id = ?", sensorID).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	agro *Agro
}

func (ia *IAlertImpl) EvaluateAndDispatch(ctx context.Context, deviceID string, sample *models.TelemetrySample) []BreachOutcome {
	return ia.agro.evaluateAndDispatch(ctx, deviceID, sample)
}

func (ia *IAlertImpl) SensorAlerts(ctx context.Context, sensorID string, limit int) ([]models.Alert, error) {
	return ia.agro.sensorAlerts(ctx, sensorID, limit)
}

func (a *Agro) GetIAlert() IAlert {
	return &IAlertImpl{agro: a}
}
