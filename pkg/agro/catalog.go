package agro

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/models"
)

var ErrOrganizationNotFound = errors.New("organization not found")

func (a *Agro) organization(ctx context.Context, orgID uint) (*models.Organization, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var org models.Organization
	if err := a.Db.Conn.WithContext(opCtx).First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (a *Agro) organizationDevices(ctx context.Context, orgID uint) ([]models.Device, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var devices []models.Device
	err := a.Db.Conn.WithContext(opCtx).
		Preload("Model").
		Where("organization_id = ?", orgID).
		Order("name").
		Find(&devices).Error
	return devices, err
}

func (a *Agro) organizationSensors(ctx context.Context, orgID uint) ([]models.Sensor, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var sensors []models.Sensor
	err := a.Db.Conn.WithContext(opCtx).
		Preload("SensorType").
		Preload("SensorModel").
		Where("organization_id = ?", orgID).
		Order("name").
		Find(&sensors).Error
	return sensors, err
}

func (a *Agro) deviceSensors(ctx context.Context, deviceID string) ([]models.Sensor, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var sensors []models.Sensor
	err := a.Db.Conn.WithContext(opCtx).
		Preload("SensorType").
		Preload("SensorModel").
		Preload("Columns").
		Where("device_id = ?", deviceID).
		Order("name").
		Find(&sensors).Error
	return sensors, err
}

// organizationMeasurements lists the distinct measurement column names across
// the organization's sensors.
func (a *Agro) organizationMeasurements(ctx context.Context, orgID uint) ([]string, error) {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	var columns []models.MeasurementColumn
	err := a.Db.Conn.WithContext(opCtx).
		Distinct("measurement_columns.name").
		Joins("JOIN sensors ON sensors.id = measurement_columns.sensor_id").
		Where("sensors.organization_id = ?", orgID).
		Order("measurement_columns.name").
		Find(&columns).Error
	if err != nil {
		return nil, err
	}

	return common.Mapper(columns, func(c models.MeasurementColumn) string { return c.Name }), nil
}

type ICatalogImpl struct {
	agro *Agro
}

func (ic *ICatalogImpl) Organization(ctx context.Context, orgID uint) (*models.Organization, error) {
	return ic.agro.organization(ctx, orgID)
}

func (ic *ICatalogImpl) OrganizationDevices(ctx context.Context, orgID uint) ([]models.Device, error) {
	return ic.agro.organizationDevices(ctx, orgID)
}

func (ic *ICatalogImpl) OrganizationSensors(ctx context.Context, orgID uint) ([]models.Sensor, error) {
	return ic.agro.organizationSensors(ctx, orgID)
}

func (ic *ICatalogImpl) OrganizationMeasurements(ctx context.Context, orgID uint) ([]string, error) {
	return ic.agro.organizationMeasurements(ctx, orgID)
}

func (ic *ICatalogImpl) DeviceSensors(ctx context.Context, deviceID string) ([]models.Sensor, error) {
	return ic.agro.deviceSensors(ctx, deviceID)
}

func (a *Agro) GetICatalog() ICatalog {
	return &ICatalogImpl{agro: a}
}
