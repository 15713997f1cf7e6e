package agro_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrovista.dev/agro-telemetry-service/pkg/agro"
	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/models"
	_ "agrovista.dev/agro-telemetry-service/pkg/testing"
)

// seedSensor attaches a sensor with two measurement columns to the device.
func seedSensor(t *testing.T, agroObj *agro.Agro, device models.Device, name string) models.Sensor {
	t.Helper()

	sensorType := models.SensorType{Name: "type-" + uuid.NewString(), Description: "capacitive probe"}
	require.NoError(t, agroObj.Db.Conn.Create(&sensorType).Error)

	sensorModel := models.SensorModel{Name: "smodel-" + uuid.NewString()}
	require.NoError(t, agroObj.Db.Conn.Create(&sensorModel).Error)

	sensor := models.Sensor{
		ID:             uuid.NewString(),
		Name:           name,
		Node:           "node-1",
		Enabled:        true,
		SensorTypeID:   sensorType.ID,
		SensorModelID:  sensorModel.ID,
		DeviceID:       device.ID,
		OrganizationID: device.OrganizationID,
	}
	require.NoError(t, agroObj.Db.Conn.Create(&sensor).Error)

	for _, column := range []models.MeasurementColumn{
		{SensorID: sensor.ID, Name: "moisture_percent", DataType: "float", Unit: "%"},
		{SensorID: sensor.ID, Name: "temperature", DataType: "float", Unit: "C"},
	} {
		require.NoError(t, agroObj.Db.Conn.Create(&column).Error)
	}

	return sensor
}

func TestOrganization(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)

	org, err := agroObj.Catalog.Organization(context.Background(), device.OrganizationID)
	require.NoError(t, err)
	assert.Equal(t, device.OrganizationID, org.ID)

	_, err = agroObj.Catalog.Organization(context.Background(), 999999999)
	require.ErrorIs(t, err, agro.ErrOrganizationNotFound)
}

func TestOrganizationDevices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)

	devices, err := agroObj.Catalog.OrganizationDevices(context.Background(), device.OrganizationID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, device.ID, devices[0].ID)

	// model metadata joined for display
	assert.Equal(t, device.ModelID, devices[0].Model.ID)
	assert.NotEmpty(t, devices[0].Model.Name)
}

func TestOrganizationSensorsAndDeviceSensors(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)
	seedSensor(t, agroObj, device, "b-sensor")
	seedSensor(t, agroObj, device, "a-sensor")

	sensors, err := agroObj.Catalog.OrganizationSensors(context.Background(), device.OrganizationID)
	require.NoError(t, err)
	require.Len(t, sensors, 2)

	// ordered by name, with type and model preloaded
	assert.Equal(t, "a-sensor", sensors[0].Name)
	assert.Equal(t, "b-sensor", sensors[1].Name)
	assert.NotZero(t, sensors[0].SensorType.ID)
	assert.NotZero(t, sensors[0].SensorModel.ID)

	deviceSensors, err := agroObj.Catalog.DeviceSensors(context.Background(), device.ID)
	require.NoError(t, err)
	require.Len(t, deviceSensors, 2)
	assert.Len(t, deviceSensors[0].Columns, 2)
}

func TestOrganizationMeasurements(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)
	seedSensor(t, agroObj, device, "sensor-1")
	seedSensor(t, agroObj, device, "sensor-2")

	// duplicated column names across sensors collapse to a distinct sorted list
	measurements, err := agroObj.Catalog.OrganizationMeasurements(context.Background(), device.OrganizationID)
	require.NoError(t, err)
	assert.Equal(t, []string{"moisture_percent", "temperature"}, measurements)
}
