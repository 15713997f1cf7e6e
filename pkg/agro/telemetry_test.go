package agro_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agrovista.dev/agro-telemetry-service/pkg/agro"
	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/models"
	_ "agrovista.dev/agro-telemetry-service/pkg/testing"
	"agrovista.dev/agro-telemetry-service/pkg/tsdb"
)

// recordingTimeSeries captures mirrored samples in place of a real Influx client.
type recordingTimeSeries struct {
	written   []tsdb.Reading
	failWrite bool
}

func (r *recordingTimeSeries) WriteSample(_ context.Context, deviceID string, sample *models.TelemetrySample) error {
	if r.failWrite {
		return assert.AnError
	}
	r.written = append(r.written,
		tsdb.Reading{DeviceID: deviceID, Field: string(models.MetricMoisturePercent), Value: sample.MoisturePercent, Time: sample.Timestamp},
		tsdb.Reading{DeviceID: deviceID, Field: string(models.MetricTemperature), Value: sample.Temperature, Time: sample.Timestamp},
	)
	return nil
}

func (r *recordingTimeSeries) RecentReadings(_ context.Context, _ string, _ time.Duration) ([]tsdb.Reading, error) {
	return r.written, nil
}

func TestIngestSample(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, mockIAlert, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, true, false, false)
	defer ctrl.Finish()

	timeSeries := &recordingTimeSeries{}
	agroObj.TimeSeries = timeSeries

	device := seedDevice(t, agroObj)

	mockIAlert.
		EXPECT().
		EvaluateAndDispatch(gomock.Any(), gomock.Eq(device.ID), gomock.Any()).
		Times(1)

	input := &models.TelemetrySample{
		MoisturePercent: 42.0,
		Temperature:     21.5,
	}
	err := agroObj.Telemetry.IngestSample(context.Background(), device.ID, input)
	require.NoError(t, err)

	// persisted with a server-assigned timestamp
	var saved models.TelemetrySample
	err = agroObj.Db.Conn.Where("device_id = ?", device.ID).First(&saved).Error
	require.NoError(t, err)
	assert.Equal(t, input.MoisturePercent, saved.MoisturePercent)
	assert.Equal(t, input.Temperature, saved.Temperature)
	assert.False(t, saved.Timestamp.IsZero())

	// mirrored to the time-series store
	assert.Len(t, timeSeries.written, 2)
}

func TestIngestSample_UnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	err := agroObj.Telemetry.IngestSample(context.Background(), uuid.NewString(), &models.TelemetrySample{
		MoisturePercent: 42.0,
		Temperature:     21.5,
	})
	require.ErrorIs(t, err, agro.ErrUnknownDevice)
}

func TestIngestSample_DisabledDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)
	require.NoError(t, agroObj.Db.Conn.Model(&models.Device{}).
		Where("id = ?", device.ID).
		Update("enabled", false).Error)

	err := agroObj.Telemetry.IngestSample(context.Background(), device.ID, &models.TelemetrySample{
		MoisturePercent: 42.0,
		Temperature:     21.5,
	})
	require.ErrorIs(t, err, agro.ErrUnknownDevice)

	var count int64
	require.NoError(t, agroObj.Db.Conn.Model(&models.TelemetrySample{}).
		Where("device_id = ?", device.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestIngestSample_MirrorFailureDoesNotAbort(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, mockIAlert, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, true, false, false)
	defer ctrl.Finish()

	agroObj.TimeSeries = &recordingTimeSeries{failWrite: true}

	device := seedDevice(t, agroObj)

	mockIAlert.
		EXPECT().
		EvaluateAndDispatch(gomock.Any(), gomock.Eq(device.ID), gomock.Any()).
		Times(1)

	err := agroObj.Telemetry.IngestSample(context.Background(), device.ID, &models.TelemetrySample{
		MoisturePercent: 42.0,
		Temperature:     21.5,
	})
	require.NoError(t, err)
}

func TestDeviceSamples(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		sample := models.TelemetrySample{
			DeviceID:        device.ID,
			MoisturePercent: float64(40 + i),
			Temperature:     20.0,
			Timestamp:       base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, agroObj.Db.Conn.Create(&sample).Error)
	}

	samples, err := agroObj.Telemetry.DeviceSamples(context.Background(), device.ID, 3)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	// newest first
	assert.Equal(t, 44.0, samples[0].MoisturePercent)
	assert.Equal(t, 43.0, samples[1].MoisturePercent)
	assert.Equal(t, 42.0, samples[2].MoisturePercent)
}

func TestSamplesInRange(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)

	base := time.Now().UTC().Add(-24 * time.Hour)
	for i := 0; i < 4; i++ {
		sample := models.TelemetrySample{
			DeviceID:        device.ID,
			MoisturePercent: 40.0,
			Temperature:     float64(15 + i),
			Timestamp:       base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, agroObj.Db.Conn.Create(&sample).Error)
	}

	samples, err := agroObj.Telemetry.SamplesInRange(context.Background(),
		base.Add(30*time.Minute), base.Add(150*time.Minute))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 17.0, samples[0].Temperature)
	assert.Equal(t, 16.0, samples[1].Temperature)
}

func TestLatestSample(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, agroObj, _, _, _, _ := GetMockAgroWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := seedDevice(t, agroObj)

	newest := models.TelemetrySample{
		DeviceID:        device.ID,
		MoisturePercent: 33.0,
		Temperature:     22.0,
		Timestamp:       time.Now().UTC().Add(24 * time.Hour),
	}
	require.NoError(t, agroObj.Db.Conn.Create(&newest).Error)

	sample, err := agroObj.Telemetry.LatestSample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sample)
	assert.Equal(t, newest.ID, sample.ID)
}
