package tsdb

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"go.uber.org/zap"

	"agrovista.dev/agro-telemetry-service/pkg/common"
	"agrovista.dev/agro-telemetry-service/pkg/models"
)

// MeasurementTelemetry is the measurement ingested samples are mirrored into.
const MeasurementTelemetry = "telemetry"

// Reading is one field value pulled back from the time-series store.
type Reading struct {
	DeviceID string    `json:"device_id"`
	Field    string    `json:"field"`
	Value    float64   `json:"value"`
	Time     time.Time `json:"time"`
}

type TimeSeries interface {
	WriteSample(ctx context.Context, deviceID string, sample *models.TelemetrySample) error
	RecentReadings(ctx context.Context, measurement string, window time.Duration) ([]Reading, error)
}

type Config struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

type Client struct {
	cfg      Config
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	queryAPI api.QueryAPI
}

func NewClient(cfg Config) *Client {
	c := influxdb2.NewClient(cfg.URL, cfg.Token)
	return &Client{
		cfg:      cfg,
		client:   c,
		writeAPI: c.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		queryAPI: c.QueryAPI(cfg.Org),
	}
}

func (c *Client) WriteSample(ctx context.Context, deviceID string, sample *models.TelemetrySample) error {
	point := influxdb2.NewPoint(
		MeasurementTelemetry,
		map[string]string{"device_id": deviceID},
		map[string]interface{}{
			string(models.MetricMoisturePercent): sample.MoisturePercent,
			string(models.MetricTemperature):     sample.Temperature,
		},
		sample.Timestamp,
	)
	return c.writeAPI.WritePoint(ctx, point)
}

// FluxRecentReadings builds the query for the newest points of one measurement
// inside the given window.
func FluxRecentReadings(bucket, measurement string, window time.Duration) string {
	return fmt.Sprintf(`from(bucket: %q)
  |> range(start: -%s)
  |> filter(fn: (r) => r._measurement == %q)
  |> sort(columns: ["_time"], desc: true)`, bucket, window.String(), measurement)
}

func (c *Client) RecentReadings(ctx context.Context, measurement string, window time.Duration) ([]Reading, error) {
	logger := common.GetLoggerWith(common.LoggerNameTimeSeries)

	result, err := c.queryAPI.Query(ctx, FluxRecentReadings(c.cfg.Bucket, measurement, window))
	if err != nil {
		return nil, err
	}

	var readings []Reading
	for result.Next() {
		record := result.Record()
		value, ok := record.Value().(float64)
		if !ok {
			continue
		}
		deviceID, _ := record.ValueByKey("device_id").(string)
		readings = append(readings, Reading{
			DeviceID: deviceID,
			Field:    record.Field(),
			Value:    value,
			Time:     record.Time(),
		})
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	logger.Info("Fetched recent readings",
		zap.String("measurement", measurement),
		zap.Duration("window", window),
		zap.Int("count", len(readings)))

	return readings, nil
}

func (c *Client) Close() {
	c.client.Close()
}
