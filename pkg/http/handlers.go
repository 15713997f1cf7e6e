package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"agrovista.dev/agro-telemetry-service/pkg/agro"
	"agrovista.dev/agro-telemetry-service/pkg/models"
)

const defaultQueryLimit = 50

func limitParam(c *gin.Context) int {
	limit := defaultQueryLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return limit
}

type TelemetryRequest struct {
	MoisturePercent float64 `json:"moisture_percent"`
	Temperature     float64 `json:"temperature"`
}

var telemetryRequestSchema = z.Struct(z.Shape{
	"MoisturePercent": z.Float64().Required(),
	"Temperature":     z.Float64().Required(),
})

func (rs *RestfulServer) PostDeviceData(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req TelemetryRequest
	if err := telemetryRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Agro.Telemetry.IngestSample(c.Request.Context(), deviceID, &models.TelemetrySample{
		MoisturePercent: req.MoisturePercent,
		Temperature:     req.Temperature,
	})
	if err != nil {
		if errors.Is(err, agro.ErrUnknownDevice) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "sample stored"})
}

func (rs *RestfulServer) GetDeviceData(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	samples, err := rs.Agro.Telemetry.DeviceSamples(c.Request.Context(), deviceID, limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, samples)
}

func (rs *RestfulServer) GetSensorAlerts(c *gin.Context) {
	sensorID := c.Param("sensor_id")

	alerts, err := rs.Agro.Alert.SensorAlerts(c.Request.Context(), sensorID, limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetUserNotifications(c *gin.Context) {
	userID := c.Param("user_id")

	notifications, err := rs.Agro.Notification.UserNotifications(c.Request.Context(), userID, limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func orgIDParam(c *gin.Context) (uint, bool) {
	orgID, err := strconv.ParseUint(c.Param("org_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return 0, false
	}
	return uint(orgID), true
}

func (rs *RestfulServer) GetOrganization(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	org, err := rs.Agro.Catalog.Organization(c.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, agro.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

func (rs *RestfulServer) GetOrganizationDevices(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	devices, err := rs.Agro.Catalog.OrganizationDevices(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, devices)
}

func (rs *RestfulServer) GetOrganizationSensors(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	sensors, err := rs.Agro.Catalog.OrganizationSensors(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sensors)
}

func (rs *RestfulServer) GetOrganizationMeasurements(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	measurements, err := rs.Agro.Catalog.OrganizationMeasurements(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, measurements)
}

func (rs *RestfulServer) GetDeviceSensors(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	sensors, err := rs.Agro.Catalog.DeviceSensors(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sensors)
}

func (rs *RestfulServer) GetSensorValues(c *gin.Context) {
	samples, err := rs.Agro.Telemetry.RecentSamples(c.Request.Context(), limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, samples)
}

func parseDateParam(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (rs *RestfulServer) GetSensorValuesRange(c *gin.Context) {
	from, err := parseDateParam(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}

	to, err := parseDateParam(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	samples, err := rs.Agro.Telemetry.SamplesInRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, samples)
}

func (rs *RestfulServer) GetLatestSensorValue(c *gin.Context) {
	sample, err := rs.Agro.Telemetry.LatestSample(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no samples recorded"})
		return
	}

	c.JSON(http.StatusOK, sample)
}

func (rs *RestfulServer) GetMeasurementReadings(c *gin.Context) {
	if rs.Agro.TimeSeries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "time-series store not configured"})
		return
	}

	window := time.Hour
	if raw := c.Query("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window"})
			return
		}
		window = parsed
	}

	readings, err := rs.Agro.TimeSeries.RecentReadings(c.Request.Context(), c.Param("measurement"), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, readings)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
