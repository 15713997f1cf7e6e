package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"agrovista.dev/agro-telemetry-service/pkg/agro"
)

type RestfulServer struct {
	Server           *gin.Engine
	Agro             *agro.Agro
	RateLimiterStore *agro.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.GET("/sensor-values", rs.GetSensorValues)
	rs.Server.GET("/sensor-values/range", rs.GetSensorValuesRange)
	rs.Server.GET("/sensor-values/latest", rs.GetLatestSensorValue)

	api := rs.Server.Group("/api")

	devices := api.Group("/devices/:device_id")
	{
		devices.POST("/data", rs.PostDeviceData)
		devices.GET("/data", rs.GetDeviceData)
		devices.GET("/sensors", rs.GetDeviceSensors)
		devices.POST("/limiter", rs.PostLimiter)
	}

	api.GET("/sensors/:sensor_id/alerts", rs.GetSensorAlerts)
	api.GET("/users/:user_id/notifications", rs.GetUserNotifications)
	api.GET("/measurements/:measurement/readings", rs.GetMeasurementReadings)

	orgs := api.Group("/organizations/:org_id")
	{
		orgs.GET("", rs.GetOrganization)
		orgs.GET("/devices", rs.GetOrganizationDevices)
		orgs.GET("/sensors", rs.GetOrganizationSensors)
		orgs.GET("/measurements", rs.GetOrganizationMeasurements)
	}
}
