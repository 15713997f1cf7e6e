package models

import (
	"time"

	"gorm.io/datatypes"
)

type MetricName string

const (
	MetricMoisturePercent MetricName = "moisture_percent"
	MetricTemperature     MetricName = "temperature"
)

type BoundKind string

const (
	BoundMin BoundKind = "min"
	BoundMax BoundKind = "max"
)

// NotificationTypeAlert is the fixed type code for threshold-breach notifications.
const NotificationTypeAlert = 1

type Organization struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"index" json:"name"`
}

type DeviceModel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Device struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"index" json:"name"`
	Description    string    `json:"description"`
	MAC            string    `json:"mac"`
	Enabled        bool      `json:"enabled"`
	CreatedAt      time.Time `json:"created_at"`
	LastConnection time.Time `json:"last_connection"`

	ModelID        uint        `json:"model_id"`
	Model          DeviceModel `gorm:"foreignKey:ModelID" json:"model"`
	OrganizationID uint        `gorm:"index" json:"organization_id"`
}

type SensorType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SensorModel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Sensor struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"index" json:"name"`
	Node           string    `json:"node"`
	Enabled        bool      `json:"enabled"`
	CreatedAt      time.Time `json:"created_at"`
	LastConnection time.Time `json:"last_connection"`

	SensorTypeID  uint        `json:"sensor_type_id"`
	SensorType    SensorType  `gorm:"foreignKey:SensorTypeID" json:"sensor_type"`
	SensorModelID uint        `json:"sensor_model_id"`
	SensorModel   SensorModel `gorm:"foreignKey:SensorModelID" json:"sensor_model"`

	DeviceID       string `gorm:"index" json:"device_id"`
	OrganizationID uint   `gorm:"index" json:"organization_id"`

	Columns []MeasurementColumn `gorm:"foreignKey:SensorID" json:"columns"`
}

type MeasurementColumn struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SensorID string `gorm:"index" json:"sensor_id"`
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Unit     string `json:"unit"`
}

// TelemetrySample is one device reading. Samples live in a single table keyed
// by device id; the device id never becomes part of an SQL identifier.
type TelemetrySample struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DeviceID        string    `gorm:"index" json:"device_id"`
	MoisturePercent float64   `json:"moisture_percent"`
	Temperature     float64   `json:"temperature"`
	Timestamp       time.Time `gorm:"index" json:"timestamp"`
}

type Notification struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"index" json:"user_id"`
	TypeID      int            `json:"type_id"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Metadata    datatypes.JSON `json:"metadata"`
	Destination string         `json:"destination"`
	CreatedAt   time.Time      `json:"created_at"`
}

type Alert struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	NotificationID uint         `gorm:"index" json:"notification_id"`
	Notification   Notification `gorm:"foreignKey:NotificationID" json:"notification"`
	MetricName     MetricName   `gorm:"type:varchar(32);check:metric_name IN ('moisture_percent','temperature')" json:"metric_name"`
	Value          float64      `json:"value"`
	SensorID       string       `gorm:"index" json:"sensor_id"`
	BoundKind      BoundKind    `gorm:"type:varchar(8);check:bound_kind IN ('min','max')" json:"bound_kind"`
	CreatedAt      time.Time    `json:"created_at"`
}
