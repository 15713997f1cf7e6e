package agro

import (
	"context"
	"time"

	"agrovista.dev/agro-telemetry-service/pkg/db"
	"agrovista.dev/agro-telemetry-service/pkg/mail"
	"agrovista.dev/agro-telemetry-service/pkg/models"
	"agrovista.dev/agro-telemetry-service/pkg/tsdb"
)

type ITelemetry interface {
	IngestSample(ctx context.Context, deviceID string, input *models.TelemetrySample) error
	DeviceSamples(ctx context.Context, deviceID string, limit int) ([]models.TelemetrySample, error)
	RecentSamples(ctx context.Context, limit int) ([]models.TelemetrySample, error)
	SamplesInRange(ctx context.Context, from, to time.Time) ([]models.TelemetrySample, error)
	LatestSample(ctx context.Context) (*models.TelemetrySample, error)
}

type IAlert interface {
	EvaluateAndDispatch(ctx context.Context, deviceID string, sample *models.TelemetrySample) []BreachOutcome
	SensorAlerts(ctx context.Context, sensorID string, limit int) ([]models.Alert, error)
}

type INotification interface {
	RecordNotification(ctx context.Context, input *models.Notification) (uint, error)
	UserNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error)
}

type ICatalog interface {
	Organization(ctx context.Context, orgID uint) (*models.Organization, error)
	OrganizationDevices(ctx context.Context, orgID uint) ([]models.Device, error)
	OrganizationSensors(ctx context.Context, orgID uint) ([]models.Sensor, error)
	OrganizationMeasurements(ctx context.Context, orgID uint) ([]string, error)
	DeviceSensors(ctx context.Context, deviceID string) ([]models.Sensor, error)
}

// Recipient is the configured destination for alert notifications.
type Recipient struct {
	UserID string
	Email  string
}

// DefaultOpTimeout bounds every store call; no operation may hang on a stuck
// connection past this.
const DefaultOpTimeout = 5 * time.Second

type Agro struct {
	Db         db.DB
	TimeSeries tsdb.TimeSeries
	Mailer     mail.Dispatcher
	Recipient  Recipient
	OpTimeout  time.Duration

	Telemetry    ITelemetry
	Alert        IAlert
	Notification INotification
	Catalog      ICatalog
}

type ServiceOpts struct {
	Telemetry    ITelemetry
	Alert        IAlert
	Notification INotification
	Catalog      ICatalog
}

func (a *Agro) WithServices(opts ServiceOpts) *Agro {
	if opts.Telemetry != nil {
		a.Telemetry = opts.Telemetry
	}
	if opts.Alert != nil {
		a.Alert = opts.Alert
	}
	if opts.Notification != nil {
		a.Notification = opts.Notification
	}
	if opts.Catalog != nil {
		a.Catalog = opts.Catalog
	}
	return a
}

func (a *Agro) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := a.OpTimeout
	if timeout == 0 {
		timeout = DefaultOpTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
