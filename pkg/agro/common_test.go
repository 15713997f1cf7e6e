package agro_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agrovista.dev/agro-telemetry-service/pkg/agro"
	"agrovista.dev/agro-telemetry-service/pkg/agro/mocks"
	"agrovista.dev/agro-telemetry-service/pkg/db"
	"agrovista.dev/agro-telemetry-service/pkg/models"
)

func GetMockAgroWithMemorySqliteDialector(t *testing.T, useMockTelemetry, useMockAlert, useMockNotification, useMockCatalog bool) (
	*gomock.Controller,
	*agro.Agro,
	*mocks.MockITelemetry,
	*mocks.MockIAlert,
	*mocks.MockINotification,
	*mocks.MockICatalog,
) {
	ctrl := gomock.NewController(t)

	mockITelemetry := mocks.NewMockITelemetry(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockINotification := mocks.NewMockINotification(ctrl)
	mockICatalog := mocks.NewMockICatalog(ctrl)

	dbInstance, err := db.Open(db.UseMemorySqliteDialector())
	require.NoError(t, err)

	agroInstance := &agro.Agro{
		Db: *dbInstance,
		Recipient: agro.Recipient{
			UserID: uuid.NewString(),
			Email:  "grower@example.com",
		},
	}

	telemetryService := agroInstance.GetITelemetry()
	if useMockTelemetry {
		telemetryService = mockITelemetry
	}

	alertService := agroInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	notificationService := agroInstance.GetINotification()
	if useMockNotification {
		notificationService = mockINotification
	}

	catalogService := agroInstance.GetICatalog()
	if useMockCatalog {
		catalogService = mockICatalog
	}

	agroInstance.WithServices(agro.ServiceOpts{
		Telemetry:    telemetryService,
		Alert:        alertService,
		Notification: notificationService,
		Catalog:      catalogService,
	})

	return ctrl, agroInstance, mockITelemetry, mockIAlert, mockINotification, mockICatalog
}

// seedDevice registers an organization, a device model, and an enabled device
// so samples for it pass the allow-list.
func seedDevice(t *testing.T, agroObj *agro.Agro) models.Device {
	t.Helper()

	org := models.Organization{Name: "org-" + uuid.NewString()}
	require.NoError(t, agroObj.Db.Conn.Create(&org).Error)

	deviceModel := models.DeviceModel{Name: "model-" + uuid.NewString(), Description: "soil probe station"}
	require.NoError(t, agroObj.Db.Conn.Create(&deviceModel).Error)

	device := models.Device{
		ID:             uuid.NewString(),
		Name:           "device-" + uuid.NewString(),
		MAC:            "aa:bb:cc:dd:ee:ff",
		Enabled:        true,
		ModelID:        deviceModel.ID,
		OrganizationID: org.ID,
	}
	require.NoError(t, agroObj.Db.Conn.Create(&device).Error)

	return device
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
