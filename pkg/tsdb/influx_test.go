package tsdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	_ "agrovista.dev/agro-telemetry-service/pkg/testing"
)

func TestFluxRecentReadings(t *testing.T) {
	query := FluxRecentReadings("greenhouse", MeasurementTelemetry, time.Hour)

	assert.Contains(t, query, `from(bucket: "greenhouse")`)
	assert.Contains(t, query, `range(start: -1h0m0s)`)
	assert.Contains(t, query, `r._measurement == "telemetry"`)
	assert.Contains(t, query, `desc: true`)
}
