package obs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))

	err := errors.New("boom")
	Time(ctx, "search")(&err)
	assert.Contains(t, buf.String(), "operation failed")
	assert.Contains(t, buf.String(), "req_id=req-1")
	assert.Contains(t, buf.String(), "op=search")

	buf.Reset()
	var ok error
	Time(ctx, "search")(&ok)
	assert.Contains(t, buf.String(), "operation complete")
}

func TestSetupLogger(t *testing.T) {
	require.NoError(t, SetupLogger("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	require.NoError(t, SetupLogger("info", "text"))
	assert.Error(t, SetupLogger("loud", "text"))
}

func TestRegisterDefaultIsIdempotent(t *testing.T) {
	RegisterDefault()
	RegisterDefault()

	PlanRuns.WithLabelValues("dynamic", "ok").Inc()
	assert.GreaterOrEqual(t, testutil.ToFloat64(PlanRuns.WithLabelValues("dynamic", "ok")), 1.0)
}
