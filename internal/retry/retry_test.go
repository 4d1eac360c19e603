package retry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darioristic/crm-monorepo-sub013/internal/aierror"
	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
)

// stubSleep replaces the package sleep with a recorder for the duration of a
// test, so retry tests run instantly.
func stubSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var delays []time.Duration
	original := sleep
	sleep = func(d time.Duration) { delays = append(delays, d) }
	t.Cleanup(func() { sleep = original })
	return &delays
}

func upstreamErr(msg string) error {
	return &aierror.UpstreamError{Model: "test-model", Err: fmt.Errorf("%s", msg)}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	stubSleep(t)
	calls := 0

	result, err := Do(&logging.MockLogger{}, "op", 2, time.Second, func() (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesThenSucceeds(t *testing.T) {
	delays := stubSleep(t)
	calls := 0

	result, err := Do(&logging.MockLogger{}, "op", 2, time.Second, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, upstreamErr("flaky")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *delays)
}

func TestDo_ExhaustsBudget(t *testing.T) {
	delays := stubSleep(t)
	calls := 0

	_, err := Do(&logging.MockLogger{}, "op", 2, time.Second, func() (string, error) {
		calls++
		return "", upstreamErr("down")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls, "maxRetries=2 means 3 attempts")
	assert.Len(t, *delays, 2, "no sleep after the final attempt")

	var upstream *aierror.UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestDo_LinearBackoff(t *testing.T) {
	delays := stubSleep(t)

	_, _ = Do[string](&logging.MockLogger{}, "op", 3, 2*time.Second, func() (string, error) {
		return "", upstreamErr("down")
	})

	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, *delays)
}

func TestDo_PermanentErrorsNotRetried(t *testing.T) {
	permanent := []error{
		&aierror.ConfigurationError{Setting: "ai.api_key", Msg: "missing"},
		&aierror.ValidationError{Field: "currency", Reason: "required field is missing"},
	}

	for _, cause := range permanent {
		delays := stubSleep(t)
		calls := 0

		_, err := Do(&logging.MockLogger{}, "op", 3, time.Second, func() (string, error) {
			calls++
			return "", cause
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls, "%T must not be retried", cause)
		assert.Empty(t, *delays)
	}
}

func TestDo_ParseErrorIsRetried(t *testing.T) {
	stubSleep(t)
	calls := 0

	result, err := Do(&logging.MockLogger{}, "op", 1, time.Second, func() (string, error) {
		calls++
		if calls == 1 {
			return "", &aierror.ParseError{Snippet: "garbage", Err: fmt.Errorf("invalid json")}
		}
		return "clean", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "clean", result)
	assert.Equal(t, 2, calls)
}

func TestDo_ZeroRetriesSingleAttempt(t *testing.T) {
	delays := stubSleep(t)
	calls := 0

	_, err := Do(&logging.MockLogger{}, "op", 0, time.Second, func() (string, error) {
		calls++
		return "", upstreamErr("down")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *delays)
}

func TestDo_NilLoggerTolerated(t *testing.T) {
	stubSleep(t)

	result, err := Do(nil, "op", 1, time.Second, func() (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestDo_RetryLogsAttempts(t *testing.T) {
	stubSleep(t)
	logger := &logging.MockLogger{}

	_, _ = Do[string](logger, "extraction", 2, time.Second, func() (string, error) {
		return "", upstreamErr("down")
	})

	warnings := logger.EntriesByLevel("WARN")
	require.Len(t, warnings, 2)
	assert.Equal(t, "Attempt failed, retrying", warnings[0].Message)
}
