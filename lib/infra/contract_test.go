package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func violate() {
	MustHold(false, "violate", "index %d out of range [0,%d)", 7, 3)
}

func recoverViolation(fn func()) (cv *ContractViolation) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cv, _ = r.(*ContractViolation)
	}()
	fn()
	return nil
}

func TestMustHold(t *testing.T) {
	require.NotPanics(t, func() {
		MustHold(true, "noop", "never formatted %d", 1)
	})

	cv := recoverViolation(violate)
	require.NotNil(t, cv)
	require.Equal(t, "violate", cv.Op)
	require.Equal(t, "index 7 out of range [0,3)", cv.Reason)
	require.Equal(t, "violate", fmt.Sprintf("%n", cv.Frame))
	require.Equal(t, "contract_test.go", fmt.Sprintf("%s", cv.Frame))
	require.Contains(t, cv.Error(), "violate: index 7 out of range [0,3) (contract_test.go:")

	var err error = cv
	var target *ContractViolation
	require.True(t, errors.As(err, &target))
}

func TestFrameUnknown(t *testing.T) {
	testcases := []struct {
		format string
		want   string
	}{
		{"%s", "unknownFile"},
		{"%d", "0"},
		{"%n", "unknownFunc"},
		{"%v", "unknownFile:0"},
	}
	for _, tc := range testcases {
		t.Run(tc.format, func(tt *testing.T) {
			require.Equal(tt, tc.want, fmt.Sprintf(tc.format, Frame(0)))
		})
	}
}

func TestContractViolationLogObject(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	cv := NewContractViolation(0, "select", "order 0 out of range")
	logger.Error("contract violation", zap.Object("violation", cv))

	entries := logs.FilterMessage("contract violation").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()["violation"].(map[string]any)
	require.Equal(t, "select", fields["op"])
	require.Equal(t, "order 0 out of range", fields["reason"])
	require.Contains(t, fields["caller"], "TestContractViolationLogObject")
}
