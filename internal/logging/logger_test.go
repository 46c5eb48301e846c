package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logFile(t *testing.T, dir string, category Category) string {
	t.Helper()
	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, "logs", date+"_"+string(category)+".log"))
	require.NoError(t, err)
	return string(data)
}

func TestWarnRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, true, "warn"))
	defer CloseAll()

	cart := Get(CategoryCart)
	cart.Info("hidden info line")
	cart.Warn("badge refresh failed: %v", os.ErrDeadlineExceeded)

	out := logFile(t, dir, CategoryCart)
	assert.Contains(t, out, "[WARN] badge refresh failed")
	assert.NotContains(t, out, "hidden info line")
}

func TestWarnSuppressedAtErrorLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, true, "error"))
	defer CloseAll()

	cart := Get(CategoryCart)
	cart.Warn("should not appear")
	cart.Error("should appear")

	out := logFile(t, dir, CategoryCart)
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "[ERROR] should appear")
}

func TestTimerLogsDuration(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, true, "debug"))
	defer CloseAll()

	timer := StartTimer(CategoryReports, "sales report")
	elapsed := timer.Stop()
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))

	out := logFile(t, dir, CategoryReports)
	assert.Contains(t, out, "sales report completed in")
}

func TestDisabledLoggingIsSilent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, false, "info"))
	defer CloseAll()

	Get(CategoryOrders).Warn("nothing to see")
	_, err := os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(err))
}
