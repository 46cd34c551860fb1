package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/rcliao/deltakit/internal/save/savetest"
)

func executeStatus(t *testing.T, args ...string) int {
	t.Helper()
	RootCmd.SetArgs(args)
	RootCmd.SetOut(io.Discard)
	RootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		RootCmd.SetArgs(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		formatFlag = "text"
		logger = zap.NewNop()
	})
	return Execute()
}

func TestExecute_Success(t *testing.T) {
	path := writeSave(t, filepath.Join(t.TempDir(), "filech2_0"), savetest.New(2))
	assert.Equal(t, 0, executeStatus(t, "info", path))
}

func TestExecute_MergeConfigErrorExitsFailure(t *testing.T) {
	t.Setenv("DELTAKIT_MARKER_LENGTH", "abc")
	assert.Equal(t, exitFailure, executeStatus(t, "merge", "a", "b", "c", "7", "filech2_0"))
}

func TestExecute_MergeBadLogLevelExitsFailure(t *testing.T) {
	t.Setenv("DELTAKIT_LOG_LEVEL", "loud")
	assert.Equal(t, exitFailure, executeStatus(t, "merge", "a", "b", "c", "7", "filech2_0"))
}

func TestExecute_MergeUnknownFlagExitsFailure(t *testing.T) {
	assert.Equal(t, exitFailure, executeStatus(t, "merge", "--no-such-flag", "a", "b", "c", "7", "filech2_0"))
}

func TestExecute_OtherCommandsExitOne(t *testing.T) {
	t.Setenv("DELTAKIT_MARKER_LENGTH", "abc")
	assert.Equal(t, 1, executeStatus(t, "info", "filech2_0"))
}
