package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rcliao/deltakit/internal/save"
	"github.com/rcliao/deltakit/internal/save/savetest"
)

func executeRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		formatFlag = "text"
		logger = zap.NewNop()
	})
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestInfoCommand_Text(t *testing.T) {
	path := writeSave(t, filepath.Join(t.TempDir(), "filech2_0"), savetest.New(2))

	out := executeRoot(t, "info", path)

	assert.Contains(t, out, "Save for chapter 2\nKRIS | Vessel\nD$250 LV3\n")
	assert.Contains(t, out, "(Dark World)")
	assert.Contains(t, out, "Played for 1h00m04s")
}

func TestInfoCommand_JSON(t *testing.T) {
	path := writeSave(t, filepath.Join(t.TempDir(), "save.dat"), savetest.New(1))

	out := executeRoot(t, "info", path, "--chapter", "1", "--format", "json")

	var summary save.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 1, summary.Chapter)
	assert.Equal(t, "KRIS", summary.TrueName)
	assert.Equal(t, 250, summary.DarkDollars)
}

func TestReadSave_UnknownChapter(t *testing.T) {
	_, err := readSave(filepath.Join(t.TempDir(), "save.dat"), 0)
	assert.ErrorIs(t, err, errUnknownChapter)
}
