package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rcliao/deltakit/internal/save"
)

var errUnknownChapter = errors.New("cannot determine chapter (expected a filech<chapter>_<slot> name)")

// resolveChapter returns chapter if set, otherwise the chapter encoded in
// name.
func resolveChapter(name string, chapter int, log *zap.Logger) (int, int, error) {
	fileChapter, slot := save.ParseFilename(name)
	if chapter == 0 {
		chapter = fileChapter
	}
	if chapter == 0 {
		return 0, 0, fmt.Errorf("%s: %w", name, errUnknownChapter)
	}
	if chapter > save.LatestChapter {
		log.Warn("chapter is newer than the latest known layout",
			zap.Int("chapter", chapter), zap.Int("assuming", save.LatestChapter))
	}
	return chapter, slot, nil
}

// readSave reads and decodes the save at path. A zero chapter is taken from
// the file name.
func readSave(path string, chapter int) (*save.SaveData, error) {
	chapter, _, err := resolveChapter(path, chapter, logger)
	if err != nil {
		return nil, err
	}
	return decodeFile(path, chapter, false)
}

// decodeFile decodes the save at path. With optional, a missing or blank
// file yields a nil save.
func decodeFile(path string, chapter int, optional bool) (*save.SaveData, error) {
	if optional && path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if optional && errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if optional && strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	s, err := save.Decode(chapter, save.SplitLines(string(data)))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}
