package save

import (
	"regexp"
	"strconv"
	"strings"
)

var filenameRegex = regexp.MustCompile(`^filech(\d)_(\d)$`)

// ParseFilename extracts the chapter and slot from a save file name such as
// "saves/filech2_0". Names that do not follow the convention yield (0, 0).
func ParseFilename(path string) (chapter, slot int) {
	name := path
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		name = path[i+1:]
	}
	m := filenameRegex.FindStringSubmatch(name)
	if m == nil {
		return 0, 0
	}
	chapter, _ = strconv.Atoi(m[1])
	slot, _ = strconv.Atoi(m[2])
	return chapter, slot
}
