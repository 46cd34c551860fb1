package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/deltakit/internal/gamedata"
	"github.com/rcliao/deltakit/internal/save"
)

var (
	errNoSaveChanged        = errors.New("no save file modified")
	errMultipleSavesChanged = errors.New("multiple save files modified")
)

func init() {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit the changed save file",
		Long: `Stage everything and commit, describing the one save file that changed.

The message ends with the save's room and play time. Custom messages come
first: the first one is followed by a blank line, the rest one per line.`,
		Args: cobra.NoArgs,
		Run:  runCommit,
	}

	cmd.Flags().StringArrayP("message", "m", nil, "Commit message line (repeatable)")
	cmd.Flags().StringP("room", "r", "", "Room name for the message (default: from the save)")

	RootCmd.AddCommand(cmd)
}

func runCommit(cmd *cobra.Command, args []string) {
	messages, _ := cmd.Flags().GetStringArray("message")
	room, _ := cmd.Flags().GetString("room")
	ctx := cmd.Context()

	status, err := git(ctx, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		exitErr("git status", err)
	}

	path, chapter, err := changedSave(status)
	if err != nil {
		exitErr("find save", err)
	}

	s, err := decodeFile(path, chapter, false)
	if err != nil {
		exitErr("read save", err)
	}
	if room == "" {
		room = gamedata.DisplayRoom(s.RoomID)
	}
	message := commitMessage(messages, room, s.TimePlayed)

	if _, err := git(ctx, "add", "."); err != nil {
		exitErr("git add", err)
	}
	if _, err := git(ctx, "commit", "-m", message); err != nil {
		exitErr("git commit", err)
	}

	logger.Info("committed",
		zap.String("save", path),
		zap.String("room", room),
		zap.String("played", save.FormatPlayTime(s.TimePlayed)))
}

func git(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// changedSave picks the single modified or new save file out of
// `git status --porcelain` output.
func changedSave(status string) (string, int, error) {
	var path string
	var chapter, found int

	sc := bufio.NewScanner(strings.NewReader(status))
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 4 {
			continue
		}
		code, name := line[:2], line[3:]
		if strings.Contains(code, "D") {
			continue
		}
		if i := strings.Index(name, " -> "); i >= 0 {
			name = name[i+len(" -> "):]
		}
		if unquoted, err := strconv.Unquote(name); err == nil {
			name = unquoted
		}

		c, _ := save.ParseFilename(name)
		if c == 0 {
			continue
		}
		path, chapter = name, c
		found++
	}

	switch {
	case found == 0:
		return "", 0, errNoSaveChanged
	case found > 1:
		return "", 0, errMultipleSavesChanged
	}
	return path, chapter, nil
}

// commitMessage builds `"<room>" - <play time>` preceded by the custom
// messages.
func commitMessage(messages []string, room string, played time.Duration) string {
	var b strings.Builder
	for i, m := range messages {
		b.WriteString(m)
		b.WriteString("\n")
		if i == 0 {
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "\"%s\" - %s", room, save.FormatPlayTime(played))
	return b.String()
}
