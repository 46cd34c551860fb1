package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

func (s *SQLiteStore) Prune(ctx context.Context, p PruneParams) (int, error) {
	var res sql.Result
	var err error
	if !p.Before.IsZero() {
		res, err = s.db.ExecContext(ctx,
			`DELETE FROM merges WHERE created_at < ?`, p.Before.UTC().Format(timeFormat))
	} else {
		if p.Keep < 0 {
			return 0, fmt.Errorf("keep must not be negative, got %d", p.Keep)
		}
		res, err = s.db.ExecContext(ctx,
			`DELETE FROM merges WHERE id NOT IN (
				SELECT id FROM merges ORDER BY created_at DESC, id DESC LIMIT ?
			)`, p.Keep)
	}
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// ParseAge parses an age like "30d", "12h", "45m" or "90s".
var ageRegex = regexp.MustCompile(`^(\d+)([dhms])$`)

func ParseAge(s string) (time.Duration, error) {
	m := ageRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid age %q (use e.g. 30d, 12h, 45m, 90s)", s)
	}
	n, _ := strconv.Atoi(m[1])
	switch m[2] {
	case "d":
		return time.Duration(n) * 24 * time.Hour, nil
	case "h":
		return time.Duration(n) * time.Hour, nil
	case "m":
		return time.Duration(n) * time.Minute, nil
	case "s":
		return time.Duration(n) * time.Second, nil
	}
	return 0, fmt.Errorf("unknown unit %q", m[2])
}
