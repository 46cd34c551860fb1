package save

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/deltakit/internal/gamedata"
)

// Summary is the machine-readable overview of a save.
type Summary struct {
	Chapter     int      `json:"chapter"`
	TrueName    string   `json:"true_name"`
	VesselName  string   `json:"vessel_name"`
	DarkDollars int      `json:"dark_dollars"`
	Level       int      `json:"level"`
	PlotValue   int      `json:"plot_value"`
	Room        string   `json:"room"`
	RoomID      int      `json:"room_id"`
	Darkworld   bool     `json:"darkworld"`
	TimePlayed  string   `json:"time_played"`
	Party       []string `json:"party"`
	Items       []string `json:"items"`
	KeyItems    []string `json:"key_items"`
}

// Summary returns the overview reported by the info command.
func (s *SaveData) Summary() Summary {
	var party []string
	for _, id := range s.Party {
		if name, ok := gamedata.Lookup(gamedata.KindPartyMember, id); ok {
			party = append(party, name)
		}
	}
	return Summary{
		Chapter:     s.Chapter,
		TrueName:    s.TrueName,
		VesselName:  s.VesselNames[0],
		DarkDollars: s.DarkDollars,
		Level:       s.Level,
		PlotValue:   s.PlotValue,
		Room:        gamedata.DisplayRoom(s.RoomID),
		RoomID:      s.RoomID,
		Darkworld:   s.IsDarkworld,
		TimePlayed:  FormatPlayTime(s.TimePlayed),
		Party:       party,
		Items:       names(s.Inventory[:], gamedata.KindItem),
		KeyItems:    names(s.KeyItems[:], gamedata.KindKeyItem),
	}
}

// Info renders a human readable report of the save.
func (s *SaveData) Info() string {
	world := " (Light World)"
	if s.IsDarkworld {
		world = " (Dark World)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Save for chapter %d\n", s.Chapter)
	fmt.Fprintf(&b, "%s | %s\n", s.TrueName, s.VesselNames[0])
	fmt.Fprintf(&b, "D$%d LV%d\n", s.DarkDollars, s.Level)
	fmt.Fprintf(&b, "Plot value %d\n", s.PlotValue)
	fmt.Fprintf(&b, "%s%s\n", gamedata.DisplayRoom(s.RoomID), world)
	fmt.Fprintf(&b, "Played for %s\n", FormatPlayTime(s.TimePlayed))
	b.WriteString(inventoryTable("Items", names(s.Inventory[:], gamedata.KindItem)))
	b.WriteString(inventoryTable("Keys", names(s.KeyItems[:], gamedata.KindKeyItem)))
	return b.String()
}

// FormatPlayTime renders a play time as 1h02m03s.
func FormatPlayTime(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%dh%02dm%02ds", secs/3600, (secs%3600)/60, secs%60)
}

func names(ids []int, kind gamedata.Kind) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = gamedata.Display(kind, id)
	}
	return out
}

// inventoryTable lays names out four per row in 13-wide columns.
func inventoryTable(title string, names []string) string {
	var rows []string
	for start := 0; start < len(names); start += 4 {
		end := min(start+4, len(names))
		cells := make([]string, 0, 4)
		for _, n := range names[start:end] {
			cells = append(cells, fmt.Sprintf("%-13s", n))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return fmt.Sprintf("---------------\n%s:\n%s\n", title, strings.Join(rows, "\n"))
}
