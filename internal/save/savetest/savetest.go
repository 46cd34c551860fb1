// Package savetest builds synthetic saves for tests.
package savetest

import (
	"fmt"
	"time"

	"github.com/rcliao/deltakit/internal/save"
)

// New returns a populated save for the given chapter. Every field holds a
// distinct non-trivial value so that misplaced lines show up in diffs.
func New(chapter int) *save.SaveData {
	schema := save.SchemaFor(chapter)
	s := &save.SaveData{
		Chapter:     chapter,
		TrueName:    "KRIS",
		VesselNames: [6]string{"Vessel", "A", "B", "C", "D", "E"},
		Party:       [3]int{1, 2, 3},
		DarkDollars: 250,
		XP:          120,
		Level:       3,
		Inv:         7,
		InvC:        1,
		IsDarkworld: true,
		BoltSpeed:   4,
		GrazeAmount: 5,
		GrazeSize:   6,
		Tension:     12.5,
		MaxTension:  250,
		Lightworld: save.LightworldStats{
			Weapon: 2, Armor: 3, XP: 10, LV: 1, Gold: 2, HP: 20, MaxHP: 20,
			Attack: 10, Defense: 10, WStrength: 1, ADef: 1,
		},
		PlotValue:  90,
		RoomID:     chapter*10000 + 42,
		TimePlayed: save.FramesToDuration(108123),
	}

	s.Stats = make([]save.CharacterStats, schema.StatBlocks)
	for i := range s.Stats {
		c := &s.Stats[i]
		c.HP = 100 + i
		c.MaxHP = 100 + i
		c.Attack = 10 + i
		c.Defense = 2 + i
		c.Magic = i
		c.Guts = 1
		c.Weapon = 1 + i
		c.Armor1 = 2 + i
		c.Armor2 = 0
		c.WeaponStyle = fmt.Sprintf("style%d", i)
		for j := range c.ItemStats {
			c.ItemStats[j] = save.ItemStats{Attack: j, Defense: 1, Magic: 2, Bolts: 3,
				GrazeAmount: 4, GrazeSize: 5, BoltsSpeed: 6, ItemSpecial: 7}
			if schema.ElementStats {
				c.ItemStats[j].ItemElement = 2
				c.ItemStats[j].ItemElementAmount = 0.25
			}
		}
		c.Spells[0] = 1 + i
		c.Spells[1] = 7
	}

	s.Inventory = [save.InventorySlots]int{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	s.KeyItems = [save.KeyItemSlots]int{1, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	s.Weapons = make([]int, schema.Weapons)
	s.Armors = make([]int, schema.Weapons)
	s.Weapons[0], s.Weapons[1] = 3, 5
	s.Armors[0] = 4
	if schema.HasStorage() {
		s.Storage = make([]int, schema.StorageSlots)
		s.Storage[0] = 9
	}
	s.LightworldItems = [save.LightworldSlots]int{1, 2, 0, 0, 0, 0, 0, 0}
	s.LightworldPhone = [save.LightworldSlots]int{201, 202, 0, 0, 0, 0, 0, 0}
	for i := range s.Flags {
		s.Flags[i] = float32(i % 3)
	}
	s.Flags[7] = 0.5
	return s
}

// Lines returns the encoded lines of New(chapter).
func Lines(chapter int) []string {
	return save.Encode(New(chapter))
}

// Clone returns a deep copy of s.
func Clone(s *save.SaveData) *save.SaveData {
	c := *s
	c.Stats = append([]save.CharacterStats(nil), s.Stats...)
	c.Weapons = append([]int(nil), s.Weapons...)
	c.Armors = append([]int(nil), s.Armors...)
	if s.Storage != nil {
		c.Storage = append([]int(nil), s.Storage...)
	}
	return &c
}

// PlayTime is a convenience for building durations from whole seconds.
func PlayTime(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
