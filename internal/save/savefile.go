// Package save decodes the line-oriented save file format.
package save

import (
	"fmt"
	"time"
)

// SaveData is a fully decoded save file. Slice lengths are fixed by the
// chapter schema and must not be changed after Decode returns.
type SaveData struct {
	Chapter     int
	TrueName    string
	VesselNames [6]string
	Party       [3]int
	DarkDollars int
	XP          int
	Level       int
	// Invincibility frame counters.
	Inv  int
	InvC int

	IsDarkworld bool
	Stats       []CharacterStats

	BoltSpeed   int
	GrazeAmount int
	GrazeSize   int

	Inventory [InventorySlots]int
	KeyItems  [KeyItemSlots]int
	Weapons   []int
	Armors    []int
	// Storage is nil for chapter 1.
	Storage []int

	Tension    float32
	MaxTension float32

	Lightworld      LightworldStats
	LightworldItems [LightworldSlots]int
	LightworldPhone [LightworldSlots]int

	Flags      [FlagCount]float32
	PlotValue  int
	RoomID     int
	TimePlayed time.Duration
}

// CharacterStats is the per party member stats block.
type CharacterStats struct {
	HP      int
	MaxHP   int
	Attack  int
	Defense int
	Magic   int
	Guts    int

	Weapon      int
	Armor1      int
	Armor2      int
	WeaponStyle string

	ItemStats [ItemStatBlocks]ItemStats
	Spells    [SpellSlots]int
}

// ItemStats is the bonus contributed by one equipment slot. The element
// fields are only stored from chapter 2 on and are zero otherwise.
type ItemStats struct {
	Attack            int
	Defense           int
	Magic             int
	Bolts             int
	GrazeAmount       int
	GrazeSize         int
	BoltsSpeed        int
	ItemSpecial       int
	ItemElement       int
	ItemElementAmount float32
}

// LightworldStats holds the light world counterpart of the party stats.
type LightworldStats struct {
	Weapon    int
	Armor     int
	XP        int
	LV        int
	Gold      int
	HP        int
	MaxHP     int
	Attack    int
	Defense   int
	WStrength int
	ADef      int
}

// Schema returns the layout the save was decoded with.
func (s *SaveData) Schema() ChapterSchema {
	return SchemaFor(s.Chapter)
}

// Frames returns the play time as a frame count.
func (s *SaveData) Frames() int64 {
	return DurationToFrames(s.TimePlayed)
}

// FramesToDuration converts a stored frame count to a duration.
func FramesToDuration(frames float64) time.Duration {
	return time.Duration(frames / framesPerSecond * float64(time.Second))
}

// DurationToFrames converts a duration back to the nearest frame count.
func DurationToFrames(d time.Duration) int64 {
	return (int64(d)*framesPerSecond + int64(time.Second)/2) / int64(time.Second)
}

// Decode builds a SaveData from the lines of a save file. The chapter comes
// from outside the file, usually from its name.
func Decode(chapter int, lines []string) (*SaveData, error) {
	if chapter < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChapter, chapter)
	}

	schema := SchemaFor(chapter)
	p := NewParser(chapter, lines)
	d := &decoder{p: p, schema: schema}

	s, err := d.decode()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEnd(); err != nil {
		return nil, err
	}
	return s, nil
}

type decoder struct {
	p      *Parser
	schema ChapterSchema
}

func (d *decoder) decode() (*SaveData, error) {
	p := d.p
	s := &SaveData{Chapter: d.schema.Chapter}

	var err error
	if s.TrueName, err = p.NextLine(); err != nil {
		return nil, err
	}
	for i := range s.VesselNames {
		if s.VesselNames[i], err = p.NextLine(); err != nil {
			return nil, err
		}
	}
	if err := p.fillInts(s.Party[:]); err != nil {
		return nil, err
	}

	ints := []*int{&s.DarkDollars, &s.XP, &s.Level, &s.Inv, &s.InvC}
	if err := d.readInts(ints...); err != nil {
		return nil, err
	}
	if s.IsDarkworld, err = p.NextBool(); err != nil {
		return nil, err
	}

	s.Stats = make([]CharacterStats, d.schema.StatBlocks)
	for i := range s.Stats {
		if err := d.readStats(&s.Stats[i]); err != nil {
			return nil, err
		}
	}

	if err := d.readInts(&s.BoltSpeed, &s.GrazeAmount, &s.GrazeSize); err != nil {
		return nil, err
	}

	if err := d.readInventories(s); err != nil {
		return nil, err
	}

	if s.Tension, err = p.NextFloat(); err != nil {
		return nil, err
	}
	if s.MaxTension, err = p.NextFloat(); err != nil {
		return nil, err
	}

	lw := &s.Lightworld
	if err := d.readInts(&lw.Weapon, &lw.Armor, &lw.XP, &lw.LV, &lw.Gold, &lw.HP,
		&lw.MaxHP, &lw.Attack, &lw.Defense, &lw.WStrength, &lw.ADef); err != nil {
		return nil, err
	}
	for i := 0; i < LightworldSlots; i++ {
		if err := d.readInts(&s.LightworldItems[i], &s.LightworldPhone[i]); err != nil {
			return nil, err
		}
	}

	if err := p.fillFloats(s.Flags[:]); err != nil {
		return nil, err
	}
	// The padding is expected to be all zeroes and is not kept.
	for i := 0; i < d.schema.FlagPadding; i++ {
		if _, err := p.NextInt(); err != nil {
			return nil, err
		}
	}

	if err := d.readInts(&s.PlotValue, &s.RoomID); err != nil {
		return nil, err
	}
	frames, err := p.NextFloat()
	if err != nil {
		return nil, err
	}
	s.TimePlayed = FramesToDuration(float64(frames))

	return s, nil
}

func (d *decoder) readInts(dst ...*int) error {
	for _, v := range dst {
		n, err := d.p.NextInt()
		if err != nil {
			return err
		}
		*v = n
	}
	return nil
}

func (d *decoder) readStats(c *CharacterStats) error {
	if err := d.readInts(&c.HP, &c.MaxHP, &c.Attack, &c.Defense, &c.Magic, &c.Guts,
		&c.Weapon, &c.Armor1, &c.Armor2); err != nil {
		return err
	}
	style, err := d.p.NextLine()
	if err != nil {
		return err
	}
	c.WeaponStyle = style

	for i := range c.ItemStats {
		if err := d.readItemStats(&c.ItemStats[i]); err != nil {
			return err
		}
	}
	return d.p.fillInts(c.Spells[:])
}

func (d *decoder) readItemStats(it *ItemStats) error {
	if err := d.readInts(&it.Attack, &it.Defense, &it.Magic, &it.Bolts, &it.GrazeAmount,
		&it.GrazeSize, &it.BoltsSpeed, &it.ItemSpecial); err != nil {
		return err
	}
	if !d.schema.ElementStats {
		return nil
	}
	if err := d.readInts(&it.ItemElement); err != nil {
		return err
	}
	amount, err := d.p.NextFloat()
	if err != nil {
		return err
	}
	it.ItemElementAmount = amount
	return nil
}

func (d *decoder) readInventories(s *SaveData) error {
	s.Weapons = make([]int, d.schema.Weapons)
	s.Armors = make([]int, d.schema.Weapons)

	for i := 0; i < InventorySlots; i++ {
		if err := d.readInts(&s.Inventory[i], &s.KeyItems[i]); err != nil {
			return err
		}
		if d.schema.InlineEquipment {
			if err := d.readInts(&s.Weapons[i], &s.Armors[i]); err != nil {
				return err
			}
		}
	}

	if d.schema.InlineEquipment {
		return nil
	}
	for i := range s.Weapons {
		if err := d.readInts(&s.Weapons[i], &s.Armors[i]); err != nil {
			return err
		}
	}
	if d.schema.HasStorage() {
		s.Storage = make([]int, d.schema.StorageSlots)
		if err := d.p.fillInts(s.Storage); err != nil {
			return err
		}
	}
	return nil
}
