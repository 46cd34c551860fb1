package merge

import (
	"errors"
	"fmt"

	"github.com/rcliao/deltakit/internal/gamedata"
	"github.com/rcliao/deltakit/internal/save"
)

// ErrChapterMismatch is returned when the saves do not share a layout or
// theirs or the ancestor is from a later chapter than ours.
var ErrChapterMismatch = errors.New("chapter mismatch")

// Options tunes Savefiles.
type Options struct {
	// Reporter receives diagnostics as they happen. They are also collected
	// on the returned Merged.
	Reporter Reporter

	// LegacyArmorSource reconciles armors against theirs' weapon list and
	// appends theirs' re-equipped armors to ours, as the first releases of
	// the driver did. By default armors are reconciled against theirs'
	// armors.
	LegacyArmorSource bool
}

// Merged is the line by line outcome of a merge.
type Merged struct {
	Chapter     int
	Lines       []Result[string]
	Diagnostics []Diagnostic
}

// Conflicts returns the number of unresolved lines.
func (m *Merged) Conflicts() int {
	n := 0
	for _, l := range m.Lines {
		if l.IsConflict() {
			n++
		}
	}
	return n
}

// HasConflicts reports whether any line is unresolved.
func (m *Merged) HasConflicts() bool {
	for _, l := range m.Lines {
		if l.IsConflict() {
			return true
		}
	}
	return false
}

// RenderLines renders each result, conflicts included.
func (m *Merged) RenderLines(markerLength int) []string {
	out := make([]string, len(m.Lines))
	for i, l := range m.Lines {
		out[i] = l.MergeString(markerLength)
	}
	return out
}

// Render returns the merged save file content.
func (m *Merged) Render(markerLength int) string {
	return save.JoinLines(m.RenderLines(markerLength))
}

// Savefiles merges theirs into ours. ancestor may be nil, which selects
// two-way mode. The output has exactly one result per line of a save of
// ours' chapter, in file order.
func Savefiles(ours, theirs, ancestor *save.SaveData, opts Options) (*Merged, error) {
	schema := ours.Schema()
	if err := checkChapter(schema, theirs, "theirs"); err != nil {
		return nil, err
	}
	if ancestor != nil {
		if err := checkChapter(schema, ancestor, "ancestor"); err != nil {
			return nil, err
		}
	}

	m := &merger{
		ours:        ours,
		theirs:      theirs,
		anc:         ancestor,
		hasAncestor: ancestor != nil,
		schema:      schema,
		opts:        opts,
		out:         make([]Result[string], 0, schema.Lines),
	}
	if ancestor == nil {
		// Only read through ancestorOf, which yields nil in two-way mode.
		m.anc = ours
	}

	m.run()

	if len(m.out) != schema.Lines {
		panic(fmt.Sprintf("merge: produced %d lines for chapter %d, want %d",
			len(m.out), schema.Chapter, schema.Lines))
	}
	return &Merged{Chapter: ours.Chapter, Lines: m.out, Diagnostics: m.diags}, nil
}

func checkChapter(schema save.ChapterSchema, other *save.SaveData, side string) error {
	if other.Chapter > schema.Chapter || !sameLayout(schema, other.Schema()) {
		return fmt.Errorf("%w: ours is chapter %d, %s is chapter %d",
			ErrChapterMismatch, schema.Chapter, side, other.Chapter)
	}
	return nil
}

func sameLayout(a, b save.ChapterSchema) bool {
	a.Chapter, b.Chapter = 0, 0
	return a == b
}

type merger struct {
	ours, theirs, anc *save.SaveData
	hasAncestor       bool
	schema            save.ChapterSchema
	opts              Options
	out               []Result[string]
	diags             []Diagnostic
}

func (m *merger) Report(d Diagnostic) {
	m.diags = append(m.diags, d)
	report(m.opts.Reporter, d)
}

// ancestorOf returns a pointer to v in three-way mode and nil otherwise.
func ancestorOf[T any](m *merger, v T) *T {
	if !m.hasAncestor {
		return nil
	}
	return &v
}

func (m *merger) push(r Result[string]) {
	m.out = append(m.out, r)
}

func (m *merger) carry(s string) {
	m.push(Resolved(s))
}

func (m *merger) carryInts(vs ...int) {
	for _, v := range vs {
		m.carry(save.FormatInt(v))
	}
}

func (m *merger) simpleInt(o, t, a int) {
	m.push(Map(Simple(o, t, ancestorOf(m, a)), save.FormatInt[int]))
}

func (m *merger) simpleFloat(o, t, a float32) {
	m.push(Map(Simple(o, t, ancestorOf(m, a)), save.FormatFloat))
}

func (m *merger) run() {
	o, t, a := m.ours, m.theirs, m.anc

	m.carry(o.TrueName)
	for _, name := range o.VesselNames {
		m.carry(name)
	}
	m.carryInts(o.Party[:]...)

	m.push(Map(Values("dark dollars", o.DarkDollars, t.DarkDollars, ancestorOf(m, a.DarkDollars),
		Floor(0), m), save.FormatInt[int]))
	m.push(Map(Max(o.XP, t.XP), save.FormatInt[int]))
	m.push(Map(Max(o.Level, t.Level), save.FormatInt[int]))

	// Invincibility frames are transient.
	m.carryInts(o.Inv, o.InvC)
	m.carry(save.FormatBool(o.IsDarkworld))

	for i := 0; i < m.schema.StatBlocks; i++ {
		m.stats(&o.Stats[i], &t.Stats[i], &a.Stats[i])
	}

	m.simpleInt(o.BoltSpeed, t.BoltSpeed, a.BoltSpeed)
	m.simpleInt(o.GrazeAmount, t.GrazeAmount, a.GrazeAmount)
	m.simpleInt(o.GrazeSize, t.GrazeSize, a.GrazeSize)

	m.inventories()

	m.simpleFloat(o.Tension, t.Tension, a.Tension)
	m.simpleFloat(o.MaxTension, t.MaxTension, a.MaxTension)

	m.lightworld(&o.Lightworld, &t.Lightworld, &a.Lightworld)
	m.lightworldItems()

	for i := range o.Flags {
		if m.hasAncestor {
			m.simpleFloat(o.Flags[i], t.Flags[i], a.Flags[i])
		} else {
			m.push(Map(Max(o.Flags[i], t.Flags[i]), save.FormatFloat))
		}
	}
	for i := 0; i < m.schema.FlagPadding; i++ {
		m.carry("0")
	}

	m.carryInts(o.PlotValue, o.RoomID)
	if m.hasAncestor {
		m.push(Map(Values("time played", o.Frames(), t.Frames(), ancestorOf(m, a.Frames()),
			Bounds[int64]{}, m), save.FormatInt[int64]))
	} else {
		m.push(Map(Max(o.Frames(), t.Frames()), save.FormatInt[int64]))
	}
}

func (m *merger) stats(o, t, a *save.CharacterStats) {
	// HP is restored to the merged max HP.
	maxHP := Map(Simple(o.MaxHP, t.MaxHP, ancestorOf(m, a.MaxHP)), save.FormatInt[int])
	m.push(maxHP)
	m.push(maxHP)

	m.simpleInt(o.Attack, t.Attack, a.Attack)
	m.simpleInt(o.Defense, t.Defense, a.Defense)
	m.simpleInt(o.Magic, t.Magic, a.Magic)
	m.simpleInt(o.Guts, t.Guts, a.Guts)

	m.carryInts(o.Weapon, o.Armor1, o.Armor2)
	m.carry(o.WeaponStyle)

	for _, it := range o.ItemStats {
		m.carryInts(it.Attack, it.Defense, it.Magic, it.Bolts, it.GrazeAmount, it.GrazeSize,
			it.BoltsSpeed, it.ItemSpecial)
		if m.schema.ElementStats {
			m.carryInts(it.ItemElement)
			m.carry(save.FormatFloat(it.ItemElementAmount))
		}
	}

	for i := range o.Spells {
		m.push(Map(Same(o.Spells[i], t.Spells[i], ancestorOf(m, a.Spells[i])), save.FormatInt[int]))
	}
}

func (m *merger) lightworld(o, t, a *save.LightworldStats) {
	m.simpleInt(o.Weapon, t.Weapon, a.Weapon)
	m.simpleInt(o.Armor, t.Armor, a.Armor)
	m.simpleInt(o.XP, t.XP, a.XP)
	m.simpleInt(o.LV, t.LV, a.LV)
	m.simpleInt(o.Gold, t.Gold, a.Gold)
	m.simpleInt(o.HP, t.HP, a.HP)
	m.simpleInt(o.MaxHP, t.MaxHP, a.MaxHP)
	m.simpleInt(o.Attack, t.Attack, a.Attack)
	m.simpleInt(o.Defense, t.Defense, a.Defense)
	m.simpleInt(o.WStrength, t.WStrength, a.WStrength)
	m.simpleInt(o.ADef, t.ADef, a.ADef)
}

// mergedSlots are the dark world slot arrays after reconciliation.
type mergedSlots struct {
	// items is the first 12 inventory slots followed by the storage.
	items    []int
	keyItems []int
	weapons  []int
	armors   []int
}

// reconcileSlots runs inventory reconciliation over the dark world slots.
// The last inventory slot is not reconciled and is taken from ours.
func (m *merger) reconcileSlots() mergedSlots {
	o, t := m.ours, m.theirs
	last := save.InventorySlots - 1

	items := append(append([]int(nil), o.Inventory[:last]...), o.Storage...)
	theirItems := append(append([]int(nil), t.Inventory[:last]...), t.Storage...)
	keyItems := append([]int(nil), o.KeyItems[:]...)

	// Equipment theirs swapped in is counted as held by theirs.
	weapons := append([]int(nil), o.Weapons...)
	theirWeapons := append([]int(nil), t.Weapons...)
	for i, st := range t.Stats {
		if st.Weapon != o.Stats[i].Weapon {
			theirWeapons = append(theirWeapons, st.Weapon)
		}
	}

	armors := append([]int(nil), o.Armors...)
	theirArmors := append([]int(nil), t.Armors...)
	var swappedArmors []int
	for i, st := range t.Stats {
		if st.Armor1 != o.Stats[i].Armor1 {
			swappedArmors = append(swappedArmors, st.Armor1)
		}
		if st.Armor2 != o.Stats[i].Armor2 {
			swappedArmors = append(swappedArmors, st.Armor2)
		}
	}
	armorSource := theirArmors
	if m.opts.LegacyArmorSource {
		armors = append(armors, swappedArmors...)
		armorSource = theirWeapons
	} else {
		armorSource = append(armorSource, swappedArmors...)
	}

	Inventories(items, theirItems, string(gamedata.KindItem), gamedata.Displayer(gamedata.KindItem), m)
	Inventories(keyItems, t.KeyItems[:], string(gamedata.KindKeyItem), gamedata.Displayer(gamedata.KindKeyItem), m)
	Inventories(weapons, theirWeapons, string(gamedata.KindWeapon), gamedata.Displayer(gamedata.KindWeapon), m)
	Inventories(armors, armorSource, string(gamedata.KindArmor), gamedata.Displayer(gamedata.KindArmor), m)

	return mergedSlots{items: items, keyItems: keyItems, weapons: weapons, armors: armors}
}

func (m *merger) inventories() {
	s := m.reconcileSlots()
	last := save.InventorySlots - 1

	for i := 0; i < save.InventorySlots; i++ {
		if i < last {
			m.carryInts(s.items[i])
		} else {
			m.carryInts(m.ours.Inventory[last])
		}
		m.carryInts(s.keyItems[i])
		if m.schema.InlineEquipment {
			m.carryInts(s.weapons[i], s.armors[i])
		}
	}
	if m.schema.InlineEquipment {
		return
	}
	for i := 0; i < m.schema.Weapons; i++ {
		m.carryInts(s.weapons[i], s.armors[i])
	}
	m.carryInts(s.items[last:]...)
}

func (m *merger) lightworldItems() {
	items := m.ours.LightworldItems
	phone := m.ours.LightworldPhone
	Inventories(items[:], m.theirs.LightworldItems[:], string(gamedata.KindLightworldItem),
		gamedata.Displayer(gamedata.KindLightworldItem), m)
	Inventories(phone[:], m.theirs.LightworldPhone[:], string(gamedata.KindPhoneNumber),
		gamedata.Displayer(gamedata.KindPhoneNumber), m)

	for i := range items {
		m.carryInts(items[i], phone[i])
	}
}
