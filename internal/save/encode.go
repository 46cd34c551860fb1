package save

// Encode renders s back into save file lines, in the order Decode reads them.
func Encode(s *SaveData) []string {
	schema := s.Schema()
	out := make([]string, 0, schema.Lines)
	ints := func(vs ...int) {
		for _, v := range vs {
			out = append(out, FormatInt(v))
		}
	}

	out = append(out, s.TrueName)
	out = append(out, s.VesselNames[:]...)
	ints(s.Party[:]...)
	ints(s.DarkDollars, s.XP, s.Level, s.Inv, s.InvC)
	out = append(out, FormatBool(s.IsDarkworld))

	for _, c := range s.Stats {
		ints(c.HP, c.MaxHP, c.Attack, c.Defense, c.Magic, c.Guts, c.Weapon, c.Armor1, c.Armor2)
		out = append(out, c.WeaponStyle)
		for _, it := range c.ItemStats {
			ints(it.Attack, it.Defense, it.Magic, it.Bolts, it.GrazeAmount, it.GrazeSize,
				it.BoltsSpeed, it.ItemSpecial)
			if schema.ElementStats {
				ints(it.ItemElement)
				out = append(out, FormatFloat(it.ItemElementAmount))
			}
		}
		ints(c.Spells[:]...)
	}

	ints(s.BoltSpeed, s.GrazeAmount, s.GrazeSize)
	for i := 0; i < InventorySlots; i++ {
		ints(s.Inventory[i], s.KeyItems[i])
		if schema.InlineEquipment {
			ints(s.Weapons[i], s.Armors[i])
		}
	}
	if !schema.InlineEquipment {
		for i := range s.Weapons {
			ints(s.Weapons[i], s.Armors[i])
		}
		ints(s.Storage...)
	}

	out = append(out, FormatFloat(s.Tension), FormatFloat(s.MaxTension))
	lw := s.Lightworld
	ints(lw.Weapon, lw.Armor, lw.XP, lw.LV, lw.Gold, lw.HP, lw.MaxHP, lw.Attack, lw.Defense,
		lw.WStrength, lw.ADef)
	for i := 0; i < LightworldSlots; i++ {
		ints(s.LightworldItems[i], s.LightworldPhone[i])
	}

	for _, f := range s.Flags {
		out = append(out, FormatFloat(f))
	}
	for i := 0; i < schema.FlagPadding; i++ {
		out = append(out, "0")
	}
	ints(s.PlotValue, s.RoomID)
	out = append(out, FormatInt(s.Frames()))
	return out
}
