package gamedata

// scr_iteminfo
var items = map[int]string{
	0: "---", 1: "Dark Candy", 2: "ReviveMint", 3: "Glowshard", 4: "Manual",
	5: "BrokenCake", 6: "TopCake", 7: "SpinCake", 8: "Darkburger", 9: "LancerCookie",
	10: "GigaSalad", 11: "Clubswich", 12: "HeartsDonut", 13: "ChocDiamond",
	14: "FavSandwich", 15: "RouxlsRoux", 16: "CD Bagel", 17: "Mannequin",
	18: "Kris Tea", 19: "Noelle Tea", 20: "Ralsei Tea", 21: "Susie Tea",
	22: "DD-Burger", 23: "LightCandy", 24: "ButJuice", 25: "SpagettiCode",
	26: "JavaCookie", 27: "TensionBit", 28: "TensionGem", 29: "TensionMax",
	30: "ReviveDust", 31: "ReviveBrite", 32: "S.POISON", 33: "DogDollar",
	34: "TVDinner", 35: "Pipis", 36: "FlatSoda", 37: "TVSlop", 38: "ExecBuffet",
	39: "DeluxeDinner", 60: "AncientSweet", 61: "Rhapsotea", 62: "Scarlixir",
	63: "BitterTear",
}

// scr_keyiteminfo
var keyItems = map[int]string{
	0: "---", 1: "Cell Phone", 2: "Egg", 3: "BrokenCake", 4: "Broken Key A",
	5: "Door Key", 6: "Broken Key B", 7: "Broken Key C", 8: "Lancer",
	9: "Rouxls Kaard", 10: "EmptyDisk", 11: "LoadedDisk", 12: "KeyGen",
	// Count comes from flags 1646-1649, up to the current chapter.
	13: "ShadowCrystal",
	14: "Starwalker", 15: "PureCrystal", 16: "OddController", 17: "BackstagePass",
	18: "TripTicket",
	19: "LancerCon", // count in flag 1099
	30: "SheetMusic", 31: "ClaimbClaws",
}

// scr_weaponinfo
var weapons = map[int]string{
	0: "---", 1: "Wood Blade", 2: "Mane Ax", 3: "Red Scarf", 4: "EverybodyWeapon",
	5: "Spookysword", 6: "Brave Ax", 7: "Devilsknife", 8: "Trefoil", 9: "Ragger",
	10: "DaintyScarf", 11: "TwistedSwd", 12: "SnowRing", 13: "ThornRing",
	14: "BounceBlade", 15: "CheerScarf", 16: "MechaSaber", 17: "AutoAxe",
	18: "FiberScarf", 19: "Ragger2", 20: "BrokenSwd", 21: "PuppetScarf",
	22: "FreezeRing", 23: "Saber10", 24: "ToxicAxe", 25: "FlexScarf",
	26: "BlackShard", 50: "JingleBlade", 51: "ScarfMark", 52: "JusticeAxe",
	53: "Winglade", 54: "AbsorbAx",
}

// scr_armorinfo
var armors = map[int]string{
	0: "---", 1: "Amber Card", 2: "Dice Brace", 3: "Pink Ribbon", 4: "White Ribbon",
	5: "IronShackle", 6: "MouseToken", 7: "Jevilstail", 8: "Silver Card",
	9: "TwinRibbon", 10: "GlowWrist", 11: "ChainMail", 12: "B.ShotBowtie",
	13: "SpikeBand", 14: "Silver Watch", 15: "TensionBow", 16: "Mannequin",
	17: "DarkGoldBand", 18: "SkyMantle", 19: "SpikeShackle", 20: "FrayedBowtie",
	21: "Dealmaker", 22: "RoyalPin", 23: "ShadowMantle", 24: "LodeStone",
	25: "GingerGuard", 26: "BlueRibbon", 27: "TennaTie", 50: "Waferguard",
	51: "MysticBand", 52: "PowerBand", 53: "PrincessRBN", 54: "GoldWidow",
}

// scr_litemname
var lightworldItems = map[int]string{
	0: "---", 1: "Hot Chocolate", 2: "Pencil", 3: "Bandage", 4: "Bouquet",
	5: "Ball of Junk", 6: "Halloween Pencil", 7: "Lucky Pencil", 8: "Egg",
	9: "Cards", 10: "Box of Heart Candy", 11: "Glass", 12: "Eraser",
	13: "Mech. Pencil", 14: "Wristwatch", 15: "Holiday Pencil", 16: "CactusNeedle",
	17: "BlackShard", 18: "QuillPen",
}

// scr_phonename
var phoneNumbers = map[int]string{
	201: "Call Home",     // sometimes "Call Toriel"
	202: "Sans's Number", // sometimes "Not Sans's Number"
}

// scr_spellinfo
var spells = map[int]string{
	0: "---", 1: "Rude Sword", 2: "Heal Prayer", 3: "Pacify", 4: "Rude Buster",
	5: "Red Buster", 6: "Dual Heal", 7: "ACT", 8: "Sleep Mist", 9: "Ice Shock",
	10: "SnowGrave",
	// UltimateHeal, UltraHeal, Heal, OKHeal or BetterHeal depending on chapter and flags.
	11: "* Heal",
}

var partyMembers = map[int]string{
	1: "Kris", 2: "Susie", 3: "Ralsei", 4: "Noelle",
}
