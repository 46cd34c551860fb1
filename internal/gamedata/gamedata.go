// Package gamedata maps the numeric identifiers stored in saves to names.
// Tables were extracted from the game's scr_*info scripts.
package gamedata

import "fmt"

// Kind identifies one of the identifier namespaces.
type Kind string

const (
	KindItem           Kind = "item"
	KindKeyItem        Kind = "key item"
	KindWeapon         Kind = "weapon"
	KindArmor          Kind = "armor"
	KindLightworldItem Kind = "lightworld item"
	KindPhoneNumber    Kind = "phone number"
	KindSpell          Kind = "spell"
	KindPartyMember    Kind = "party member"
)

var tables = map[Kind]map[int]string{
	KindItem:           items,
	KindKeyItem:        keyItems,
	KindWeapon:         weapons,
	KindArmor:          armors,
	KindLightworldItem: lightworldItems,
	KindPhoneNumber:    phoneNumbers,
	KindSpell:          spells,
	KindPartyMember:    partyMembers,
}

var fallbacks = map[Kind]string{
	KindItem:           "Item %d",
	KindKeyItem:        "Key Item %d",
	KindWeapon:         "Weapon %d",
	KindArmor:          "Armor %d",
	KindLightworldItem: "LW Item %d",
	KindPhoneNumber:    "Phone #%d",
	KindSpell:          "Spell %d",
	KindPartyMember:    "Member %d",
}

// Lookup returns the known name for id, if any.
func Lookup(kind Kind, id int) (string, bool) {
	name, ok := tables[kind][id]
	return name, ok
}

// Display returns the name for id, or a generic label for unknown ids.
func Display(kind Kind, id int) string {
	if name, ok := Lookup(kind, id); ok {
		return name
	}
	if f, ok := fallbacks[kind]; ok {
		return fmt.Sprintf(f, id)
	}
	return fmt.Sprintf("%s %d", kind, id)
}

// Displayer returns Display bound to kind.
func Displayer(kind Kind) func(int) string {
	return func(id int) string { return Display(kind, id) }
}

// DisplayRoom renders a room identifier. Room ids encode the chapter in the
// ten-thousands and the room index below that.
func DisplayRoom(roomID int) string {
	return fmt.Sprintf("Room %d:%d", roomID/10000, roomID%10000)
}
