package save

// LatestChapter is the newest chapter whose layout is known. Later chapters
// are decoded with the chapter 2+ layout.
const LatestChapter = 4

const (
	InventorySlots      = 13
	KeyItemSlots        = 13
	SpellSlots          = 12
	ItemStatBlocks      = 4
	LightworldSlots     = 8
	FlagCount           = 2500
	legacyFlagCount     = 9999
	framesPerSecond     = 30
	chapterOneStats     = 4
	laterChapterStats   = 5
	storedEquipment     = 48
	storageSlots        = 72
	chapterOneLineCount = 10318
	laterLineCount      = 3055
)

// ChapterSchema describes the chapter-dependent parts of the save layout.
type ChapterSchema struct {
	Chapter int

	// StatBlocks is the number of party members with a stats block.
	StatBlocks int

	// ElementStats reports whether item stat blocks carry element fields.
	ElementStats bool

	// InlineEquipment means weapons and armors are interleaved with the
	// item and key-item slots, one of each per slot.
	InlineEquipment bool

	// Weapons is the length of the weapon list, and of the armor list.
	Weapons int

	// StorageSlots is the size of the extra item storage; 0 if absent.
	StorageSlots int

	// FlagPadding is the number of zero lines that follow the flags.
	FlagPadding int

	// Lines is the exact number of lines in a save for this chapter.
	Lines int
}

// SchemaFor returns the layout for the given chapter.
func SchemaFor(chapter int) ChapterSchema {
	if chapter == 1 {
		return ChapterSchema{
			Chapter:         1,
			StatBlocks:      chapterOneStats,
			InlineEquipment: true,
			Weapons:         InventorySlots,
			FlagPadding:     legacyFlagCount - FlagCount,
			Lines:           chapterOneLineCount,
		}
	}
	return ChapterSchema{
		Chapter:      chapter,
		StatBlocks:   laterChapterStats,
		ElementStats: true,
		Weapons:      storedEquipment,
		StorageSlots: storageSlots,
		Lines:        laterLineCount,
	}
}

// HasStorage reports whether saves of this chapter have the extra storage.
func (s ChapterSchema) HasStorage() bool {
	return s.StorageSlots > 0
}

// Supported reports whether the chapter layout is known rather than assumed.
func (s ChapterSchema) Supported() bool {
	return s.Chapter >= 1 && s.Chapter <= LatestChapter
}
