package quiz

// Level is a named proficiency band derived from a correct-answer count.
type Level string

const (
	LevelStarter          Level = "STARTER"
	LevelBeginner1        Level = "BEGINNER 1"
	LevelBeginner2        Level = "BEGINNER 2"
	LevelElementary1      Level = "ELEMENTARY 1"
	LevelElementary2      Level = "ELEMENTARY 2"
	LevelPreIntermediate1 Level = "PRE-INTERMEDIATE 1"
	LevelPreIntermediate2 Level = "PRE-INTERMEDIATE 2"
	LevelIntermediate1    Level = "INTERMEDIATE 1"
	LevelIntermediate2    Level = "INTERMEDIATE 2"
	LevelUpperInter1      Level = "UPPER-INTERMEDIATE 1"
	LevelUpperInter2      Level = "UPPER-INTERMEDIATE 2"
	LevelAdvanced1        Level = "ADVANCED 1"
	LevelAdvanced2        Level = "ADVANCED 2"
	LevelMaster1          Level = "MASTER 1"
	LevelMaster2          Level = "MASTER 2"
)

// levelBands maps exclusive upper bounds of the correct-answer count to
// bands, in ascending order. Counts of 19 and above are MASTER 2. The
// boundaries are fixed business constants.
var levelBands = []struct {
	below int
	level Level
}{
	{2, LevelStarter},
	{3, LevelBeginner1},
	{5, LevelBeginner2},
	{7, LevelElementary1},
	{10, LevelElementary2},
	{11, LevelPreIntermediate1},
	{12, LevelPreIntermediate2},
	{13, LevelIntermediate1},
	{14, LevelIntermediate2},
	{15, LevelUpperInter1},
	{16, LevelUpperInter2},
	{17, LevelAdvanced1},
	{18, LevelAdvanced2},
	{19, LevelMaster1},
}

// LevelForScore maps a correct-answer count to its proficiency band.
func LevelForScore(correct int) Level {
	for _, band := range levelBands {
		if correct < band.below {
			return band.level
		}
	}
	return LevelMaster2
}
