package labeling

import "fmt"

// Mode decides what happens on disk when a label is assigned.
type Mode string

const (
	ModeCSV  Mode = "csv"
	ModeCopy Mode = "copy"
	ModeMove Mode = "move"
)

// DefaultMode is preselected on the setup screen.
const DefaultMode = ModeMove

// Modes lists every mode in the order the setup screen offers them.
var Modes = []Mode{ModeCSV, ModeCopy, ModeMove}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCSV, ModeCopy, ModeMove:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want csv, copy or move)", s)
	}
}

// UsesLabelFolders reports whether the mode mirrors assignments into
// per-label subfolders.
func (m Mode) UsesLabelFolders() bool {
	return m == ModeCopy || m == ModeMove
}

func (m Mode) Description() string {
	switch m {
	case ModeCSV:
		return "csv (Images in selected folder are labeled and then csv file with assigned labels is generated.)"
	case ModeCopy:
		return "copy (Creates folder for each label. Labeled images are copied to these folders. Csv is also generated)"
	case ModeMove:
		return "move (Creates folder for each label. Labeled images are moved to these folders. Csv is also generated)"
	default:
		return string(m)
	}
}
