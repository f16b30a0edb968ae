package controllers

// Command is one discrete user action. Views translate widget events and
// key presses into commands and hand them to a controller.
type Command interface {
	command()
}

// Labeling screen commands.
type (
	Assign         struct{ Label string }
	AssignShortcut struct{ Key string }
	Next           struct{}
	Prev           struct{}
	Select         struct{ Index int }
	Export         struct{ Name string }
	SetAutoAdvance struct{ Enabled bool }
	SetXLSX        struct{ Enabled bool }
	SetParquet     struct{ Enabled bool }
)

// Setup screen commands.
type (
	PickFolder        struct{ Path string }
	ChooseMode        struct{ Mode string }
	SetLabelCount     struct{ Count string }
	ConfirmLabelCount struct{}
	SetLabel          struct {
		Index int
		Text  string
	}
	LoadLabels struct{ Path string }
	Continue   struct{}
)

func (Assign) command()         {}
func (AssignShortcut) command() {}
func (Next) command()           {}
func (Prev) command()           {}
func (Select) command()         {}
func (Export) command()         {}
func (SetAutoAdvance) command() {}
func (SetXLSX) command()        {}
func (SetParquet) command()     {}

func (PickFolder) command()        {}
func (ChooseMode) command()        {}
func (SetLabelCount) command()     {}
func (ConfirmLabelCount) command() {}
func (SetLabel) command()          {}
func (LoadLabels) command()        {}
func (Continue) command()          {}

// MaxShortcuts is how many labels get a digit key.
const MaxShortcuts = 10

// ShortcutKey is the digit bound to the label at index: 1..9 then 0.
func ShortcutKey(index int) (string, bool) {
	if index < 0 || index >= MaxShortcuts {
		return "", false
	}
	return string(rune('0' + (index+1)%10)), true
}

// ShortcutIndex maps a digit key back onto a label index.
func ShortcutIndex(key string, numLabels int) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	index := int(key[0]-'0') - 1
	if key[0] == '0' {
		index = 9
	}
	if index >= numLabels {
		return 0, false
	}
	return index, true
}
