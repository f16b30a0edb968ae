package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds navigation, the labeling toggles and the export button.
type Toolbar struct {
	container     *fyne.Container
	prevButton    *widget.Button
	nextButton    *widget.Button
	autoAdvance   *widget.Check
	xlsxCheck     *widget.Check
	parquetCheck  *widget.Check
	exportButton  *widget.Button
	exportMessage *widget.Label

	prevHandler        func()
	nextHandler        func()
	exportHandler      func()
	autoAdvanceHandler func(bool)
	xlsxHandler        func(bool)
	parquetHandler     func(bool)
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.prevButton = widget.NewButton("Previous", nil)
	t.nextButton = widget.NewButton("Next", nil)

	t.autoAdvance = widget.NewCheck("Go to next image after labeling", nil)
	t.xlsxCheck = widget.NewCheck("Also generate xlsx", nil)
	t.parquetCheck = widget.NewCheck("Also generate parquet", nil)

	t.exportButton = widget.NewButton("Generate csv", nil)
	t.exportButton.Importance = widget.HighImportance

	t.exportMessage = widget.NewLabel("")
	t.exportMessage.Importance = widget.SuccessImportance
	t.exportMessage.Wrapping = fyne.TextWrapWord
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewVBox(
		container.NewGridWithColumns(2, t.prevButton, t.nextButton),
		t.autoAdvance,
		widget.NewSeparator(),
		t.xlsxCheck,
		t.parquetCheck,
		t.exportButton,
		t.exportMessage,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.prevButton.OnTapped = func() {
		if t.prevHandler != nil {
			t.prevHandler()
		}
	}
	t.nextButton.OnTapped = func() {
		if t.nextHandler != nil {
			t.nextHandler()
		}
	}
	t.exportButton.OnTapped = func() {
		if t.exportHandler != nil {
			t.exportHandler()
		}
	}
	t.autoAdvance.OnChanged = func(on bool) {
		if t.autoAdvanceHandler != nil {
			t.autoAdvanceHandler(on)
		}
	}
	t.xlsxCheck.OnChanged = func(on bool) {
		if t.xlsxHandler != nil {
			t.xlsxHandler(on)
		}
	}
	t.parquetCheck.OnChanged = func(on bool) {
		if t.parquetHandler != nil {
			t.parquetHandler(on)
		}
	}
}

func (t *Toolbar) SetPrevHandler(handler func())            { t.prevHandler = handler }
func (t *Toolbar) SetNextHandler(handler func())            { t.nextHandler = handler }
func (t *Toolbar) SetExportHandler(handler func())          { t.exportHandler = handler }
func (t *Toolbar) SetAutoAdvanceHandler(handler func(bool)) { t.autoAdvanceHandler = handler }
func (t *Toolbar) SetXLSXHandler(handler func(bool))        { t.xlsxHandler = handler }
func (t *Toolbar) SetParquetHandler(handler func(bool))     { t.parquetHandler = handler }

// SetState syncs the toggles and navigation buttons. Checks are only touched
// when their value differs, so their change handlers do not fire again.
func (t *Toolbar) SetState(index, total int, autoAdvance, xlsx, parquet bool, message string) {
	setCheck(t.autoAdvance, autoAdvance)
	setCheck(t.xlsxCheck, xlsx)
	setCheck(t.parquetCheck, parquet)

	if index > 0 {
		t.prevButton.Enable()
	} else {
		t.prevButton.Disable()
	}
	if index < total-1 {
		t.nextButton.Enable()
	} else {
		t.nextButton.Disable()
	}

	if t.exportMessage.Text != message {
		t.exportMessage.SetText(message)
	}
}

func setCheck(c *widget.Check, on bool) {
	if c.Checked != on {
		c.SetChecked(on)
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
