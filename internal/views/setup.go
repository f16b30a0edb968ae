package views

import (
	"fmt"

	"image-labeler/internal/controllers"
	"image-labeler/internal/labeling"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Dispatcher receives commands from a view. Errors are reported back through
// the view by the controller, so views ignore the return value.
type Dispatcher func(cmd controllers.Command) error

// SetupView is the first window: folder, mode and labels.
type SetupView struct {
	window   fyne.Window
	dispatch Dispatcher

	content          fyne.CanvasObject
	folderLabel      *widget.Label
	browseButton     *widget.Button
	modeRadio        *widget.RadioGroup
	labelsFileButton *widget.Button
	countEntry       *widget.Entry
	countButton      *widget.Button
	labelForm        *fyne.Container
	labelEntries     []*widget.Entry
	messageLabel     *widget.Label
	nextButton       *widget.Button

	modeByText map[string]labeling.Mode
}

func NewSetupView(window fyne.Window, dispatch Dispatcher) *SetupView {
	view := &SetupView{
		window:     window,
		dispatch:   dispatch,
		modeByText: make(map[string]labeling.Mode, len(labeling.Modes)),
	}
	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

func (sv *SetupView) initializeComponents() {
	sv.folderLabel = widget.NewLabel("")
	sv.folderLabel.Truncation = fyne.TextTruncateEllipsis
	sv.browseButton = widget.NewButton("Browse", nil)

	options := make([]string, 0, len(labeling.Modes))
	for _, mode := range labeling.Modes {
		options = append(options, mode.Description())
		sv.modeByText[mode.Description()] = mode
	}
	sv.modeRadio = widget.NewRadioGroup(options, nil)

	sv.labelsFileButton = widget.NewButton("Load labels from .txt file", nil)
	sv.countEntry = widget.NewEntry()
	sv.countEntry.SetPlaceHolder("number of labels")
	sv.countButton = widget.NewButton("Ok", nil)
	sv.labelForm = container.NewVBox()

	sv.messageLabel = widget.NewLabel("")
	sv.messageLabel.Importance = widget.DangerImportance
	sv.messageLabel.TextStyle = fyne.TextStyle{Bold: true}

	sv.nextButton = widget.NewButton("Next", nil)
	sv.nextButton.Importance = widget.HighImportance
}

func (sv *SetupView) buildLayout() {
	step := func(text string) *widget.Label {
		l := widget.NewLabel(text)
		l.TextStyle = fyne.TextStyle{Bold: true}
		return l
	}

	top := container.NewVBox(
		step("Step 1: select the folder with the images"),
		container.NewBorder(nil, nil, nil, sv.browseButton, sv.folderLabel),
		widget.NewSeparator(),
		step("Step 2: choose how labels are stored"),
		sv.modeRadio,
		widget.NewSeparator(),
		step("Step 3: load labels from a file or enter how many there are"),
		sv.labelsFileButton,
		container.NewBorder(nil, nil, nil, sv.countButton, sv.countEntry),
		widget.NewSeparator(),
		step("Step 4: name the labels"),
	)
	bottom := container.NewVBox(sv.messageLabel, sv.nextButton)

	sv.content = container.NewBorder(top, bottom, nil, nil, container.NewVScroll(sv.labelForm))
}

func (sv *SetupView) setupEventHandlers() {
	sv.browseButton.OnTapped = sv.browseFolder
	sv.labelsFileButton.OnTapped = sv.browseLabelsFile
	sv.modeRadio.OnChanged = func(text string) {
		if mode, ok := sv.modeByText[text]; ok {
			_ = sv.dispatch(controllers.ChooseMode{Mode: string(mode)})
		}
	}
	sv.countEntry.OnChanged = func(text string) {
		_ = sv.dispatch(controllers.SetLabelCount{Count: text})
	}
	sv.countEntry.OnSubmitted = func(string) {
		_ = sv.dispatch(controllers.ConfirmLabelCount{})
	}
	sv.countButton.OnTapped = func() {
		_ = sv.dispatch(controllers.ConfirmLabelCount{})
	}
	sv.nextButton.OnTapped = func() {
		_ = sv.dispatch(controllers.Continue{})
	}
}

func (sv *SetupView) browseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			sv.ShowError("Folder selection failed", err)
			return
		}
		if uri == nil {
			return
		}
		_ = sv.dispatch(controllers.PickFolder{Path: uri.Path()})
	}, sv.window)
}

func (sv *SetupView) browseLabelsFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			sv.ShowError("Labels file failed", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		_ = sv.dispatch(controllers.LoadLabels{Path: path})
	}, sv.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	fd.Show()
}

// RenderSetup syncs the widgets with state. Widgets whose value already
// matches are left alone so typing is not interrupted.
func (sv *SetupView) RenderSetup(state controllers.SetupState) {
	folder := state.Folder
	if folder == "" {
		folder = "No folder selected"
	}
	sv.folderLabel.SetText(folder)

	if want := state.Mode.Description(); sv.modeRadio.Selected != want {
		sv.modeRadio.SetSelected(want)
	}
	if sv.countEntry.Text != state.NumLabels {
		sv.countEntry.SetText(state.NumLabels)
	}

	sv.syncLabelEntries(state.Labels)
	sv.messageLabel.SetText(state.Message)
}

func (sv *SetupView) syncLabelEntries(labels []string) {
	if len(labels) != len(sv.labelEntries) {
		sv.labelEntries = sv.labelEntries[:0]
		rows := make([]fyne.CanvasObject, 0, len(labels))
		for i := range labels {
			entry := widget.NewEntry()
			entry.SetPlaceHolder(fmt.Sprintf("label %d", i+1))
			entry.SetText(labels[i])
			index := i
			entry.OnChanged = func(text string) {
				_ = sv.dispatch(controllers.SetLabel{Index: index, Text: text})
			}
			sv.labelEntries = append(sv.labelEntries, entry)
			rows = append(rows, container.NewBorder(nil, nil,
				widget.NewLabel(fmt.Sprintf("%d.", i+1)), nil, entry))
		}
		sv.labelForm.Objects = rows
		sv.labelForm.Refresh()
		return
	}
	for i, entry := range sv.labelEntries {
		if entry.Text != labels[i] {
			entry.SetText(labels[i])
		}
	}
}

func (sv *SetupView) ShowError(title string, err error) {
	dialog.ShowInformation(title, err.Error(), sv.window)
}

func (sv *SetupView) Content() fyne.CanvasObject {
	return sv.content
}
