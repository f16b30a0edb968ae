package views

import (
	"image-labeler/internal/controllers"
	"image-labeler/internal/export"
	"image-labeler/internal/imaging"
	"image-labeler/internal/logger"
	"image-labeler/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// LabelingView is the main window: file list, image, label buttons and the
// export controls.
type LabelingView struct {
	window   fyne.Window
	dispatch Dispatcher
	logger   logger.Logger

	content    fyne.CanvasObject
	statusBar  *components.StatusBar
	display    *components.ImageDisplay
	fileList   *components.FileList
	labelPanel *components.LabelPanel
	toolbar    *components.Toolbar

	numLabels int
}

func NewLabelingView(window fyne.Window, labels []string, loader components.ImageLoader, log logger.Logger, dispatch Dispatcher) *LabelingView {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	view := &LabelingView{
		window:    window,
		dispatch:  dispatch,
		logger:    log,
		numLabels: len(labels),
	}
	view.initializeComponents(labels, loader)
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

func (lv *LabelingView) initializeComponents(labels []string, loader components.ImageLoader) {
	lv.statusBar = components.NewStatusBar()
	lv.display = components.NewImageDisplay(loader)
	lv.fileList = components.NewFileList()
	lv.labelPanel = components.NewLabelPanel(labels, func(i int) string {
		key, _ := controllers.ShortcutKey(i)
		return key
	})
	lv.toolbar = components.NewToolbar()
}

func (lv *LabelingView) buildLayout() {
	side := container.NewVScroll(container.NewVBox(
		lv.labelPanel.GetContainer(),
		lv.toolbar.GetContainer(),
	))

	center := container.NewBorder(lv.statusBar.GetContainer(), nil, nil, side, lv.display.GetContainer())

	split := container.NewHSplit(lv.fileList.Widget(), center)
	split.SetOffset(0.18)
	lv.content = split
}

func (lv *LabelingView) setupEventHandlers() {
	lv.fileList.SetSelectHandler(func(index int) {
		_ = lv.dispatch(controllers.Select{Index: index})
	})
	lv.labelPanel.SetAssignHandler(func(label string) {
		_ = lv.dispatch(controllers.Assign{Label: label})
	})
	lv.toolbar.SetPrevHandler(func() { _ = lv.dispatch(controllers.Prev{}) })
	lv.toolbar.SetNextHandler(func() { _ = lv.dispatch(controllers.Next{}) })
	lv.toolbar.SetExportHandler(func() {
		_ = lv.dispatch(controllers.Export{Name: export.ManualName})
	})
	lv.toolbar.SetAutoAdvanceHandler(func(on bool) {
		_ = lv.dispatch(controllers.SetAutoAdvance{Enabled: on})
	})
	lv.toolbar.SetXLSXHandler(func(on bool) {
		_ = lv.dispatch(controllers.SetXLSX{Enabled: on})
	})
	lv.toolbar.SetParquetHandler(func(on bool) {
		_ = lv.dispatch(controllers.SetParquet{Enabled: on})
	})

	lv.window.Canvas().SetOnTypedKey(lv.handleKey)
}

// handleKey maps arrow keys to navigation and digits to label shortcuts.
func (lv *LabelingView) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		_ = lv.dispatch(controllers.Prev{})
	case fyne.KeyRight:
		_ = lv.dispatch(controllers.Next{})
	default:
		if _, ok := controllers.ShortcutIndex(string(ev.Name), lv.numLabels); ok {
			_ = lv.dispatch(controllers.AssignShortcut{Key: string(ev.Name)})
		}
	}
}

// Render draws state. The image is only decoded again when its path changes.
func (lv *LabelingView) Render(state controllers.LabelingState) {
	lv.statusBar.SetImage(state.DisplayPath, state.Progress)
	lv.statusBar.SetLabeled(state.LabeledCount, state.Total)

	entries := make([]components.FileEntry, len(state.Items))
	for i, item := range state.Items {
		entries[i] = components.FileEntry{Name: item.Name, LabelIndex: item.LabelIndex}
	}
	lv.fileList.SetEntries(entries, state.Index)
	lv.labelPanel.Highlight(state.CurrentLabel)
	lv.toolbar.SetState(state.Index, state.Total, state.AutoAdvance, state.XLSX, state.Parquet, state.ExportMessage)

	if state.DisplayPath != lv.display.ShownPath() {
		lv.showImage(state.DisplayPath)
	}
}

func (lv *LabelingView) showImage(path string) {
	if err := lv.display.Show(path); err != nil {
		lv.logger.Warning("LabelingView", "image could not be displayed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		lv.statusBar.SetInfo("cannot display image")
		return
	}
	info, err := imaging.ReadInfo(path)
	if err != nil {
		lv.logger.Debug("LabelingView", "no exif data", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
	lv.statusBar.SetInfo(info.Summary())
}

func (lv *LabelingView) ShowError(title string, err error) {
	dialog.ShowInformation(title, err.Error(), lv.window)
}

func (lv *LabelingView) Content() fyne.CanvasObject {
	return lv.content
}
