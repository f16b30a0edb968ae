package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// FileEntry is one row of the file list.
type FileEntry struct {
	Name       string
	LabelIndex int
}

// FileList lists every image, coloured by its label.
type FileList struct {
	list     *widget.List
	entries  []FileEntry
	selected int
	syncing  bool

	selectHandler func(index int)
}

func NewFileList() *FileList {
	fl := &FileList{selected: -1}
	fl.list = widget.NewList(
		func() int { return len(fl.entries) },
		func() fyne.CanvasObject {
			return canvas.NewText("template.jpg", color.Black)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			text := obj.(*canvas.Text)
			entry := fl.entries[id]
			text.Text = entry.Name
			text.Color = LabelColor(entry.LabelIndex)
			text.TextStyle = fyne.TextStyle{Bold: id == fl.selected}
			text.Refresh()
		},
	)
	fl.list.OnSelected = func(id widget.ListItemID) {
		if fl.syncing || fl.selectHandler == nil {
			return
		}
		fl.selectHandler(id)
	}
	return fl
}

func (fl *FileList) SetSelectHandler(handler func(index int)) {
	fl.selectHandler = handler
}

// SetEntries replaces the rows and moves the selection to current without
// calling the select handler.
func (fl *FileList) SetEntries(entries []FileEntry, current int) {
	fl.entries = entries
	fl.selected = current
	fl.syncing = true
	fl.list.Refresh()
	if current >= 0 && current < len(entries) {
		fl.list.Select(current)
		fl.list.ScrollTo(current)
	}
	fl.syncing = false
}

func (fl *FileList) Widget() fyne.CanvasObject {
	return fl.list
}
