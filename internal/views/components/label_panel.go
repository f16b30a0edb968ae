package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LabelPanel is one button per label. The button of the current image's label
// is highlighted.
type LabelPanel struct {
	container *fyne.Container
	buttons   []*widget.Button
	labels    []string

	assignHandler func(label string)
}

func NewLabelPanel(labels []string, shortcut func(int) string) *LabelPanel {
	lp := &LabelPanel{labels: append([]string(nil), labels...)}
	lp.createComponents(shortcut)
	return lp
}

func (lp *LabelPanel) createComponents(shortcut func(int) string) {
	rows := make([]fyne.CanvasObject, 0, len(lp.labels))
	for i, name := range lp.labels {
		text := name
		if key := shortcut(i); key != "" {
			text = fmt.Sprintf("%s (%s)", name, key)
		}
		btn := widget.NewButton(text, func() {
			if lp.assignHandler != nil {
				lp.assignHandler(name)
			}
		})
		swatch := canvas.NewRectangle(LabelColor(i))
		swatch.SetMinSize(fyne.NewSize(8, 8))
		lp.buttons = append(lp.buttons, btn)
		rows = append(rows, container.NewBorder(nil, nil, swatch, nil, btn))
	}
	lp.container = container.NewVBox(rows...)
}

func (lp *LabelPanel) SetAssignHandler(handler func(label string)) {
	lp.assignHandler = handler
}

// Highlight marks current as the active label. An empty string clears it.
func (lp *LabelPanel) Highlight(current string) {
	for i, btn := range lp.buttons {
		want := widget.MediumImportance
		if lp.labels[i] == current {
			want = widget.HighImportance
		}
		if btn.Importance != want {
			btn.Importance = want
			btn.Refresh()
		}
	}
}

func (lp *LabelPanel) GetContainer() *fyne.Container {
	return lp.container
}
