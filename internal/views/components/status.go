package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows which image is on screen and how far labeling has got.
type StatusBar struct {
	container     *fyne.Container
	nameLabel     *widget.Label
	progressLabel *widget.Label
	countLabel    *widget.Label
	infoLabel     *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.nameLabel = widget.NewLabel("")
	sb.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	sb.nameLabel.Truncation = fyne.TextTruncateEllipsis
	sb.progressLabel = widget.NewLabel("")
	sb.countLabel = widget.NewLabel("")
	sb.infoLabel = widget.NewLabel("")
	sb.infoLabel.Importance = widget.LowImportance
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, nil,
		container.NewHBox(
			sb.infoLabel,
			widget.NewSeparator(),
			sb.countLabel,
			widget.NewSeparator(),
			sb.progressLabel,
		),
		sb.nameLabel,
	)
}

// SetImage updates the displayed path and progress text.
func (sb *StatusBar) SetImage(path, progress string) {
	sb.nameLabel.SetText(path)
	sb.progressLabel.SetText(progress)
}

func (sb *StatusBar) SetLabeled(labeled, total int) {
	sb.countLabel.SetText(fmt.Sprintf("%d of %d labeled", labeled, total))
}

// SetInfo shows EXIF details for the current image, if any.
func (sb *StatusBar) SetInfo(info string) {
	sb.infoLabel.SetText(info)
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
