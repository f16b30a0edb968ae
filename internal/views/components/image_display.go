package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ImageAreaWidth  = 900
	ImageAreaHeight = 800
)

// ImageLoader decodes an image file and scales it to fit a panel.
type ImageLoader interface {
	Load(path string, panelW, panelH int) (image.Image, error)
}

// ImageDisplay shows the current image, scaled to the panel.
type ImageDisplay struct {
	container   *fyne.Container
	image       *canvas.Image
	placeholder image.Image
	loader      ImageLoader
	shownPath   string
}

func NewImageDisplay(loader ImageLoader) *ImageDisplay {
	display := &ImageDisplay{loader: loader}
	display.createComponents()
	display.setupLayout()
	return display
}

func (id *ImageDisplay) createComponents() {
	id.placeholder = placeholderImage(ImageAreaWidth, ImageAreaHeight)

	id.image = canvas.NewImageFromImage(id.placeholder)
	id.image.FillMode = canvas.ImageFillContain
	id.image.ScaleMode = canvas.ImageScaleSmooth
	id.image.SetMinSize(fyne.NewSize(ImageAreaWidth, ImageAreaHeight))
}

func placeholderImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	border := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				img.Set(x, y, border)
			} else {
				img.Set(x, y, bg)
			}
		}
	}
	return img
}

func (id *ImageDisplay) setupLayout() {
	bg := canvas.NewRectangle(color.RGBA{R: 252, G: 252, B: 252, A: 255})
	id.container = container.NewStack(bg, id.image)
}

// Show loads path into the panel. Showing the path already on screen is a
// no-op. On error the placeholder is shown and the error returned.
func (id *ImageDisplay) Show(path string) error {
	if path == id.shownPath {
		return nil
	}
	img, err := id.loader.Load(path, ImageAreaWidth, ImageAreaHeight)
	if err != nil {
		id.shownPath = ""
		id.image.Image = id.placeholder
		id.image.Refresh()
		return err
	}
	id.shownPath = path
	id.image.Image = img
	id.image.Refresh()
	return nil
}

// Clear drops the cached path so the next Show reloads from disk.
func (id *ImageDisplay) Clear() {
	id.shownPath = ""
	id.image.Image = id.placeholder
	id.image.Refresh()
}

func (id *ImageDisplay) ShownPath() string {
	return id.shownPath
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}
