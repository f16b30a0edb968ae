// Package display turns image files into panel-sized images with OpenCV.
package display

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"image-labeler/internal/imaging"
	"image-labeler/internal/logger"
	"image-labeler/internal/opencv/memory"
)

// Loader decodes images from disk and scales them for the display panel.
type Loader struct {
	cache  *memory.Manager
	logger logger.Logger
}

// NewLoader returns a loader. cache may be nil to always decode.
func NewLoader(cache *memory.Manager, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Loader{cache: cache, logger: log}
}

// Load reads path and returns it scaled to fit a panelW x panelH panel.
func (l *Loader) Load(path string, panelW, panelH int) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	key := memory.Key{
		Path:    path,
		ModTime: info.ModTime(),
		Size:    info.Size(),
		PanelW:  panelW,
		PanelH:  panelH,
	}
	if l.cache != nil {
		if img, ok := l.cache.Get(key); ok {
			return img, nil
		}
	}

	img, err := l.decode(path, panelW, panelH)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		l.cache.Put(key, img)
	}
	return img, nil
}

func (l *Loader) decode(path string, panelW, panelH int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image with OpenCV: %w", err)
	}
	defer mat.Close()

	if err := validateMat(mat, "decode "+filepath.Base(path)); err != nil {
		return nil, err
	}

	width, height := imaging.FitSize(mat.Cols(), mat.Rows(), panelW, panelH)

	resized := gocv.NewMat()
	defer resized.Close()

	interpolation := gocv.InterpolationArea
	if width > mat.Cols() {
		interpolation = gocv.InterpolationCubic
	}
	gocv.Resize(mat, &resized, image.Point{X: width, Y: height}, 0, 0, interpolation)
	if err := validateMat(resized, "resize "+filepath.Base(path)); err != nil {
		return nil, err
	}

	img, err := resized.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert Mat to image: %w", err)
	}

	l.logger.Debug("ImageLoader", "image loaded", map[string]interface{}{
		"path":       path,
		"format":     strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		"original":   fmt.Sprintf("%dx%d", mat.Cols(), mat.Rows()),
		"display":    fmt.Sprintf("%dx%d", width, height),
		"size_bytes": len(data),
	})

	return img, nil
}

func validateMat(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty after %s", operation)
	}
	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat has invalid dimensions %dx%d after %s", mat.Cols(), mat.Rows(), operation)
	}
	return nil
}
