package imaging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Info is the optional capture metadata shown next to the image name.
type Info struct {
	Taken  time.Time
	Camera string
}

// Summary is empty when nothing is known.
func (i Info) Summary() string {
	var parts []string
	if !i.Taken.IsZero() {
		parts = append(parts, "taken "+i.Taken.Format("2006-01-02 15:04"))
	}
	if i.Camera != "" {
		parts = append(parts, i.Camera)
	}
	return strings.Join(parts, ", ")
}

// ReadInfo extracts EXIF data from path. Files without EXIF, like most PNGs,
// give an empty Info and no error.
func ReadInfo(path string) (Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	return decodeInfo(file), nil
}

func decodeInfo(r io.Reader) Info {
	x, err := exif.Decode(r)
	if err != nil {
		return Info{}
	}

	var info Info
	if taken, err := x.DateTime(); err == nil {
		info.Taken = taken
	}

	var camera []string
	for _, field := range []exif.FieldName{exif.Make, exif.Model} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		if v, err := tag.StringVal(); err == nil {
			if v = strings.TrimSpace(strings.Trim(v, "\x00")); v != "" {
				camera = append(camera, v)
			}
		}
	}
	info.Camera = strings.Join(camera, " ")

	return info
}
