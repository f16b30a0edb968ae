// Package setup holds the state of the setup screen and decides when it is
// complete enough to start labeling.
package setup

import (
	"errors"
	"strconv"
	"strings"

	"image-labeler/internal/labeling"
)

const (
	MsgFolderMissing   = "Input folder has to be selected (step 1)"
	MsgLabelCount      = "Number of labels has to be number greater than 0 (step 3)."
	MsgNoLabels        = "You didn't provide any labels. Select number of labels and press \"Ok\""
	MsgEmptyLabel      = "All label fields has to be filled (step 4)."
	MsgDuplicateLabels = "Labels have to be unique (step 4)."
	MsgInvalidLabel    = "Labels cannot contain / or \\, be . or .. or be named \"output\" (step 4)."
	MsgNoImages        = "Selected folder contains no images (step 1)."
)

// ValidationError carries the message shown under the setup form. Err is
// the underlying cause, if any.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Form mirrors the inputs of the setup screen.
type Form struct {
	Folder    string
	Mode      labeling.Mode
	NumLabels string
	Labels    []string
}

func NewForm() *Form {
	return &Form{Mode: labeling.DefaultMode}
}

// Validate returns the first unmet condition, checked in screen order.
func (f *Form) Validate() error {
	if f.Folder == "" {
		return &ValidationError{Message: MsgFolderMissing}
	}

	if _, err := ParseLabelCount(f.NumLabels); err != nil {
		return &ValidationError{Message: MsgLabelCount}
	}

	if len(f.Labels) == 0 {
		return &ValidationError{Message: MsgNoLabels}
	}

	seen := make(map[string]struct{}, len(f.Labels))
	for _, label := range f.Labels {
		trimmed := strings.TrimSpace(label)
		if err := labeling.ValidateLabelName(trimmed); err != nil {
			if errors.Is(err, labeling.ErrEmptyLabel) {
				return &ValidationError{Message: MsgEmptyLabel}
			}
			return &ValidationError{Message: MsgInvalidLabel}
		}
		if _, dup := seen[trimmed]; dup {
			return &ValidationError{Message: MsgDuplicateLabels}
		}
		seen[trimmed] = struct{}{}
	}

	return nil
}

// TrimmedLabels returns the labels the way the session will use them.
func (f *Form) TrimmedLabels() []string {
	out := make([]string, len(f.Labels))
	for i, label := range f.Labels {
		out[i] = strings.TrimSpace(label)
	}
	return out
}

// ResizeLabels sets the number of label slots, keeping existing text.
func (f *Form) ResizeLabels(n int) {
	if n < 0 {
		n = 0
	}
	resized := make([]string, n)
	copy(resized, f.Labels)
	f.Labels = resized
}

// ParseLabelCount accepts a positive integer, ignoring surrounding spaces.
func ParseLabelCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
