package labeling

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// OutputFolder is the sub-folder of the input folder that receives exports.
// No label may use it.
const OutputFolder = "output"

var (
	ErrNoLabels       = errors.New("label set is empty")
	ErrEmptyLabel     = errors.New("label is empty")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrUnknownLabel   = errors.New("label is not part of the label set")
	ErrInvalidLabel   = errors.New("label cannot be used as a folder name")
)

// ValidateLabelName rejects names that would not map to a single folder
// directly inside the input folder.
func ValidateLabelName(name string) error {
	if name == "" {
		return ErrEmptyLabel
	}
	if name == "." || name == ".." || name == OutputFolder ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, name)
	}
	return nil
}

// LabelSet is the ordered, fixed set of classes for a session.
type LabelSet struct {
	names []string
	index map[string]int
}

func NewLabelSet(names []string) (*LabelSet, error) {
	if len(names) == 0 {
		return nil, ErrNoLabels
	}

	set := &LabelSet{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if err := ValidateLabelName(name); err != nil {
			return nil, fmt.Errorf("label %d: %w", i+1, err)
		}
		if _, exists := set.index[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, name)
		}
		set.index[name] = len(set.names)
		set.names = append(set.names, name)
	}
	return set, nil
}

func (s *LabelSet) Len() int {
	return len(s.names)
}

// Names returns a copy of the labels in their fixed order.
func (s *LabelSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *LabelSet) At(i int) string {
	return s.names[i]
}

func (s *LabelSet) Index(label string) (int, bool) {
	i, ok := s.index[label]
	return i, ok
}

func (s *LabelSet) Contains(label string) bool {
	_, ok := s.index[label]
	return ok
}
