package labeling

import (
	"errors"
	"fmt"
	"path/filepath"

	"image-labeler/internal/logger"
)

var (
	ErrNoImages        = errors.New("no images found in the selected folder")
	ErrIndexOutOfRange = errors.New("image index out of range")
	ErrUnknownImage    = errors.New("image is not part of this session")
)

// AssignError wraps a failed assignment. The mapping is unchanged when it is
// returned.
type AssignError struct {
	Image string
	Label string
	Err   error
}

func (e *AssignError) Error() string {
	return fmt.Sprintf("assign %q to %s: %v", e.Label, e.Image, e.Err)
}

func (e *AssignError) Unwrap() error {
	return e.Err
}

// Options describes a session before it is opened.
type Options struct {
	Root     string
	Mode     Mode
	Labels   *LabelSet
	Executor Executor
	Logger   logger.Logger
}

// Session holds everything the labeling screen works on: the fixed image
// list, the assignment mapping and the cursor. It is not safe for concurrent
// use; the UI drives it from a single goroutine.
type Session struct {
	root        string
	mode        Mode
	labels      *LabelSet
	images      []string
	assignments *Assignments
	cursor      int
	executor    Executor
	logger      logger.Logger
}

// Open scans opts.Root for images and returns a session positioned on the
// first image. Label folders are created, when the mode needs them, only once
// the session is known to be valid.
func Open(opts Options) (*Session, error) {
	images, err := ScanImages(opts.Root)
	if err != nil {
		return nil, err
	}

	session, err := NewSession(opts, images)
	if err != nil {
		return nil, err
	}

	if opts.Mode.UsesLabelFolders() {
		if err := CreateLabelFolders(opts.Root, opts.Labels); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// NewSession builds a session over an explicit list of image paths, all of
// which must live directly in opts.Root.
func NewSession(opts Options, images []string) (*Session, error) {
	if opts.Labels == nil || opts.Labels.Len() == 0 {
		return nil, ErrNoLabels
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}
	executor := opts.Executor
	if executor == nil {
		executor = NewFileExecutor(log)
	}

	paths := make([]string, len(images))
	copy(paths, images)

	s := &Session{
		root:        opts.Root,
		mode:        opts.Mode,
		labels:      opts.Labels,
		images:      paths,
		assignments: NewAssignments(),
		executor:    executor,
		logger:      log,
	}

	log.Info("Session", "session opened", map[string]interface{}{
		"root":   s.root,
		"mode":   string(s.mode),
		"images": len(s.images),
		"labels": s.labels.Len(),
	})

	return s, nil
}

func (s *Session) Root() string      { return s.root }
func (s *Session) Mode() Mode        { return s.mode }
func (s *Session) Labels() *LabelSet { return s.labels }
func (s *Session) Len() int          { return len(s.images) }
func (s *Session) Cursor() int       { return s.cursor }
func (s *Session) LabeledCount() int { return s.assignments.Len() }

// ImageName returns the basename of the image at index.
func (s *Session) ImageName(index int) string {
	return filepath.Base(s.images[index])
}

// ImageNames returns all basenames in list order.
func (s *Session) ImageNames() []string {
	names := make([]string, len(s.images))
	for i := range s.images {
		names[i] = s.ImageName(i)
	}
	return names
}

func (s *Session) CurrentName() string {
	return s.ImageName(s.cursor)
}

// LabelOf returns the label assigned to an image basename.
func (s *Session) LabelOf(image string) (string, bool) {
	return s.assignments.Get(image)
}

func (s *Session) CurrentLabel() (string, bool) {
	return s.assignments.Get(s.CurrentName())
}

// Assignments returns the mapping in insertion order.
func (s *Session) Assignments() []Assignment {
	return s.assignments.Entries()
}

func (s *Session) CountByLabel() map[string]int {
	return s.assignments.CountByLabel()
}

// Assign applies label to the current image. Picking the image's current
// label again removes the assignment. The filesystem work for the mode runs
// first; the mapping only changes once it succeeded.
func (s *Session) Assign(label string) (Transition, error) {
	image := s.CurrentName()

	if !s.labels.Contains(label) {
		return 0, &AssignError{Image: image, Label: label, Err: ErrUnknownLabel}
	}

	prev, _ := s.assignments.Get(image)
	transition := Classify(prev, label)
	effect := Plan(s.mode, s.root, image, prev, label)

	if err := s.executor.Apply(effect); err != nil {
		return transition, &AssignError{Image: image, Label: label, Err: err}
	}

	if transition == TransitionUnlabel {
		s.assignments.Delete(image)
	} else {
		s.assignments.Set(image, label)
	}

	s.logger.Debug("Session", "assignment applied", map[string]interface{}{
		"image":      image,
		"label":      label,
		"previous":   prev,
		"transition": transition.String(),
		"operations": len(effect),
	})

	return transition, nil
}

// Next moves the cursor forward. It reports false at the last image.
func (s *Session) Next() bool {
	if s.cursor >= len(s.images)-1 {
		return false
	}
	s.cursor++
	return true
}

// Prev moves the cursor back. It reports false at the first image.
func (s *Session) Prev() bool {
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

func (s *Session) Select(index int) error {
	if index < 0 || index >= len(s.images) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.cursor = index
	return nil
}

func (s *Session) SelectByName(image string) error {
	for i := range s.images {
		if s.ImageName(i) == image {
			s.cursor = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownImage, image)
}

// DisplayPath is where the image at index can be read right now. Only move
// mode relocates the original file, so only there the label folder wins.
func (s *Session) DisplayPath(index int) string {
	name := s.ImageName(index)
	if s.mode == ModeMove {
		if label, ok := s.assignments.Get(name); ok {
			return filepath.Join(s.root, label, name)
		}
	}
	return filepath.Join(s.root, name)
}

func (s *Session) CurrentPath() string {
	return s.DisplayPath(s.cursor)
}

// Progress is the "image N of M" line for the current position.
func (s *Session) Progress() string {
	return fmt.Sprintf("image %d of %d", s.cursor+1, len(s.images))
}
