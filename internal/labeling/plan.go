package labeling

import (
	"fmt"
	"path/filepath"
)

// Transition classifies an assignment by the image's previous label.
type Transition int

const (
	TransitionLabel   Transition = iota // unlabeled -> label
	TransitionUnlabel                   // same label picked again
	TransitionRelabel                   // prev -> different label
)

func (t Transition) String() string {
	switch t {
	case TransitionLabel:
		return "label"
	case TransitionUnlabel:
		return "unlabel"
	case TransitionRelabel:
		return "relabel"
	default:
		return "unknown"
	}
}

// Classify returns the transition for picking next when the image currently
// has prev ("" meaning unlabeled).
func Classify(prev, next string) Transition {
	switch {
	case prev == "":
		return TransitionLabel
	case prev == next:
		return TransitionUnlabel
	default:
		return TransitionRelabel
	}
}

type OpKind int

const (
	OpCopy OpKind = iota
	OpMove
	OpRemove
)

func (k OpKind) String() string {
	switch k {
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Op is a single filesystem operation. Remove only uses Src.
type Op struct {
	Kind OpKind
	Src  string
	Dst  string
}

func (o Op) String() string {
	if o.Kind == OpRemove {
		return fmt.Sprintf("remove %s", o.Src)
	}
	return fmt.Sprintf("%s %s -> %s", o.Kind, o.Src, o.Dst)
}

// Effect is the ordered list of operations one assignment needs. Removals
// always come last so everything before them can be undone.
type Effect []Op

// Plan decides the filesystem work for assigning next to image (a basename
// inside root) whose current label is prev. It touches nothing.
func Plan(mode Mode, root, image, prev, next string) Effect {
	if !mode.UsesLabelFolders() {
		return nil
	}

	original := filepath.Join(root, image)
	inFolder := func(label string) string {
		return filepath.Join(root, label, image)
	}

	switch Classify(prev, next) {
	case TransitionLabel:
		if mode == ModeCopy {
			return Effect{{Kind: OpCopy, Src: original, Dst: inFolder(next)}}
		}
		return Effect{{Kind: OpMove, Src: original, Dst: inFolder(next)}}

	case TransitionUnlabel:
		if mode == ModeCopy {
			return Effect{{Kind: OpRemove, Src: inFolder(prev)}}
		}
		return Effect{{Kind: OpMove, Src: inFolder(prev), Dst: original}}

	default:
		if mode == ModeCopy {
			return Effect{
				{Kind: OpCopy, Src: original, Dst: inFolder(next)},
				{Kind: OpRemove, Src: inFolder(prev)},
			}
		}
		return Effect{{Kind: OpMove, Src: inFolder(prev), Dst: inFolder(next)}}
	}
}
