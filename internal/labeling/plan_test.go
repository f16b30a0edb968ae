package labeling

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, TransitionLabel, Classify("", "cat"))
	assert.Equal(t, TransitionUnlabel, Classify("cat", "cat"))
	assert.Equal(t, TransitionRelabel, Classify("cat", "dog"))
}

func TestPlan(t *testing.T) {
	root := filepath.Join("data", "in")
	orig := filepath.Join(root, "x.jpg")
	cat := filepath.Join(root, "cat", "x.jpg")
	dog := filepath.Join(root, "dog", "x.jpg")

	tests := []struct {
		name       string
		mode       Mode
		prev, next string
		want       Effect
	}{
		{"csv label", ModeCSV, "", "cat", nil},
		{"csv unlabel", ModeCSV, "cat", "cat", nil},
		{"csv relabel", ModeCSV, "cat", "dog", nil},
		{"copy label", ModeCopy, "", "cat", Effect{{Kind: OpCopy, Src: orig, Dst: cat}}},
		{"copy unlabel", ModeCopy, "cat", "cat", Effect{{Kind: OpRemove, Src: cat}}},
		{"copy relabel", ModeCopy, "cat", "dog", Effect{
			{Kind: OpCopy, Src: orig, Dst: dog},
			{Kind: OpRemove, Src: cat},
		}},
		{"move label", ModeMove, "", "cat", Effect{{Kind: OpMove, Src: orig, Dst: cat}}},
		{"move unlabel", ModeMove, "cat", "cat", Effect{{Kind: OpMove, Src: cat, Dst: orig}}},
		{"move relabel", ModeMove, "cat", "dog", Effect{{Kind: OpMove, Src: cat, Dst: dog}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plan(tt.mode, root, "x.jpg", tt.prev, tt.next))
		})
	}
}

func TestPlanOrdersRemovalsLast(t *testing.T) {
	for _, mode := range Modes {
		for _, prev := range []string{"", "cat", "dog"} {
			effect := Plan(mode, "root", "x.jpg", prev, "cat")
			for i, op := range effect {
				if op.Kind == OpRemove {
					assert.Equal(t, len(effect)-1, i, "mode=%s prev=%q", mode, prev)
				}
			}
		}
	}
}
