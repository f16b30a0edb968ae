package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"image-labeler/internal/labeling"
)

type fakeLabelingView struct {
	states []LabelingState
	errors []string
}

func (v *fakeLabelingView) Render(state LabelingState) {
	v.states = append(v.states, state)
}

func (v *fakeLabelingView) ShowError(title string, err error) {
	v.errors = append(v.errors, title+": "+err.Error())
}

func (v *fakeLabelingView) last() LabelingState {
	return v.states[len(v.states)-1]
}

type fakeSetupView struct {
	states []SetupState
	errors []string
}

func (v *fakeSetupView) RenderSetup(state SetupState) {
	v.states = append(v.states, state)
}

func (v *fakeSetupView) ShowError(title string, err error) {
	v.errors = append(v.errors, title+": "+err.Error())
}

func (v *fakeSetupView) last() SetupState {
	return v.states[len(v.states)-1]
}

func imageDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	return dir
}

func newLabelingController(t *testing.T, mode labeling.Mode, labels []string, images ...string) (*LabelingController, *fakeLabelingView, string) {
	t.Helper()
	dir := imageDir(t, images...)
	set, err := labeling.NewLabelSet(labels)
	require.NoError(t, err)

	session, err := labeling.Open(labeling.Options{Root: dir, Mode: mode, Labels: set})
	require.NoError(t, err)

	ctrl := NewLabelingController(session, nil, Settings{}, nil)
	view := &fakeLabelingView{}
	ctrl.SetView(view)
	return ctrl, view, dir
}
