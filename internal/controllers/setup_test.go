package controllers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-labeler/internal/labeling"
	"image-labeler/internal/setup"
)

func newSetupController(t *testing.T, open SessionOpener) (*SetupController, *fakeSetupView, *[]*labeling.Session) {
	t.Helper()
	var started []*labeling.Session
	ctrl := NewSetupController(nil, open, func(s *labeling.Session) {
		started = append(started, s)
	}, nil)
	view := &fakeSetupView{}
	ctrl.SetView(view)
	return ctrl, view, &started
}

func TestSetupDefaults(t *testing.T) {
	_, view, _ := newSetupController(t, nil)
	assert.Equal(t, labeling.ModeMove, view.last().Mode)
	assert.Empty(t, view.last().Labels)
}

func TestSetupValidationMessagesInOrder(t *testing.T) {
	ctrl, view, started := newSetupController(t, nil)

	require.Error(t, ctrl.Dispatch(Continue{}))
	assert.Equal(t, setup.MsgFolderMissing, view.last().Message)

	require.NoError(t, ctrl.Dispatch(PickFolder{Path: "/x"}))
	require.Error(t, ctrl.Dispatch(Continue{}))
	assert.Equal(t, setup.MsgLabelCount, view.last().Message)

	require.NoError(t, ctrl.Dispatch(SetLabelCount{Count: "2"}))
	require.Error(t, ctrl.Dispatch(Continue{}))
	assert.Equal(t, setup.MsgNoLabels, view.last().Message)

	require.NoError(t, ctrl.Dispatch(ConfirmLabelCount{}))
	assert.Len(t, view.last().Labels, 2)
	require.NoError(t, ctrl.Dispatch(SetLabel{Index: 0, Text: "cat"}))
	require.Error(t, ctrl.Dispatch(Continue{}))
	assert.Equal(t, setup.MsgEmptyLabel, view.last().Message)

	assert.Empty(t, view.errors)
	assert.Empty(t, *started)
}

func TestSetupContinueOpensSession(t *testing.T) {
	dir := imageDir(t, "a.jpg", "b.png")
	ctrl, view, started := newSetupController(t, nil)

	require.NoError(t, ctrl.Dispatch(PickFolder{Path: dir}))
	require.NoError(t, ctrl.Dispatch(ChooseMode{Mode: "copy"}))
	require.NoError(t, ctrl.Dispatch(SetLabelCount{Count: "2"}))
	require.NoError(t, ctrl.Dispatch(ConfirmLabelCount{}))
	require.NoError(t, ctrl.Dispatch(SetLabel{Index: 0, Text: " cat "}))
	require.NoError(t, ctrl.Dispatch(SetLabel{Index: 1, Text: "dog"}))
	renders := len(view.states)
	require.NoError(t, ctrl.Dispatch(Continue{}))

	require.Len(t, *started, 1)
	session := (*started)[0]
	assert.Equal(t, labeling.ModeCopy, session.Mode())
	assert.Equal(t, []string{"cat", "dog"}, session.Labels().Names())
	assert.Equal(t, 2, session.Len())
	assert.DirExists(t, filepath.Join(dir, "cat"))
	assert.Len(t, view.states, renders)
}

func TestSetupContinueWithEmptyFolder(t *testing.T) {
	ctrl, view, started := newSetupController(t, nil)

	require.NoError(t, ctrl.Dispatch(PickFolder{Path: t.TempDir()}))
	ctrl.ApplyLabels([]string{"cat"})
	err := ctrl.Dispatch(Continue{})
	assert.ErrorIs(t, err, labeling.ErrNoImages)
	assert.Empty(t, view.errors)
	assert.Equal(t, setup.MsgNoImages, view.last().Message)
	assert.Empty(t, *started)
}

func TestSetupUsesOpener(t *testing.T) {
	var got labeling.Options
	ctrl, _, started := newSetupController(t, func(opts labeling.Options) (*labeling.Session, error) {
		got = opts
		return nil, errors.New("nope")
	})

	require.NoError(t, ctrl.Dispatch(PickFolder{Path: "/x"}))
	require.NoError(t, ctrl.Dispatch(ChooseMode{Mode: "csv"}))
	ctrl.ApplyLabels([]string{"a", "b"})

	assert.Error(t, ctrl.Dispatch(Continue{}))
	assert.Equal(t, "/x", got.Root)
	assert.Equal(t, labeling.ModeCSV, got.Mode)
	assert.Equal(t, []string{"a", "b"}, got.Labels.Names())
	assert.Empty(t, *started)
}

func TestSetupLoadLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\nbird\n"), 0o644))

	ctrl, view, _ := newSetupController(t, nil)
	require.NoError(t, ctrl.Dispatch(LoadLabels{Path: path}))

	state := view.last()
	assert.Equal(t, "3", state.NumLabels)
	assert.Equal(t, []string{"cat", "dog", "bird"}, state.Labels)

	assert.Error(t, ctrl.Dispatch(LoadLabels{Path: path + ".missing"}))
	assert.Len(t, view.errors, 1)
}

func TestSetupRejectsBadInput(t *testing.T) {
	ctrl, _, _ := newSetupController(t, nil)

	assert.Error(t, ctrl.Dispatch(ChooseMode{Mode: "symlink"}))
	assert.Error(t, ctrl.Dispatch(SetLabel{Index: 3, Text: "x"}))
}

func TestConfirmLabelCountIgnoresGarbage(t *testing.T) {
	ctrl, view, _ := newSetupController(t, nil)
	ctrl.ApplyLabels([]string{"a", "b"})

	require.NoError(t, ctrl.Dispatch(SetLabelCount{Count: "abc"}))
	require.NoError(t, ctrl.Dispatch(ConfirmLabelCount{}))
	assert.Empty(t, view.last().Labels)
}
