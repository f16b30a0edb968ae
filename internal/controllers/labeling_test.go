package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-labeler/internal/export"
	"image-labeler/internal/labeling"
)

func TestSetViewRendersInitialState(t *testing.T) {
	_, view, dir := newLabelingController(t, labeling.ModeCSV, []string{"cat", "dog"}, "a.jpg", "b.jpg")

	require.Len(t, view.states, 1)
	state := view.last()
	assert.Equal(t, "image 1 of 2", state.Progress)
	assert.Equal(t, "a.jpg", state.Filename)
	assert.Equal(t, filepath.Join(dir, "a.jpg"), state.DisplayPath)
	assert.Equal(t, []string{"cat", "dog"}, state.Labels)
	assert.Equal(t, []FileItem{
		{Name: "a.jpg", LabelIndex: -1},
		{Name: "b.jpg", LabelIndex: -1},
	}, state.Items)
}

func TestAssignAndNavigate(t *testing.T) {
	ctrl, view, dir := newLabelingController(t, labeling.ModeMove, []string{"cat", "dog"}, "a.jpg", "b.jpg")

	require.NoError(t, ctrl.Dispatch(Assign{Label: "dog"}))
	state := view.last()
	assert.Equal(t, "dog", state.CurrentLabel)
	assert.Equal(t, filepath.Join(dir, "dog", "a.jpg"), state.DisplayPath)
	assert.Equal(t, FileItem{Name: "a.jpg", Label: "dog", LabelIndex: 1}, state.Items[0])
	assert.Equal(t, 1, state.LabeledCount)

	require.NoError(t, ctrl.Dispatch(Next{}))
	assert.Equal(t, 1, view.last().Index)
	assert.Empty(t, view.last().CurrentLabel)

	require.NoError(t, ctrl.Dispatch(Next{}))
	assert.Equal(t, 1, view.last().Index)

	require.NoError(t, ctrl.Dispatch(Select{Index: 0}))
	assert.Equal(t, filepath.Join(dir, "dog", "a.jpg"), view.last().DisplayPath)
}

func TestAutoAdvance(t *testing.T) {
	ctrl, view, _ := newLabelingController(t, labeling.ModeCSV, []string{"cat"}, "a.jpg", "b.jpg")

	require.NoError(t, ctrl.Dispatch(SetAutoAdvance{Enabled: true}))
	require.NoError(t, ctrl.Dispatch(Assign{Label: "cat"}))
	assert.Equal(t, 1, view.last().Index)

	// last image: stays put
	require.NoError(t, ctrl.Dispatch(Assign{Label: "cat"}))
	assert.Equal(t, 1, view.last().Index)
	assert.Equal(t, 2, view.last().LabeledCount)
}

func TestAssignShortcut(t *testing.T) {
	ctrl, view, _ := newLabelingController(t, labeling.ModeCSV, []string{"cat", "dog"}, "a.jpg")

	require.NoError(t, ctrl.Dispatch(AssignShortcut{Key: "2"}))
	assert.Equal(t, "dog", view.last().CurrentLabel)

	// no label behind key 3
	require.NoError(t, ctrl.Dispatch(AssignShortcut{Key: "3"}))
	assert.Equal(t, "dog", view.last().CurrentLabel)

	require.NoError(t, ctrl.Dispatch(AssignShortcut{Key: "2"}))
	assert.Empty(t, view.last().CurrentLabel)
}

func TestAssignFailureIsReported(t *testing.T) {
	ctrl, view, dir := newLabelingController(t, labeling.ModeMove, []string{"cat"}, "a.jpg")
	require.NoError(t, os.Remove(filepath.Join(dir, "a.jpg")))

	err := ctrl.Dispatch(Assign{Label: "cat"})
	require.Error(t, err)
	require.Len(t, view.errors, 1)
	assert.Contains(t, view.errors[0], "Labeling failed")
	assert.Equal(t, 0, view.last().LabeledCount)
}

func TestSelectOutOfRange(t *testing.T) {
	ctrl, view, _ := newLabelingController(t, labeling.ModeCSV, []string{"cat"}, "a.jpg")

	assert.Error(t, ctrl.Dispatch(Select{Index: 5}))
	assert.Len(t, view.errors, 1)
}

func TestExportShowsMessageUntilNavigation(t *testing.T) {
	ctrl, view, dir := newLabelingController(t, labeling.ModeCSV, []string{"cat", "dog"}, "a.jpg", "b.jpg")

	require.NoError(t, ctrl.Dispatch(Assign{Label: "dog"}))
	require.NoError(t, ctrl.Dispatch(Export{}))

	csvPath := filepath.Join(dir, "output", export.ManualName+".csv")
	assert.Equal(t, "csv saved to: "+csvPath, view.last().ExportMessage)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "img,cat,dog\na.jpg,0,1\n", string(data))

	require.NoError(t, ctrl.Dispatch(Next{}))
	assert.Empty(t, view.last().ExportMessage)
}

func TestExportWithXLSX(t *testing.T) {
	ctrl, _, dir := newLabelingController(t, labeling.ModeCSV, []string{"cat"}, "a.jpg")

	require.NoError(t, ctrl.Dispatch(SetXLSX{Enabled: true}))
	require.NoError(t, ctrl.Dispatch(Export{}))
	assert.FileExists(t, filepath.Join(dir, "output", export.ManualName+".xlsx"))
}

func TestShutdownExportsOnce(t *testing.T) {
	ctrl, _, dir := newLabelingController(t, labeling.ModeCSV, []string{"cat"}, "a.jpg")
	require.NoError(t, ctrl.Dispatch(Assign{Label: "cat"}))

	ctrl.Shutdown()
	autoPath := filepath.Join(dir, "output", export.AutoName+".csv")
	assert.FileExists(t, autoPath)

	require.NoError(t, os.Remove(autoPath))
	ctrl.Shutdown()
	assert.NoFileExists(t, autoPath)
}

func TestShortcutKeys(t *testing.T) {
	key, ok := ShortcutKey(0)
	assert.True(t, ok)
	assert.Equal(t, "1", key)

	key, ok = ShortcutKey(9)
	assert.True(t, ok)
	assert.Equal(t, "0", key)

	_, ok = ShortcutKey(10)
	assert.False(t, ok)

	for i := 0; i < MaxShortcuts; i++ {
		key, _ := ShortcutKey(i)
		got, ok := ShortcutIndex(key, MaxShortcuts)
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}

	_, ok = ShortcutIndex("0", 9)
	assert.False(t, ok)
	_, ok = ShortcutIndex("a", 9)
	assert.False(t, ok)
}
