package controllers

import (
	"fmt"
	"sync"

	"image-labeler/internal/export"
	"image-labeler/internal/labeling"
	"image-labeler/internal/logger"
)

// FileItem is one row of the file list.
type FileItem struct {
	Name       string
	Label      string
	LabelIndex int // -1 when unlabeled
}

// LabelingState is everything the labeling screen draws.
type LabelingState struct {
	Mode          labeling.Mode
	Labels        []string
	Items         []FileItem
	Index         int
	Total         int
	Progress      string
	Filename      string
	DisplayPath   string
	CurrentLabel  string
	LabeledCount  int
	AutoAdvance   bool
	XLSX          bool
	Parquet       bool
	ExportMessage string
}

// LabelingView is implemented by the presentation layer.
type LabelingView interface {
	Render(state LabelingState)
	ShowError(title string, err error)
}

// Settings are the toggles on the labeling screen.
type Settings struct {
	AutoAdvance bool
	XLSX        bool
	Parquet     bool
}

// LabelingController owns the session and applies commands to it.
type LabelingController struct {
	session  *labeling.Session
	exporter *export.Exporter
	view     LabelingView
	logger   logger.Logger
	settings Settings

	exportMessage string
	closeOnce     sync.Once
}

func NewLabelingController(session *labeling.Session, exporter *export.Exporter, settings Settings, log logger.Logger) *LabelingController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if exporter == nil {
		exporter = export.NewExporter(log)
	}
	return &LabelingController{
		session:  session,
		exporter: exporter,
		logger:   log,
		settings: settings,
	}
}

// SetView attaches the view and draws the initial state.
func (c *LabelingController) SetView(view LabelingView) {
	c.view = view
	c.render()
}

func (c *LabelingController) Session() *labeling.Session {
	return c.session
}

// Dispatch applies cmd, redraws and reports failures to the view.
func (c *LabelingController) Dispatch(cmd Command) error {
	if err := c.apply(cmd); err != nil {
		c.logger.Error("LabelingController", err, map[string]interface{}{
			"command": fmt.Sprintf("%T", cmd),
		})
		if c.view != nil {
			c.view.ShowError(errorTitle(cmd), err)
		}
		c.render()
		return err
	}
	c.render()
	return nil
}

func (c *LabelingController) apply(cmd Command) error {
	switch cmd := cmd.(type) {
	case Assign:
		return c.assign(cmd.Label)

	case AssignShortcut:
		index, ok := ShortcutIndex(cmd.Key, c.session.Labels().Len())
		if !ok {
			return nil
		}
		return c.assign(c.session.Labels().At(index))

	case Next:
		if c.session.Next() {
			c.exportMessage = ""
		}
		return nil

	case Prev:
		if c.session.Prev() {
			c.exportMessage = ""
		}
		return nil

	case Select:
		if err := c.session.Select(cmd.Index); err != nil {
			return err
		}
		c.exportMessage = ""
		return nil

	case Export:
		name := cmd.Name
		if name == "" {
			name = export.ManualName
		}
		result, err := c.export(name)
		if err != nil {
			return err
		}
		c.exportMessage = result.Message()
		return nil

	case SetAutoAdvance:
		c.settings.AutoAdvance = cmd.Enabled
		return nil

	case SetXLSX:
		c.settings.XLSX = cmd.Enabled
		return nil

	case SetParquet:
		c.settings.Parquet = cmd.Enabled
		return nil

	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func (c *LabelingController) assign(label string) error {
	if _, err := c.session.Assign(label); err != nil {
		return err
	}
	if c.settings.AutoAdvance && c.session.Next() {
		c.exportMessage = ""
	}
	return nil
}

func (c *LabelingController) export(name string) (*export.Result, error) {
	return c.exporter.Export(
		c.session.Root(),
		name,
		c.session.Labels().Names(),
		c.session.Assignments(),
		export.Options{XLSX: c.settings.XLSX, Parquet: c.settings.Parquet},
	)
}

// Shutdown writes the automatic export. It runs at most once.
func (c *LabelingController) Shutdown() {
	c.closeOnce.Do(func() {
		c.logger.Info("LabelingController", "closing the app, writing automatic export", map[string]interface{}{
			"labeled": c.session.LabeledCount(),
		})

		result, err := c.export(export.AutoName)
		if err != nil {
			c.logger.Error("LabelingController", fmt.Errorf("automatic export failed: %w", err), nil)
			return
		}
		c.logger.Info("LabelingController", result.Message(), nil)
	})
}

// State snapshots the session for rendering.
func (c *LabelingController) State() LabelingState {
	s := c.session
	labels := s.Labels()

	items := make([]FileItem, 0, s.Len())
	for _, name := range s.ImageNames() {
		item := FileItem{Name: name, LabelIndex: -1}
		if label, ok := s.LabelOf(name); ok {
			item.Label = label
			item.LabelIndex, _ = labels.Index(label)
		}
		items = append(items, item)
	}

	current, _ := s.CurrentLabel()

	return LabelingState{
		Mode:          s.Mode(),
		Labels:        labels.Names(),
		Items:         items,
		Index:         s.Cursor(),
		Total:         s.Len(),
		Progress:      s.Progress(),
		Filename:      s.CurrentName(),
		DisplayPath:   s.CurrentPath(),
		CurrentLabel:  current,
		LabeledCount:  s.LabeledCount(),
		AutoAdvance:   c.settings.AutoAdvance,
		XLSX:          c.settings.XLSX,
		Parquet:       c.settings.Parquet,
		ExportMessage: c.exportMessage,
	}
}

func (c *LabelingController) render() {
	if c.view != nil {
		c.view.Render(c.State())
	}
}

func errorTitle(cmd Command) string {
	switch cmd.(type) {
	case Assign, AssignShortcut:
		return "Labeling failed"
	case Export:
		return "Export failed"
	default:
		return "Error"
	}
}
