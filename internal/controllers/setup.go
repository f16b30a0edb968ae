package controllers

import (
	"errors"
	"fmt"

	"image-labeler/internal/labeling"
	"image-labeler/internal/logger"
	"image-labeler/internal/setup"
)

// SetupState is everything the setup screen draws.
type SetupState struct {
	Folder    string
	Mode      labeling.Mode
	NumLabels string
	Labels    []string
	Message   string
}

type SetupView interface {
	RenderSetup(state SetupState)
	ShowError(title string, err error)
}

// SessionOpener starts the labeling phase. labeling.Open is the default.
type SessionOpener func(opts labeling.Options) (*labeling.Session, error)

// SetupController gathers folder, mode and labels and opens a session once
// the form validates.
type SetupController struct {
	form    *setup.Form
	view    SetupView
	logger  logger.Logger
	open    SessionOpener
	onReady func(*labeling.Session)
	message string
}

func NewSetupController(form *setup.Form, open SessionOpener, onReady func(*labeling.Session), log logger.Logger) *SetupController {
	if form == nil {
		form = setup.NewForm()
	}
	if open == nil {
		open = labeling.Open
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &SetupController{
		form:    form,
		logger:  log,
		open:    open,
		onReady: onReady,
	}
}

func (c *SetupController) SetView(view SetupView) {
	c.view = view
	c.render()
}

func (c *SetupController) State() SetupState {
	labels := make([]string, len(c.form.Labels))
	copy(labels, c.form.Labels)
	return SetupState{
		Folder:    c.form.Folder,
		Mode:      c.form.Mode,
		NumLabels: c.form.NumLabels,
		Labels:    labels,
		Message:   c.message,
	}
}

func (c *SetupController) Dispatch(cmd Command) error {
	err := c.apply(cmd)
	if _, started := cmd.(Continue); started && err == nil {
		// the setup screen is gone once a session is running
		return nil
	}
	if err != nil {
		var vErr *setup.ValidationError
		if errors.As(err, &vErr) {
			c.message = vErr.Message
		} else {
			c.logger.Error("SetupController", err, map[string]interface{}{
				"command": fmt.Sprintf("%T", cmd),
			})
			if c.view != nil {
				c.view.ShowError("Setup", err)
			}
		}
	}
	c.render()
	return err
}

func (c *SetupController) apply(cmd Command) error {
	switch cmd := cmd.(type) {
	case PickFolder:
		if cmd.Path != "" {
			c.form.Folder = cmd.Path
		}
		return nil

	case ChooseMode:
		mode, err := labeling.ParseMode(cmd.Mode)
		if err != nil {
			return err
		}
		c.form.Mode = mode
		return nil

	case SetLabelCount:
		c.form.NumLabels = cmd.Count
		return nil

	case ConfirmLabelCount:
		if n, err := setup.ParseLabelCount(c.form.NumLabels); err == nil {
			c.form.ResizeLabels(n)
		} else {
			c.form.ResizeLabels(0)
		}
		return nil

	case SetLabel:
		if cmd.Index < 0 || cmd.Index >= len(c.form.Labels) {
			return fmt.Errorf("label slot %d does not exist", cmd.Index+1)
		}
		c.form.Labels[cmd.Index] = cmd.Text
		return nil

	case LoadLabels:
		labels, err := setup.LoadLabelsFile(cmd.Path)
		if err != nil {
			return err
		}
		c.ApplyLabels(labels)
		c.logger.Info("SetupController", "labels loaded", map[string]interface{}{
			"path":   cmd.Path,
			"labels": len(labels),
		})
		return nil

	case Continue:
		return c.proceed()

	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

// ApplyLabels sets the count and fills the slots.
func (c *SetupController) ApplyLabels(labels []string) {
	c.form.NumLabels = fmt.Sprintf("%d", len(labels))
	c.form.ResizeLabels(len(labels))
	copy(c.form.Labels, labels)
}

func (c *SetupController) proceed() error {
	if err := c.form.Validate(); err != nil {
		return err
	}

	labels, err := labeling.NewLabelSet(c.form.TrimmedLabels())
	if err != nil {
		return err
	}

	session, err := c.open(labeling.Options{
		Root:   c.form.Folder,
		Mode:   c.form.Mode,
		Labels: labels,
		Logger: c.logger,
	})
	if errors.Is(err, labeling.ErrNoImages) {
		return &setup.ValidationError{Message: setup.MsgNoImages, Err: err}
	}
	if err != nil {
		return err
	}

	c.message = ""
	if c.onReady != nil {
		c.onReady(session)
	}
	return nil
}

func (c *SetupController) render() {
	if c.view != nil {
		c.view.RenderSetup(c.State())
	}
}
