package app

import (
	"context"
	"errors"
	"os"

	"image-labeler/internal/config"
	"image-labeler/internal/controllers"
	"image-labeler/internal/logger"
	"image-labeler/internal/setup"
	"image-labeler/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName        = "Image Labeler"
	AppID          = "io.github.imagelabeler"
	SetupWidth     = 560
	SetupHeight    = 680
	LabelingWidth  = 1600
	LabelingHeight = 1000
)

type Application struct {
	fyneApp     fyne.App
	setupWindow fyne.Window
	config      *config.Config
	logger      logger.Logger
	lifecycle   *Lifecycle
	setup       *controllers.SetupController
	handlers    *Handlers
}

// NewApplication builds the setup window, pre-filled from cfg.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	fyneApp := app.NewWithID(AppID)
	applyTheme(fyneApp, cfg.ThemePath, log)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(SetupWidth, SetupHeight))
	window.CenterOnScreen()

	lifecycle := NewLifecycle(fyneApp, log)
	handlers := NewHandlers(fyneApp, window, cfg, lifecycle, log)

	form := setup.NewForm()
	form.Folder = cfg.InputDir
	form.Mode = cfg.ParsedMode()
	setupController := controllers.NewSetupController(form, nil, handlers.HandleSessionReady, log)

	if err := prefillLabels(setupController, cfg); err != nil {
		return nil, err
	}

	view := views.NewSetupView(window, setupController.Dispatch)
	window.SetContent(view.Content())
	setupController.SetView(view)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"input_dir": cfg.InputDir,
		"mode":      cfg.Mode,
	})

	return &Application{
		fyneApp:     fyneApp,
		setupWindow: window,
		config:      cfg,
		logger:      log,
		lifecycle:   lifecycle,
		setup:       setupController,
		handlers:    handlers,
	}, nil
}

// prefillLabels fills the label slots from the labels file, or from the
// inline list when no file is configured.
func prefillLabels(c *controllers.SetupController, cfg *config.Config) error {
	if cfg.LabelsFile != "" {
		labels, err := setup.LoadLabelsFile(cfg.LabelsFile)
		if err != nil {
			return err
		}
		c.ApplyLabels(labels)
		return nil
	}
	if len(cfg.Labels) > 0 {
		c.ApplyLabels(cfg.Labels)
	}
	return nil
}

func applyTheme(fyneApp fyne.App, path string, log logger.Logger) {
	if path == "" {
		return
	}
	th, err := views.LoadTheme(path)
	if err != nil {
		fields := map[string]interface{}{"path": path, "error": err.Error()}
		if path == config.DefaultThemeFile && errors.Is(err, os.ErrNotExist) {
			log.Debug("Application", "no custom theme", fields)
		} else {
			log.Warning("Application", "can't load custom theme, using default", fields)
		}
		return
	}
	fyneApp.Settings().SetTheme(th)
	log.Debug("Application", "custom theme applied", map[string]interface{}{"path": path})
}

// Run shows the setup window and blocks until the application quits. When
// ctx ends the session is exported and the app quits.
func (a *Application) Run(ctx context.Context) error {
	a.lifecycle.Watch(ctx)

	a.setupWindow.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	// Quitting through the OS menu skips the close intercept.
	a.lifecycle.Shutdown()
	return nil
}
