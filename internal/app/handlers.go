package app

import (
	"image-labeler/internal/config"
	"image-labeler/internal/controllers"
	"image-labeler/internal/export"
	"image-labeler/internal/labeling"
	"image-labeler/internal/logger"
	"image-labeler/internal/opencv/display"
	"image-labeler/internal/opencv/memory"
	"image-labeler/internal/views"

	"fyne.io/fyne/v2"
)

// Handlers moves the app from the setup window to the labeling window.
type Handlers struct {
	fyneApp     fyne.App
	setupWindow fyne.Window
	config      *config.Config
	lifecycle   *Lifecycle
	logger      logger.Logger

	labeling *controllers.LabelingController
}

func NewHandlers(fyneApp fyne.App, setupWindow fyne.Window, cfg *config.Config, lifecycle *Lifecycle, log logger.Logger) *Handlers {
	return &Handlers{
		fyneApp:     fyneApp,
		setupWindow: setupWindow,
		config:      cfg,
		lifecycle:   lifecycle,
		logger:      log,
	}
}

// HandleSessionReady opens the labeling window for session and closes the
// setup window. The automatic export is registered with the lifecycle.
func (h *Handlers) HandleSessionReady(session *labeling.Session) {
	controller := controllers.NewLabelingController(session, export.NewExporter(h.logger), controllers.Settings{
		AutoAdvance: h.config.AutoAdvance,
		XLSX:        h.config.GenerateXLSX,
		Parquet:     h.config.GenerateParquet,
	}, h.logger)
	h.labeling = controller

	cache := memory.NewManager(memory.DefaultMaxEntries, memory.DefaultMaxBytes, h.logger)
	loader := display.NewLoader(cache, h.logger)

	window := h.fyneApp.NewWindow(AppName + " - " + session.Root())
	view := views.NewLabelingView(window, session.Labels().Names(), loader, h.logger, controller.Dispatch)
	window.SetContent(view.Content())
	window.Resize(fyne.NewSize(LabelingWidth, LabelingHeight))
	window.CenterOnScreen()
	window.SetMaster()

	// Registered last so the export runs first.
	h.lifecycle.Register("image cache", cache.Cleanup)
	h.lifecycle.Register("labeling", controller.Shutdown)
	window.SetCloseIntercept(func() {
		h.lifecycle.CloseWindow(window)
	})

	controller.SetView(view)
	window.Show()
	h.setupWindow.Close()

	h.logger.Info("Handlers", "labeling started", map[string]interface{}{
		"root":   session.Root(),
		"mode":   string(session.Mode()),
		"images": session.Len(),
	})
}

// Labeling is nil until a session has been opened.
func (h *Handlers) Labeling() *controllers.LabelingController {
	return h.labeling
}
