package app

import (
	"context"

	"image-labeler/internal/logger"
	"image-labeler/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle ties the shutdown manager to the Fyne app: components registered
// here run once, whether the window is closed, the process is signalled or
// the app quits.
type Lifecycle struct {
	fyneApp fyne.App
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: fyneApp,
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

func (l *Lifecycle) Register(name string, fn func()) {
	l.manager.Register(name, shutdown.Func(fn))
}

// Watch quits the app when ctx is cancelled. The shutdown sequence runs on
// the Fyne goroutine so it can touch widgets.
func (l *Lifecycle) Watch(ctx context.Context) {
	l.manager.Watch(ctx, func() {
		fyne.Do(func() {
			l.manager.Shutdown()
			l.fyneApp.Quit()
		})
	})
}

// CloseWindow runs the shutdown sequence and then closes w.
func (l *Lifecycle) CloseWindow(w fyne.Window) {
	l.logger.Info("Lifecycle", "shutdown requested", nil)
	l.manager.Shutdown()
	w.Close()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}
