package main

import (
	"fmt"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FELTRINCyril/cinebase/internal/api"
	"github.com/FELTRINCyril/cinebase/internal/catalog"
	"github.com/FELTRINCyril/cinebase/internal/config"
	"github.com/FELTRINCyril/cinebase/internal/images"
	"github.com/FELTRINCyril/cinebase/internal/ui"
	"github.com/FELTRINCyril/cinebase/pkg/logger"
	"github.com/FELTRINCyril/cinebase/pkg/prometheus"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.cinebase.client"
	AppName = "CinéBase"

	WindowWidth  = 1000
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg)

	// Expose internal metrics when an address is configured
	prometheus.Init()
	if cfg.MetricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
				log.Error("metrics listener failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
		log.Info("metrics listener started", "addr", cfg.MetricsAddr)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	backend := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	catalogSvc := catalog.NewService(backend, log)
	photoLoader := images.NewLoader(backend, log)

	log.Info("catalog client configured",
		"backend", cfg.APIBaseURL,
		"timeout", cfg.HTTPTimeout,
	)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, catalogSvc, photoLoader, backend.BaseURL())

	// Show and run
	myWindow.ShowAndRun()
}
