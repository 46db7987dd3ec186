// Command virtualmouse controls the system pointer with hand gestures
// captured from a webcam. It runs as a system tray application with a
// local diagnostics HTTP server.
package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/osamah-s7s/virtualmouse/internal/app"
	"github.com/osamah-s7s/virtualmouse/internal/capture"
	"github.com/osamah-s7s/virtualmouse/internal/config"
	"github.com/osamah-s7s/virtualmouse/internal/detector"
	"github.com/osamah-s7s/virtualmouse/internal/mouse"
	"github.com/osamah-s7s/virtualmouse/internal/server"
	"github.com/osamah-s7s/virtualmouse/internal/store"
	"github.com/osamah-s7s/virtualmouse/internal/tray"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Virtual Mouse...")

	dataDir := config.DefaultDataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "virtualmouse.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	overrides, err := st.Settings().All()
	if err != nil {
		log.Fatalf("Failed to load stored overrides: %v", err)
	}

	cfg, err := config.LoadWithOverrides(overrides)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	camera, err := capture.Probe(cfg.CameraPriorities, cfg.CameraWidth, cfg.CameraHeight)
	if err != nil {
		log.Fatalf("No working camera found: %v", err)
	}
	camera.Close() // the pipeline reopens it

	det := newDetector()

	application := app.New(app.Config{
		Camera:            camera,
		Detector:          det,
		Sink:              mouse.NewRobotSink(),
		Control:           cfg.Control,
		ActivityThreshold: cfg.ActivityThreshold,
	})

	srv := server.New(server.Config{
		Store:    st,
		Camera:   camera,
		Detector: det,
		Status:   application,
	})

	go func() {
		log.Printf("Diagnostics server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
			log.Printf("Diagnostics server error: %v", err)
		}
	}()

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start gesture pipeline: %v", err)
	}

	trayApp := tray.New()
	trayApp.OnToggle(func(enabled bool) {
		application.SetEnabled(enabled)
		if enabled {
			log.Println("Gesture control enabled")
		} else {
			log.Println("Gesture control disabled")
		}
	})
	trayApp.OnSettings(func() {
		openBrowser(fmt.Sprintf("http://localhost%s/api/status", cfg.ListenAddr))
	})
	trayApp.OnQuit(func() {
		log.Println("Shutting down...")
		srv.Close()
		application.Stop()
	})

	// Handle SIGINT/SIGTERM so a terminal Ctrl+C also releases the drag
	// and closes the camera.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Received shutdown signal")
		srv.Close()
		application.Stop()
		os.Exit(0)
	}()

	// Blocks until quit is selected from the tray menu.
	trayApp.Run()
}

// newDetector returns the MediaPipe detector, or the mock detector when
// the Python sidecar is unavailable so the diagnostics server still runs.
func newDetector() detector.Detector {
	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		log.Printf("MediaPipe detector unavailable (%v), using mock detector", err)
		return detector.NewMockDetector()
	}
	return det
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
