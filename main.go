package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/translator/internal/config"
	"github.com/ytget/translator/internal/platform"
	"github.com/ytget/translator/internal/translate"
	"github.com/ytget/translator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.translator"
	AppName = "Translator"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply theme
	myApp.Settings().SetTheme(ui.NewTranslatorTheme())

	settings := config.NewSettings(myApp)

	// Logger: stderr plus a file in the user cache directory
	logDir, err := platform.GetLogDirectory()
	if err != nil {
		fmt.Printf("failed to resolve log directory: %v\n", err)
		logDir = ""
	}
	logger, logPath, logFile, err := platform.NewLogger(settings.GetLogLevel(), logDir)
	if err != nil {
		logger.WithError(err).Warn("File logging disabled")
	}
	defer logFile.Close()

	logger.WithFields(logrus.Fields{
		"version":  version,
		"log_file": logPath,
	}).Infof("%s starting", AppName)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowMinWidth, ui.WindowMinHeight))

	// Translation service; fall back to Google if the configured engine cannot start
	translateSvc := translate.NewService(translate.NewGoogleClient(translate.DefaultGoogleURL, logger), logger)
	if err := ui.ConfigureService(context.Background(), settings, translateSvc, logger); err != nil {
		logger.WithError(err).Warn("Falling back to Google Translate")
		translateSvc.SetTimeout(settings.GetRequestTimeout())
		translateSvc.SetHonorSource(settings.GetHonorSource())
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, translateSvc, settings, logger, logPath)

	// Show and run
	myWindow.ShowAndRun()

	logger.Info("Shutting down")
}
