package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/spotify-dl/internal/config"
	"github.com/ytget/spotify-dl/internal/download"
	"github.com/ytget/spotify-dl/internal/platform"
	"github.com/ytget/spotify-dl/internal/search"
	"github.com/ytget/spotify-dl/internal/service"
	"github.com/ytget/spotify-dl/internal/spotify"
	"github.com/ytget/spotify-dl/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.spotify-dl"
	AppName = "Spotify Playlist Downloader"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	logFile := config.SetupLogger()
	if logFile != nil {
		defer logFile.Close()
	}

	slog.Info("starting", "app", AppName, "version", version)

	creds, err := config.LoadCredentials()
	if err != nil {
		slog.Error("credentials missing", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	myWindow.CenterOnScreen()

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		slog.Warn("cannot create download directory", "dir", settings.GetDownloadDirectory(), "error", err)
	}

	catalog := spotify.NewClient(creds, spotify.DefaultTokenCachePath)
	provider := search.NewYouTubeProvider()
	fetcher := download.NewFetcher(provider)
	downloader := download.NewService(catalog, fetcher)

	appService := service.NewApp(catalog, downloader, settings)

	ui.NewRootUI(myWindow, myApp, appService)

	myWindow.ShowAndRun()
}
