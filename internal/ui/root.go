package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-dl/internal/model"
	"github.com/ytget/spotify-dl/internal/service"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    *service.App

	// Auth section
	authBanner *fyne.Container
	authDialog *AuthDialog

	// Playlist section
	urlEntry    *widget.Entry
	analyzeBtn  *widget.Button
	infoName    *widget.Label
	infoOwner   *widget.Label
	infoTracks  *widget.Label
	infoDesc    *widget.Label
	infoSection *fyne.Container

	// Run controls and progress
	downloadBtn   *widget.Button
	stopBtn       *widget.Button
	statusLabel   *widget.Label
	trackLabel    *widget.Label
	countLabel    *widget.Label
	progressBar   *widget.ProgressBar
	settingsPanel *SettingsDialog

	pollStop chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, fyneApp fyne.App, app *service.App) *RootUI {
	ui := &RootUI{
		window: window,
		app:    app,
	}

	ui.authDialog = NewAuthDialog(app, fyneApp, window, ui.onAuthenticated)
	ui.settingsPanel = NewSettingsDialog(app, window)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Auth banner, shown until a session exists
	connectBtn := widget.NewButton("Connect to Spotify", ui.authDialog.Show)
	connectBtn.Importance = widget.HighImportance
	ui.authBanner = container.NewVBox(
		widget.NewLabel("Spotify authentication required to read playlists."),
		connectBtn,
	)
	if ui.app.IsAuthenticated() {
		ui.authBanner.Hide()
	}

	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("https://open.spotify.com/playlist/...")
	ui.urlEntry.OnSubmitted = func(string) { ui.onAnalyzeClick() }

	ui.analyzeBtn = widget.NewButton("Analyze", ui.onAnalyzeClick)
	settingsBtn := widget.NewButton(IconSettings, ui.settingsPanel.Show)
	settingsBtn.Importance = widget.LowImportance

	urlRow := container.NewBorder(nil, nil, settingsBtn, ui.analyzeBtn, ui.urlEntry)

	// Playlist info, populated after analysis
	ui.infoName = widget.NewLabel("")
	ui.infoName.TextStyle = fyne.TextStyle{Bold: true}
	ui.infoOwner = widget.NewLabel("")
	ui.infoTracks = widget.NewLabel("")
	ui.infoDesc = widget.NewLabel("")
	ui.infoDesc.Wrapping = fyne.TextWrapWord
	ui.infoSection = container.NewVBox(ui.infoName, ui.infoOwner, ui.infoTracks, ui.infoDesc)
	ui.infoSection.Hide()

	// Run controls
	ui.downloadBtn = widget.NewButton("Download", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()

	ui.stopBtn = widget.NewButton("Stop", ui.onStopClick)
	ui.stopBtn.Disable()

	openFolderBtn := widget.NewButton(IconFolder+" Open folder", func() {
		if err := ui.app.OpenDownloadFolder(); err != nil {
			dialog.ShowError(err, ui.window)
		}
	})

	controls := container.NewHBox(ui.downloadBtn, ui.stopBtn, openFolderBtn)

	// Progress panel
	ui.statusLabel = widget.NewLabel("Status: idle")
	ui.trackLabel = widget.NewLabel(DashPlaceholder)
	ui.countLabel = widget.NewLabel("")
	ui.progressBar = widget.NewProgressBar()

	progressPanel := container.NewVBox(
		widget.NewSeparator(),
		ui.statusLabel,
		ui.trackLabel,
		ui.progressBar,
		ui.countLabel,
	)

	content := container.NewVBox(
		ui.authBanner,
		urlRow,
		ui.infoSection,
		controls,
		progressPanel,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.SetCloseIntercept(func() {
		ui.stopPolling()
		ui.window.Close()
	})
}

// onAuthenticated hides the auth banner once a session exists.
func (ui *RootUI) onAuthenticated() {
	ui.authBanner.Hide()
}

// onAnalyzeClick fetches playlist metadata for the entered URL.
func (ui *RootUI) onAnalyzeClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		dialog.ShowInformation("Playlist", "Please enter a playlist URL", ui.window)
		return
	}

	ui.analyzeBtn.Disable()

	go func() {
		info, err := ui.app.GetPlaylistInfo(context.Background(), urlText)

		fyne.Do(func() {
			ui.analyzeBtn.Enable()
			if err != nil {
				dialog.ShowError(err, ui.window)
				return
			}

			ui.infoName.SetText(info.Name)
			ui.infoOwner.SetText("by " + info.Owner)
			ui.infoTracks.SetText(fmt.Sprintf("%d tracks", info.TrackCount))
			ui.infoDesc.SetText(info.Description)
			ui.infoSection.Show()
			ui.downloadBtn.Enable()
		})
	}()
}

// onDownloadClick starts a run for the entered playlist URL.
func (ui *RootUI) onDownloadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)

	if err := ui.app.StartDownload(urlText); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.downloadBtn.Disable()
	ui.stopBtn.Enable()
	ui.startProgressPolling()
}

// onStopClick requests cooperative cancellation.
func (ui *RootUI) onStopClick() {
	ui.app.StopDownload()
	ui.stopBtn.Disable()
}

// startProgressPolling reads the progress snapshot on a fixed interval
// until the run reaches a terminal status.
func (ui *RootUI) startProgressPolling() {
	ui.pollStop = make(chan struct{})
	stop := ui.pollStop

	go func() {
		ticker := time.NewTicker(ProgressPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				progress := ui.app.GetProgress()

				fyne.Do(func() { ui.renderProgress(progress) })

				if progress.Status.IsTerminal() {
					return
				}
			}
		}
	}()
}

// renderProgress maps one progress snapshot onto the widgets.
func (ui *RootUI) renderProgress(p model.Progress) {
	ui.statusLabel.SetText("Status: " + p.Status.String())

	if p.CurrentTrack != "" {
		ui.trackLabel.SetText(IconMusic + " " + p.CurrentTrack)
	} else {
		ui.trackLabel.SetText(DashPlaceholder)
	}

	if p.Total > 0 {
		ui.progressBar.SetValue(float64(p.Current) / float64(p.Total))
		ui.countLabel.SetText(fmt.Sprintf("%d / %d (%d downloaded)", p.Current, p.Total, p.Successful))
	}

	if p.Status.IsTerminal() {
		ui.downloadBtn.Enable()
		ui.stopBtn.Disable()

		switch p.Status {
		case model.StatusCompleted:
			dialog.ShowInformation("Download", fmt.Sprintf("Completed: %d of %d tracks downloaded", p.Successful, p.Total), ui.window)
		case model.StatusError:
			dialog.ShowError(fmt.Errorf("download failed: %s", p.Err), ui.window)
		}
	}
}

// stopPolling terminates the poll goroutine, if any. Used on shutdown.
func (ui *RootUI) stopPolling() {
	if ui.pollStop != nil {
		close(ui.pollStop)
		ui.pollStop = nil
	}
}
