package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-dl/internal/service"
)

// SettingsDialog lets the user inspect and change the download root
// directory.
type SettingsDialog struct {
	app    *service.App
	window fyne.Window
	dialog *dialog.ConfirmDialog

	downloadDirEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(app *service.App, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		app:    app,
		window: window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.downloadDirEntry.SetText(sd.app.GetDownloadPath())
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	openFolderBtn := widget.NewButton(IconFolder+" Open in file browser", func() {
		if err := sd.app.OpenDownloadFolder(); err != nil {
			dialog.ShowError(err, sd.window)
		}
	})

	form := container.NewVBox(
		widget.NewLabel("Download Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Download Directory:"),
		downloadDirRow,
		openFolderBtn,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		if err := sd.app.SetDownloadPath(dir); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
	}
}
