package ui

import (
	"context"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-dl/internal/service"
)

// AuthDialog walks the user through the authorization-code flow: open
// the authorization URL in the browser, then paste the code from the
// redirect back into the app.
type AuthDialog struct {
	app       *service.App
	window    fyne.Window
	fyneApp   fyne.App
	onSuccess func()

	codeEntry *widget.Entry
	dialog    *dialog.ConfirmDialog
}

// NewAuthDialog creates the authentication dialog.
func NewAuthDialog(app *service.App, fyneApp fyne.App, window fyne.Window, onSuccess func()) *AuthDialog {
	ad := &AuthDialog{
		app:       app,
		window:    window,
		fyneApp:   fyneApp,
		onSuccess: onSuccess,
	}

	ad.createUI()
	return ad
}

// Show displays the authentication dialog
func (ad *AuthDialog) Show() {
	ad.codeEntry.SetText("")
	ad.dialog.Show()
}

// createUI creates the authentication dialog UI
func (ad *AuthDialog) createUI() {
	openBtn := widget.NewButton("Open Spotify authorization page", ad.onOpenAuthURL)

	ad.codeEntry = widget.NewEntry()
	ad.codeEntry.SetPlaceHolder("Paste the authorization code here")

	form := container.NewVBox(
		widget.NewLabel("1. Authorize this app in your browser"),
		openBtn,
		widget.NewLabel("2. Copy the \"code\" parameter from the redirect URL"),
		ad.codeEntry,
	)

	ad.dialog = dialog.NewCustomConfirm(
		"Connect to Spotify",
		"Authenticate",
		"Cancel",
		form,
		ad.onConfirm,
		ad.window,
	)

	ad.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// onOpenAuthURL opens the authorization URL in the system browser.
func (ad *AuthDialog) onOpenAuthURL() {
	authURL, err := url.Parse(ad.app.GetAuthURL())
	if err != nil {
		dialog.ShowError(err, ad.window)
		return
	}
	if err := ad.fyneApp.OpenURL(authURL); err != nil {
		dialog.ShowError(err, ad.window)
	}
}

// onConfirm exchanges the entered code for a session.
func (ad *AuthDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	if err := ad.app.Authenticate(context.Background(), ad.codeEntry.Text); err != nil {
		dialog.ShowError(err, ad.window)
		return
	}

	if ad.onSuccess != nil {
		ad.onSuccess()
	}
}
