package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lingvocheck/client/internal/client/models"
)

// Profile prints the current user's profile.
func (a *App) Profile(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return
	}
	user := a.session.User()
	fmt.Printf("Username:  %s\n", user.Username)
	fmt.Printf("Email:     %s\n", user.Email)
	fmt.Printf("Activated: %v\n", user.IsActivated)
	if user.Team != "" {
		fmt.Printf("Team:      %s\n", user.Team)
	}
}

// EditProfile prompts for new profile fields (empty keeps the current
// value) and submits the update.
func (a *App) EditProfile(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return
	}
	current := a.session.User()

	username, err := getSimpleText(a.reader, fmt.Sprintf("New username [%s]", current.Username), os.Stdout)
	if err != nil {
		return
	}
	if username == "" {
		username = current.Username
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("New email [%s]", current.Email), os.Stdout)
	if err != nil {
		return
	}
	if email == "" {
		email = current.Email
	}

	res, err := a.session.UpdateProfile(ctx, models.ProfileUpdate{Username: username, Email: email})
	if err != nil {
		a.handleError(err)
		return
	}
	if res.Success {
		fmt.Println(a.tr.T("PROFILE.UPDATE.SUCCESSFUL"))
		return
	}
	a.alert(res)
}

// SendActivationCode asks the server to re-send the activation mail.
func (a *App) SendActivationCode(ctx context.Context) {
	if err := a.api.SendActivationCode(ctx); err != nil {
		a.handleError(err)
		return
	}
	fmt.Println(a.tr.T("TOAST.SUMMARY.SUCCESSFUL"))
}
