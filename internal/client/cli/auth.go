package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create and log into
// a new account. Expected server rejections (taken email, password
// mismatch) are reported via the result message.
func (a *App) Register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}
	repeat, err := getPassword(os.Stdout)
	if err != nil {
		return
	}

	res, err := a.session.Registration(ctx, username, email, password, repeat)
	if err != nil {
		a.handleError(err)
		return
	}
	a.alert(res)
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}

	res, err := a.session.Login(ctx, email, password)
	if err != nil {
		a.handleError(err)
		return
	}
	a.alert(res)

	if res.Success && !a.session.User().IsActivated {
		fmt.Println(a.tr.T("AUTH.NOT_ACTIVATED"))
	}
}

// Logout ends the session. Local state is cleared even when the server call
// fails.
func (a *App) Logout(ctx context.Context) {
	res, err := a.session.Logout(ctx)
	if err != nil {
		a.handleError(err)
		return
	}
	a.alert(res)
}
