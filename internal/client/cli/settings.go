package cli

import (
	"context"
	"fmt"
)

// Lang switches the UI language and persists the choice. Unsupported codes
// fall back to English.
func (a *App) Lang(ctx context.Context, code string) {
	if err := a.session.SetLanguage(ctx, code); err != nil {
		a.handleError(err)
		return
	}
	fmt.Println("Language:", a.tr.Locale())
}

// Theme persists the chosen theme.
func (a *App) Theme(ctx context.Context, theme string) {
	if theme != "light" && theme != "dark" {
		fmt.Println("Usage: theme <light|dark>")
		return
	}
	if err := a.session.SetTheme(ctx, theme); err != nil {
		a.handleError(err)
		return
	}
	fmt.Println("Theme:", a.session.Theme())
}
