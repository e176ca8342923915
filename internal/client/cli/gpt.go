package cli

import (
	"context"
	"fmt"
	"os"
)

// Ask sends one question to the language assistant and prints the reply.
func (a *App) Ask(ctx context.Context) {
	text, err := getSimpleText(a.reader, "Your question", os.Stdout)
	if err != nil {
		return
	}
	if text == "" {
		return
	}

	answer, err := a.api.AskGPT(ctx, text)
	if err != nil {
		a.handleError(err)
		return
	}
	fmt.Println(answer)
}
