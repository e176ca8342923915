package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	user := a.session.User()
	return fmt.Sprintf("(%s)", user.Username)
}

// Root runs the command loop until EOF or an explicit exit.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to LingvoCheck CLI (type 'help' for commands)")

	for {
		fmt.Printf("lc %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "profile":
			a.Profile(ctx)
		case "edit":
			a.EditProfile(ctx)
		case "activate":
			a.SendActivationCode(ctx)
		case "tests":
			a.Tests(ctx)
		case "take":
			if len(args) == 0 {
				fmt.Println("Usage: take <test id>")
				continue
			}
			a.Take(ctx, args[0])
		case "history":
			a.History(ctx)
		case "ask":
			a.Ask(ctx)
		case "users":
			a.Users(ctx)
		case "adduser":
			a.AddUser(ctx)
		case "assign":
			if len(args) == 0 {
				fmt.Println("Usage: assign <user id>")
				continue
			}
			a.AssignUser(ctx, args[0])
		case "rmuser":
			if len(args) == 0 {
				fmt.Println("Usage: rmuser <user id>")
				continue
			}
			a.RemoveUser(ctx, args[0])
		case "teams":
			a.Teams(ctx)
		case "addteam":
			if len(args) == 0 {
				fmt.Println("Usage: addteam <name>")
				continue
			}
			a.AddTeam(ctx, strings.Join(args, " "))
		case "rmteam":
			if len(args) == 0 {
				fmt.Println("Usage: rmteam <team id>")
				continue
			}
			a.RemoveTeam(ctx, args[0])
		case "roles":
			a.Roles(ctx)
		case "addrole":
			a.AddRole(ctx)
		case "rmrole":
			if len(args) == 0 {
				fmt.Println("Usage: rmrole <role id>")
				continue
			}
			a.RemoveRole(ctx, args[0])
		case "lang":
			if len(args) == 0 {
				fmt.Println("Usage: lang <code> (en, ru, uk)")
				continue
			}
			a.Lang(ctx, args[0])
		case "theme":
			if len(args) == 0 {
				fmt.Println("Usage: theme <light|dark>")
				continue
			}
			a.Theme(ctx, args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		fmt.Println("Available commands: register, login, lang, exit")
		return
	}
	fmt.Println("Available commands: tests, take <id>, history, ask, profile, edit, activate, lang, theme, logout, exit")
	if a.session.CanViewPage("users") {
		fmt.Println("User administration: users, adduser, assign <id>, rmuser <id>")
	}
	if a.session.CanViewPage("teams") {
		fmt.Println("Team administration: teams, addteam <name>, rmteam <id>")
	}
	if a.session.CanViewPage("roles") {
		fmt.Println("Role administration: roles, addrole, rmrole <id>")
	}
}
