package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lingvocheck/client/internal/client/models"
)

// Users lists all users. Requires a user-administration permission.
func (a *App) Users(ctx context.Context) {
	if !a.session.CanViewPage("users") {
		fmt.Println("Permission denied")
		return
	}
	users, err := a.api.Users(ctx)
	if err != nil {
		a.handleError(err)
		return
	}
	for _, u := range users {
		fmt.Printf("%s  %-20s %-30s role: %-15s team: %s\n", u.ID, u.Username, u.Email, u.Role.Name, u.Team.Name)
	}
}

// AddUser interactively creates a user with a role and team.
func (a *App) AddUser(ctx context.Context) {
	if !a.session.CanViewPage("users") {
		fmt.Println("Permission denied")
		return
	}

	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}
	roleID, teamID, err := a.pickRoleAndTeam(ctx)
	if err != nil {
		return
	}

	user := models.NewUser{
		Username: strings.ToLower(username),
		Email:    strings.ToLower(email),
		Password: password,
		RoleID:   roleID,
		TeamID:   teamID,
	}
	created, err := a.api.CreateUser(ctx, user)
	if err != nil {
		a.handleError(err)
		return
	}
	fmt.Printf("%s (%s)\n", a.tr.T("USERS.CREATE_USER.SUCCESSFUL"), created.ID)
}

// AssignUser interactively changes a user's role and team.
func (a *App) AssignUser(ctx context.Context, userID string) {
	if !a.session.CanViewPage("users") {
		fmt.Println("Permission denied")
		return
	}

	roleID, teamID, err := a.pickRoleAndTeam(ctx)
	if err != nil {
		return
	}
	if err := a.api.AssignUser(ctx, userID, roleID, teamID); err != nil {
		a.handleError(err)
		return
	}
	fmt.Println(a.tr.T("USERS.CHANGE_USER.SUCCESSFUL"))
}

// pickRoleAndTeam shows the short role and team listings and prompts for an
// ID from each.
func (a *App) pickRoleAndTeam(ctx context.Context) (string, string, error) {
	roles, err := a.api.RoleList(ctx)
	if err != nil {
		a.handleError(err)
		return "", "", err
	}
	for _, r := range roles {
		fmt.Printf("%s  %s\n", r.ID, r.Name)
	}
	roleID, err := getSimpleText(a.reader, "Role id", os.Stdout)
	if err != nil {
		return "", "", err
	}

	teams, err := a.api.TeamList(ctx)
	if err != nil {
		a.handleError(err)
		return "", "", err
	}
	for _, t := range teams {
		fmt.Printf("%s  %s\n", t.ID, t.Name)
	}
	teamID, err := getSimpleText(a.reader, "Team id", os.Stdout)
	if err != nil {
		return "", "", err
	}

	return roleID, teamID, nil
}

// RemoveUser deletes a user by id.
func (a *App) RemoveUser(ctx context.Context, userID string) {
	if !a.session.CanViewPage("users") {
		fmt.Println("Permission denied")
		return
	}
	if err := a.api.DeleteUser(ctx, userID); err != nil {
		a.handleError(err)
		return
	}
	fmt.Println(a.tr.T("TOAST.SUMMARY.SUCCESSFUL"))
}

// Teams lists all teams.
func (a *App) Teams(ctx context.Context) {
	if !a.session.CanViewPage("teams") {
		fmt.Println("Permission denied")
		return
	}
	teams, err := a.api.Teams(ctx)
	if err != nil {
		a.handleError(err)
		return
	}
	for _, t := range teams {
		fmt.Printf("%s  %s\n", t.ID, t.Name)
	}
}

// AddTeam creates a team.
func (a *App) AddTeam(ctx context.Context, name string) {
	if !a.session.CanViewPage("teams") {
		fmt.Println("Permission denied")
		return
	}
	team, err := a.api.CreateTeam(ctx, name)
	if err != nil {
		a.handleError(err)
		return
	}
	fmt.Printf("%s (%s)\n", a.tr.T("TOAST.SUMMARY.SUCCESSFUL"), team.ID)
}

// RemoveTeam deletes a team by id.
func (a *App) RemoveTeam(ctx context.Context, teamID string) {
	if !a.session.CanViewPage("teams") {
		fmt.Println("Permission denied")
		return
	}
	if err := a.api.DeleteTeam(ctx, teamID); err != nil {
		a.handleError(err)
		return
	}
	fmt.Println(a.tr.T("TOAST.SUMMARY.SUCCESSFUL"))
}

// Roles lists all roles and their granted permissions.
func (a *App) Roles(ctx context.Context) {
	if !a.session.CanViewPage("roles") {
		fmt.Println("Permission denied")
		return
	}
	roles, err := a.api.Roles(ctx)
	if err != nil {
		a.handleError(err)
		return
	}
	for _, r := range roles {
		fmt.Printf("%s  %-15s %s\n", r.ID, r.Name, strings.Join(grantedPermissions(r.Permissions), ", "))
	}
}

// AddRole interactively creates a role from a name and a comma-separated
// permission list.
func (a *App) AddRole(ctx context.Context) {
	if !a.session.CanViewPage("roles") {
		fmt.Println("Permission denied")
		return
	}

	name, err := getSimpleText(a.reader, "Role name", os.Stdout)
	if err != nil {
		return
	}
	list, err := getSimpleText(a.reader, "Permissions (comma-separated: createTeam, assignTeam, deleteTeam, createRole, assignRole, deleteRole, createUser, deleteUser, assignTest)", os.Stdout)
	if err != nil {
		return
	}
	permissions, parseErr := parsePermissions(list)
	if parseErr != nil {
		fmt.Println(parseErr)
		return
	}

	role, err := a.api.CreateRole(ctx, name, permissions)
	if err != nil {
		a.handleError(err)
		return
	}
	fmt.Printf("%s (%s)\n", a.tr.T("TOAST.SUMMARY.SUCCESSFUL"), role.ID)
}

// RemoveRole deletes a role by id.
func (a *App) RemoveRole(ctx context.Context, roleID string) {
	if !a.session.CanViewPage("roles") {
		fmt.Println("Permission denied")
		return
	}
	if err := a.api.DeleteRole(ctx, roleID); err != nil {
		a.handleError(err)
		return
	}
	fmt.Println(a.tr.T("TOAST.SUMMARY.SUCCESSFUL"))
}

// parsePermissions builds a permission set from a comma-separated list of
// permission names. Unknown names are rejected.
func parsePermissions(list string) (models.Permissions, error) {
	var p models.Permissions
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		switch name {
		case "createTeam":
			p.CreateTeam = true
		case "assignTeam":
			p.AssignTeam = true
		case "deleteTeam":
			p.DeleteTeam = true
		case "createRole":
			p.CreateRole = true
		case "assignRole":
			p.AssignRole = true
		case "deleteRole":
			p.DeleteRole = true
		case "createUser":
			p.CreateUser = true
		case "deleteUser":
			p.DeleteUser = true
		case "assignTest":
			p.AssignTest = true
		default:
			return models.Permissions{}, fmt.Errorf("unknown permission: %s", name)
		}
	}
	return p, nil
}

// grantedPermissions lists the names of the granted permissions in p.
func grantedPermissions(p models.Permissions) []string {
	var names []string
	for _, entry := range []struct {
		name    string
		granted bool
	}{
		{"createTeam", p.CreateTeam},
		{"assignTeam", p.AssignTeam},
		{"deleteTeam", p.DeleteTeam},
		{"createRole", p.CreateRole},
		{"assignRole", p.AssignRole},
		{"deleteRole", p.DeleteRole},
		{"createUser", p.CreateUser},
		{"deleteUser", p.DeleteUser},
		{"assignTest", p.AssignTest},
	} {
		if entry.granted {
			names = append(names, entry.name)
		}
	}
	return names
}
