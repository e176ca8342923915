package api

import (
	"context"
	"net/http"

	"github.com/lingvocheck/client/internal/client/models"
)

// Users lists all users for the administration screen.
func (c *Client) Users(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.do(ctx, http.MethodGet, "/user/all", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a user on behalf of an administrator.
func (c *Client) CreateUser(ctx context.Context, user models.NewUser) (*models.CreatedUser, error) {
	var created models.CreatedUser
	if err := c.do(ctx, http.MethodPost, "/user", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignUser changes a user's role and team.
func (c *Client) AssignUser(ctx context.Context, userID, roleID, teamID string) error {
	body := struct {
		UserID string `json:"userId"`
		RoleID string `json:"roleId"`
		TeamID string `json:"teamId"`
	}{userID, roleID, teamID}

	return c.do(ctx, http.MethodPut, "/user", body, nil)
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	body := struct {
		User string `json:"user"`
	}{userID}

	return c.do(ctx, http.MethodDelete, "/user", body, nil)
}

// EditProfile updates the caller's own profile and returns the server's new
// representation of it.
func (c *Client) EditProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodPut, "/user/edit", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
