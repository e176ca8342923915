package api

import (
	"context"
	"net/http"

	"github.com/lingvocheck/client/internal/client/models"
)

// Roles lists all roles with their permission sets.
func (c *Client) Roles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := c.do(ctx, http.MethodGet, "/role/all", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// RoleList lists roles in the short form used by selection dropdowns.
func (c *Client) RoleList(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := c.do(ctx, http.MethodGet, "/role/list", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRole creates a role with the given permission set.
func (c *Client) CreateRole(ctx context.Context, name string, permissions models.Permissions) (*models.Role, error) {
	body := struct {
		Name        string             `json:"name"`
		Permissions models.Permissions `json:"permissions"`
	}{name, permissions}

	var role models.Role
	if err := c.do(ctx, http.MethodPost, "/role", body, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole replaces a role's name and permission set.
func (c *Client) UpdateRole(ctx context.Context, roleID, name string, permissions models.Permissions) error {
	body := struct {
		RoleID      string             `json:"roleId"`
		Name        string             `json:"name"`
		Permissions models.Permissions `json:"permissions"`
	}{roleID, name, permissions}

	return c.do(ctx, http.MethodPut, "/role", body, nil)
}

// DeleteRole removes a role.
func (c *Client) DeleteRole(ctx context.Context, roleID string) error {
	body := struct {
		Role string `json:"role"`
	}{roleID}

	return c.do(ctx, http.MethodDelete, "/role", body, nil)
}

// DeleteRoles removes several roles at once.
func (c *Client) DeleteRoles(ctx context.Context, roleIDs []string) error {
	body := struct {
		Roles []string `json:"roles"`
	}{roleIDs}

	return c.do(ctx, http.MethodDelete, "/role/list", body, nil)
}
