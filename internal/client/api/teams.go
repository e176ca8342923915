package api

import (
	"context"
	"net/http"

	"github.com/lingvocheck/client/internal/client/models"
)

// Teams lists all teams with full details.
func (c *Client) Teams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := c.do(ctx, http.MethodGet, "/team/all", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// TeamList lists teams in the short form used by selection dropdowns.
func (c *Client) TeamList(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := c.do(ctx, http.MethodGet, "/team/list", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// CreateTeam creates a team.
func (c *Client) CreateTeam(ctx context.Context, name string) (*models.Team, error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	var team models.Team
	if err := c.do(ctx, http.MethodPost, "/team", body, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam renames a team.
func (c *Client) UpdateTeam(ctx context.Context, teamID, name string) error {
	body := struct {
		TeamID string `json:"teamId"`
		Name   string `json:"name"`
	}{teamID, name}

	return c.do(ctx, http.MethodPut, "/team", body, nil)
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, teamID string) error {
	body := struct {
		Team string `json:"team"`
	}{teamID}

	return c.do(ctx, http.MethodDelete, "/team", body, nil)
}
