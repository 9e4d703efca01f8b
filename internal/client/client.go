// Package client - клиент API сервиса распределения по пулам поверх
// сгенерированного api.ClientWithResponses.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"grouping-service/api"
)

// APIError - ошибка, которую вернул сервис.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// Client вызывает HTTP API сервиса.
type Client struct {
	api api.ClientWithResponsesInterface
}

// New создает клиент для сервиса по адресу baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	c, err := api.NewClientWithResponses(baseURL, api.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return &Client{api: c}, nil
}

// ListTeams возвращает команды турнира.
func (c *Client) ListTeams(ctx context.Context, tournamentID, categoryID string) ([]api.Team, error) {
	resp, err := c.api.ListTeamsWithResponse(ctx, tournamentID, &api.ListTeamsParams{CategoryId: optional(categoryID)})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError(resp.StatusCode(), resp.Status(), resp.JSONDefault)
	}
	return resp.JSON200.Teams, nil
}

// RegisterTeam заявляет команду на турнир.
func (c *Client) RegisterTeam(ctx context.Context, tournamentID string, body api.RegisterTeamJSONRequestBody) (*api.Team, error) {
	resp, err := c.api.RegisterTeamWithResponse(ctx, tournamentID, body)
	if err != nil {
		return nil, err
	}
	if resp.JSON201 == nil {
		return nil, responseError(resp.StatusCode(), resp.Status(), resp.JSONDefault)
	}
	return resp.JSON201, nil
}

// ListStages возвращает этапы турнира.
func (c *Client) ListStages(ctx context.Context, tournamentID, categoryID string) ([]api.Stage, error) {
	resp, err := c.api.ListStagesWithResponse(ctx, tournamentID, &api.ListStagesParams{CategoryId: optional(categoryID)})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError(resp.StatusCode(), resp.Status(), resp.JSONDefault)
	}
	return resp.JSON200.Stages, nil
}

// AssignPool назначает команду в пул. Nil снимает команду с пула.
func (c *Client) AssignPool(ctx context.Context, tournamentID, teamID string, poolName *string) (*api.Team, error) {
	resp, err := c.api.AssignTeamPoolWithResponse(ctx, tournamentID, teamID, api.AssignTeamPoolJSONRequestBody{PoolName: poolName})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError(resp.StatusCode(), resp.Status(), resp.JSONDefault)
	}
	return resp.JSON200, nil
}

// GeneratePools создает count пулов либо пулы с именами names.
func (c *Client) GeneratePools(ctx context.Context, tournamentID, categoryID string, count int, names []string) ([]api.Stage, error) {
	body := api.GeneratePoolsJSONRequestBody{CategoryId: optional(categoryID)}
	if len(names) > 0 {
		body.Names = &names
	} else {
		body.Count = &count
	}

	resp, err := c.api.GeneratePoolsWithResponse(ctx, tournamentID, body)
	if err != nil {
		return nil, err
	}
	if resp.JSON201 == nil {
		return nil, responseError(resp.StatusCode(), resp.Status(), resp.JSONDefault)
	}
	return resp.JSON201.Stages, nil
}

// Board возвращает доску распределения только для чтения.
func (c *Client) Board(ctx context.Context, tournamentID, categoryID string) (*api.Board, error) {
	resp, err := c.api.GetGroupingBoardWithResponse(ctx, tournamentID, &api.GetGroupingBoardParams{CategoryId: optional(categoryID)})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError(resp.StatusCode(), resp.Status(), resp.JSONDefault)
	}
	return resp.JSON200, nil
}

// responseError строит APIError по ответу без ожидаемого тела.
func responseError(status int, statusText string, errResp *api.ErrorResponse) error {
	apiErr := &APIError{Status: status, Code: string(api.INTERNALERROR), Message: statusText}
	if errResp != nil && errResp.Error.Code != "" {
		apiErr.Code = string(errResp.Error.Code)
		apiErr.Message = errResp.Error.Message
	}
	return apiErr
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
