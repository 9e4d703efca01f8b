package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidTournamentID = errors.New("invalid tournament id")
	ErrInvalidTeamID       = errors.New("invalid team id")
	ErrInvalidTeamName     = errors.New("invalid team name")
	ErrInvalidPoolName     = errors.New("invalid pool name")
	ErrInvalidPoolCount    = errors.New("pool count must be at least 1")
	ErrInvalidSessionID    = errors.New("invalid session id")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")

	// Stage errors
	ErrStageNotFound      = errors.New("stage not found")
	ErrStageAlreadyExists = errors.New("stage already exists")

	// Editor session errors
	ErrSessionNotFound = errors.New("editor session not found")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidTournamentID: {Code: "INVALID_REQUEST", Message: "tournament id is required"},
	ErrInvalidTeamID:       {Code: "INVALID_REQUEST", Message: "team id is required"},
	ErrInvalidTeamName:     {Code: "INVALID_REQUEST", Message: "team name is required"},
	ErrInvalidPoolName:     {Code: "INVALID_REQUEST", Message: "pool name is invalid"},
	ErrInvalidPoolCount:    {Code: "INVALID_REQUEST", Message: "number of pools must be at least 1"},
	ErrInvalidSessionID:    {Code: "INVALID_REQUEST", Message: "session id is required"},
	ErrTeamNotFound:        {Code: "NOT_FOUND", Message: "team not found"},
	ErrTeamAlreadyExists:   {Code: "TEAM_EXISTS", Message: "team already registered in tournament"},
	ErrStageNotFound:       {Code: "STAGE_NOT_FOUND", Message: "no stage with this name in tournament"},
	ErrStageAlreadyExists:  {Code: "STAGE_EXISTS", Message: "stage name already used in category"},
	ErrSessionNotFound:     {Code: "NOT_FOUND", Message: "editor session not found"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
