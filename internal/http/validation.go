package http

import (
	"unicode/utf8"

	"arena-team-bot/internal/service"
)

const maxTeamNameLen = 90

// ValidateTeamName валидирует параметр пути {name} для /teams/{name}
func ValidateTeamName(teamName string) error {
	if teamName == "" {
		return service.ErrBadRequest("team name is required")
	}
	if utf8.RuneCountInString(teamName) > maxTeamNameLen {
		return service.ErrBadRequest("team name is too long")
	}
	return nil
}
