package bot

import (
	"unicode/utf8"

	"arena-team-bot/internal/service"
)

// Ограничения платформы на имена каналов и ролей.
const (
	maxTeamNameLen   = 90
	maxPlayerNameLen = 32
)

// ValidateCreateTeam валидирует аргументы /create_team до обращения к реестру.
func ValidateCreateTeam(teamName, handle string) error {
	if teamName == "" {
		return service.ErrBadRequest("team_name is required")
	}
	if utf8.RuneCountInString(teamName) > maxTeamNameLen {
		return service.ErrBadRequest("team_name is too long")
	}
	if handle == "" {
		return service.ErrBadRequest("handle is required")
	}
	return nil
}

// ValidatePlayerName валидирует аргумент /invite_player.
func ValidatePlayerName(name string) error {
	if name == "" {
		return service.ErrBadRequest("player_name is required")
	}
	if utf8.RuneCountInString(name) > maxPlayerNameLen {
		return service.ErrBadRequest("player_name is too long")
	}
	return nil
}
