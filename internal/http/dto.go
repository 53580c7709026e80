// Package http реализует status API бота: keep-alive, health, просмотр реестра и метрики.
package http

import "arena-team-bot/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status         string `json:"status"`
	OpenTeams      int    `json:"open_teams"`
	FullTeams      int    `json:"full_teams"`
	PendingInvites int    `json:"pending_invites"`
}

type teamResponse struct {
	model.Team
	State model.TeamState `json:"state"`
}

type listTeamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

func toTeamResponse(t model.Team) teamResponse {
	return teamResponse{Team: t, State: t.State()}
}
