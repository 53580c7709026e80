package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_list"

	teams, err := h.Teams.ListTeams(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	resp := listTeamsResponse{Teams: make([]teamResponse, 0, len(teams))}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, toTeamResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	teamName := chi.URLParam(r, "name")
	if err := ValidateTeamName(teamName); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.GetTeam(r.Context(), teamName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeamResponse(team))
}
