package bot

import (
	"context"
	"fmt"
	"strings"

	"arena-team-bot/internal/model"
	"arena-team-bot/internal/service"
)

// Имена slash-команд и их опций.
const (
	CommandCreateTeam   = "create_team"
	CommandInvitePlayer = "invite_player"
	CommandTeamInfo     = "team_info"

	OptionTeamName   = "team_name"
	OptionHandle     = "handle"
	OptionPlayerName = "player_name"
)

// OptionSpec описывает строковый аргумент команды.
type OptionSpec struct {
	Name        string
	Description string
	Required    bool
}

// CommandSpec описывает команду для регистрации на платформе.
type CommandSpec struct {
	Name        string
	Description string
	Options     []OptionSpec
}

// Commands возвращает список команд, которые бот регистрирует на сервере.
func Commands() []CommandSpec {
	return []CommandSpec{
		{
			Name:        CommandCreateTeam,
			Description: "Create a new team",
			Options: []OptionSpec{
				{Name: OptionTeamName, Description: "Your team name", Required: true},
				{Name: OptionHandle, Description: "Your League of Legends name (Summoner#Tag)", Required: true},
			},
		},
		{
			Name:        CommandInvitePlayer,
			Description: "Invite a player to your team",
			Options: []OptionSpec{
				{Name: OptionPlayerName, Description: "The player you want to invite", Required: true},
			},
		},
		{
			Name:        CommandTeamInfo,
			Description: "Show a team's roster",
			Options: []OptionSpec{
				{Name: OptionTeamName, Description: "Team name", Required: true},
			},
		},
	}
}

func (h *Handler) handleCreateTeam(ctx context.Context, cmd Command, r Responder) error {
	name := strings.TrimSpace(cmd.Options[OptionTeamName])
	handle := strings.TrimSpace(cmd.Options[OptionHandle])
	if err := ValidateCreateTeam(name, handle); err != nil {
		return err
	}

	team, err := h.Teams.CreateTeam(ctx, name, cmd.User.ID, handle)
	if err != nil {
		return err
	}

	return r.Respond(ctx, fmt.Sprintf(
		"%s created team **%s**! 🎉\nLeague of Legends Name: `%s`\nWaiting for a second player to join...",
		cmd.User.Mention(), team.TeamName, team.Player1Handle,
	), false)
}

func (h *Handler) handleInvitePlayer(ctx context.Context, cmd Command, r Responder) error {
	playerName := strings.TrimSpace(cmd.Options[OptionPlayerName])
	if err := ValidatePlayerName(playerName); err != nil {
		return err
	}

	team, err := h.Teams.OpenTeamOwnedBy(ctx, cmd.User.ID)
	if err != nil {
		return err
	}

	invitee, ok, err := h.Members.ResolveMemberByName(ctx, playerName)
	if err != nil {
		return service.ErrInternal("failed to resolve member", err)
	}
	if !ok {
		return service.ErrPlayerNotFound()
	}

	if _, err := h.Invites.IssueInvite(ctx, cmd.User.ID, invitee, team.TeamName); err != nil {
		return err
	}

	return r.Respond(ctx, fmt.Sprintf("%s has been invited to join your team!", invitee.Mention()), false)
}

func (h *Handler) handleTeamInfo(ctx context.Context, cmd Command, r Responder) error {
	name := strings.TrimSpace(cmd.Options[OptionTeamName])
	if name == "" {
		return service.ErrBadRequest("team_name is required")
	}

	team, err := h.Teams.GetTeam(ctx, name)
	if err != nil {
		return err
	}
	return r.Respond(ctx, teamInfoMessage(team), false)
}

func teamInfoMessage(t model.Team) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Team **%s** (%s)\n", t.TeamName, t.State())
	fmt.Fprintf(&b, "Player 1: %s `%s`\n", model.Mention(t.Player1ID), t.Player1Handle)
	if t.Player2ID != nil && t.Player2Handle != nil {
		fmt.Fprintf(&b, "Player 2: %s `%s`", model.Mention(*t.Player2ID), *t.Player2Handle)
	} else {
		b.WriteString("Player 2: waiting for a second player to join...")
	}
	return b.String()
}

func teamCompletedMessage(p model.Pairing) string {
	return fmt.Sprintf("Team **%s** has been created successfully! 🎉\n%s and %s are now on the team with roles `%s` and `%s`.",
		p.TeamName, model.Mention(p.InviterID), model.Mention(p.InviteeID), p.InviterHandle, p.InviteeHandle)
}
