package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"arena-team-bot/internal/model"
)

// Messenger отправляет личные сообщения. Если пользователь закрыл личку,
// реализация возвращает ошибку, оборачивающую ErrDirectMessageForbidden.
type Messenger interface {
	SendDirectMessage(ctx context.Context, userID, content string) error
}

// errNotPending сигнализирует, что инвайта нет и сохранять нечего.
var errNotPending = errors.New("invite not pending")

// InviteService реализует рукопожатие инвайта второго игрока.
type InviteService struct {
	state     *State
	messenger Messenger
}

// NewInviteService создаёт сервис инвайтов.
func NewInviteService(state *State, messenger Messenger) *InviteService {
	return &InviteService{state: state, messenger: messenger}
}

// InviteMessage формирует текст личного сообщения с приглашением.
func InviteMessage(invitee model.Member, teamName string) string {
	return fmt.Sprintf("Hello %s, you've been invited to join **%s**! "+
		"Please respond with your League of Legends summoner name in the format `Summoner#Tag` (e.g., `Summoner#1234`).",
		invitee.Mention(), teamName)
}

// IssueInvite отправляет приглашение в личку и запоминает его по идентификатору приглашённого.
// Предыдущий инвайт того же пользователя перезаписывается.
func (s *InviteService) IssueInvite(ctx context.Context, inviterID string, invitee model.Member, teamName string) (model.PendingInvite, error) {
	inv, err := model.NewPendingInvite(invitee.ID, teamName, inviterID)
	if err != nil {
		if invitee.ID != "" && invitee.ID == inviterID {
			return model.PendingInvite{}, errPlayerAlreadyRostered()
		}
		return model.PendingInvite{}, ErrBadRequest(err.Error())
	}

	check := func(teams map[string]model.Team) error {
		team, err := checkJoin(teams, teamName, invitee.ID)
		if IsCode(err, CodePlayerAlreadyRostered) {
			return errInviteeAlreadyRostered()
		}
		if err != nil {
			return err
		}
		if team.Player1ID != inviterID {
			return errNoOpenTeam()
		}
		return nil
	}

	err = s.state.view(func(teams map[string]model.Team, _ map[string]model.PendingInvite) error {
		return check(teams)
	})
	if err != nil {
		return model.PendingInvite{}, err
	}

	if err := s.messenger.SendDirectMessage(ctx, invitee.ID, InviteMessage(invitee, teamName)); err != nil {
		if errors.Is(err, ErrDirectMessageForbidden) {
			return model.PendingInvite{}, errInviteChannelUnavailable(invitee.Mention(), err)
		}
		return model.PendingInvite{}, ErrInternal("failed to send invite", err)
	}

	err = s.state.update(ctx, func(teams map[string]model.Team, invites map[string]model.PendingInvite) error {
		if err := check(teams); err != nil {
			return err
		}
		invites[inv.InviteeID] = inv
		return nil
	})
	if err != nil {
		return model.PendingInvite{}, err
	}
	return inv, nil
}

// PendingInvite возвращает ожидающий инвайт пользователя, если он есть.
func (s *InviteService) PendingInvite(ctx context.Context, inviteeID string) (model.PendingInvite, bool) {
	snap := s.state.Snapshot()
	inv, ok := snap.PendingInvites[inviteeID]
	return inv, ok
}

// ResolveInvite обрабатывает ответ приглашённого. Если инвайта нет, возвращает ok=false
// и ничего не меняет. Иначе инвайт удаляется при любом исходе, а ответ проверяется
// на формат ника; при успехе возвращается пара для финализации команды.
func (s *InviteService) ResolveInvite(ctx context.Context, inviteeID, text string) (model.Pairing, bool, error) {
	var (
		inv     model.PendingInvite
		team    model.Team
		hasTeam bool
	)

	// Без инвайта выходим сразу, не копируя снапшот.
	err := s.state.view(func(_ map[string]model.Team, invites map[string]model.PendingInvite) error {
		if _, ok := invites[inviteeID]; !ok {
			return errNotPending
		}
		return nil
	})
	if errors.Is(err, errNotPending) {
		return model.Pairing{}, false, nil
	}

	err = s.state.update(ctx, func(teams map[string]model.Team, invites map[string]model.PendingInvite) error {
		var ok bool
		inv, ok = invites[inviteeID]
		if !ok {
			return errNotPending
		}
		delete(invites, inviteeID)
		team, hasTeam = teams[inv.TeamName]
		return nil
	})
	if errors.Is(err, errNotPending) {
		return model.Pairing{}, false, nil
	}
	if err != nil {
		return model.Pairing{}, true, err
	}

	handle := strings.TrimSpace(text)
	if !ValidateHandleFormat(handle) {
		return model.Pairing{}, true, errInvalidHandleReply()
	}
	if !hasTeam {
		return model.Pairing{}, true, errTeamNotFound()
	}

	return model.Pairing{
		TeamName:      inv.TeamName,
		InviterID:     inv.InviterID,
		InviterHandle: team.Player1Handle,
		InviteeID:     inviteeID,
		InviteeHandle: handle,
	}, true, nil
}
