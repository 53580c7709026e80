package service

import (
	"context"
	"sort"
	"strings"

	"arena-team-bot/internal/model"
)

// TeamService содержит операции реестра команд.
type TeamService struct {
	state *State
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(state *State) *TeamService {
	return &TeamService{state: state}
}

// ValidateHandleFormat сообщает, соответствует ли ник формату Name#Tag (3–5 цифр).
func ValidateHandleFormat(handle string) bool {
	return model.ValidHandle(handle)
}

// CreateTeam создаёт открытую команду с создателем в роли первого игрока.
func (s *TeamService) CreateTeam(ctx context.Context, name, creatorID, creatorHandle string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, ErrBadRequest("team_name must not be empty")
	}
	if creatorID == "" {
		return model.Team{}, ErrBadRequest("creator is required")
	}
	if !ValidateHandleFormat(creatorHandle) {
		return model.Team{}, errInvalidHandle()
	}

	team, err := model.NewTeam(name, creatorID, creatorHandle)
	if err != nil {
		return model.Team{}, ErrBadRequest(err.Error())
	}

	err = s.state.update(ctx, func(teams map[string]model.Team, _ map[string]model.PendingInvite) error {
		if _, ok := teams[name]; ok {
			return errDuplicateTeamName()
		}
		if _, ok := rosteredIn(teams, creatorID); ok {
			return errPlayerAlreadyRostered()
		}
		teams[name] = team
		return nil
	})
	if err != nil {
		return model.Team{}, err
	}
	return team, nil
}

// JoinOpenTeam проверяет, может ли кандидат занять второй слот команды. Состояние не меняется.
// Слот, зарезервированный под другого кандидата, считается занятым.
func (s *TeamService) JoinOpenTeam(ctx context.Context, name, candidateID string) (model.Team, error) {
	var team model.Team
	err := s.state.view(func(teams map[string]model.Team, _ map[string]model.PendingInvite) error {
		var err error
		team, err = checkJoin(teams, name, candidateID)
		if err != nil {
			return err
		}
		if holder, ok := s.state.reservedBy(name); ok && holder != candidateID {
			return errTeamFull()
		}
		return nil
	})
	return team, err
}

// ReserveSlot закрепляет второй слот открытой команды за кандидатом до ReleaseSlot.
// Пока резерв держится, другие кандидаты получают TeamFull. Резерв не сохраняется в снапшот.
func (s *TeamService) ReserveSlot(ctx context.Context, name, candidateID string) (model.Team, error) {
	var team model.Team
	err := s.state.reserve(func(teams map[string]model.Team, reserved map[string]string) error {
		var err error
		team, err = checkJoin(teams, name, candidateID)
		if err != nil {
			return err
		}
		if _, ok := reserved[name]; ok {
			return errTeamFull()
		}
		for _, holder := range reserved {
			if holder == candidateID {
				return errPlayerAlreadyRostered()
			}
		}
		reserved[name] = candidateID
		return nil
	})
	return team, err
}

// ReleaseSlot снимает резерв, если он принадлежит кандидату.
func (s *TeamService) ReleaseSlot(name, candidateID string) {
	_ = s.state.reserve(func(_ map[string]model.Team, reserved map[string]string) error {
		if reserved[name] == candidateID {
			delete(reserved, name)
		}
		return nil
	})
}

func checkJoin(teams map[string]model.Team, name, candidateID string) (model.Team, error) {
	team, ok := teams[name]
	if !ok {
		return model.Team{}, errTeamNotFound()
	}
	if team.State() == model.TeamFull {
		return model.Team{}, errTeamFull()
	}
	if _, ok := rosteredIn(teams, candidateID); ok {
		return model.Team{}, errPlayerAlreadyRostered()
	}
	return team, nil
}

// OpenTeamOwnedBy возвращает команду, где пользователь является первым игроком и второй слот свободен.
func (s *TeamService) OpenTeamOwnedBy(ctx context.Context, ownerID string) (model.Team, error) {
	var team model.Team
	err := s.state.view(func(teams map[string]model.Team, _ map[string]model.PendingInvite) error {
		var ok bool
		team, ok = openTeamOwnedBy(teams, ownerID)
		if !ok {
			return errNoOpenTeam()
		}
		return nil
	})
	return team, err
}

func openTeamOwnedBy(teams map[string]model.Team, ownerID string) (model.Team, bool) {
	for _, t := range teams {
		if t.Player1ID == ownerID && t.State() == model.TeamOpen {
			return t, true
		}
	}
	return model.Team{}, false
}

// CompleteTeam заполняет второй слот команды и сохраняет состояние.
// Переход OPEN → FULL односторонний.
func (s *TeamService) CompleteTeam(ctx context.Context, name, playerID, handle string) (model.Team, error) {
	if !ValidateHandleFormat(handle) {
		return model.Team{}, errInvalidHandleReply()
	}

	var completed model.Team
	err := s.state.update(ctx, func(teams map[string]model.Team, _ map[string]model.PendingInvite) error {
		team, err := checkJoin(teams, name, playerID)
		if err != nil {
			return err
		}
		if holder, ok := s.state.reservedBy(name); ok && holder != playerID {
			return errTeamFull()
		}
		completed = team.WithPlayer2(playerID, handle)
		teams[name] = completed
		return nil
	})
	if err != nil {
		return model.Team{}, err
	}
	return completed, nil
}

// GetTeam возвращает команду по имени.
func (s *TeamService) GetTeam(ctx context.Context, name string) (model.Team, error) {
	if name == "" {
		return model.Team{}, ErrBadRequest("team_name is required")
	}
	snap := s.state.Snapshot()
	team, ok := snap.Teams[name]
	if !ok {
		return model.Team{}, errTeamNotFound()
	}
	return team, nil
}

// ListTeams возвращает все команды, отсортированные по имени.
func (s *TeamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	snap := s.state.Snapshot()
	res := make([]model.Team, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].TeamName < res[j].TeamName })
	return res, nil
}

// Counts возвращает число открытых и заполненных команд и ожидающих инвайтов.
func (s *TeamService) Counts() (open, full, pending int) {
	_ = s.state.view(func(teams map[string]model.Team, invites map[string]model.PendingInvite) error {
		for _, t := range teams {
			if t.State() == model.TeamOpen {
				open++
			} else {
				full++
			}
		}
		pending = len(invites)
		return nil
	})
	return open, full, pending
}
