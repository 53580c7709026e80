package service

import (
	"context"
	"log/slog"
	"math/rand"

	"arena-team-bot/internal/model"
)

// Platform описывает возможности чат-платформы, которые нужны для выдачи командных ролей и каналов.
// Все вызовы удалённые и могут завершиться ошибкой.
type Platform interface {
	Messenger

	// GuildMember ищет участника сервера по идентификатору. ok=false, если его нет на сервере.
	GuildMember(ctx context.Context, userID string) (member model.Member, ok bool, err error)

	// CreateRole создаёт выделенную роль с цветом и возвращает её идентификатор.
	CreateRole(ctx context.Context, name string, color int) (string, error)

	// AddMemberRoles выдаёт участнику роли.
	AddMemberRoles(ctx context.Context, userID string, roleIDs ...string) error

	// CreatePrivateCategory создаёт категорию, видимую только перечисленным участникам.
	CreatePrivateCategory(ctx context.Context, name string, memberIDs []string) (string, error)

	// CreateTextChannel создаёт текстовый канал внутри категории.
	CreateTextChannel(ctx context.Context, name, categoryID string) (string, error)

	// CreateVoiceChannel создаёт голосовой канал внутри категории.
	CreateVoiceChannel(ctx context.Context, name, categoryID string) (string, error)
}

// TeamRoleName возвращает имя общей роли команды.
func TeamRoleName(teamName string) string {
	return "Team: " + teamName
}

// Provisioner завершает команду после принятого инвайта: роли, приватная категория, каналы
// и запись второго игрока в реестр.
type Provisioner struct {
	teams    *TeamService
	platform Platform
	log      *slog.Logger
	color    func() int
}

// NewProvisioner создаёт провижинер. Цвет ролей выбирается случайно для каждой команды.
func NewProvisioner(teams *TeamService, platform Platform, log *slog.Logger) *Provisioner {
	return &Provisioner{
		teams:    teams,
		platform: platform,
		log:      log,
		color:    func() int { return rand.Intn(0xFFFFFF + 1) },
	}
}

// WithColor подменяет генератор цвета ролей.
func (p *Provisioner) WithColor(fn func() int) *Provisioner {
	p.color = fn
	return p
}

// FinalizeTeam выдаёт роли и создаёт каналы для пары игроков, затем заполняет второй слот команды.
// Слот резервируется до первого обращения к платформе, поэтому параллельный ответ другого
// приглашённого в ту же команду получает TeamFull и ничего не создаёт.
// Ник первого игрока берётся из реестра на момент финализации.
func (p *Provisioner) FinalizeTeam(ctx context.Context, pairing model.Pairing) (model.Team, error) {
	team, err := p.teams.ReserveSlot(ctx, pairing.TeamName, pairing.InviteeID)
	if err != nil {
		return model.Team{}, err
	}
	defer p.teams.ReleaseSlot(team.TeamName, pairing.InviteeID)

	member1, err := p.member(ctx, team.Player1ID)
	if err != nil {
		return model.Team{}, err
	}
	member2, err := p.member(ctx, pairing.InviteeID)
	if err != nil {
		return model.Team{}, err
	}

	color := p.color()

	teamRole, err := p.platform.CreateRole(ctx, TeamRoleName(team.TeamName), color)
	if err != nil {
		return model.Team{}, ErrInternal("failed to create team role", err)
	}
	role1, err := p.platform.CreateRole(ctx, team.Player1Handle, color)
	if err != nil {
		return model.Team{}, ErrInternal("failed to create player role", err)
	}
	role2, err := p.platform.CreateRole(ctx, pairing.InviteeHandle, color)
	if err != nil {
		return model.Team{}, ErrInternal("failed to create player role", err)
	}

	if err := p.platform.AddMemberRoles(ctx, member1.ID, teamRole, role1); err != nil {
		return model.Team{}, ErrInternal("failed to assign roles", err)
	}
	if err := p.platform.AddMemberRoles(ctx, member2.ID, teamRole, role2); err != nil {
		return model.Team{}, ErrInternal("failed to assign roles", err)
	}

	category, err := p.platform.CreatePrivateCategory(ctx, team.TeamName, []string{member1.ID, member2.ID})
	if err != nil {
		return model.Team{}, ErrInternal("failed to create team category", err)
	}
	if _, err := p.platform.CreateTextChannel(ctx, team.TeamName+"-chat", category); err != nil {
		return model.Team{}, ErrInternal("failed to create text channel", err)
	}
	if _, err := p.platform.CreateVoiceChannel(ctx, team.TeamName+"-voice", category); err != nil {
		return model.Team{}, ErrInternal("failed to create voice channel", err)
	}

	completed, err := p.teams.CompleteTeam(ctx, team.TeamName, pairing.InviteeID, pairing.InviteeHandle)
	if err != nil {
		return model.Team{}, err
	}

	p.log.Info("team finalized",
		slog.String("team", completed.TeamName),
		slog.String("player1", completed.Player1ID),
		slog.String("player2", pairing.InviteeID),
		slog.String("category", category),
	)
	return completed, nil
}

func (p *Provisioner) member(ctx context.Context, userID string) (model.Member, error) {
	m, ok, err := p.platform.GuildMember(ctx, userID)
	if err != nil {
		return model.Member{}, ErrInternal("failed to get guild member", err)
	}
	if !ok {
		return model.Member{}, errMemberNotFound(model.Mention(userID))
	}
	return m, nil
}
