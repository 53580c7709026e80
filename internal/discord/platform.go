// Package discord связывает обработчики бота с Discord через discordgo:
// конвертирует события, регистрирует slash-команды и реализует операции с сервером.
package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"arena-team-bot/internal/model"
	"arena-team-bot/internal/service"
)

// Максимальный размер выдачи поиска участников в Discord API.
const memberSearchLimit = 1000

const memberPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionVoiceConnect

// Platform реализует service.Platform и bot.MemberResolver для одного сервера.
type Platform struct {
	session *discordgo.Session
	guildID string
}

func NewPlatform(session *discordgo.Session, guildID string) *Platform {
	return &Platform{session: session, guildID: guildID}
}

// SendDirectMessage открывает личный канал и отправляет в него сообщение.
// Закрытые личные сообщения возвращаются как service.ErrDirectMessageForbidden.
func (p *Platform) SendDirectMessage(ctx context.Context, userID, content string) error {
	ch, err := p.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create dm channel: %w", mapForbidden(err))
	}
	if _, err := p.session.ChannelMessageSend(ch.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send dm: %w", mapForbidden(err))
	}
	return nil
}

func (p *Platform) GuildMember(ctx context.Context, userID string) (model.Member, bool, error) {
	m, err := p.session.GuildMember(p.guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return model.Member{}, false, nil
		}
		return model.Member{}, false, fmt.Errorf("get guild member: %w", err)
	}
	return memberFromDiscord(m), true, nil
}

// ResolveMemberByName ищет участника с точным совпадением username. Побеждает первое совпадение.
func (p *Platform) ResolveMemberByName(ctx context.Context, name string) (model.Member, bool, error) {
	members, err := p.session.GuildMembersSearch(p.guildID, name, memberSearchLimit, discordgo.WithContext(ctx))
	if err != nil {
		return model.Member{}, false, fmt.Errorf("search guild members: %w", err)
	}
	for _, m := range members {
		if m.User != nil && m.User.Username == name {
			return memberFromDiscord(m), true, nil
		}
	}
	return model.Member{}, false, nil
}

func (p *Platform) CreateRole(ctx context.Context, name string, color int) (string, error) {
	hoist := true
	role, err := p.session.GuildRoleCreate(p.guildID, &discordgo.RoleParams{
		Name:  name,
		Color: &color,
		Hoist: &hoist,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create role %q: %w", name, err)
	}
	return role.ID, nil
}

func (p *Platform) AddMemberRoles(ctx context.Context, userID string, roleIDs ...string) error {
	for _, roleID := range roleIDs {
		if err := p.session.GuildMemberRoleAdd(p.guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("add role %s to %s: %w", roleID, userID, err)
		}
	}
	return nil
}

// CreatePrivateCategory создаёт категорию, скрытую от @everyone и открытую перечисленным участникам.
func (p *Platform) CreatePrivateCategory(ctx context.Context, name string, memberIDs []string) (string, error) {
	return p.createChannel(ctx, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildCategory,
		PermissionOverwrites: privateOverwrites(p.guildID, memberIDs),
	})
}

func (p *Platform) CreateTextChannel(ctx context.Context, name, categoryID string) (string, error) {
	return p.createChannel(ctx, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: categoryID,
	})
}

func (p *Platform) CreateVoiceChannel(ctx context.Context, name, categoryID string) (string, error) {
	return p.createChannel(ctx, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: categoryID,
	})
}

func (p *Platform) createChannel(ctx context.Context, data discordgo.GuildChannelCreateData) (string, error) {
	ch, err := p.session.GuildChannelCreateComplex(p.guildID, data, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create channel %q: %w", data.Name, err)
	}
	return ch.ID, nil
}

// privateOverwrites закрывает канал для роли @everyone (её ID совпадает с ID сервера).
func privateOverwrites(guildID string, memberIDs []string) []*discordgo.PermissionOverwrite {
	overwrites := []*discordgo.PermissionOverwrite{{
		ID:   guildID,
		Type: discordgo.PermissionOverwriteTypeRole,
		Deny: discordgo.PermissionViewChannel,
	}}
	for _, id := range memberIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    id,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: memberPermissions,
		})
	}
	return overwrites
}

func memberFromDiscord(m *discordgo.Member) model.Member {
	if m == nil || m.User == nil {
		return model.Member{}
	}
	out := memberFromUser(m.User)
	if m.Nick != "" {
		out.DisplayName = m.Nick
	}
	return out
}

func memberFromUser(u *discordgo.User) model.Member {
	if u == nil {
		return model.Member{}
	}
	return model.Member{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.GlobalName,
	}
}

func statusOf(err error) int {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode
	}
	return 0
}

func mapForbidden(err error) error {
	if statusOf(err) == http.StatusForbidden {
		return fmt.Errorf("%w: %w", service.ErrDirectMessageForbidden, err)
	}
	return err
}
