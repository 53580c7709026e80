// Package bot реализует обработчики команд и сообщений чат-бота поверх доменных сервисов.
// Пакет не зависит от конкретной платформы: адаптер конвертирует события в Command и Message.
package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"arena-team-bot/internal/metrics"
	"arena-team-bot/internal/model"
	"arena-team-bot/internal/service"
)

// TeamService описывает операции реестра команд, которые нужны обработчикам.
type TeamService interface {
	CreateTeam(ctx context.Context, name, creatorID, creatorHandle string) (model.Team, error)
	OpenTeamOwnedBy(ctx context.Context, ownerID string) (model.Team, error)
	GetTeam(ctx context.Context, name string) (model.Team, error)
}

// InviteService описывает рукопожатие инвайта.
type InviteService interface {
	IssueInvite(ctx context.Context, inviterID string, invitee model.Member, teamName string) (model.PendingInvite, error)
	ResolveInvite(ctx context.Context, inviteeID, text string) (model.Pairing, bool, error)
}

// Finalizer выдаёт роли и каналы и заполняет второй слот команды.
type Finalizer interface {
	FinalizeTeam(ctx context.Context, pairing model.Pairing) (model.Team, error)
}

// MemberResolver ищет участника сервера по имени пользователя.
type MemberResolver interface {
	ResolveMemberByName(ctx context.Context, name string) (model.Member, bool, error)
}

// Responder отвечает пользователю в контексте события. Ephemeral-ответ видит только автор команды.
type Responder interface {
	Respond(ctx context.Context, content string, ephemeral bool) error
}

// Command описывает вызов slash-команды.
type Command struct {
	Name    string
	User    model.Member
	Options map[string]string
}

// Message описывает обычное входящее сообщение (в канале сервера или в личке).
type Message struct {
	Author  model.Member
	IsBot   bool
	Content string
}

type Handler struct {
	Teams     TeamService
	Invites   InviteService
	Finalizer Finalizer
	Members   MemberResolver
	Metrics   *metrics.Metrics
	Log       *slog.Logger
}

func NewHandler(teams TeamService, invites InviteService, finalizer Finalizer, members MemberResolver, m *metrics.Metrics, log *slog.Logger) *Handler {
	return &Handler{
		Teams:     teams,
		Invites:   invites,
		Finalizer: finalizer,
		Members:   members,
		Metrics:   m,
		Log:       log,
	}
}

// HandleCommand маршрутизирует slash-команду и отвечает пользователю.
func (h *Handler) HandleCommand(ctx context.Context, cmd Command, r Responder) {
	log := h.Log.With(
		slog.String("event_id", uuid.NewString()),
		slog.String("command", cmd.Name),
		slog.String("user_id", cmd.User.ID),
	)

	var err error
	switch cmd.Name {
	case CommandCreateTeam:
		err = h.handleCreateTeam(ctx, cmd, r)
	case CommandInvitePlayer:
		err = h.handleInvitePlayer(ctx, cmd, r)
	case CommandTeamInfo:
		err = h.handleTeamInfo(ctx, cmd, r)
	default:
		err = service.ErrBadRequest("Unknown command.")
	}

	if err != nil {
		h.Metrics.ObserveCommand(cmd.Name, resultOf(err))
		h.writeError(ctx, log, r, err)
		return
	}
	h.Metrics.ObserveCommand(cmd.Name, metrics.ResultOK)
	log.Info("command handled")
}

// HandleMessage трактует сообщение пользователя с ожидающим инвайтом как ответ с ником.
func (h *Handler) HandleMessage(ctx context.Context, msg Message, r Responder) {
	if msg.IsBot {
		return
	}

	pairing, pending, err := h.Invites.ResolveInvite(ctx, msg.Author.ID, msg.Content)
	if !pending {
		if err != nil {
			h.Log.Error("resolve invite", slog.String("user_id", msg.Author.ID), slog.Any("err", err))
		}
		return
	}

	log := h.Log.With(
		slog.String("event_id", uuid.NewString()),
		slog.String("handler", "invite_response"),
		slog.String("user_id", msg.Author.ID),
	)

	if err == nil {
		_, err = h.Finalizer.FinalizeTeam(ctx, pairing)
	}
	if err != nil {
		h.Metrics.ObserveInviteResponse(resultOf(err))
		h.writeError(ctx, log, r, err)
		return
	}

	h.Metrics.ObserveInviteResponse(metrics.ResultOK)
	log.Info("invite accepted", slog.String("team", pairing.TeamName))

	if err := r.Respond(ctx, teamCompletedMessage(pairing), false); err != nil {
		log.Error("respond", slog.Any("err", err))
	}
}

// writeError логирует ошибку и отправляет пользователю короткое сообщение.
// Доменные ошибки показываются как есть, остальные заменяются обобщённым текстом.
func (h *Handler) writeError(ctx context.Context, log *slog.Logger, r Responder, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	content := appErr.Message
	if appErr.Code == service.CodeInternal {
		level = slog.LevelError
		content = "Something went wrong, please try again. ❌"
	}
	log.Log(ctx, level, "handler error",
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	if rErr := r.Respond(ctx, content, true); rErr != nil {
		log.Error("respond", slog.Any("err", rErr))
	}
}

func resultOf(err error) string {
	if service.IsCode(err, service.CodeInternal) {
		return metrics.ResultError
	}
	var appErr *service.AppError
	if errors.As(err, &appErr) {
		return metrics.ResultRejected
	}
	return metrics.ResultError
}
