package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"arena-team-bot/internal/bot"
)

const defaultEventTimeout = 30 * time.Second

// EventHandler обрабатывает сконвертированные события. Реализуется bot.Handler.
type EventHandler interface {
	HandleCommand(ctx context.Context, cmd bot.Command, r bot.Responder)
	HandleMessage(ctx context.Context, msg bot.Message, r bot.Responder)
}

// Options настраивает подключение бота.
type Options struct {
	Token   string
	GuildID string
	// SyncGlobal дополнительно регистрирует команды глобально, а не только на сервере.
	SyncGlobal bool
	// EventTimeout ограничивает обработку одного события вместе с REST-вызовами.
	EventTimeout time.Duration
}

// Session держит gateway-подключение и маршрутизирует события в EventHandler.
// discordgo вызывает обработчики в отдельных горутинах.
type Session struct {
	session *discordgo.Session
	opts    Options
	handler EventHandler
	log     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession создаёт сессию без подключения к gateway.
func NewSession(opts Options, log *slog.Logger) (*Session, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("discord token is required")
	}
	if opts.GuildID == "" {
		return nil, fmt.Errorf("guild id is required")
	}
	if opts.EventTimeout <= 0 {
		opts.EventTimeout = defaultEventTimeout
	}

	s, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMembers |
		discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		session: s,
		opts:    opts,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Discord возвращает низкоуровневую сессию для платформенных операций.
func (s *Session) Discord() *discordgo.Session {
	return s.session
}

// Open регистрирует обработчики и подключается к gateway.
func (s *Session) Open(handler EventHandler) error {
	s.handler = handler
	s.session.AddHandler(s.onReady)
	s.session.AddHandler(s.onInteraction)
	s.session.AddHandler(s.onMessage)

	if err := s.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

// Close отменяет обработку событий и закрывает gateway-подключение.
func (s *Session) Close() error {
	s.cancel()
	return s.session.Close()
}

func (s *Session) onReady(ds *discordgo.Session, r *discordgo.Ready) {
	s.log.Info("discord connected",
		slog.String("user", r.User.Username),
		slog.Int("guilds", len(r.Guilds)),
	)

	ctx, cancel := context.WithTimeout(s.ctx, s.opts.EventTimeout)
	defer cancel()

	if err := s.syncCommands(ctx, r.User.ID); err != nil {
		s.log.Error("sync commands", slog.Any("err", err))
	}
}

func (s *Session) syncCommands(ctx context.Context, appID string) error {
	cmds := applicationCommands(bot.Commands())

	if _, err := s.session.ApplicationCommandBulkOverwrite(appID, s.opts.GuildID, cmds, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("guild commands: %w", err)
	}
	if s.opts.SyncGlobal {
		if _, err := s.session.ApplicationCommandBulkOverwrite(appID, "", cmds, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("global commands: %w", err)
		}
	}
	s.log.Info("commands synced", slog.Int("count", len(cmds)), slog.Bool("global", s.opts.SyncGlobal))
	return nil
}

func (s *Session) onInteraction(ds *discordgo.Session, i *discordgo.InteractionCreate) {
	cmd, ok := commandFromInteraction(i)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.opts.EventTimeout)
	defer cancel()

	s.handler.HandleCommand(ctx, cmd, interactionResponder{session: ds, interaction: i.Interaction})
}

func (s *Session) onMessage(ds *discordgo.Session, m *discordgo.MessageCreate) {
	msg, ok := messageFromEvent(m)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.opts.EventTimeout)
	defer cancel()

	s.handler.HandleMessage(ctx, msg, channelResponder{session: ds, channelID: m.ChannelID})
}
