package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"arena-team-bot/internal/bot"
)

// commandFromInteraction конвертирует вызов slash-команды. ok=false для прочих типов взаимодействий.
func commandFromInteraction(i *discordgo.InteractionCreate) (bot.Command, bool) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionApplicationCommand {
		return bot.Command{}, false
	}

	data := i.ApplicationCommandData()
	options := make(map[string]string, len(data.Options))
	for _, opt := range data.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			options[opt.Name] = opt.StringValue()
		}
	}

	// В личных сообщениях Member не заполняется.
	user := memberFromUser(i.User)
	if i.Member != nil {
		user = memberFromDiscord(i.Member)
	}
	return bot.Command{Name: data.Name, User: user, Options: options}, true
}

func messageFromEvent(m *discordgo.MessageCreate) (bot.Message, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return bot.Message{}, false
	}
	return bot.Message{
		Author:  memberFromUser(m.Author),
		IsBot:   m.Author.Bot,
		Content: m.Content,
	}, true
}

func applicationCommands(specs []bot.CommandSpec) []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(specs))
	for _, spec := range specs {
		cmd := &discordgo.ApplicationCommand{
			Name:        spec.Name,
			Description: spec.Description,
		}
		for _, opt := range spec.Options {
			cmd.Options = append(cmd.Options, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        opt.Name,
				Description: opt.Description,
				Required:    opt.Required,
			})
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// interactionResponder отвечает на взаимодействие. Discord допускает один ответ на событие.
type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (r interactionResponder) Respond(ctx context.Context, content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
}

// channelResponder пишет в канал, откуда пришло сообщение. Ephemeral-ответов у обычных сообщений нет.
type channelResponder struct {
	session   *discordgo.Session
	channelID string
}

func (r channelResponder) Respond(ctx context.Context, content string, _ bool) error {
	_, err := r.session.ChannelMessageSend(r.channelID, content, discordgo.WithContext(ctx))
	return err
}
