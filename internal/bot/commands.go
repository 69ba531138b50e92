package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/scoring"
)

const helpText = `Available commands:
/top [n] - Top of the leaderboard
/rank <name> - Points, rank and recent submissions for one participant
/miles - Distance challenge standings
/help - Show this message

Examples:
/top 5
/rank Alice Smith
/rank alice-smith`

type commandHandler func(context.Context, *tgbotapi.Message) error

func (b *Bot) routeCommands(cmd string) (commandHandler, bool) {
	commands := map[string]commandHandler{
		"start": b.handleHelp,
		"help":  b.handleHelp,
		"top":   b.handleTop,
		"rank":  b.handleRank,
		"miles": b.handleMiles,
	}
	handler, found := commands[cmd]
	return handler, found
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		b.sendHelp(msg.Chat.ID)
		return
	}

	handler, ok := b.routeCommands(msg.Command())
	if !ok {
		b.sendHelp(msg.Chat.ID)
		return
	}

	if err := handler(ctx, msg); err != nil {
		logger.Error.Printf("Command error: %v", err)
		b.sendMessage(msg.Chat.ID, "Could not read the leaderboard right now, try again in a minute.")
	}
}

func (b *Bot) handleHelp(ctx context.Context, msg *tgbotapi.Message) error {
	return b.sendMessage(msg.Chat.ID, helpText)
}

func (b *Bot) sendHelp(chatID int64) error {
	return b.sendMessage(chatID, "Send /help for the list of commands.")
}

func (b *Bot) handleTop(ctx context.Context, msg *tgbotapi.Message) error {
	n := b.service.Config.Bot.TopSize
	if arg := strings.TrimSpace(msg.CommandArguments()); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed <= 0 {
			return b.sendMessage(msg.Chat.ID, "Usage: /top [n]")
		}
		n = parsed
	}

	st, err := b.service.Standings(ctx)
	if err != nil {
		return err
	}
	return b.sendMessage(msg.Chat.ID, formatTop(st.Leaderboard, n))
}

func (b *Bot) handleRank(ctx context.Context, msg *tgbotapi.Message) error {
	query := strings.TrimSpace(msg.CommandArguments())
	if query == "" {
		return b.sendMessage(msg.Chat.ID, "Usage: /rank <name>")
	}

	st, err := b.service.Standings(ctx)
	if err != nil {
		return err
	}

	view, err := findProfile(st, query)
	if err != nil {
		return b.sendMessage(msg.Chat.ID, fmt.Sprintf("No one called %q is on the leaderboard.", query))
	}
	return b.sendMessage(msg.Chat.ID, formatProfile(view))
}

func (b *Bot) handleMiles(ctx context.Context, msg *tgbotapi.Message) error {
	st, err := b.service.Standings(ctx)
	if err != nil {
		return err
	}
	return b.sendMessage(msg.Chat.ID, formatMiles(st.MileageLeaderboard, st.Rules.MileageGoal))
}

func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

// findProfile accepts the exact sheet name or anything that slugs to it.
func findProfile(st *scoring.Standings, query string) (*scoring.ProfileView, error) {
	if view, err := st.Profile(query); err == nil {
		return view, nil
	}
	return st.ProfileBySlug(scoring.Slug(query))
}
