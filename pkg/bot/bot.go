// Package bot hosts the slash commands on a Discord session.
package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/pokeanalytics/pkg/command"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"go.uber.org/zap"
)

type Options struct {
	Token string
	// ResourceGuildID is the guild holding the type emojis. Commands are
	// registered there instead of globally when it is set.
	ResourceGuildID string
	DefaultLanguage model.Language
}

type Bot struct {
	opts     Options
	builder  *command.Builder
	commands map[string]command.Command
	logger   *zap.Logger
	session  *discordgo.Session

	mu     sync.Mutex
	guilds map[string]*command.Guild
}

func New(opts Options, builder *command.Builder, logger *zap.Logger) (*Bot, error) {
	cmds, err := builder.All()
	if err != nil {
		return nil, fmt.Errorf("error while getting all commands for bot: %w", err)
	}

	return &Bot{
		opts:     opts,
		builder:  builder,
		commands: cmds,
		logger:   logger,
		guilds:   make(map[string]*command.Guild),
	}, nil
}

func (bot *Bot) Close() {
	bot.logger.Info("shutting down discord session")
	err := bot.session.Close()
	if err != nil {
		bot.logger.Error("error while closing discord session", zap.Error(err))
	}
}

// guild returns the state for guildID, creating it with the guild's
// preferred locale on first use.
func (bot *Bot) guild(guildID string, locale discordgo.Locale) *command.Guild {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	guild, ok := bot.guilds[guildID]
	if !ok {
		lang := bot.opts.DefaultLanguage
		if locale != "" {
			lang = model.LanguageFromLocale(locale)
		}
		guild = command.NewGuild(guildID, lang)
		bot.guilds[guildID] = guild
	}

	return guild
}

func (bot *Bot) addGuild(guild *discordgo.Guild) {
	state := bot.guild(guild.ID, discordgo.Locale(guild.PreferredLocale))
	if guild.ID == bot.opts.ResourceGuildID {
		bot.builder.Emojis().Set(guild.Emojis)
	}

	bot.logger.Info("joined guild",
		zap.String("guild", guild.Name),
		zap.String("language", state.Language().String()),
	)
}

func (bot *Bot) removeGuild(guild *discordgo.Guild) {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	delete(bot.guilds, guild.ID)
}

func (bot *Bot) initialize(ctx context.Context) error {
	sess, err := discordgo.New("Bot " + bot.opts.Token)
	if err != nil {
		return fmt.Errorf("failed to instantiate discord bot: %w", err)
	}
	bot.session = sess

	bot.session.AddHandler(func(_ *discordgo.Session, create *discordgo.GuildCreate) {
		bot.addGuild(create.Guild)
	})
	bot.session.AddHandler(func(_ *discordgo.Session, delete *discordgo.GuildDelete) {
		bot.removeGuild(delete.Guild)
	})
	bot.session.AddHandler(func(_ *discordgo.Session, update *discordgo.GuildEmojisUpdate) {
		if update.GuildID == bot.opts.ResourceGuildID {
			bot.builder.Emojis().Set(update.Emojis)
		}
	})
	bot.session.AddHandler(func(sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
		bot.dispatch(ctx, sess, interaction)
	})

	err = bot.session.Open()
	if err != nil {
		return fmt.Errorf("failed to start discord session: %w", err)
	}

	err = bot.registerCommands()
	if err != nil {
		return fmt.Errorf("error while registering commands: %w", err)
	}

	return nil
}

func (bot *Bot) Run(ctx context.Context) error {
	err := bot.initialize(ctx)
	if err != nil {
		return fmt.Errorf("error while initializing bot: %w", err)
	}

	bot.logger.Info("hosting pokedex bot", zap.Int("commands", len(bot.commands)))
	defer bot.Close()
	<-ctx.Done()

	return nil
}

var ErrNoMatchingCommand = errors.New("no matching command")

func (bot *Bot) command(name string) (command.Command, error) {
	cmd, ok := bot.commands[name]
	if !ok {
		return nil, fmt.Errorf("command %q: %w", name, ErrNoMatchingCommand)
	}

	return cmd, nil
}

func (bot *Bot) dispatch(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
	var locale discordgo.Locale
	if interaction.GuildLocale != nil {
		locale = *interaction.GuildLocale
	}
	guild := bot.guild(interaction.GuildID, locale)
	logger := bot.logger.With(zap.String("guild", interaction.GuildID))

	var err error
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		name := interaction.ApplicationCommandData().Name
		logger = logger.With(zap.String("command", name))
		logger.Debug("handling command")

		var cmd command.Command
		cmd, err = bot.command(name)
		if err == nil {
			err = cmd.Handle(ctx, guild, sess, interaction)
		}

	case discordgo.InteractionApplicationCommandAutocomplete:
		name := interaction.ApplicationCommandData().Name
		logger = logger.With(zap.String("command", name))

		var cmd command.Command
		cmd, err = bot.command(name)
		if err == nil {
			err = cmd.Autocomplete(ctx, guild, sess, interaction)
		}

	case discordgo.InteractionMessageComponent:
		var (
			name   string
			cmd    command.Command
			reader io.Reader
		)
		name, reader, err = command.ButtonCommand(interaction.MessageComponentData().CustomID)
		if err == nil {
			logger = logger.With(zap.String("command", name))
			cmd, err = bot.command(name)
		}
		if err == nil {
			err = cmd.Button(ctx, guild, sess, interaction, reader)
		}

	default:
		logger.Debug("ignoring interaction", zap.Stringer("type", interaction.Type))
		return
	}

	if err != nil {
		logger.Error("error while handling interaction", zap.Error(err))
	}
}

func (bot *Bot) registerCommands() error {
	appCommands := make([]*discordgo.ApplicationCommand, 0, len(bot.commands))
	for _, cmd := range bot.commands {
		appCommands = append(appCommands, cmd.ApplicationCommand())
	}

	_, err := bot.session.ApplicationCommandBulkOverwrite(bot.session.State.User.ID, bot.opts.ResourceGuildID, appCommands)
	if err != nil {
		return fmt.Errorf("failed to register %d commands: %w", len(appCommands), err)
	}

	return nil
}
