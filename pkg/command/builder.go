package command

import (
	"fmt"
	"time"

	"github.com/notjagan/pokeanalytics/pkg/enrich"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/teambuilder"
	"go.uber.org/zap"
)

type commandFunc func(*Builder) (Command, error)

type Builder struct {
	pokedex  *model.Dex
	teams    *teambuilder.Service
	enricher *enrich.Enricher
	emojis   *Emojis
	logger   *zap.Logger

	funcs             []commandFunc
	autocompleteLimit int
	pageLimit         int
	// Discord drops interactions that are not answered within three seconds.
	fetchTimeout time.Duration
}

func NewBuilder(
	dex *model.Dex,
	teams *teambuilder.Service,
	enricher *enrich.Enricher,
	logger *zap.Logger,
) *Builder {
	return &Builder{
		pokedex:  dex,
		teams:    teams,
		enricher: enricher,
		emojis:   &Emojis{},
		logger:   logger,
		funcs: []commandFunc{
			(*Builder).dex,
			(*Builder).weak,
			(*Builder).team,
			(*Builder).browse,
			(*Builder).language,
		},
		autocompleteLimit: 25,
		pageLimit:         16,
		fetchTimeout:      2 * time.Second,
	}
}

// Emojis is filled in by the bot once the resource guild is available.
func (builder *Builder) Emojis() *Emojis {
	return builder.emojis
}

func (builder *Builder) All() (map[string]Command, error) {
	commands := make(map[string]Command, len(builder.funcs))

	for _, f := range builder.funcs {
		cmd, err := f(builder)
		if err != nil {
			return nil, fmt.Errorf("error while creating command: %w", err)
		}
		commands[cmd.Name()] = cmd
	}

	return commands, nil
}
