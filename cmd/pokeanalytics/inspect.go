package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/notjagan/pokeanalytics/pkg/dataset"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/team"
	"github.com/spf13/cobra"
)

var inspectTeam bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <name|number>...",
	Short: "Print a Pokemon's defense profile, or analyze a team with --team",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectTeam, "team", false, "analyze the arguments as one team")
}

type inspection struct {
	Pokemon *model.Pokemon       `json:"pokemon"`
	Defense model.DefenseProfile `json:"defense"`
}

func lookup(dex *model.Dex, arg string) (*model.Pokemon, error) {
	if number, err := strconv.Atoi(arg); err == nil {
		return dex.ByNumber(number)
	}

	return dex.ByName(arg)
}

func runInspect(cmd *cobra.Command, args []string) error {
	dex, err := dataset.Load(cfg.Dataset.Path, logger)
	if err != nil {
		return err
	}

	pokemon := make([]*model.Pokemon, len(args))
	for i, arg := range args {
		pokemon[i], err = lookup(dex, arg)
		if err != nil {
			return err
		}
	}

	var out any
	if inspectTeam {
		roster := team.New(pokemon...)
		if roster.Len() < len(pokemon) {
			return fmt.Errorf("a team holds at most %d distinct pokemon", team.MaxSize)
		}

		out, err = team.Analyze(roster, model.DefaultTypeChart)
		if err != nil {
			return err
		}
	} else {
		inspections := make([]inspection, len(pokemon))
		for i, p := range pokemon {
			inspections[i] = inspection{Pokemon: p, Defense: p.DefenseProfile()}
		}
		out = inspections
		if len(inspections) == 1 {
			out = inspections[0]
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
