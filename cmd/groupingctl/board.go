package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grouping-service/api"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(26)
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

func newBoardCmd(v *viper.Viper) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Показать распределение команд по пулам",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(v)
			if err != nil {
				return err
			}

			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			board, err := c.Board(cmd.Context(), cfg.TournamentID, cfg.CategoryID)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(board)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderBoard(board))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "вывести доску в JSON")
	return cmd
}

func renderBoard(board *api.Board) string {
	columns := make([]string, 0, len(board.Pools)+1)
	columns = append(columns, renderContainer(board.Unassigned))
	for _, pool := range board.Pools {
		columns = append(columns, renderContainer(pool))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if len(board.Orphaned) > 0 {
		names := make([]string, 0, len(board.Orphaned))
		for _, card := range board.Orphaned {
			names = append(names, card.TeamName)
		}
		out += "\n" + mutedStyle.Render("Pool without stage: "+strings.Join(names, ", "))
	}
	return out
}

func renderContainer(container api.Container) string {
	lines := []string{headerStyle.Render(container.Title) + " " + mutedStyle.Render(container.Badge)}
	if len(container.Cards) == 0 && container.Placeholder != nil {
		lines = append(lines, mutedStyle.Render(*container.Placeholder))
	}
	for _, card := range container.Cards {
		lines = append(lines, card.TeamName, "  "+mutedStyle.Render(card.OrganisationName))
	}
	return columnStyle.Render(strings.Join(lines, "\n"))
}
