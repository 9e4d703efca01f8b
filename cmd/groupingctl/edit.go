package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grouping-service/internal/tui"
)

func newEditCmd(v *viper.Viper) *cobra.Command {
	var readOnly bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Интерактивный редактор распределения",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(v)
			if err != nil {
				return err
			}

			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			model := tui.New(c, tui.Options{
				TournamentID: cfg.TournamentID,
				CategoryID:   cfg.CategoryID,
				ReadOnly:     readOnly,
			})

			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&readOnly, "readonly", false, "только просмотр")
	return cmd
}
