package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPoolsCmd(v *viper.Viper) *cobra.Command {
	pools := &cobra.Command{
		Use:   "pools",
		Short: "Управление этапами-пулами",
	}

	var (
		count int
		names []string
	)
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Создать пулы Pool A, Pool B... или с заданными именами",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(v)
			if err != nil {
				return err
			}
			if len(names) == 0 && count < 1 {
				return errors.New("--count must be at least 1")
			}

			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			stages, err := c.GeneratePools(cmd.Context(), cfg.TournamentID, cfg.CategoryID, count, names)
			if err != nil {
				return err
			}

			for _, stage := range stages {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", stage.StageId, stage.Name)
			}
			return nil
		},
	}
	generate.Flags().IntVar(&count, "count", 0, "количество пулов")
	generate.Flags().StringSliceVar(&names, "name", nil, "имя пула (можно повторять)")

	pools.AddCommand(generate)
	return pools
}
