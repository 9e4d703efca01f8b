package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grouping-service/internal/client"
)

// cliConfig - настройки groupingctl: флаги, переменные GROUPINGCTL_* и значения по умолчанию.
type cliConfig struct {
	APIURL       string        `mapstructure:"api_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	TournamentID string        `mapstructure:"tournament"`
	CategoryID   string        `mapstructure:"category"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "groupingctl",
		Short:         "Распределение команд турнира по пулам",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("api-url", "http://localhost:8080", "адрес grouping-service")
	flags.Duration("timeout", 10*time.Second, "таймаут запроса к API")
	flags.String("tournament", "", "ID турнира")
	flags.String("category", "", "ID категории (пусто - все категории)")

	_ = v.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = v.BindPFlag("tournament", flags.Lookup("tournament"))
	_ = v.BindPFlag("category", flags.Lookup("category"))

	v.SetEnvPrefix("GROUPINGCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newBoardCmd(v),
		newEditCmd(v),
		newPoolsCmd(v),
	)
	return root
}

func loadCLIConfig(v *viper.Viper) (cliConfig, error) {
	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if cfg.TournamentID == "" {
		return cfg, errors.New("--tournament is required")
	}
	if cfg.APIURL == "" {
		return cfg, errors.New("--api-url is required")
	}
	return cfg, nil
}

func newClient(cfg cliConfig) (*client.Client, error) {
	return client.New(cfg.APIURL, cfg.Timeout)
}
