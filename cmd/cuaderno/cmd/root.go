package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"cuaderno/cmd/cuaderno/cmd/types"
	"cuaderno/internal/app/client"
	"cuaderno/internal/app/client/config"
	"cuaderno/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	jsonOutput bool
	serverURL  string
	farmFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "cuaderno",
	Short: "Cuaderno - cuaderno de explotación ganadera",
	Long: `Cuaderno es el cliente de línea de comandos del cuaderno de
explotación: registros de plagas, limpieza, personal, residuos,
cadáveres, mantenimiento, formación y datos de la explotación.

Los registros se guardan en el servidor y pertenecen siempre al usuario
autenticado y a una explotación concreta.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serverURL != "" {
		cfg.BaseURL = serverURL
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		configDir := filepath.Join(home, ".cuaderno")
		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "fichero de configuración")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "salida en formato JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL del servidor")
	rootCmd.PersistentFlags().StringVar(&farmFlag, "farm", "", "explotación sobre la que operar")
}
