// internal/commands/root.go
package tempus

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tempusmcp/tempus/internal/appconfig"
	"github.com/tempusmcp/tempus/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tempus",
	Short: "tempus — MCP stdio server exposing date and time tools",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadPath := cfgFile
		if loadPath == appconfig.DefaultConfigPath {
			// Not set explicitly; let Load search the default and
			// legacy locations and tolerate their absence.
			loadPath = ""
		}
		cfg, err := appconfig.Load(loadPath)
		if err != nil {
			return err
		}

		// Flags changed on the command line win over file values.
		flags := cmd.Root().PersistentFlags()
		if flags.Changed("debug") {
			cfg.Debug = viper.GetBool("debug")
		}
		if flags.Changed("strictArgs") {
			strict := viper.GetBool("strictArgs")
			cfg.StrictArgs = &strict
		}
		if flags.Changed("serverName") {
			cfg.ServerNameValue = viper.GetString("serverName")
		}
		if flags.Changed("serverVersion") {
			cfg.ServerVersionValue = viper.GetString("serverVersion")
		}
		if flags.Changed("logFile") {
			cfg.LogFile = viper.GetString("logFile")
		}
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// GetConfig returns the configuration assembled from the config file and
// command-line flags. It is only valid after PersistentPreRunE has run.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "log every protocol exchange")
	rootCmd.PersistentFlags().Bool("strictArgs", true, "validate tool arguments against their declared schema")
	rootCmd.PersistentFlags().String("serverName", "", "server name advertised during initialize")
	rootCmd.PersistentFlags().String("serverVersion", "", "server version advertised during initialize")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("strictArgs", rootCmd.PersistentFlags().Lookup("strictArgs"))
	_ = viper.BindPFlag("serverName", rootCmd.PersistentFlags().Lookup("serverName"))
	_ = viper.BindPFlag("serverVersion", rootCmd.PersistentFlags().Lookup("serverVersion"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}
