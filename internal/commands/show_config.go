// internal/commands/show_config.go
package tempus

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tempusmcp/tempus/internal/appconfig"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		strict := viper.GetBool("strictArgs")
		fallback := appconfig.Config{
			ServerNameValue:    viper.GetString("serverName"),
			ServerVersionValue: viper.GetString("serverVersion"),
			Debug:              viper.GetBool("debug"),
			StrictArgs:         &strict,
			LogFile:            viper.GetString("logFile"),
		}
		file := ""
		if cfg := GetConfig(); cfg != nil {
			file = cfg.ConfigPath
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
