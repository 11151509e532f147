package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/xtensa/cmd/mc"
	"github.com/Manu343726/xtensa/cmd/settings"
	"github.com/Manu343726/xtensa/cmd/tools"
	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"
)

var cfgFile string
var cpuProfile bool

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "xtensa",
	Short: "Xtensa machine code tools",
	Long: `Decodes and encodes Xtensa machine code.

This CLI is the entry point for the codec: disassembling raw code and ELF objects,
encoding assembly into bytes and relocations, and documenting the instruction set.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, mc.McCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.xtensa.yaml)")
	flags.StringSlice(settings.Features, []string{"density", "windowed"}, "enabled core options")
	flags.String(settings.ByteOrder, "little", "byte order of instruction words (only little is supported)")
	flags.String(settings.LogLevel, "warn", "log level: debug, info, warn or error")
	flags.String(settings.LogFile, "", "also write JSON logs to this file")
	flags.String(settings.Color, "auto", "colored output: auto, always or never")
	flags.BoolVar(&cpuProfile, "profile", false, "write a CPU profile to the current directory")

	for _, key := range []string{settings.Features, settings.ByteOrder, settings.LogLevel, settings.LogFile, settings.Color} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".xtensa" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".xtensa")
	}

	viper.SetEnvPrefix("XTENSA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setup(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := settings.NewLogger(viper.GetString(settings.LogLevel), viper.GetString(settings.LogFile), os.Stderr)
	if err != nil {
		return err
	}

	atexit.Register(func() {
		if err := closeLog(); err != nil {
			fmt.Fprintln(os.Stderr, "Error closing log file:", err)
		}
	})

	slog.SetDefault(logger)

	colored, err := settings.ColorEnabled(viper.GetString(settings.Color), os.Stdout.Fd())
	if err != nil {
		return err
	}

	color.NoColor = !colored

	if cpuProfile {
		atexit.Register(profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop)
	}

	return nil
}
