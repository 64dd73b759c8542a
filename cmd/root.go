/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/romawi/internal/config"
	"github.com/valpere/romawi/internal/i18n"
)

var version = "0.1.0"

var (
	cfgFile string
	locale  string
	verbose bool

	v      = config.New()
	appCfg *config.Config
	msgs   *i18n.Localizer
)

var rootCmd = &cobra.Command{
	Use:   "romawi",
	Short: "Roman numeral ↔ letter translator",
	Long: `A CLI application that translates between Roman numerals and the letters A-Z,
where each letter stands for its position in the alphabet (A = I, Z = XXVI).

Numerals are written comma-separated inside a word and words are separated
by spaces: "VIII,IX" is "HI".

Use "romawi translate --help" for translation options and
"romawi interactive" for the interactive translator.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		for _, name := range []string{"mode", "workers"} {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}

		cfg, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		appCfg = cfg
		msgs = i18n.NewTranslator(cfg.Locale).For(cfg.Locale)

		slog.Debug("configuration loaded", "locale", cfg.Locale, "mode", cfg.Mode, "workers", cfg.Workers)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.romawi.yaml)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", i18n.DefaultLocale, "Message language (id or en)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging on stderr")

	_ = v.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))
}
