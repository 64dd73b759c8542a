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
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/romawi/internal/detector"
	"github.com/valpere/romawi/internal/session"
	"github.com/valpere/romawi/internal/tui"
)

var interactiveMode string

var interactiveCmd = &cobra.Command{
	Use:     "interactive [text...]",
	Aliases: []string{"tui"},
	Short:   "Open the interactive translator",
	Long: `Open a terminal translator that converts as you type.

Keys:
  tab, ctrl+s   swap direction, carrying the last result into the input
  ctrl+y        copy the result to the clipboard
  esc, enter    close a notification
  ctrl+c        quit

Example:
  romawi interactive -m text
  romawi tui "VIII,IX"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, auto := appCfg.ParsedMode()
		initial := strings.Join(args, " ")
		if auto {
			// Detection needs input; an empty start opens on numerals.
			mode = detector.New().DetectOr(initial, mode)
		}

		sess := session.New(mode)
		if initial != "" {
			sess.SetInput(initial)
		}

		slog.Debug("interactive session started", "mode", mode.String())
		if err := tui.Run(sess, msgs); err != nil {
			return fmt.Errorf("failed to run interactive translator: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().StringVarP(&interactiveMode, "mode", "m", "roman", "Starting input side: roman, text or auto")
}
