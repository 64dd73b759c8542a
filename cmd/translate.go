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
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/batch"
	"github.com/valpere/romawi/internal/preprocess"
	"github.com/valpere/romawi/internal/translator"
)

var (
	inputFile  string
	outputFile string
	modeName   string
	workers    int
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate numerals to letters or letters to numerals",
	Long: `Translate text given as arguments, read from a file or piped into stdin.

Modes:
  - roman   numerals in, letters out: "VIII,IX" -> "HI"
  - text    letters in, numerals out: "HI" -> "VIII,IX"
  - auto    choose per line

File and stdin input is translated line by line. Lines that are not valid for
the mode are reported on stderr, left empty in the output and make the command
exit with a non-zero status.

Examples:
  romawi translate -m roman "VIII,IX XV,XV"
  romawi translate -m text -i message.txt -o numerals.txt
  echo "hello world" | romawi translate -m auto`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, multiline, err := readInput(args, inputFile, os.Stdin)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		var lines []string
		if multiline {
			lines = preprocess.Lines(text)
		} else {
			lines = []string{preprocess.Clean(text)}
		}

		mode, resolve := modeResolver()
		reqs := make([]internal.TranslationRequest, len(lines))
		now := time.Now()
		for i, line := range lines {
			reqs[i] = internal.TranslationRequest{
				ID:        fmt.Sprintf("%d", i+1),
				Text:      line,
				Mode:      mode,
				Timestamp: now,
			}
		}

		runner := batch.New(batch.Config{Workers: appCfg.Workers, Resolve: resolve})
		result, err := runner.Execute(context.Background(), reqs)
		if err != nil {
			return fmt.Errorf("failed to translate: %w", err)
		}

		stderr := cmd.ErrOrStderr()
		out := make([]string, len(result.Results))
		succeeded, failed := 0, 0
		for i, res := range result.Results {
			if res.OK() {
				out[i] = res.Output
				succeeded++
				continue
			}
			// Blank lines in a file stay blank.
			if multiline && res.Kind() == translator.KindEmpty {
				continue
			}
			failed++
			fmt.Fprintln(stderr, msgs.T("LineFailed", map[string]any{
				"Line":    i + 1,
				"Message": diagnostic(res),
			}))
		}

		output := strings.Join(out, "\n")
		if len(out) > 0 {
			output += "\n"
		}
		if err := writeOutput(cmd.OutOrStdout(), outputFile, output); err != nil {
			return err
		}

		if multiline {
			fmt.Fprintln(stderr, msgs.Plural("BatchSummary", succeeded, map[string]any{
				"Succeeded": succeeded,
				"Failed":    failed,
			}))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d lines could not be translated", failed, succeeded+failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.PersistentFlags().StringVarP(&modeName, "mode", "m", "roman", "Input side: roman, text or auto")
	translateCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Concurrent translations for files and CSV (0 = number of CPUs)")

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (default: arguments or stdin)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
}
