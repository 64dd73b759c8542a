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
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/romawi/internal/numeral"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the letter to numeral table",
	Long: `Print every letter A-Z with its alphabet position and Roman numeral.

Example:
  romawi table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "LETTER\tPOSITION\tNUMERAL")
		for _, p := range numeral.Table() {
			fmt.Fprintf(w, "%c\t%d\t%s\n", p.Letter, p.Position, p.Numeral)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
