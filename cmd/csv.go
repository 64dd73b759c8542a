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
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/batch"
	"github.com/valpere/romawi/internal/preprocess"
)

var (
	csvInputFile  string
	csvOutputFile string
	csvColumns    []int
	csvHeader     bool
)

type cellRef struct {
	row, col int
}

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Translate columns of a CSV file",
	Long: `Translate one or more columns in a CSV file.

By default all columns are translated. Use -l to select specific columns
(0-indexed). The flag may be repeated to select multiple columns. The first
row is treated as a header and copied unchanged unless --header=false.

Cells that are not valid for the mode keep their original value and are
reported on stderr.

Example:
  romawi translate csv -m text -i names.csv -o numerals.csv -l 1
  romawi translate csv -m auto -i mixed.csv -o out.csv --header=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if csvInputFile == "" || csvOutputFile == "" {
			return fmt.Errorf("both --input and --output are required")
		}
		if csvInputFile == csvOutputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		f, err := os.Open(csvInputFile)
		if err != nil {
			return fmt.Errorf("failed to open input CSV: %w", err)
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read CSV: %w", err)
		}

		if len(records) == 0 {
			return fmt.Errorf("CSV file is empty")
		}
		cmd.SilenceUsage = true

		colSet := make(map[int]bool, len(csvColumns))
		for _, c := range csvColumns {
			colSet[c] = true
		}
		translateAll := len(csvColumns) == 0

		firstRow := 0
		if csvHeader {
			firstRow = 1
		}

		mode, resolve := modeResolver()
		now := time.Now()

		// Build output records and collect the cells to translate.
		out := make([][]string, len(records))
		var refs []cellRef
		var reqs []internal.TranslationRequest
		for rowIdx, row := range records {
			out[rowIdx] = make([]string, len(row))
			copy(out[rowIdx], row)

			if rowIdx < firstRow {
				continue
			}
			for colIdx, cell := range row {
				if !translateAll && !colSet[colIdx] {
					continue
				}
				text := preprocess.Clean(cell)
				if strings.TrimSpace(text) == "" {
					continue
				}
				refs = append(refs, cellRef{row: rowIdx, col: colIdx})
				reqs = append(reqs, internal.TranslationRequest{
					ID:        fmt.Sprintf("%d:%d", rowIdx, colIdx),
					Text:      text,
					Mode:      mode,
					Timestamp: now,
				})
			}
		}

		runner := batch.New(batch.Config{Workers: appCfg.Workers, Resolve: resolve})
		result, err := runner.Execute(context.Background(), reqs)
		if err != nil {
			return fmt.Errorf("failed to translate CSV: %w", err)
		}

		stderr := cmd.ErrOrStderr()
		for i, res := range result.Results {
			ref := refs[i]
			if !res.OK() {
				fmt.Fprintln(stderr, msgs.T("CellFailed", map[string]any{
					"Row":     ref.row,
					"Col":     ref.col,
					"Message": diagnostic(res),
				}))
				continue
			}
			out[ref.row][ref.col] = res.Output
		}

		outFile, err := os.Create(csvOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output CSV: %w", err)
		}
		defer outFile.Close()

		writer := csv.NewWriter(outFile)
		if err := writer.WriteAll(out); err != nil {
			return fmt.Errorf("failed to write output CSV: %w", err)
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("failed to flush output CSV: %w", err)
		}

		fmt.Fprintln(stderr, msgs.Plural("BatchSummary", result.Succeeded, map[string]any{
			"Succeeded": result.Succeeded,
			"Failed":    result.Failed,
		}))
		fmt.Fprintln(cmd.OutOrStdout(), msgs.T("CSVDone", map[string]any{"Path": csvOutputFile}))
		return nil
	},
}

func init() {
	translateCmd.AddCommand(csvCmd)

	csvCmd.Flags().StringVarP(&csvInputFile, "input", "i", "", "Input CSV file (required)")
	csvCmd.Flags().StringVarP(&csvOutputFile, "output", "o", "", "Output CSV file (required)")
	csvCmd.Flags().IntSliceVarP(&csvColumns, "column", "l", nil, "Column index to translate (0-indexed, repeatable; default: all columns)")
	csvCmd.Flags().BoolVar(&csvHeader, "header", true, "Treat the first row as a header and copy it unchanged")
}
