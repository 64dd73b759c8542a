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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/detector"
	"github.com/valpere/romawi/internal/translator"
)

// readInput collects the text to translate. Arguments win over --input,
// which wins over piped stdin. multiline is false only for arguments, which
// always form a single input.
func readInput(args []string, inputFile string, stdin *os.File) (text string, multiline bool, err error) {
	if len(args) > 0 {
		return strings.Join(args, " "), false, nil
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), true, nil
	}

	if isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
		return "", false, fmt.Errorf("no input: pass text as arguments, use --input or pipe text into stdin")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), true, nil
}

// modeResolver returns the fixed mode and, for --mode auto, a per-request
// resolver backed by the detector.
func modeResolver() (internal.Mode, func(req internal.TranslationRequest) internal.Mode) {
	mode, auto := appCfg.ParsedMode()
	if !auto {
		return mode, nil
	}

	det := detector.New()
	return mode, func(req internal.TranslationRequest) internal.Mode {
		return det.DetectOr(req.Text, req.Mode)
	}
}

// diagnostic renders the localized message for a failed result.
func diagnostic(res *translator.Result) string {
	return msgs.T(res.MessageID(), nil)
}

// writeOutput writes text to path, or to w when path is empty.
func writeOutput(w io.Writer, path, text string) error {
	if path == "" {
		_, err := fmt.Fprint(w, text)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
