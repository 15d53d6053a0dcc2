// Package cli holds the input, output, and logging plumbing shared by the
// ahuff subcommands.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Stream formats accepted by --format.
const (
	FormatBits  = "bits"
	FormatFrame = "frame"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case FormatBits, FormatFrame:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s or %s)", s, FormatBits, FormatFrame)
	}
}

// Logger returns the logger installed in the command's context by the root
// command, or a disabled logger.
func Logger(cmd *cobra.Command) zerolog.Logger {
	return *zerolog.Ctx(cmd.Context())
}

// ReadInput returns the command's input: the positional arguments joined by
// spaces if there are any, else the file named by inPath, else stdin.  An
// inPath of "-" also means stdin.
func ReadInput(cmd *cobra.Command, args []string, inPath string) ([]byte, error) {
	if len(args) != 0 {
		if inPath != "" {
			return nil, fmt.Errorf("cannot combine --in with a positional argument")
		}
		return []byte(strings.Join(args, " ")), nil
	}
	if inPath == "" || inPath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filepath.Clean(inPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inPath, err)
	}
	return data, nil
}

// WriteOutput writes data to the file named by outPath, or to stdout if
// outPath is "" or "-".
func WriteOutput(cmd *cobra.Command, outPath string, data []byte) error {
	if outPath == "" || outPath == "-" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(filepath.Clean(outPath), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
