package decode

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/ahuff"
	"github.com/chronos-tachyon/ahuff/frame"
	"github.com/chronos-tachyon/ahuff/internal/cli"
)

// NewCmd returns the "decode" command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [bits...]",
		Short: "Decode an adaptive Huffman stream",
		Long: "Decode the positional arguments, the file given by --in, or stdin.\n" +
			"In the bits format, whitespace between '0' and '1' characters is ignored.",
		RunE: run,
	}
	cmd.Flags().StringP("in", "i", "", "Input file (default stdin)")
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringP("format", "f", cli.FormatBits, "Input format: bits|frame")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := cli.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	input, err := cli.ReadInput(cmd, args, inPath)
	if err != nil {
		return err
	}

	var bits ahuff.Bits
	switch format {
	case cli.FormatBits:
		bits, err = ahuff.ParseBits(string(input))
	case cli.FormatFrame:
		bits, err = frame.Read(bytes.NewReader(input))
	}
	if err != nil {
		return fmt.Errorf("failed to read %s input: %w", format, err)
	}

	logger := cli.Logger(cmd)
	d := ahuff.NewDecoder()
	d.SetLogger(logger)
	out, err := d.Decode(bits)
	if err != nil {
		return fmt.Errorf("decoded %d symbols before failing: %w", len(out), err)
	}
	if err := cli.WriteOutput(cmd, outPath, out); err != nil {
		return err
	}

	logger.Info().
		Int("symbols", len(out)).
		Int("bits", bits.Len()).
		Str("format", format).
		Msg("decode finished")
	return nil
}
