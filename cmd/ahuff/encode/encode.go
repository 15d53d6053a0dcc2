package encode

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/ahuff"
	"github.com/chronos-tachyon/ahuff/frame"
	"github.com/chronos-tachyon/ahuff/internal/cli"
)

// NewCmd returns the "encode" command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text or a file with an adaptive Huffman code",
		Long: "Encode the positional arguments (joined by spaces), the file given by --in, or stdin.\n" +
			"The bits format writes '0' and '1' characters; the frame format writes a binary container.",
		RunE: run,
	}
	cmd.Flags().StringP("in", "i", "", "Input file (default stdin)")
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringP("format", "f", cli.FormatBits, "Output format: bits|frame")
	cmd.Flags().BoolP("stats", "s", false, "Print adaptive vs. static code statistics to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")
	formatFlag, _ := cmd.Flags().GetString("format")
	stats, _ := cmd.Flags().GetBool("stats")

	format, err := cli.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	input, err := cli.ReadInput(cmd, args, inPath)
	if err != nil {
		return err
	}

	logger := cli.Logger(cmd)
	e := ahuff.NewEncoder()
	e.SetLogger(logger)
	bits := e.Encode(input)

	var out []byte
	switch format {
	case cli.FormatBits:
		out = []byte(bits.String() + "\n")
	case cli.FormatFrame:
		var buf bytes.Buffer
		if err := frame.Write(&buf, bits); err != nil {
			return err
		}
		out = buf.Bytes()
	}
	if err := cli.WriteOutput(cmd, outPath, out); err != nil {
		return err
	}

	logger.Info().
		Int("symbols", len(input)).
		Int("bits", bits.Len()).
		Str("format", format).
		Msg("encode finished")

	if stats {
		fmt.Fprintln(cmd.ErrOrStderr(), ahuff.Analyze(input))
	}
	return nil
}
