package trace

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/ahuff"
	"github.com/chronos-tachyon/ahuff/internal/cli"
	"github.com/chronos-tachyon/ahuff/internal/render"
	"github.com/chronos-tachyon/ahuff/internal/xlog"
)

// NewCmd returns the "trace" command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [text...]",
		Short: "Show the code tree after every symbol, then verify the round trip",
		Long: "Encode the input one symbol at a time, printing the emitted code, the code table,\n" +
			"and the tree after each step. The final stream is then decoded and compared with the input.",
		RunE: run,
	}
	cmd.Flags().StringP("in", "i", "", "Input file (default stdin)")
	cmd.Flags().Bool("tree", true, "Draw the tree after each step")
	cmd.Flags().Bool("table", true, "Print the code table after each step")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")
	drawTree, _ := cmd.Flags().GetBool("tree")
	drawTable, _ := cmd.Flags().GetBool("table")
	colorMode, _ := cmd.Flags().GetString("color")

	input, err := cli.ReadInput(cmd, args, inPath)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	opts := render.Options{Color: xlog.UseColor(colorMode, w)}

	e := ahuff.NewEncoder()
	e.SetLogger(cli.Logger(cmd))
	tree := e.Tree()

	var stream ahuff.Bits
	for i, ch := range input {
		sym := ahuff.Symbol(ch)
		_, seen := tree.Leaf(sym)
		code := e.EncodeSymbol(sym)
		stream.AppendBits(code)

		kind := "repeat"
		if !seen {
			kind = "new symbol"
		}
		fmt.Fprintf(w, "step %d: %s -> %s (%s)\n", i+1, render.SymbolString(sym), code, kind)
		fmt.Fprintf(w, "stream: %s\n", stream)
		if drawTable {
			fmt.Fprintln(w, render.Table(tree))
		}
		if drawTree {
			io.WriteString(w, render.Render(tree, opts))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "final stream (%d bits): %s\n", stream.Len(), stream)

	decoded, err := ahuff.NewDecoder().Decode(stream)
	if err != nil {
		return fmt.Errorf("failed to decode the trace stream: %w", err)
	}
	fmt.Fprintf(w, "decoded: %s\n", decoded)
	if string(decoded) != string(input) {
		fmt.Fprintln(w, "round trip: MISMATCH")
		return fmt.Errorf("decoded message does not match the input")
	}
	fmt.Fprintln(w, "round trip: OK")
	return nil
}
