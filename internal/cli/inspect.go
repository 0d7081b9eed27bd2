package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/bruh/internal/bruh"
	"github.com/ironsheep/bruh/internal/imaging"
	"github.com/ironsheep/bruh/internal/storage"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <document>",
		Short: "Describe a BRUH document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd, args[0])
		},
	}

	cmd.Flags().Bool("strict-rows", false, "fail when newlines are not on row boundaries")
	bindConfigKey(cmd.Flags(), "strict-rows", "decode.strict_rows")
	return cmd
}

func (a *app) inspect(cmd *cobra.Command, path string) error {
	if !storage.Exists(path) {
		return fmt.Errorf("file not found: %s", path)
	}
	data, err := storage.ReadFile(path)
	if err != nil {
		return err
	}

	if a.cfg.Decode.StrictRows {
		strict := bruh.Decoder{StrictRows: true}
		if _, err := strict.Decode(data); err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	info, err := imaging.InspectDocument(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "file:\t%s\n", path)
	fmt.Fprintf(w, "dimensions:\t%dx%d\n", info.Width, info.Height)
	fmt.Fprintf(w, "size:\t%d bytes\n", info.SizeBytes)
	fmt.Fprintf(w, "tokens:\t%d\n", info.Tokens)
	fmt.Fprintf(w, "newlines:\t%d\n", info.Newlines)
	fmt.Fprintf(w, "rows aligned:\t%t\n", info.RowsAligned)
	if avg := info.Average; avg != nil {
		fmt.Fprintf(w, "average:\t%s hsl(%d, %d%%, %d%%)\n", avg.Hex, avg.HSL.H, avg.HSL.S, avg.HSL.L)
	}
	return w.Flush()
}
