package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/bruh/internal/bruh"
	"github.com/ironsheep/bruh/internal/imaging"
	"github.com/ironsheep/bruh/internal/storage"
)

func newCompileCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile <image>",
		Short: "Convert a raster image into a BRUH document",
		Long: `Convert a raster image (PNG, JPEG, GIF, TIFF, BMP or WebP) into a BRUH
document. Alpha is dropped. The document is written next to the input with
its extension replaced by .bruh unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compile(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "document path (default: input with .bruh extension)")
	cmd.Flags().IntP("workers", "w", 1, "goroutines encoding rows; negative uses every CPU")
	bindConfigKey(cmd.Flags(), "workers", "compile.workers")
	return cmd
}

func (a *app) compile(cmd *cobra.Command, path, output string) error {
	if !storage.Exists(path) {
		return fmt.Errorf("file not found: %s", path)
	}
	if output == "" {
		output = imaging.BruhPath(path)
	}
	if storage.SamePath(output, path) {
		return fmt.Errorf("output %s would overwrite the input", output)
	}

	raw, err := imaging.LoadRaw(path)
	if err != nil {
		return err
	}

	enc := bruh.Encoder{Workers: a.cfg.Compile.Workers}
	doc, err := enc.Encode(raw)
	if err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(output, doc, storage.DefaultPerm); err != nil {
		return err
	}

	log.Info("BRUH file created", "path", output, "width", raw.Width, "height", raw.Height, "bytes", len(doc))
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <document>",
		Short: "Render a BRUH document as a raster image",
		Long: `Decode a BRUH document and write it as a raster image. The output
extension selects the format; the default output is temp.png in the
working directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.preview(cmd, args[0])
		},
	}

	cmd.Flags().StringP("output", "o", "", "raster path (default from config, temp.png)")
	cmd.Flags().IntP("scale", "s", 1, "nearest-neighbor upscale factor")
	cmd.Flags().Bool("strict-rows", false, "reject documents whose newlines are not on row boundaries")
	bindConfigKey(cmd.Flags(), "output", "preview.output")
	bindConfigKey(cmd.Flags(), "scale", "preview.scale")
	bindConfigKey(cmd.Flags(), "strict-rows", "decode.strict_rows")
	return cmd
}

func (a *app) preview(cmd *cobra.Command, path string) error {
	if !storage.Exists(path) {
		return fmt.Errorf("file not found: %s", path)
	}

	data, err := storage.ReadFile(path)
	if err != nil {
		return err
	}
	dec := bruh.Decoder{StrictRows: a.cfg.Decode.StrictRows}
	raw, err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	output := a.cfg.Preview.Output
	if err := imaging.SaveRaw(raw, output, imaging.SaveOptions{Scale: a.cfg.Preview.Scale}); err != nil {
		return err
	}

	log.Info("preview written", "path", output, "width", raw.Width, "height", raw.Height, "scale", a.cfg.Preview.Scale)
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
