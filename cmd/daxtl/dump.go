package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brettviren/daxutil"
)

var dumpFormats = map[string]daxutil.Format{
	"json": daxutil.FormatJSON,
	"cbor": daxutil.FormatCBOR,
}

var dumpCompressions = map[string]daxutil.Compression{
	"none": daxutil.CompressNone,
	"zstd": daxutil.CompressZstd,
	"lz4":  daxutil.CompressLZ4,
}

func newDumpCmd(a *app) *cobra.Command {
	var format, compression, output string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the boundary sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := dumpFormats[format]
			if !ok {
				return fmt.Errorf("invalid --format %q", format)
			}
			c, ok := dumpCompressions[compression]
			if !ok {
				return fmt.Errorf("invalid --compress %q", compression)
			}

			if err := a.load(); err != nil {
				return err
			}

			opts := daxutil.DumpOptions{Format: f, Compression: c}
			if output == "" || output == "-" {
				if err := a.timeline.Dump(cmd.OutOrStdout(), opts); err != nil {
					return err
				}
			} else if err := dumpFile(a.timeline, output, opts); err != nil {
				return err
			}
			a.logger.Info("dumped timeline",
				"boundaries", a.timeline.Len(),
				"format", format,
				"compress", compression)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "record encoding (json, cbor)")
	cmd.Flags().StringVar(&compression, "compress", "none", "stream compression (none, zstd, lz4)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

// dumpFile writes the dump to path. A failed Close means the file may
// be truncated, so its error is returned.
func dumpFile(tl *daxutil.Timeline, path string, opts daxutil.DumpOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tl.Dump(file, opts); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
