package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/brettviren/daxutil"
)

// app carries state shared by every subcommand. The persistent pre-run
// parses the global flags; commands that need the timeline call load.
type app struct {
	epochs   string
	logLevel string
	hash     string

	logger   *slog.Logger
	alg      int
	timeline *daxutil.Timeline
}

var hashAlgorithms = map[string]int{
	"xxh3":    daxutil.AlgXXHash3,
	"fnv1a":   daxutil.AlgFNV1a,
	"blake2b": daxutil.AlgBlake2b,
	"blake3":  daxutil.AlgBlake3,
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "daxtl",
		Short: "Query an epoch timeline",
		Long: `Load epochs from a file and query the resulting timeline.

Where epochs overlap, the one with the largest id is in effect.

Examples:
  daxtl -f epochs.yaml query 105 125 185
  daxtl -f epochs.jsonc active 125
  daxtl -f epochs.yaml dump --format cbor --compress zstd -o tl.cbor.zst
  daxtl -f epochs.yaml.zst check`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.addFlags(root.PersistentFlags())

	root.AddCommand(
		newQueryCmd(a),
		newActiveCmd(a),
		newDumpCmd(a),
		newCheckCmd(a),
	)
	return root
}

func (a *app) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.epochs, "epochs", "f", "", "epoch file (.yaml, .yml, .json, .jsonc, optionally .zst or .lz4)")
	fs.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&a.hash, "hash", "xxh3", "fingerprint algorithm (xxh3, fnv1a, blake2b, blake3)")
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	alg, ok := hashAlgorithms[strings.ToLower(a.hash)]
	if !ok {
		return fmt.Errorf("invalid --hash %q", a.hash)
	}
	a.alg = alg
	return nil
}

// load reads the epoch file and builds the timeline. Built-in commands
// such as help and completion never call it, so they run without -f.
func (a *app) load() error {
	if a.epochs == "" {
		return fmt.Errorf("--epochs is required")
	}

	ef, err := readEpochFile(a.epochs)
	if err != nil {
		return err
	}
	a.timeline, err = build(ef, daxutil.Config{HashAlgorithm: a.alg}, a.logger)
	if err != nil {
		return fmt.Errorf("%s: %w", a.epochs, err)
	}
	return nil
}
