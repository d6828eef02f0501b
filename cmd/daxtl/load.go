package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/brettviren/daxutil"
)

// epochFile is the on-disk shape of an epoch list. Deletions are applied
// after every epoch has been added.
type epochFile struct {
	Epochs []epochSpec `yaml:"epochs" json:"epochs"`
	Del    []int       `yaml:"del,omitempty" json:"del,omitempty"`
}

type epochSpec struct {
	ID    int   `yaml:"id" json:"id"`
	Begin int64 `yaml:"begin" json:"begin"`
	End   int64 `yaml:"end" json:"end"`
}

// readEpochFile opens path, strips a compression suffix, and parses the
// remainder by extension.
func readEpochFile(path string) (*epochFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	name := path
	switch {
	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: zstd: %w", path, err)
		}
		defer dec.Close()
		r = dec
		name = strings.TrimSuffix(name, ".zst")
	case strings.HasSuffix(name, ".lz4"):
		r = lz4.NewReader(f)
		name = strings.TrimSuffix(name, ".lz4")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", path, err)
	}
	ef, err := parseEpochs(data, filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ef, nil
}

func parseEpochs(data []byte, ext string) (*epochFile, error) {
	var ef epochFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ef); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &ef); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported epoch file extension %q", ext)
	}
	return &ef, nil
}

// build loads ef into a new timeline.
func build(ef *epochFile, config daxutil.Config, logger *slog.Logger) (*daxutil.Timeline, error) {
	tl := daxutil.New(config)
	for i, e := range ef.Epochs {
		if err := tl.Add(e.ID, daxutil.Tick(e.Begin), daxutil.Tick(e.End)); err != nil {
			return nil, fmt.Errorf("epoch #%d: %w", i, err)
		}
	}
	for _, n := range ef.Del {
		tl.Del(n)
	}
	logger.Debug("timeline loaded",
		"epochs", len(ef.Epochs),
		"deleted", len(ef.Del),
		"boundaries", tl.Len())
	return tl, nil
}
