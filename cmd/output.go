package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/gridpoint-labs/sitescout/internal/store"
)

// storeDSN picks the store connection string for the configured driver.
func storeDSN() string {
	if cfg.Store.Driver == "postgres" {
		return cfg.Store.DatabaseURL
	}
	return cfg.Store.Path
}

// withOutput runs fn against the output file, or stdout when path is empty.
func withOutput(path string, fn func(*os.File) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create output file %s", path)
	}
	defer f.Close() //nolint:errcheck
	return fn(f)
}

// unmarshalReport decodes a stored report document for pretty printing.
func unmarshalReport(eval *store.Evaluation, v any) error {
	return eris.Wrapf(json.Unmarshal(eval.Report, v), "decode report for evaluation %s", eval.ID)
}

func writeJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "encode JSON")
}
