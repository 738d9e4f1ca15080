package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/wippyai/hdf5"
	"github.com/wippyai/hdf5/sim"
)

// setup points the package at a fresh simulated library and captures
// command output.
func setup(t *testing.T) (*sim.Library, *bytes.Buffer) {
	t.Helper()

	lib := sim.New()
	opts := hdf5.DefaultOptions()
	opts.Library = lib
	hdf5.Configure(opts)

	var buf bytes.Buffer
	origOut := out
	out = &buf

	verbose, quiet, jsonOut, noColor = false, false, false, true
	backend = "auto"

	t.Cleanup(func() {
		out = origOut
		jsonOut, noColor = false, false
		hdf5.Configure(hdf5.DefaultOptions())
	})
	return lib, &buf
}

// decodeJSON unmarshals captured output into v
func decodeJSON(t *testing.T, buf *bytes.Buffer, v any) {
	t.Helper()
	if err := json.Unmarshal(buf.Bytes(), v); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}
}
