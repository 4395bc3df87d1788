package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/setcover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, args Args) (*Runner, *bytes.Buffer) {
	t.Helper()
	if args.LogLevel == "" {
		args.LogLevel = "error"
	}
	if args.LogFormat == "" {
		args.LogFormat = "text"
	}
	var out bytes.Buffer
	r, err := NewRunner(args, &out)
	require.NoError(t, err)
	return r, &out
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want location
	}{
		{"data.csv", location{Name: "data.csv"}},
		{"/tmp/x/data.csv.zst", location{Name: "/tmp/x/data.csv.zst"}},
		{"s3://bucket/bench/data.csv", location{Scheme: "s3", Bucket: "bucket", Name: "bench/data.csv"}},
		{"minio://localhost:9000/sets/a/b.csv.lz4", location{Scheme: "minio", Endpoint: "localhost:9000", Bucket: "sets", Name: "a/b.csv.lz4"}},
		{"minio://localhost:9000/sets", location{Scheme: "minio", Endpoint: "localhost:9000", Bucket: "sets"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseLocation(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLocation_Errors(t *testing.T) {
	for _, raw := range []string{"gs://bucket/key", "s3:///key", "minio://host"} {
		_, err := parseLocation(raw)
		assert.Error(t, err, raw)
	}
}

func TestNewRunner_InvalidLogging(t *testing.T) {
	_, err := NewRunner(Args{LogLevel: "loud", LogFormat: "text"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewRunner(Args{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_NoSubcommand(t *testing.T) {
	r, _ := newTestRunner(t, Args{})
	assert.Error(t, r.Run(context.Background()))
}

func TestSolve_Text(t *testing.T) {
	path := writeFile(t, "data.csv", "set,element\nA,1\nA,2\nB,2\nB,3\nC,3\n")

	r, out := newTestRunner(t, Args{Solve: &SolveCmd{Data: path, Algo: "greedy-standard", Workers: 1, Keys: true}})
	require.NoError(t, r.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "greedy-standard\n")
	assert.Contains(t, text, "Cover: 2 sets (universe 3, 3 candidates)")
	assert.Contains(t, text, "Keys:  [A B]")
	assert.NotContains(t, text, "Agree")
}

func TestSolve_AllJSON(t *testing.T) {
	path := writeFile(t, "data.csv", "set,element\nA,1\nA,2\nB,2\nB,3\nC,3\nC,4\n")

	r, out := newTestRunner(t, Args{Solve: &SolveCmd{Data: path, Algo: "all", Workers: 1, Verify: true, JSON: true}})
	require.NoError(t, r.Run(context.Background()))

	var got struct {
		Results []solveReport `json:"results"`
		Agree   bool          `json:"agree"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Results, 3)
	assert.True(t, got.Agree)
	for i, s := range setcover.Strategies() {
		assert.Equal(t, s.String(), got.Results[i].Strategy)
		assert.Equal(t, 2, got.Results[i].Cover)
		assert.Nil(t, got.Results[i].Keys)
	}
}

func TestSolve_Numeric(t *testing.T) {
	// Element 1 is in no set, so the dense universe 0..3 cannot be covered.
	path := writeFile(t, "data.csv", "set,element\n10,0\n10,2\n20,3\n")

	r, _ := newTestRunner(t, Args{Solve: &SolveCmd{Data: path, Algo: "greedy-bitvec", Numeric: true, Workers: 1}})
	err := r.Run(context.Background())
	assert.ErrorIs(t, err, setcover.ErrInfeasibleCover)

	path = writeFile(t, "data.csv", "set,element\n10,0\n10,1\n20,1\n20,2\n")
	r, out := newTestRunner(t, Args{Solve: &SolveCmd{Data: path, Algo: "greedy-bitvec", Numeric: true, Workers: 1, Keys: true}})
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Keys:  [10 20]")
}

func TestSolve_InvalidAlgo(t *testing.T) {
	r, _ := newTestRunner(t, Args{Solve: &SolveCmd{Data: "does-not-matter.csv", Algo: "bogus"}})
	assert.ErrorIs(t, r.Run(context.Background()), setcover.ErrInvalidAlgorithm)
}

func TestGenSolveLs(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "bench", "data.csv.zst")
	gen := &GenCmd{Output: output, NumSets: 20, NumElements: 15, NumRows: 400, Seed: 9}

	r, out := newTestRunner(t, Args{Gen: gen})
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Wrote dataset to")

	r, out = newTestRunner(t, Args{Gen: gen})
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Reusing")

	r, out = newTestRunner(t, Args{Ls: &LsCmd{Prefix: filepath.Join(dir, "bench")}})
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"data.csv.zst", "data.csv.zst.sig"}, strings.Fields(out.String()))

	// Without --numeric only elements that occur form the universe, so a cover exists.
	r, out = newTestRunner(t, Args{Solve: &SolveCmd{Data: output, Algo: "all", Workers: 2, Verify: true}})
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Agree: true")
}
