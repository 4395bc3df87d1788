package dataset

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/hupe1980/setcover/blobstore"
)

// ErrInvalidConfig is returned for non-positive generator sizes.
var ErrInvalidConfig = errors.New("dataset: invalid generate config")

// GenerateConfig parameterizes a synthetic dataset.
type GenerateConfig struct {
	NumSets     int
	NumElements int
	NumRows     int
	Seed        uint64
}

// DefaultGenerateConfig returns the benchmark-sized defaults.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		NumSets:     100_000,
		NumElements: 2_000,
		NumRows:     10_000_000,
		Seed:        333,
	}
}

// Validate checks the config sizes.
func (c GenerateConfig) Validate() error {
	if c.NumSets <= 0 || c.NumElements <= 0 {
		return fmt.Errorf("%w: sets=%d elements=%d must be positive", ErrInvalidConfig, c.NumSets, c.NumElements)
	}
	if c.NumRows < 0 {
		return fmt.Errorf("%w: rows=%d must not be negative", ErrInvalidConfig, c.NumRows)
	}
	return nil
}

// Signature identifies the dataset a config produces. It is the hex sha256
// of the parameters as a key-sorted JSON object.
func (c GenerateConfig) Signature() string {
	payload := fmt.Sprintf(`{"n_elements": %d, "n_rows": %d, "n_sets": %d, "seed": %d}`,
		c.NumElements, c.NumRows, c.NumSets, c.Seed)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Generate writes a seeded random dataset as CSV. Each row draws a set id in
// [0, NumSets) and an element id in [0, NumElements) independently, so some
// elements may end up in no set at all.
func Generate(w io.Writer, cfg GenerateConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	rec := make([]string, 2)
	for range cfg.NumRows {
		rec[0] = strconv.Itoa(rng.IntN(cfg.NumSets))
		rec[1] = strconv.Itoa(rng.IntN(cfg.NumElements))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SignatureName returns the name of the signature file stored next to name.
func SignatureName(name string) string {
	return name + ".sig"
}

// GenerateFile writes a generated dataset and its signature to store. When
// force is false and an existing dataset carries the same signature, nothing
// is written and reused is true.
func GenerateFile(ctx context.Context, store blobstore.Store, name string, cfg GenerateConfig, force bool) (reused bool, err error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}

	sig := cfg.Signature()
	if !force {
		ok, err := cacheIsValid(ctx, store, name, sig)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	if err := put(ctx, store, name, func(w io.Writer) error {
		return Generate(w, cfg)
	}); err != nil {
		return false, err
	}

	if err := store.Put(ctx, SignatureName(name), []byte(sig)); err != nil {
		return false, fmt.Errorf("dataset: put signature: %w", err)
	}
	return false, nil
}

func cacheIsValid(ctx context.Context, store blobstore.Store, name, sig string) (bool, error) {
	existing, err := readAll(ctx, store, SignatureName(name))
	if errors.Is(err, blobstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(string(existing)) != sig {
		return false, nil
	}

	blob, err := store.Open(ctx, name)
	if errors.Is(err, blobstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, blob.Close()
}

func readAll(ctx context.Context, store blobstore.Store, name string) ([]byte, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()
	return io.ReadAll(blob)
}
