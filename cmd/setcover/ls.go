package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/setcover/blobstore"
)

// LsCmd lists the blobs under a prefix.
type LsCmd struct {
	Prefix string `arg:"positional,required" help:"Directory, s3://bucket/prefix or minio://host/bucket/prefix"`
}

func (r *Runner) ls(ctx context.Context, cmd LsCmd) error {
	loc, err := parseLocation(cmd.Prefix)
	if err != nil {
		return err
	}

	var store blobstore.Store
	prefix := loc.Name
	if loc.Scheme == "" {
		// Local listings are rooted at the directory itself.
		store, prefix = blobstore.NewLocalStore(loc.Name), ""
	} else if store, err = openStore(ctx, r.Args.StoreConfig, loc); err != nil {
		return err
	}

	lister, ok := store.(blobstore.Lister)
	if !ok {
		return fmt.Errorf("store for %s cannot list", cmd.Prefix)
	}

	names, err := lister.List(ctx, prefix)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(r.Out, name)
	}
	return nil
}
