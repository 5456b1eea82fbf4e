package batch

import (
	"context"
	"fmt"

	"github.com/hupe1980/halfvec/blobstore"
	"github.com/hupe1980/halfvec/codec"
)

// Save marshals b with c and writes it to store under name.
func Save(ctx context.Context, store blobstore.Store, name string, b *Batch, c codec.Codec) error {
	data, err := Marshal(b, c)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("batch: put %s: %w", name, err)
	}
	return nil
}

// Load reads and unmarshals the batch stored under name. A missing blob
// yields an error matching blobstore.ErrNotFound.
func Load(ctx context.Context, store blobstore.Store, name string) (*Batch, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("batch: get %s: %w", name, err)
	}
	b, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("batch: %s: %w", name, err)
	}
	return b, nil
}
