package store

import (
	"github.com/replicatedhq/usersvc/pkg/store/memstore"
)

var _ Store = (*memstore.MemStore)(nil)

// New returns the default store. Each call returns an independent, empty store.
func New() Store {
	return memstore.New()
}
