package io

import (
	"sync/atomic"

	log "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-memdb"
)

// MemoryStore wraps memdb with the id sequence for project records. All
// state lives in process memory; nothing is persisted.
type MemoryStore struct {
	*memdb.MemDB

	projectIDSeq int64

	logger log.Logger
}

type MemoryStoreTxn struct {
	*memdb.Txn

	memstore *MemoryStore // crosslink
}

func NewMemoryStore(schema *memdb.DBSchema, logger log.Logger) (*MemoryStore, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNullLogger()
	}

	return &MemoryStore{
		MemDB:  db,
		logger: logger.Named("memstore"),
	}, nil
}

// Txn starts a transaction. Write transactions are serialized by memdb
// itself, which gives every mutation a consistent snapshot to work on.
func (ms *MemoryStore) Txn(write bool) *MemoryStoreTxn {
	return &MemoryStoreTxn{ms.MemDB.Txn(write), ms}
}

// NextProjectID issues the next project identifier. Identifiers are
// strictly increasing for the life of the store.
func (ms *MemoryStore) NextProjectID() int {
	return int(atomic.AddInt64(&ms.projectIDSeq, 1))
}

// NextProjectID issues an id from the owning store's sequence.
func (mst *MemoryStoreTxn) NextProjectID() int {
	return mst.memstore.NextProjectID()
}

func (mst *MemoryStoreTxn) Commit() error {
	mst.Txn.Commit()
	return nil
}

func (mst *MemoryStoreTxn) Abort() {
	mst.Txn.Abort()
}
