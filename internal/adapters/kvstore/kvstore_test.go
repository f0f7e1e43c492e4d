package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/cashit_ledger/internal/adapters/kvstore"
	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/cashit_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/suite"
)

type KVStoreTestSuite struct {
	suite.Suite
	newStore func() portsrepo.KVStore
	store    portsrepo.KVStore
}

func (s *KVStoreTestSuite) SetupTest() {
	s.store = s.newStore()
}

func (s *KVStoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *KVStoreTestSuite) TestGetMissingKey() {
	_, err := s.store.Get(context.Background(), "cashit_data")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *KVStoreTestSuite) TestPutOverwritesWholeValue() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, "cashit_data", []byte(`{"accounts":[1,2,3]}`)))
	s.Require().NoError(s.store.Put(ctx, "cashit_data", []byte(`{}`)))

	got, err := s.store.Get(ctx, "cashit_data")
	s.Require().NoError(err)
	s.Equal(`{}`, string(got))
}

func (s *KVStoreTestSuite) TestKeysAreIndependent() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, "cashit_data", []byte("a")))
	s.Require().NoError(s.store.Put(ctx, "cashit_current_user", []byte("b")))
	s.Require().NoError(s.store.Delete(ctx, "cashit_current_user"))

	got, err := s.store.Get(ctx, "cashit_data")
	s.Require().NoError(err)
	s.Equal("a", string(got))
	_, err = s.store.Get(ctx, "cashit_current_user")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *KVStoreTestSuite) TestDeleteMissingKey() {
	s.NoError(s.store.Delete(context.Background(), "nothing_here"))
}

func (s *KVStoreTestSuite) TestReturnedBytesAreCopies() {
	ctx := context.Background()
	value := []byte("abc")
	s.Require().NoError(s.store.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := s.store.Get(ctx, "k")
	s.Require().NoError(err)
	s.Equal("abc", string(got))
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &KVStoreTestSuite{newStore: func() portsrepo.KVStore { return kvstore.NewMemoryStore() }})
}

func TestFileStore(t *testing.T) {
	suite.Run(t, &KVStoreTestSuite{newStore: func() portsrepo.KVStore {
		store, err := kvstore.NewFileStore(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		return store
	}})
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := kvstore.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put(context.Background(), "cashit_data", []byte("{}")); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "cashit_data.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
	if _, err := os.Stat(filepath.Join(dir, "cashit_data.json")); err != nil {
		t.Fatal(err)
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put(context.Background(), "../escape", []byte("x")); err == nil {
		t.Fatal("expected error for key with path separators")
	}
}
