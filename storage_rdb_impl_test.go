package quasar

import (
	"os"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/google/go-cmp/cmp"
)

// ローカルのMySQLに対して実行する
func newTestDBClient(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("QUASAR_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("QUASAR_TEST_MYSQL_DSN not set")
	}
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestStorageRdbImplRoundTrip(t *testing.T) {
	db := newTestDBClient(t)
	db.Exec("truncate table documents")
	db.Exec("truncate table inverted_indexes")
	storage := NewStorageRdbImpl(db)

	index := InvertedIndex{
		"cat": {1: 2, 7: 1},
		"dog": {1: 2},
	}
	documents := map[DocumentID]Document{
		1: {Title: "Cats and Dogs", Content: "Cats are great pets.", URL: "https://example.com/pets"},
		7: {Title: "More Cats", Content: "Cats again."},
	}

	if err := storage.SaveIndex(index); err != nil {
		t.Fatal(err)
	}
	if err := storage.SaveDocuments(documents); err != nil {
		t.Fatal(err)
	}

	loadedIndex, err := storage.LoadIndex()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(loadedIndex, index); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}

	loadedDocuments, err := storage.LoadDocuments()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(loadedDocuments, documents); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}

	size, err := storage.IndexSize()
	if err != nil {
		t.Fatal(err)
	}
	if size <= 0 {
		t.Errorf("IndexSize() = %d, want > 0", size)
	}
}

func TestStorageRdbImplSaveReplacesWholeState(t *testing.T) {
	db := newTestDBClient(t)
	db.Exec("truncate table documents")
	db.Exec("truncate table inverted_indexes")
	storage := NewStorageRdbImpl(db)

	if err := storage.SaveIndex(InvertedIndex{"cat": {1: 1}, "dog": {1: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := storage.SaveIndex(InvertedIndex{"bird": {2: 3}}); err != nil {
		t.Fatal(err)
	}

	loaded, err := storage.LoadIndex()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(loaded, InvertedIndex{"bird": {2: 3}}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
