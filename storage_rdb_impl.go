package quasar

import (
	"encoding/json"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// StorageRdbImpl persists the engine state into MySQL with the same
// whole-rewrite semantics as the file backend: each save replaces the full
// table contents inside one transaction. Postings are stored as a JSON
// document per term.
//
// Expected schema:
//
//	create table documents (
//	    id bigint primary key,
//	    title text not null,
//	    content text not null,
//	    url text not null
//	);
//	create table inverted_indexes (
//	    term varchar(512) primary key,
//	    postings json not null
//	);
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

type documentRecord struct {
	ID      DocumentID `db:"id"`
	Title   string     `db:"title"`
	Content string     `db:"content"`
	URL     string     `db:"url"`
}

type invertedIndexRecord struct {
	Term     string `db:"term"`
	Postings []byte `db:"postings"`
}

func (s *StorageRdbImpl) SaveIndex(index InvertedIndex) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`delete from inverted_indexes`); err != nil {
		return err
	}
	for term, postings := range index {
		encoded, err := json.Marshal(postings)
		if err != nil {
			return fmt.Errorf("marshal postings for %q: %w", term, err)
		}
		if _, err := tx.NamedExec(
			`insert into inverted_indexes (term, postings) values (:term, :postings)`,
			invertedIndexRecord{Term: term, Postings: encoded},
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *StorageRdbImpl) LoadIndex() (InvertedIndex, error) {
	var records []invertedIndexRecord
	if err := s.DB.Select(&records, `select term, postings from inverted_indexes`); err != nil {
		return nil, err
	}
	index := make(InvertedIndex, len(records))
	for _, r := range records {
		postings := make(map[DocumentID]int)
		if err := json.Unmarshal(r.Postings, &postings); err != nil {
			return nil, fmt.Errorf("parse postings for %q: %w", r.Term, err)
		}
		index[r.Term] = postings
	}
	return index, nil
}

func (s *StorageRdbImpl) SaveDocuments(documents map[DocumentID]Document) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`delete from documents`); err != nil {
		return err
	}
	for id, doc := range documents {
		if _, err := tx.NamedExec(
			`insert into documents (id, title, content, url) values (:id, :title, :content, :url)`,
			documentRecord{ID: id, Title: doc.Title, Content: doc.Content, URL: doc.URL},
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *StorageRdbImpl) LoadDocuments() (map[DocumentID]Document, error) {
	var records []documentRecord
	if err := s.DB.Select(&records, `select id, title, content, url from documents`); err != nil {
		return nil, err
	}
	documents := make(map[DocumentID]Document, len(records))
	for _, r := range records {
		documents[r.ID] = NewDocument(r.Title, r.Content, r.URL)
	}
	return documents, nil
}

func (s *StorageRdbImpl) IndexSize() (int64, error) {
	var size int64
	row := s.DB.QueryRow(`select coalesce(sum(length(term) + length(postings)), 0) from inverted_indexes`)
	if err := row.Scan(&size); err != nil {
		return 0, err
	}
	return size, nil
}
