package quasar

import "fmt"

// Engine owns the in-memory inverted index and document store and keeps them
// consistent with the Storage backend. It provides no internal locking;
// callers with concurrent writers must serialize access themselves.
type Engine struct {
	storage   Storage  // 永続化層
	analyzer  Analyzer // 文章分割のためのアナライザ
	index     InvertedIndex
	documents map[DocumentID]Document
}

// NewEngine loads prior state from storage. A backend with nothing persisted
// yields an empty engine; a backend with unreadable state fails construction.
func NewEngine(storage Storage, analyzer Analyzer) (*Engine, error) {
	index, err := storage.LoadIndex()
	if err != nil {
		return nil, fmt.Errorf("load inverted index: %w", err)
	}
	documents, err := storage.LoadDocuments()
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	return &Engine{
		storage:   storage,
		analyzer:  analyzer,
		index:     index,
		documents: documents,
	}, nil
}

// AddDocument stores or replaces the document under id and reindexes it.
// 1. ドキュメントストアに格納する(同じIDなら上書き)
// 2. 同じIDの古いポスティングを全て削除する
// 3. title+contentを解析して語句ごとの出現回数をインデックスに登録する
// 4. インデックスとドキュメントストアを同期的に永続化する
// On a persistence error the in-memory state already reflects the mutation;
// durability is indeterminate and the caller decides whether to retry.
func (e *Engine) AddDocument(id DocumentID, title, content, url string) error {
	e.documents[id] = NewDocument(title, content, url)
	e.index.RemoveDocument(id)

	tokenStream := e.analyzer.Analyze(title + " " + content)
	for term, count := range TermCounts(tokenStream) {
		e.index.Set(term, id, count)
	}

	if err := e.storage.SaveIndex(e.index); err != nil {
		return fmt.Errorf("save inverted index: %w", err)
	}
	if err := e.storage.SaveDocuments(e.documents); err != nil {
		return fmt.Errorf("save documents: %w", err)
	}
	return nil
}

type Stats struct {
	TotalDocuments int   `json:"total_documents"`
	TotalTerms     int   `json:"total_terms"`
	IndexSizeBytes int64 `json:"index_size_bytes"`
}

// Stats reports the document count, the distinct term count, and the size of
// the persisted index representation (0 when nothing has been persisted).
func (e *Engine) Stats() (Stats, error) {
	size, err := e.storage.IndexSize()
	if err != nil {
		return Stats{}, fmt.Errorf("index size: %w", err)
	}
	return Stats{
		TotalDocuments: len(e.documents),
		TotalTerms:     len(e.index),
		IndexSizeBytes: size,
	}, nil
}
