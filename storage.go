package quasar

// Storage persists the inverted index and the document store. Both mappings
// are rewritten in full on every save and loaded in full at startup.
type Storage interface {
	SaveIndex(InvertedIndex) error                   // 転置インデックスを全て書き換える
	LoadIndex() (InvertedIndex, error)               // 転置インデックスを全て読み出す(未永続化なら空)
	SaveDocuments(map[DocumentID]Document) error     // ドキュメントストアを全て書き換える
	LoadDocuments() (map[DocumentID]Document, error) // ドキュメントストアを全て読み出す(未永続化なら空)
	IndexSize() (int64, error)                       // 永続化された転置インデックスのバイト数(未永続化なら0)
}
