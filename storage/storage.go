package storage

// BlobStore is the external file store the wizard uploads documents to.
// Save streams the file up and returns a publicly resolvable URL; Delete
// removes a previously saved file by that URL.
type BlobStore interface {
	Save(pathHint string, data []byte) (string, error)
	Delete(fileURL string) error
}

// Store is the process-wide blob store, set up in main (or swapped in tests).
var Store BlobStore
