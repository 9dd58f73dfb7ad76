package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps uploaded files on local disk under BaseDir and serves
// them statically under BaseURL.
type LocalStore struct {
	BaseDir string
	BaseURL string
}

func NewLocalStore(baseDir, baseURL string) *LocalStore {
	return &LocalStore{
		BaseDir: baseDir,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Save writes the file under BaseDir following the path hint and returns
// the URL it will be served at.
func (s *LocalStore) Save(pathHint string, data []byte) (string, error) {
	cleaned := filepath.Clean("/" + pathHint) // strip any ../ segments
	filePath := filepath.Join(s.BaseDir, cleaned)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", err
	}

	return s.BaseURL + strings.ReplaceAll(cleaned, string(filepath.Separator), "/"), nil
}

// Delete removes the file a previous Save returned fileURL for.
func (s *LocalStore) Delete(fileURL string) error {
	if !strings.HasPrefix(fileURL, s.BaseURL+"/") {
		return fmt.Errorf("unknown file url: %s", fileURL)
	}

	rel := strings.TrimPrefix(fileURL, s.BaseURL+"/")
	filePath := filepath.Join(s.BaseDir, filepath.Clean("/"+rel))

	if err := os.Remove(filePath); err != nil {
		return err
	}

	return nil
}
