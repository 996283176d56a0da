package sitespec

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Load reads a document from a JSON file.
func Load(path string) (*SiteIntentDocument, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d SiteIntentDocument
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save writes a document as pretty-printed JSON.
func Save(path string, doc *SiteIntentDocument) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0644)
}
