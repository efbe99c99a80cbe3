package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadDocumentFixtures stores JSON files from dir in map_documents under their file names
func LoadDocumentFixtures(db *sql.DB, dir string, files []string) error {
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		_, err = db.ExecContext(context.Background(), `
			INSERT INTO map_documents (name, content) VALUES ($1, $2::jsonb)
			ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content`,
			file, string(content))
		if err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}
