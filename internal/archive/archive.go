package archive

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// ArchiveProgress moves a remaining-words file into an archive directory
// next to it, so the next session starts again from the full word list.
// It returns the path of the archived copy.
func ArchiveProgress(fs afero.Fs, remainingPath string) (string, error) {
	// Check if the progress file exists
	exists, err := afero.Exists(fs, remainingPath)
	if err != nil {
		return "", fmt.Errorf("failed to check progress file: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("progress file does not exist: %s", remainingPath)
	}

	archiveDir := filepath.Join(filepath.Dir(remainingPath), "archive")
	if err := fs.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(remainingPath)
	base := strings.TrimSuffix(filepath.Base(remainingPath), ext)

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))

	// Two resets within the same second
	if taken, _ := afero.Exists(fs, archivePath); taken {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))
	}

	if err := fs.Rename(remainingPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive progress file: %w", err)
	}

	return archivePath, nil
}
