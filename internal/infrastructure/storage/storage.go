// Package storage uploads valuation attachments to S3 or to the local disk.
package storage

import (
	"path/filepath"
	"strings"

	"valuation_report/internal/domain/entities"

	"github.com/google/uuid"
)

// objectKey builds "<record>/<category>/<uuid><ext>".
func objectKey(recordID string, category entities.AttachmentCategory, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) > 8 {
		ext = ext[:8]
	}
	return strings.Join([]string{sanitize(recordID), string(category), uuid.NewString() + ext}, "/")
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(s)
	if s == "" {
		return "unassigned"
	}
	return s
}

func contentTypeOf(b entities.Blob) string {
	if ct := strings.TrimSpace(b.ContentType); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
