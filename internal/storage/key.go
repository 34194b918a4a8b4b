package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// ObjectKey builds a collision-resistant, write-once object key:
// <prefix>/<unix-millis>-<sanitized original filename>. The timestamp makes
// repeated uploads of the same file land under distinct keys.
func ObjectKey(prefix, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d-%s", prefix, now.UnixMilli(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	base = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return '_'
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, base)

	if len(base) > 60 {
		base = base[:60]
	}
	if base == "" {
		base = "file"
	}
	return base + strings.ToLower(ext)
}
