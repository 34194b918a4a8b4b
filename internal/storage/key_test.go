package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	assert.Equal(t, "news/1700000000000-foto.jpg", ObjectKey("news", "foto.jpg", at))
	assert.Equal(t, "products/1700000000000-kopi_desa.png", ObjectKey("products", "kopi desa.PNG", at))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foto.jpg", "foto.jpg"},
		{"balai desa.jpeg", "balai_desa.jpeg"},
		{"IMG 2024 (1).PNG", "IMG_2024__1_.png"},
		{"../../etc/passwd", "passwd"},
		{"héllo.png", "h_llo.png"},
		{".png", "file.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeFilenameCapsLength(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "a"
	}
	got := sanitizeFilename(long + ".jpg")
	assert.Equal(t, 64, len(got)) // 60-char base + ".jpg"
}
