package admin

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/smilesofhope/hopecms/internal/apperr"
)

func TestEncodeDataURI(t *testing.T) {
	payload := []byte("hello upload")
	uri, err := EncodeDataURI(bytes.NewReader(payload), "text/plain")
	if err != nil {
		t.Fatal(err)
	}
	want := "data:text/plain;base64," + base64.StdEncoding.EncodeToString(payload)
	if uri != want {
		t.Errorf("uri = %q", uri)
	}
}

func TestEncodeDataURI_SniffsContentType(t *testing.T) {
	// Leading bytes of a PNG file.
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	uri, err := EncodeDataURI(bytes.NewReader(png), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri prefix = %q", uri[:32])
	}
}

func TestEncodeDataURI_RejectsOversizedFile(t *testing.T) {
	big := bytes.NewReader(make([]byte, MaxUploadBytes+1))
	if _, err := EncodeDataURI(big, "image/png"); !errors.Is(err, apperr.ErrFileTooLarge) {
		t.Errorf("err = %v", err)
	}
}

func TestEncodeDataURI_AcceptsExactLimit(t *testing.T) {
	exact := bytes.NewReader(make([]byte, MaxUploadBytes))
	if _, err := EncodeDataURI(exact, "image/png"); err != nil {
		t.Errorf("file at the limit rejected: %v", err)
	}
}
