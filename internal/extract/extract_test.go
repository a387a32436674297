package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + body + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestJDTextDocx(t *testing.T) {
	data := buildDOCX(t, "Looking for a React developer with SQL experience.")

	text, err := JDText(context.Background(), data, mimeDOCX, "jd.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "React developer") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestJDTextZipMimeNormalizesToDocx(t *testing.T) {
	data := buildDOCX(t, "Backend role, Node.js and MongoDB.")

	text, err := JDText(context.Background(), data, "application/zip", "jd.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(text, "Node.js") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestJDTextPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = JDText(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got: %v", err)
	}
}

func TestJDTextUnsupportedMime(t *testing.T) {
	_, err := JDText(context.Background(), []byte("plain"), "text/html", "jd.html")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type error, got: %v", err)
	}
}

func TestJDTextCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := JDText(ctx, nil, mimePDF, "jd.pdf"); err == nil {
		t.Fatal("expected context error")
	}
}
