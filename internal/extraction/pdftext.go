package extraction

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/dslipak/pdf"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// TextExtractor turns a document on disk into its plain text.
// Page boundaries are not preserved.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// PDFExtractor reads PDF text with github.com/dslipak/pdf.
type PDFExtractor struct{}

// NewPDFExtractor returns the default PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText returns the concatenated plain text of every page.
// Any failure, including a panic from the PDF reader on a damaged file, is
// reported as models.ErrTextExtraction.
func (p *PDFExtractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %s: reader panic: %v", models.ErrTextExtraction, path, r)
		}
	}()

	// pdf.Open never closes the file it opens, so the handle is managed here.
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", models.ErrTextExtraction, path, err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: stat %s: %v", models.ErrTextExtraction, path, err)
	}

	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", models.ErrTextExtraction, path, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", models.ErrTextExtraction, path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("%w: buffer %s: %v", models.ErrTextExtraction, path, err)
	}
	return buf.String(), nil
}
