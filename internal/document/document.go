package document

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// MediaTypePDF is the only media type the analyzer accepts.
const MediaTypePDF = "application/pdf"

// DefaultMaxSize is the default ceiling on document size (4 MiB).
const DefaultMaxSize int64 = 4 << 20

var (
	// ErrUnsupportedMediaType signals a document whose declared media type
	// (or actual content) is not a PDF.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrPayloadTooLarge signals a document over the configured size ceiling.
	ErrPayloadTooLarge = errors.New("document too large")

	// ErrEncodingFailure signals that document bytes could not be read to
	// completion.
	ErrEncodingFailure = errors.New("document encoding failed")
)

// Document is an in-memory binary document with its declared media type.
// The bytes are treated as immutable once constructed.
type Document struct {
	Data      []byte
	MediaType string
}

// New builds a Document from fully resident bytes.
func New(data []byte, mediaType string) Document {
	return Document{Data: data, MediaType: mediaType}
}

// FromReader reads r to completion and builds a Document. A read failure is
// reported as ErrEncodingFailure; no partial document is returned.
func FromReader(r io.Reader, mediaType string) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	return New(data, mediaType), nil
}

// Size returns the document length in bytes.
func (d Document) Size() int64 {
	return int64(len(d.Data))
}

// Payload is the transport-safe form of a Document: base64 text plus the
// original media type. Built per request and discarded after the remote call.
type Payload struct {
	MediaType string
	Data      string // standard base64
}

// Encode converts a Document into its base64 Payload. Decoding the payload
// reproduces the original bytes exactly.
func Encode(d Document) (Payload, error) {
	return Payload{
		MediaType: d.MediaType,
		Data:      base64.StdEncoding.EncodeToString(d.Data),
	}, nil
}

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether data starts with the PDF file header. Some producers
// prepend a UTF-8 BOM or junk before the header, so a small prefix window is
// scanned.
func IsPDF(data []byte) bool {
	limit := len(data)
	if limit > 1024 {
		limit = 1024
	}
	return bytes.Contains(data[:limit], pdfMagic)
}

// PageCount parses the document and returns its page count for diagnostics.
// Returns 0 when the document cannot be parsed; callers treat this as
// best effort and must not gate the pipeline on it.
func PageCount(data []byte) (n int) {
	// the pdf package panics on some malformed cross-reference tables
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return r.NumPage()
}
