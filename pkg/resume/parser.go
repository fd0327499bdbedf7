package resume

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/artem13815/resume-analyzer/pkg/logger"
)

// Supported upload extensions.
const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtTXT  = ".txt"
)

var (
	// ErrUnsupportedFormat is returned by ParseText for extensions other than pdf, docx and txt.
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")
	// ErrNoDocumentBody means a docx archive without word/document.xml content.
	ErrNoDocumentBody = errors.New("no document body found in docx")
)

var (
	reXMLTag       = regexp.MustCompile(`<[^>]+>`)
	reDocxBreak    = regexp.MustCompile(`<w:br(\s[^>]*)?/>`)
	// невидимый текст: коды полей, удалённые правки
	reDocxHidden   = regexp.MustCompile(`(?s)<w:instrText\b[^>]*>.*?</w:instrText>|<w:delText\b[^>]*>.*?</w:delText>|<w:del(?:\s[^>]*[^/>])?>.*?</w:del>`)
	reInlineSpaces = regexp.MustCompile(`[ \t\f\v]+`)
	reLineEdges    = regexp.MustCompile(` ?\n ?`)
	reNewlines     = regexp.MustCompile(`\n+`)
)

// Extension returns the lowercased extension of filename.
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// SupportedExtension reports whether filename has a pdf, docx or txt extension.
func SupportedExtension(filename string) bool {
	switch Extension(filename) {
	case ExtPDF, ExtDOCX, ExtTXT:
		return true
	}
	return false
}

// ExtractFile reads the file at path and returns its plain text.
// Unsupported extensions, unreadable files and broken documents yield "".
func ExtractFile(path string) string {
	if !SupportedExtension(path) {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("read resume file")
		return ""
	}
	return ExtractText(path, data)
}

// ExtractText returns the plain text of an in-memory document, or "" when the
// format is unsupported or the content cannot be read.
func ExtractText(filename string, data []byte) string {
	text, err := ParseText(filename, data)
	if err != nil {
		if !errors.Is(err, ErrUnsupportedFormat) {
			logger.Warn().Err(err).Str("filename", filename).Msg("extract resume text")
		}
		return ""
	}
	return text
}

// ParseText extracts plain text from supported resume formats and reports why it
// could not. Dispatch is by extension: .pdf, .docx, .txt.
func ParseText(filename string, data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("parse %s: %v", filename, r)
		}
	}()

	switch Extension(filename) {
	case ExtPDF:
		return extractTextFromPDF(data)
	case ExtDOCX:
		return extractTextFromDocx(data)
	case ExtTXT:
		return extractTextFromTxt(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		if text != "" {
			pages = append(pages, text)
		}
	}
	return cleanExtracted(strings.Join(pages, "\n")), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	if strings.TrimSpace(xml) == "" {
		return "", ErrNoDocumentBody
	}
	// Only visible run text. One paragraph per line; runs inside a paragraph join without separators.
	xml = reDocxHidden.ReplaceAllString(xml, "")
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = reDocxBreak.ReplaceAllString(xml, "\n")
	txt := reXMLTag.ReplaceAllString(xml, "")
	return cleanExtracted(html.UnescapeString(txt)), nil
}

// extractTextFromTxt drops invalid UTF-8 bytes, decodes UTF-16 when a BOM says
// so and converts every newline convention to "\n".
func extractTextFromTxt(data []byte) (string, error) {
	var text string
	if hasUTF16BOM(data) {
		decoded, _, err := transform.String(
			xunicode.BOMOverride(xunicode.UTF8.NewDecoder()),
			string(data),
		)
		if err != nil {
			return "", fmt.Errorf("decode utf-16 text: %w", err)
		}
		text = decoded
	} else {
		text = strings.ToValidUTF8(string(data), "")
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF})
}

// cleanExtracted folds compatibility characters (PDF ligatures, full-width forms)
// and collapses layout whitespace while keeping line structure.
func cleanExtracted(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reInlineSpaces.ReplaceAllString(s, " ")
	s = reLineEdges.ReplaceAllString(s, "\n")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
