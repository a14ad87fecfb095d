package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// fileHeader builds a parsed multipart file header carrying the given
// content, the same shape gin hands to handlers.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("certificate", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(int64(body.Len()) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File["certificate"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestValidateCertificateRequiresFile(t *testing.T) {
	err := ValidateCertificate(nil)
	assert.ErrorIs(t, err, apperrors.ErrCertificateRequired)
}

func TestValidateCertificateRejectsOversizedFile(t *testing.T) {
	header := &multipart.FileHeader{
		Filename: "certificate.pdf",
		Size:     maxCertificateSize + 1,
	}
	err := ValidateCertificate(header)
	assert.ErrorIs(t, err, apperrors.ErrCertificateTooLarge)
}

func TestValidateCertificateRejectsWrongExtension(t *testing.T) {
	header := fileHeader(t, "certificate.docx", []byte("%PDF-1.4 pretend"))
	err := ValidateCertificate(header)
	assert.ErrorIs(t, err, apperrors.ErrCertificateNotPDF)
}

func TestValidateCertificateSniffsContent(t *testing.T) {
	// .pdf extension but PNG content; the sniffer must catch the rename
	pngMagic := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	header := fileHeader(t, "renamed.pdf", pngMagic)
	err := ValidateCertificate(header)
	assert.ErrorIs(t, err, apperrors.ErrCertificateNotPDF)
}

func TestValidateCertificateAcceptsPDF(t *testing.T) {
	content := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
	header := fileHeader(t, "certificate.PDF", content)
	err := ValidateCertificate(header)
	assert.NoError(t, err)
}
