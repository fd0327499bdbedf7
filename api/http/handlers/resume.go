package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/analysis"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// Тексты ошибок загрузки, которые видит пользователь.
const (
	msgNoFilePart      = "No file part in the request."
	msgNoFileSelected  = "No file selected."
	msgUnsupportedType = "Unsupported file type. Please upload PDF, DOCX, or TXT."
	msgNoText          = "Could not extract text from the uploaded file. Try another file or a clearer PDF."
)

// uploadFields — имена полей формы с файлом, в порядке приоритета.
var uploadFields = []string{"resume_file", "file"}

type ResumeHandler struct {
	uploads  resume.UploadService
	analyzer analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(uploads resume.UploadService, analyzer analysis.UseCase, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &ResumeHandler{uploads: uploads, analyzer: analyzer, maxBytes: maxBytes}
}

type analyzeUploadResponse struct {
	RequestID  string          `json:"requestId"`
	DocumentID string          `json:"documentId"`
	Filename   string          `json:"filename"`
	SizeB      int64           `json:"sizeB"`
	Result     analysis.Result `json:"result"`
}

// Analyze обрабатывает загруженное резюме (PDF/DOCX/TXT), извлекает текст
// и сопоставляет навыки с описанием вакансии.
// @Summary Анализ резюме и рекомендации по улучшению
// @Description Принимает файл резюме (PDF, DOCX или TXT) и необязательный текст вакансии, возвращает оценку, навыки, секции и рекомендации.
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   resume_file formData file true "Файл резюме (PDF, DOCX или TXT); допускается поле file"
// @Param   job_description formData string false "Текст вакансии"
// @Security BearerAuth
// @Success 200 {object} analyzeUploadResponse
// @Failure 400 {object} presenter.ErrorResponse "Ошибка валидации или чтения файла"
// @Failure 500 {object} presenter.ErrorResponse "Внутренняя ошибка сервиса"
// @Router  /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgNoFilePart)
	}
	fh, msg := pickUpload(form)
	if fh == nil {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	if !resume.SupportedExtension(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, msgUnsupportedType)
	}

	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	doc, err := h.uploads.Extract(c.Context(), fh.Filename, data)
	switch {
	case errors.Is(err, resume.ErrUnsupportedFormat):
		return presenter.Error(c, http.StatusBadRequest, msgUnsupportedType)
	case errors.Is(err, resume.ErrEmptyText):
		return presenter.Error(c, http.StatusBadRequest, msgNoText)
	case err != nil:
		logger.Error().Err(err).Str("filename", fh.Filename).Msg("process upload")
		return presenter.Error(c, http.StatusInternalServerError, "failed to process uploaded file")
	}

	jd := formValue(form, "job_description")
	result := h.analyzer.Analyze(doc.Text, jd)

	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	logger.Info().
		Str("request_id", rid).
		Str("document_id", doc.ID.String()).
		Str("ext", doc.Ext).
		Int64("size", doc.Size).
		Float64("score", result.Score).
		Msg("resume analyzed")

	return presenter.JSON(c, http.StatusOK, analyzeUploadResponse{
		RequestID:  rid,
		DocumentID: doc.ID.String(),
		Filename:   doc.Filename,
		SizeB:      doc.Size,
		Result:     result,
	})
}

// pickUpload returns the uploaded file or the message explaining why there is none.
// A file input left empty arrives as a plain form value, not a file part.
func pickUpload(form *multipart.Form) (*multipart.FileHeader, string) {
	for _, field := range uploadFields {
		if files := form.File[field]; len(files) > 0 {
			if files[0].Filename == "" {
				return nil, msgNoFileSelected
			}
			return files[0], ""
		}
	}
	for _, field := range uploadFields {
		if _, ok := form.Value[field]; ok {
			return nil, msgNoFileSelected
		}
	}
	return nil, msgNoFilePart
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
