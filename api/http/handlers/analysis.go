package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/analysis"
)

const (
	msgInvalidJSON        = "invalid JSON body"
	msgResumeTextRequired = "resumeText is required"
)

type AnalysisHandler struct {
	uc       analysis.UseCase
	validate *validator.Validate
}

func NewAnalysisHandler(uc analysis.UseCase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, validate: validator.New()}
}

type createAnalysisRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription"`
}

// @Summary     Анализ текста резюме
// @Description Сопоставляет навыки из текста резюме с вакансией (или со всем словарём, если вакансия пустая).
// @Tags        Анализ
// @Accept      json
// @Produce     json
// @Param       input body createAnalysisRequest true "Текст резюме и вакансии"
// @Security    BearerAuth
// @Success     200 {object} analysis.Result
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /analyses [post]
func (h *AnalysisHandler) Create(c *fiber.Ctx) error {
	var req createAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgInvalidJSON)
	}
	if err := h.validate.Struct(req); err != nil || strings.TrimSpace(req.ResumeText) == "" {
		return presenter.Error(c, http.StatusBadRequest, msgResumeTextRequired)
	}
	return presenter.JSON(c, http.StatusOK, h.uc.Analyze(req.ResumeText, req.JobDescription))
}
