package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// CatalogHandler отдаёт справочники, с которыми работает анализатор.
type CatalogHandler struct {
	cat catalog.Catalog
}

func NewCatalogHandler(cat catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat.Clone()}
}

type skillDTO struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type sectionDTO struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// @Summary Словарь навыков
// @Tags    Каталог
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]skillDTO
// @Router  /catalog/skills [get]
func (h *CatalogHandler) Skills(c *fiber.Ctx) error {
	names := h.cat.Skills.Names()
	out := make([]skillDTO, 0, len(names))
	for _, name := range names {
		out = append(out, skillDTO{Name: name, Keywords: h.cat.Skills[name]})
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"skills": out})
}

// @Summary Секции резюме и их заголовки
// @Tags    Каталог
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]sectionDTO
// @Router  /catalog/sections [get]
func (h *CatalogHandler) Sections(c *fiber.Ctx) error {
	out := make([]sectionDTO, 0, len(resume.SectionOrder))
	for _, name := range resume.SectionOrder {
		aliases := h.cat.Sections[name]
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, sectionDTO{Name: name, Aliases: aliases})
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"sections": out})
}
