package handler

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/web"
)

// PageData - данные шаблона страницы карты
type PageData struct {
	Title   string
	Variant domain.Variant
	APIBase string
}

// PageHandler - рендеринг страниц карт
type PageHandler struct {
	templates *template.Template
	apiBase   string
}

// NewPageHandler - создание нового хендлера страниц
func NewPageHandler(apiBase string) (*PageHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		templates: tmpl,
		apiBase:   apiBase,
	}, nil
}

// Outdoor - страница внешней карты (index.html)
func (h *PageHandler) Outdoor(c *fiber.Ctx) error {
	return h.render(c, domain.VariantOutdoor, "Mapa externo")
}

// Indoor - страница внутренней карты (indexi.html)
func (h *PageHandler) Indoor(c *fiber.Ctx) error {
	return h.render(c, domain.VariantIndoor, "Mapa interno")
}

func (h *PageHandler) render(c *fiber.Ctx, variant domain.Variant, title string) error {
	data := PageData{
		Title:   title,
		Variant: variant,
		APIBase: h.apiBase,
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "map.html", data)
}
