package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/resume-analyzer/docs"

	"github.com/artem13815/resume-analyzer/api/http/middleware"
	"github.com/artem13815/resume-analyzer/api/http/presenter"
)

// bodyOverhead — запас на multipart-заголовки и поле с вакансией сверх лимита файла.
const bodyOverhead = 1 << 20

// NewApp builds the Fiber app with the shared middleware stack and Swagger UI.
// maxUpload is the per-file limit; the request body limit leaves room above it
// so oversized files get a readable error from the handler.
func NewApp(maxUpload int64) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "resume-analyzer",
		BodyLimit:             int(maxUpload) + bodyOverhead,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return presenter.Error(c, code, msg)
}
