package api

import (
	"ledgerlens/docs"
	"ledgerlens/internal/api/handlers"
	"ledgerlens/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	receiptHandler *handlers.ReceiptHandler,
	statementHandler *handlers.StatementHandler,
	convertHandler *handlers.ConvertHandler,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Importing docs registers the generated swagger spec via init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	receipts := v1.Group("/receipts")
	receipts.Post("", receiptHandler.Upload)
	receipts.Get("", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.Get)
	receipts.Put("/:id", receiptHandler.Update)
	receipts.Delete("/:id", receiptHandler.Delete)

	v1.Post("/bank-statements", statementHandler.Upload)
	v1.Get("/transactions", statementHandler.ListTransactions)

	v1.Post("/convert", convertHandler.Convert)

	appLogger.Info("Router configured")

	return app
}
