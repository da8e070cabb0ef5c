package routes

import (
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/api/handlers"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/internal/middleware"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/jwt"
	"github.com/AdityaSinghh7/Endeavor-Take-Home/pkg/user"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	UserHandler          handlers.UserHandler
	DocumentHandler      handlers.DocumentHandler
	PurchaseOrderHandler handlers.PurchaseOrderHandler
	MatchingHandler      handlers.MatchingHandler
	ProductHandler       handlers.ProductHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
	UserService          user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Documents()
	c.PurchaseOrders()
	c.Matchings()
	c.Products()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Endeavor FDE Takehome API is running."})
	})
}

func (c *Config) Auth() {
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Post("/login", c.UserHandler.Login)
}

func (c *Config) Documents() {
	documents := c.App.Group("/documents", c.Middleware.AuthMiddleware(c.JWTService))
	{
		documents.Post("/upload", c.DocumentHandler.UploadDocument)
		documents.Get("/", c.DocumentHandler.GetDocuments)
		documents.Get("/:id/line_items", c.DocumentHandler.GetLineItems)
		documents.Post("/:id/line_items", c.DocumentHandler.SaveLineItems)
	}
}

func (c *Config) PurchaseOrders() {
	orders := c.App.Group("/purchase_orders")
	{
		// next_id goes first so ":id" never swallows it
		orders.Get("/next_id", c.PurchaseOrderHandler.NextPurchaseOrderID)
		orders.Get("/", c.PurchaseOrderHandler.GetPurchaseOrders)
		orders.Post("/", c.PurchaseOrderHandler.CreatePurchaseOrder)
		orders.Get("/:id", c.PurchaseOrderHandler.GetPurchaseOrder)
		orders.Delete("/:id", c.PurchaseOrderHandler.DeletePurchaseOrder)
	}
}

func (c *Config) Matchings() {
	matchings := c.App.Group("/matchings", c.Middleware.AuthMiddleware(c.JWTService))
	{
		matchings.Get("/download_csv", c.MatchingHandler.DownloadCSV)
		matchings.Post("/external-batch-match", c.MatchingHandler.ExternalBatchMatch)
		matchings.Post("/", c.MatchingHandler.StoreMatching)
		matchings.Get("/", c.MatchingHandler.GetMatchings)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/products", c.Middleware.BasicAuthMiddleware(c.UserService))
	{
		products.Get("/", c.ProductHandler.GetProducts)
		products.Post("/", c.ProductHandler.CreateProduct)
	}
}
