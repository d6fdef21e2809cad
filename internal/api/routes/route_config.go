package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maximebaudoin/expired-products/internal/api/handlers"
	"github.com/maximebaudoin/expired-products/internal/middleware"
	"github.com/maximebaudoin/expired-products/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	DeviceHandler  handlers.DeviceHandler
	ScanHandler    handlers.ScanHandler
	ProductHandler handlers.ProductHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Devices()
	c.Scan()
	c.Products()
	c.GuestRoute()
}

func (c *Config) Devices() {
	devices := c.App.Group("/api/v1/devices")
	{
		devices.Post("/register", c.DeviceHandler.RegisterDevice)
	}
}

func (c *Config) Scan() {
	c.App.Post("/api/v1/scan", c.Middleware.AuthMiddleware(c.JWTService), c.ScanHandler.ScanBarcode)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	products.Post("", c.ProductHandler.AddProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Delete("/:id", c.ProductHandler.DeleteProduct)
	products.Post("/digest", c.ProductHandler.SendExpiryDigest)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
