package routes

import (
	"github.com/vini-501/FoodBase/internal/api/handlers"
	"github.com/vini-501/FoodBase/internal/middleware"
	"github.com/vini-501/FoodBase/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	MenuHandler        handlers.MenuHandler
	OrderHandler       handlers.OrderHandler
	DeliveryHandler    handlers.DeliveryHandler
	ReservationHandler handlers.ReservationHandler
	TableHandler       handlers.TableHandler
	AccountingHandler  handlers.AccountingHandler
	PaymentHandler     handlers.PaymentHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Menu()
	c.Orders()
	c.Deliveries()
	c.Reservations()
	c.Tables()
	c.Accounting()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu")

	menu.Get("", c.MenuHandler.GetMenuItems)
	menu.Get("/categories", c.MenuHandler.GetCategories)
	menu.Get("/category/:name", c.MenuHandler.GetMenuItemsByCategory)
	menu.Get("/:id", c.MenuHandler.GetMenuItemDetails)

	// mutations require a session
	menu.Post("/create", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.CreateMenuItem)
	menu.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.UpdateMenuItem)
	menu.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.DeleteMenuItem)
	menu.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.MenuHandler.UploadMenuImage)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))

	orders.Post("", c.OrderHandler.PlaceOrder)
	orders.Get("", c.OrderHandler.GetMyOrders)
	orders.Get("/:id", c.OrderHandler.GetOrderDetails)
	orders.Patch("/:id/status", c.OrderHandler.UpdateOrderStatus)
	orders.Post("/:id/pay", c.PaymentHandler.CreateTransaction)
}

func (c *Config) Deliveries() {
	deliveries := c.App.Group("/api/v1/deliveries", c.Middleware.AuthMiddleware(c.JWTService))

	deliveries.Get("", c.DeliveryHandler.GetDeliveries)
	deliveries.Get("/order/:order_id", c.DeliveryHandler.GetOrderDeliveries)
	deliveries.Patch("/:id/status", c.DeliveryHandler.UpdateDeliveryStatus)
}

func (c *Config) Reservations() {
	reservations := c.App.Group("/api/v1/reservations", c.Middleware.AuthMiddleware(c.JWTService))

	reservations.Post("", c.ReservationHandler.CreateReservation)
	reservations.Get("", c.ReservationHandler.GetMyReservations)
	reservations.Get("/by-date", c.ReservationHandler.GetReservationsByDate)
	reservations.Patch("/:id/status", c.ReservationHandler.UpdateReservationStatus)
	reservations.Delete("/:id", c.ReservationHandler.CancelReservation)
}

func (c *Config) Tables() {
	tables := c.App.Group("/api/v1/tables", c.Middleware.AuthMiddleware(c.JWTService))

	tables.Get("", c.TableHandler.GetTables)
	tables.Post("/:number/reserve", c.TableHandler.ReserveTable)
	tables.Post("/:number/occupy", c.TableHandler.OccupyTable)
	tables.Post("/:number/release", c.TableHandler.ReleaseTable)
}

func (c *Config) Accounting() {
	accounting := c.App.Group("/api/v1/accounting", c.Middleware.AuthMiddleware(c.JWTService))
	accounting.Get("/summary", c.AccountingHandler.GetFinancialSummary)

	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService))
	admin.Post("/reseed", c.MenuHandler.ReseedMenu)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransNotification)
}
