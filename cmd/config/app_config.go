package config

import (
	"os"
	"time"

	"github.com/vini-501/FoodBase/internal/api/handlers"
	"github.com/vini-501/FoodBase/internal/api/routes"
	"github.com/vini-501/FoodBase/internal/middleware"
	"github.com/vini-501/FoodBase/internal/utils"
	"github.com/vini-501/FoodBase/internal/utils/storage"
	"github.com/vini-501/FoodBase/pkg/accounting"
	"github.com/vini-501/FoodBase/pkg/delivery"
	"github.com/vini-501/FoodBase/pkg/jwt"
	"github.com/vini-501/FoodBase/pkg/menu"
	"github.com/vini-501/FoodBase/pkg/order"
	"github.com/vini-501/FoodBase/pkg/payment"
	"github.com/vini-501/FoodBase/pkg/reservation"
	"github.com/vini-501/FoodBase/pkg/tableservice"
	"github.com/vini-501/FoodBase/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	orderRepository := order.NewOrderRepository(db)
	deliveryRepository := delivery.NewDeliveryRepository(db)
	reservationRepository := reservation.NewReservationRepository(db)
	tableRepository := tableservice.NewTableRepository(db)
	accountingRepository := accounting.NewAccountingRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository, s3)
	orderService := order.NewOrderService(orderRepository, userRepository)
	deliveryService := delivery.NewDeliveryService(deliveryRepository)
	reservationService := reservation.NewReservationService(reservationRepository)
	tableService := tableservice.NewTableService(tableRepository)
	accountingService := accounting.NewAccountingService(accountingRepository)
	paymentService := payment.NewPaymentService(paymentRepository, orderRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, validator)
	reservationHandler := handlers.NewReservationHandler(reservationService, validator)
	tableHandler := handlers.NewTableHandler(tableService, validator)
	accountingHandler := handlers.NewAccountingHandler(accountingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		MenuHandler:        menuHandler,
		OrderHandler:       orderHandler,
		DeliveryHandler:    deliveryHandler,
		ReservationHandler: reservationHandler,
		TableHandler:       tableHandler,
		AccountingHandler:  accountingHandler,
		PaymentHandler:     paymentHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
