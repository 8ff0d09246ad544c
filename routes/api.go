package routes

import (
	"github.com/gofiber/fiber/v2"

	"sharpcut.app/handlers/api"
	"sharpcut.app/middlewares"
	"sharpcut.app/services"
)

// registerAPIRoutes defines the /api surface. Everything except account
// registration/login requires an authenticated caller.
func registerAPIRoutes(app *fiber.App) {
	notifier := services.NewAppointmentNotifier()
	appointmentHandler := api.NewAppointmentHandler(services.NewAppointmentService(notifier))
	productHandler := api.NewProductHandler(services.NewProductService())
	basketHandler := api.NewBasketHandler(services.NewBasketService())
	paymentHandler := api.NewPaymentHandler(services.NewPaymentService())
	accountHandler := api.NewAccountHandler(services.NewAccountService())

	apiGroup := app.Group("/api")

	account := apiGroup.Group("/account")
	account.Post("/register", accountHandler.Register)
	account.Post("/login", accountHandler.Login)

	authed := apiGroup.Group("", middlewares.AuthMiddleware)

	appointments := authed.Group("/appointments")
	appointments.Get("/", appointmentHandler.ListAppointments)
	appointments.Get("/taken-slots", appointmentHandler.GetTakenSlots)
	appointments.Get("/:id", appointmentHandler.GetAppointment)
	appointments.Post("/", appointmentHandler.CreateAppointment)
	appointments.Put("/:id", appointmentHandler.UpdateAppointment)
	appointments.Put("/:id/complete", appointmentHandler.CompleteAppointment)
	appointments.Put("/:id/cancel", appointmentHandler.CancelAppointment)
	appointments.Delete("/:id", appointmentHandler.DeleteAppointment)

	products := authed.Group("/products")
	products.Get("/", productHandler.GetProducts)
	products.Get("/brands", productHandler.GetBrands)
	products.Get("/types", productHandler.GetTypes)
	products.Get("/:id", productHandler.GetProduct)

	basket := authed.Group("/basket")
	basket.Get("/", basketHandler.GetBasket)
	basket.Post("/", basketHandler.UpdateBasket)
	basket.Delete("/", basketHandler.DeleteBasket)

	authed.Post("/payments/:basketId", paymentHandler.CreateOrUpdatePaymentIntent)
}
