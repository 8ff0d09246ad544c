package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"sharpcut.app/configs"
	"sharpcut.app/configs/configsdatabase"
	"sharpcut.app/configs/configslog"
	"sharpcut.app/configs/configsredis"
	"sharpcut.app/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	configsredis.InitRedis()
	defer configsredis.CloseRedis()

	stripe.Key = configs.StripeSecretKey()
	if stripe.Key == "" {
		configslog.SLog.Warn("STRIPE_SECRET_KEY is not set, payment intents will fail")
	}

	app := fiber.New(fiber.Config{
		AppName: "sharpcut api",
	})
	routes.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("shutting down...")
		_ = app.Shutdown()
	}()

	addr := ":" + configs.GetEnv("PORT", "5000")
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("server stopped", zap.Error(err))
	}
}
