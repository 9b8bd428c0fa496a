package main

import (
	"log"
	"os"
	"time"

	"warmindo-pos/controllers"
	"warmindo-pos/database"
	"warmindo-pos/middleware"
	"warmindo-pos/repository"
	"warmindo-pos/routes"
	"warmindo-pos/services"
	"warmindo-pos/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "warmindo"
	}
	db := database.Client.Database(dbName)

	proofDir := os.Getenv("PROOF_DIR")
	if proofDir == "" {
		proofDir = "./data/proofs"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		log.Println("SECRET_KEY is empty; signed proof links will not be secure")
	}
	store := storage.NewLocalStore(proofDir, baseURL, []byte(secret))

	orderRepo := repository.NewOrderRepository(database.Client, db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	userRepo := repository.NewUserRepository(db)
	dispatchRepo := repository.NewDispatchRepository(db)

	statusService := services.NewStatusService(orderRepo)
	posService := services.NewPOSService(orderRepo, store)

	hub := controllers.NewHub()
	orderController := controllers.NewOrderController(orderRepo, statusService, posService, hub)
	posController := controllers.NewPOSController(posService, menuRepo, hub)
	menuController := controllers.NewMenuController(menuRepo)
	tableController := controllers.NewTableController(tableRepo)
	ingredientController := controllers.NewIngredientController(ingredientRepo)
	settingController := controllers.NewSettingController(settingRepo)
	userController := controllers.NewUserController(userRepo)
	receiptController := controllers.NewReceiptController(dispatchRepo, orderRepo)
	fileController := controllers.NewFileController(store)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public: login, signup, customer ordering, websocket feed and signed
	// blob retrieval.
	routes.UserRoutes(router, userController, hub)
	routes.WebRoutes(router, posController)
	router.GET("/files/*path", fileController.ServeBlob())

	router.Use(middleware.Authentication())
	routes.ProtectedUserRoutes(router, userController)
	routes.OrderRoutes(router, orderController)
	routes.POSRoutes(router, posController)
	routes.MenuRoutes(router, menuController)
	routes.TableRoutes(router, tableController)
	routes.IngredientRoutes(router, ingredientController)
	routes.SettingRoutes(router, settingController)
	routes.ReceiptRoutes(router, receiptController)

	router.Run(":" + port)
}
