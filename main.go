package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"artstudio-api/config"
	"artstudio-api/database"
	routes "artstudio-api/internal/app/http"
	"artstudio-api/internal/infra/images"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	covers, err := images.NewCloudStore(config.CLOUDINARY_URL, config.CLOUDINARY_FOLDER)
	if err != nil {
		log.Fatal("❌ Cloudinary init failed:", err)
	}
	images.Covers = covers

	logos, err := images.NewLocalStore(config.UPLOAD_DIR, "/uploads")
	if err != nil {
		log.Fatal("❌ Upload dir init failed:", err)
	}
	images.Logos = logos

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", config.UPLOAD_DIR)

	routes.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + config.PORT,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server error:", err)
		}
	}()
	log.Println("🚀 Server running on port", config.PORT)

	<-ctx.Done()
	log.Println("🔌 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}
	database.Close()
}
