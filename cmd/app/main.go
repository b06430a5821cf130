package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"teachassist/cmd/fx/account_fx"
	"teachassist/cmd/fx/ai_fx"
	"teachassist/cmd/fx/assessments_fx"
	"teachassist/cmd/fx/db_fx"
	"teachassist/cmd/fx/lessons_fx"
	"teachassist/internal/api/controllers"
	"teachassist/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		lessons_fx.Module,
		assessments_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	lessonPlanController *controllers.LessonPlanController,
	assessmentController *controllers.AssessmentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, lessonPlanController, assessmentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	lessonPlanController *controllers.LessonPlanController,
	assessmentController *controllers.AssessmentController) {

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	r.POST("/generate-lesson-plan", middleware.JWTAuthMiddleware(), lessonPlanController.Generate)
	r.POST("/api/generate-questions", assessmentController.GenerateQuestions)
	r.POST("/api/generate-assessment", assessmentController.GenerateAssessment)

	lessonsGroup := r.Group("/lessons")
	lessonsGroup.Use(middleware.JWTAuthMiddleware())
	lessonsGroup.GET("", lessonPlanController.List)
	lessonsGroup.GET("/search", lessonPlanController.Search)
	lessonsGroup.GET("/related", lessonPlanController.Related)
	lessonsGroup.GET("/:id", lessonPlanController.GetByID)

	assessmentsGroup := r.Group("/api/assessments")
	assessmentsGroup.Use(middleware.JWTAuthMiddleware())
	assessmentsGroup.GET("", assessmentController.List)
	assessmentsGroup.GET("/:id", assessmentController.GetByID)
}
