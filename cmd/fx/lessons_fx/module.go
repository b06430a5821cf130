package lessons_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"teachassist/internal/api/controllers"
	"teachassist/internal/repositories"
	"teachassist/internal/services"
	"teachassist/pkg/utils"
)

var Module = fx.Provide(
	provideLessonPlanRepo,
	provideLessonEmbeddingRepo,
	provideLessonPlanService,
	controllers.NewLessonPlanController)

func provideLessonPlanRepo(db *gorm.DB) repositories.LessonPlanRepository {
	return repositories.NewLessonPlanRepository(db)
}

func provideLessonEmbeddingRepo(db *gorm.DB) repositories.LessonEmbeddingRepository {
	return repositories.NewLessonEmbeddingRepository(db)
}

func provideLessonPlanService(
	aiClient utils.GenerativeClientInterface,
	embedClient utils.EmbeddingClientInterface,
	planRepo repositories.LessonPlanRepository,
	embeddingRepo repositories.LessonEmbeddingRepository,
) services.LessonPlanServiceInterface {
	return services.NewLessonPlanService(aiClient, embedClient, planRepo, embeddingRepo)
}
