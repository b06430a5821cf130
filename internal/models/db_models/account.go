package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:teacher"`

	LessonPlans []LessonPlan `gorm:"foreignKey:UserID"`
	Assessments []Assessment `gorm:"foreignKey:UserID"`
}
