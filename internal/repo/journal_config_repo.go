package repo

import (
	"github.com/go-orz/orz"
	"gorm.io/gorm"

	"github.com/Nearak/Journal/internal/models"
)

type JournalConfigRepo struct {
	orz.Repository[models.JournalConfig, string]
}

func NewJournalConfigRepo(db *gorm.DB) *JournalConfigRepo {
	return &JournalConfigRepo{
		Repository: orz.NewRepository[models.JournalConfig, string](db),
	}
}
