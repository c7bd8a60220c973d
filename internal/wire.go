//go:build wireinject
// +build wireinject

package internal

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Nearak/Journal/internal/config"
	"github.com/Nearak/Journal/internal/handler"
	"github.com/Nearak/Journal/internal/service"
)

var (
	handlerSet = wire.NewSet(
		handler.NewAuthHandler,
		handler.NewJournalHandler,
	)

	serviceSet = wire.NewSet(
		service.NewJournalService,
		service.NewAuthService,
		service.NewBackupService,
	)
)

// InitializeApp 初始化应用
func InitializeApp(logger *zap.Logger, db *gorm.DB, conf *config.Config) (*AppComponents, error) {
	wire.Build(
		handlerSet,
		serviceSet,
		wire.Struct(new(AppComponents), "*"),
	)
	return nil, nil
}
