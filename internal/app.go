package internal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-orz/orz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/config"
	"github.com/Nearak/Journal/internal/handler"
	mw "github.com/Nearak/Journal/internal/middleware"
	"github.com/Nearak/Journal/internal/models"
	"github.com/Nearak/Journal/internal/service"
	"github.com/Nearak/Journal/pkg/nostd"
	"github.com/Nearak/Journal/web"
)

func Run(configPath string) error {
	app := NewJournalApp()

	framework, err := orz.NewFramework(
		orz.WithConfig(configPath),
		orz.WithLoggerFromConfig(),
		orz.WithDatabase(),
		orz.WithHTTP(),
		orz.WithApplication(app),
	)
	if err != nil {
		return err
	}

	return framework.Run()
}

func NewJournalApp() orz.Application {
	return &JournalApp{}
}

var _ orz.Application = (*JournalApp)(nil)

type AppComponents struct {
	AuthHandler    *handler.AuthHandler
	JournalHandler *handler.JournalHandler

	AuthService    *service.AuthService
	JournalService *service.JournalService
	BackupService  *service.BackupService
}

type JournalApp struct {
	components *AppComponents
	conf       *config.Config
}

// GetComponents 获取应用组件
func (r *JournalApp) GetComponents() *AppComponents {
	return r.components
}

func (r *JournalApp) Configure(app *orz.App) error {
	logger := app.Logger()
	e := app.GetEcho()
	db := app.GetDatabase()

	var conf config.Config
	err := app.GetConfig().App.Unmarshal(&conf)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %v", err)
	}

	components, err := InitializeApp(logger, db, &conf)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %v", err)
	}
	r.components = components
	r.conf = &conf

	if err := db.AutoMigrate(
		models.Trade{}, models.JournalConfig{},
	); err != nil {
		logger.Fatal("database auto migrate failed", zap.Error(err))
	}

	if err := r.Init(logger); err != nil {
		logger.Fatal("app init failed", zap.Error(err))
	}

	e.HidePort = true
	e.HideBanner = true

	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			sugar := logger.Sugar()
			sugar.Error(fmt.Sprintf("[PANIC RECOVER] %v %s\n", err, stack))
			return err
		},
	}))
	e.Use(WithErrorHandler(logger))
	customValidator := nostd.CustomValidator{Validator: validator.New()}
	if err := customValidator.TransInit(); err != nil {
		logger.Sugar().Fatal("failed to init custom validator", zap.Error(err))
	}
	e.Validator = &customValidator

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().RequestURI
			if strings.HasPrefix(path, "/api") {
				return true
			}
			return false
		},
		Root:       "",
		Index:      "index.html",
		HTML5:      true,
		Browse:     false,
		IgnoreBase: false,
		Filesystem: http.FS(web.Assets()),
	}))

	api := e.Group("/api")
	{
		// 公开接口：登录门禁
		r.components.AuthHandler.RegisterRoutes(api)

		// 受保护接口：仪表盘数据与账本变更
		protected := api.Group("")
		protected.Use(mw.JWTAuth(mw.JWTAuthConfig{
			AuthService: r.components.AuthService,
			Logger:      logger,
		}))
		r.components.AuthHandler.RegisterProtectedRoutes(protected.Group("/auth"))
		r.components.JournalHandler.RegisterRoutes(protected)
	}

	return nil
}

func (r *JournalApp) Init(logger *zap.Logger) error {
	logger.Info("=================================================")
	logger.Info("Journal Trading Diary Starting...")
	logger.Info("=================================================")

	components := r.GetComponents()
	if components == nil {
		return fmt.Errorf("components not initialized")
	}

	ctx := context.Background()

	// 预热账户配置，持久化状态缺失或损坏时落回默认值
	if conf, err := components.JournalService.GetConfig(ctx); err != nil {
		logger.Warn("failed to warm up journal config", zap.Error(err))
	} else {
		logger.Info("journal config loaded", zap.Float64("initial_capital", conf.InitialCapital))
	}

	if err := components.BackupService.Start(ctx); err != nil {
		// 备份属于可恢复能力，调度失败不阻塞启动
		logger.Warn("failed to start backup scheduler", zap.Error(err))
	}

	return nil
}
