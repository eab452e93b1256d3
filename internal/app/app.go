package app

import (
	"context"
	"log"
	"mindwell_backend/internal/config"
	"mindwell_backend/internal/controller"
	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/scale"
	"mindwell_backend/internal/service"
	"mindwell_backend/pkg/database"
	"mindwell_backend/pkg/logger"
	"mindwell_backend/pkg/monitoring"
	"mindwell_backend/pkg/security"
	"mindwell_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	scaleDef   *repository.ScaleRepository
	assessment *repository.AssessmentRepository
}

type services struct {
	catalog    *service.CatalogService
	auth       *service.AuthService
	storage    *service.StorageService
	user       *service.UserService
	assessment *service.AssessmentService
	report     *service.ReportService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	scale      *controller.ScaleController
	assessment *controller.AssessmentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置热更新入口，由配置文件监视器调用
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		scaleDef:   repository.NewScaleRepository(db),
		assessment: repository.NewAssessmentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	// 量表目录先于其他服务装载：评分引擎依赖目录快照
	s.catalog = service.NewCatalogService(repos.scaleDef)
	if err := s.catalog.Bootstrap(cfg.Catalog.SeedOnEmpty); err != nil {
		logger.Log.Fatal("Failed to bootstrap scale catalog", zap.Error(err))
	}
	logger.Log.Info("Scale catalog loaded", zap.Int("scales", s.catalog.Holder.Catalog().Len()))

	engine := scale.NewEngine(s.catalog.Holder)

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)

	summaryTTL := time.Duration(cfg.Catalog.SummaryCacheTTL) * time.Second
	s.assessment = service.NewAssessmentService(engine, repos.assessment, rdb, summaryTTL)
	s.report = service.NewReportService()

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user),
		scale:      controller.NewScaleController(s.assessment, s.catalog),
		assessment: controller.NewAssessmentController(s.assessment, s.report, s.auth),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	if cfg.Catalog.RefreshMinutes <= 0 {
		return
	}

	// 周期性重载量表目录，数据库里的调整无需重启即可生效
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Catalog.RefreshMinutes) * time.Minute)
		for range ticker.C {
			if err := s.catalog.Refresh(); err != nil {
				logger.Log.Error("scale catalog refresh error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	// release 模式默认跳过自动迁移，-migrate 参数可强制执行
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("mindwell-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services, cfg)

	// 摘要缓存时长允许热更新
	app.RegisterConfigCallback(func(c *config.Config) {
		services.assessment.SummaryTTL = time.Duration(c.Catalog.SummaryCacheTTL) * time.Second
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
