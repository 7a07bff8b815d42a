package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sekolahku/akademik-api/api/swagger"
	"github.com/sekolahku/akademik-api/internal/academic"
	"github.com/sekolahku/akademik-api/internal/handler"
	"github.com/sekolahku/akademik-api/internal/middleware"
	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/internal/repository"
	"github.com/sekolahku/akademik-api/internal/service"
	"github.com/sekolahku/akademik-api/pkg/cache"
	"github.com/sekolahku/akademik-api/pkg/config"
	"github.com/sekolahku/akademik-api/pkg/database"
	"github.com/sekolahku/akademik-api/pkg/logger"
	corsmiddleware "github.com/sekolahku/akademik-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sekolahku/akademik-api/pkg/middleware/requestid"
)

// @title Akademik API
// @version 1.0.0
// @description Role-scoped academic records service
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
			cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Dashboard.CacheTTL, logr, false)
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
		}
	} else {
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Dashboard.CacheTTL, logr, false)
	}

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	parentRepo := repository.NewParentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	markRepo := repository.NewMarkRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	behaviorRepo := repository.NewBehaviorRepository(db)

	txManager := database.NewTxManager(db)
	resolver := academic.NewResolver(academic.Cutoff{
		Month: cfg.Academic.SemesterCutoffMonth,
		Day:   cfg.Academic.SemesterCutoffDay,
	}, nil)

	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "akademik-api",
	})
	sessionSvc := service.NewSessionService(studentRepo, teacherRepo, parentRepo, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, logr)
	behaviorSvc := service.NewBehaviorService(behaviorRepo, nil, logr)
	studentSvc := service.NewStudentService(markRepo, attendanceRepo, behaviorRepo, resolver, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, logr)
	markSvc := service.NewMarkService(txManager, markRepo, studentRepo, teacherRepo, resolver, userRepo, nil, logr)
	reportSvc := service.NewReportService(markRepo, resolver, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc, attendanceSvc, behaviorSvc)
	parentHandler := handler.NewParentHandler(studentSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	markHandler := handler.NewMarkHandler(markSvc, metricsSvc)
	behaviorHandler := handler.NewBehaviorHandler(behaviorSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)

	protected := api.Group("", middleware.JWT(authSvc))

	students := protected.Group("/students/me", middleware.RequireScope(sessionSvc, models.ScopeStudent))
	students.GET("", studentHandler.Me)
	students.GET("/dashboard", studentHandler.Dashboard)
	students.GET("/marks", studentHandler.Marks)
	students.GET("/attendance", studentHandler.Attendance)
	students.GET("/discipline", studentHandler.Discipline)

	parents := protected.Group("/parents/me", middleware.RequireScope(sessionSvc, models.ScopeParent))
	parents.GET("/child", parentHandler.Child)
	parents.GET("/child/marks", parentHandler.ChildMarks)

	teachers := protected.Group("/teachers/me", middleware.RequireScope(sessionSvc, models.ScopeTeacher))
	teachers.GET("/assignments", teacherHandler.Assignments)

	marks := protected.Group("/marks", middleware.RequireScope(sessionSvc, models.ScopeTeacher))
	marks.POST("", markHandler.Submit)
	marks.GET("", markHandler.List)

	staff := protected.Group("", middleware.RequireScope(sessionSvc, models.ScopeStaff))
	staff.GET("/subjects", subjectHandler.List)
	staff.POST("/behavior-notes", behaviorHandler.Create)
	staff.GET("/students/:id/behavior-notes", behaviorHandler.ListForStudent)
	staff.GET("/reports/classes/marks.csv", reportHandler.ClassMarksCSV)
	staff.GET("/reports/classes/marks.pdf", reportHandler.ClassMarksPDF)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
