package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"desa-profil-backend/application/serviceimpl"
	"desa-profil-backend/domain/repositories"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/infrastructure/postgres"
	"desa-profil-backend/infrastructure/redis"
	"desa-profil-backend/infrastructure/storage"
	"desa-profil-backend/interfaces/api/handlers"
	"desa-profil-backend/pkg/config"
	"desa-profil-backend/pkg/logger"
	"desa-profil-backend/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisClient  *redis.RedisClient
	BunnyStorage storage.BlobStorage
	Scheduler    scheduler.IntervalScheduler

	// Repositories
	UserRepository         repositories.UserRepository
	HeroRepository         repositories.HeroRepository
	OfficialRepository     repositories.OfficialRepository
	ProfileRepository      repositories.ProfileRepository
	DemographicsRepository repositories.DemographicsRepository
	DestinationRepository  repositories.DestinationRepository
	NewsRepository         repositories.NewsRepository

	// Services
	AuthService         services.AuthService
	HeroService         services.HeroService
	OfficialService     services.OfficialService
	ProfileService      services.ProfileService
	DemographicsService services.DemographicsService
	DestinationService  services.DestinationService
	NewsService         services.NewsService
	UploadService       services.UploadService
	HomeService         services.HomeService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	// Redis is degradable: without it public reads skip the cache.
	redisClient, err := redis.NewRedisClient(c.Config.Redis)
	if err != nil {
		logger.StartupWarn("redis_connection_failed", "Redis connection failed, public cache disabled", map[string]interface{}{"error": err.Error()})
	} else {
		c.RedisClient = redisClient
		logger.Startup("redis_connected", "Redis connected", nil)
	}

	c.BunnyStorage = storage.NewBunnyStorage(c.Config.Bunny)
	logger.Startup("bunny_storage_initialized", "Bunny Storage initialized", nil)

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.HeroRepository = postgres.NewHeroRepository(c.DB)
	c.OfficialRepository = postgres.NewOfficialRepository(c.DB)
	c.ProfileRepository = postgres.NewProfileRepository(c.DB)
	c.DemographicsRepository = postgres.NewDemographicsRepository(c.DB)
	c.DestinationRepository = postgres.NewDestinationRepository(c.DB)
	c.NewsRepository = postgres.NewNewsRepository(c.DB)
}

func (c *Container) initServices() error {
	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.Config.JWT, c.Config.Admin)
	c.HeroService = serviceimpl.NewHeroService(c.HeroRepository)
	c.OfficialService = serviceimpl.NewOfficialService(c.OfficialRepository)
	c.ProfileService = serviceimpl.NewProfileService(c.ProfileRepository)
	c.DemographicsService = serviceimpl.NewDemographicsService(c.DemographicsRepository)
	c.DestinationService = serviceimpl.NewDestinationService(c.DestinationRepository)
	c.NewsService = serviceimpl.NewNewsService(c.NewsRepository)
	c.UploadService = serviceimpl.NewUploadService(c.BunnyStorage, c.Config.Upload)
	c.HomeService = serviceimpl.NewHomeService(
		c.HeroService,
		c.ProfileService,
		c.DemographicsService,
		c.OfficialService,
		c.DestinationService,
		c.NewsService,
		c.RedisClient,
		c.Config.Cache,
	)

	if err := c.AuthService.SeedAdmin(context.Background()); err != nil {
		return err
	}

	return nil
}

func (c *Container) initScheduler() error {
	c.Scheduler = scheduler.NewIntervalScheduler()

	interval := time.Duration(c.Config.Cache.RevalidateSeconds) * time.Second
	err := c.Scheduler.AddIntervalJob("home_revalidate", interval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := c.HomeService.Revalidate(ctx); err != nil {
			logger.SchedulerWarn("home_revalidate", "Revalidation failed", map[string]interface{}{"error": err.Error()})
		}
	})
	if err != nil {
		return err
	}

	c.Scheduler.Start()
	logger.Startup("scheduler_started", "Revalidation scheduler started", map[string]interface{}{
		"interval_seconds": c.Config.Cache.RevalidateSeconds,
	})
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices returns the services bundle consumed by the handlers.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:         c.AuthService,
		HeroService:         c.HeroService,
		OfficialService:     c.OfficialService,
		ProfileService:      c.ProfileService,
		DemographicsService: c.DemographicsService,
		DestinationService:  c.DestinationService,
		NewsService:         c.NewsService,
		UploadService:       c.UploadService,
		HomeService:         c.HomeService,
	}
}

func (c *Container) Cleanup() error {
	if c.Scheduler != nil && c.Scheduler.IsRunning() {
		c.Scheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis client", map[string]interface{}{"error": err.Error()})
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				return err
			}
		}
	}

	return nil
}
