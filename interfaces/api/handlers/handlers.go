package handlers

import (
	"gorm.io/gorm"

	"desa-profil-backend/domain/services"
	"desa-profil-backend/infrastructure/redis"
	"desa-profil-backend/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
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

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth         *AuthHandler
	Hero         *HeroHandler
	Official     *OfficialHandler
	Profile      *ProfileHandler
	Demographics *DemographicsHandler
	Destination  *DestinationHandler
	News         *NewsHandler
	Upload       *UploadHandler
	Public       *PublicHandler
	Health       *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services, db *gorm.DB, redisClient *redis.RedisClient, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.AuthService),
		Hero:         NewHeroHandler(services.HeroService),
		Official:     NewOfficialHandler(services.OfficialService),
		Profile:      NewProfileHandler(services.ProfileService),
		Demographics: NewDemographicsHandler(services.DemographicsService),
		Destination:  NewDestinationHandler(services.DestinationService),
		News:         NewNewsHandler(services.NewsService),
		Upload:       NewUploadHandler(services.UploadService),
		Public:       NewPublicHandler(services.HomeService, services.NewsService, services.DestinationService),
		Health:       NewHealthHandler(db, redisClient, cfg),
	}
}
