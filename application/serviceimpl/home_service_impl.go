package serviceimpl

import (
	"context"
	"errors"
	"time"

	"desa-profil-backend/domain/dto"
	"desa-profil-backend/domain/services"
	"desa-profil-backend/infrastructure/redis"
	"desa-profil-backend/pkg/apperr"
	"desa-profil-backend/pkg/config"
	"desa-profil-backend/pkg/logger"
)

const (
	homeCacheKey = "public:home"

	// Section sizes of the home aggregate.
	homeDestinations = 6
	homeLatestNews   = 3
)

type HomeServiceImpl struct {
	heroService  services.HeroService
	profileSvc   services.ProfileService
	demoSvc      services.DemographicsService
	officialSvc  services.OfficialService
	destSvc      services.DestinationService
	newsSvc      services.NewsService
	cache        *redis.RedisClient
	revalidateIn time.Duration
}

func NewHomeService(
	heroService services.HeroService,
	profileSvc services.ProfileService,
	demoSvc services.DemographicsService,
	officialSvc services.OfficialService,
	destSvc services.DestinationService,
	newsSvc services.NewsService,
	cache *redis.RedisClient,
	cacheCfg config.CacheConfig,
) services.HomeService {
	return &HomeServiceImpl{
		heroService:  heroService,
		profileSvc:   profileSvc,
		demoSvc:      demoSvc,
		officialSvc:  officialSvc,
		destSvc:      destSvc,
		newsSvc:      newsSvc,
		cache:        cache,
		revalidateIn: time.Duration(cacheCfg.RevalidateSeconds) * time.Second,
	}
}

// GetHome serves the cached aggregate when fresh, rebuilding on a miss. The
// cache TTL equals the revalidation interval, so readers are at most one
// interval behind the admin's writes.
func (s *HomeServiceImpl) GetHome(ctx context.Context) (*dto.HomeResponse, error) {
	if s.cache != nil {
		var cached dto.HomeResponse
		err := s.cache.GetJSON(ctx, homeCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logger.CacheError("home_get", "cache read failed, serving from database", err, nil)
		}
	}

	home, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, home)
	return home, nil
}

// Revalidate rebuilds the aggregate unconditionally. Called by the interval
// job so the cache never serves stale data past one interval.
func (s *HomeServiceImpl) Revalidate(ctx context.Context) error {
	home, err := s.build(ctx)
	if err != nil {
		return err
	}
	s.store(ctx, home)
	logger.Cache("home_revalidate", "home aggregate rebuilt", map[string]interface{}{
		"officials":    len(home.Officials),
		"destinations": len(home.Destinations),
		"latest_news":  len(home.LatestNews),
	})
	return nil
}

func (s *HomeServiceImpl) build(ctx context.Context) (*dto.HomeResponse, error) {
	home := &dto.HomeResponse{
		Officials:    []dto.OfficialResponse{},
		Destinations: []dto.DestinationResponse{},
		LatestNews:   []dto.NewsResponse{},
		GeneratedAt:  time.Now(),
	}

	// Singleton sections may legitimately not exist yet; only real storage
	// failures abort the build.
	hero, err := s.heroService.GetActive(ctx)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	home.Hero = hero

	profile, err := s.profileSvc.Get(ctx)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	home.Profile = profile

	demographics, err := s.demoSvc.Get(ctx)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	home.Demographics = demographics

	officials, err := s.officialSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	home.Officials = officials

	destinations, _, err := s.destSvc.List(ctx, 0, homeDestinations)
	if err != nil {
		return nil, err
	}
	home.Destinations = destinations

	latest, _, err := s.newsSvc.ListPublished(ctx, 0, homeLatestNews)
	if err != nil {
		return nil, err
	}
	home.LatestNews = latest

	return home, nil
}

func (s *HomeServiceImpl) store(ctx context.Context, home *dto.HomeResponse) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, homeCacheKey, home, s.revalidateIn); err != nil {
		logger.CacheError("home_store", "cache write failed", err, nil)
	}
}
