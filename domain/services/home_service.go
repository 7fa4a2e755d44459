package services

import (
	"context"

	"desa-profil-backend/domain/dto"
)

// HomeService aggregates the public home page payload. Reads go through a
// time-boxed cache; Revalidate rebuilds it on the fixed interval.
type HomeService interface {
	GetHome(ctx context.Context) (*dto.HomeResponse, error)
	Revalidate(ctx context.Context) error
}
