package dto

import "time"

// HomeResponse is the aggregate payload behind the public home page. It is
// cached and revalidated on a fixed interval, not per request.
type HomeResponse struct {
	Hero         *HeroResponse         `json:"hero,omitempty"`
	Profile      *ProfileResponse      `json:"profile,omitempty"`
	Demographics *DemographicsResponse `json:"demographics,omitempty"`
	Officials    []OfficialResponse    `json:"officials"`
	Destinations []DestinationResponse `json:"destinations"`
	LatestNews   []NewsResponse        `json:"latest_news"`
	GeneratedAt  time.Time             `json:"generated_at"`
}
