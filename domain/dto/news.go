package dto

import (
	"time"

	"github.com/google/uuid"

	"desa-profil-backend/domain/models"
)

// NewsRequest carries the editable article fields. Slug and excerpt are
// derived server-side and never accepted from the client.
type NewsRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Content      string `json:"content" validate:"required,strippedmin=100"`
	Category     string `json:"category" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=draft published"`
	ThumbnailURL string `json:"thumbnail_url" validate:"required"`
}

type NewsResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content,omitempty"`
	Excerpt      string     `json:"excerpt"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`
	AuthorName   string     `json:"author_name,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewsToResponse(news *models.News) *NewsResponse {
	if news == nil {
		return nil
	}

	resp := &NewsResponse{
		ID:           news.ID,
		Title:        news.Title,
		Slug:         news.Slug,
		Content:      news.Content,
		Excerpt:      news.Excerpt,
		ThumbnailURL: news.ThumbnailURL,
		Category:     news.Category,
		Status:       string(news.Status),
		AuthorID:     news.AuthorID,
		PublishedAt:  news.PublishedAt,
		CreatedAt:    news.CreatedAt,
		UpdatedAt:    news.UpdatedAt,
	}
	if news.Author != nil {
		resp.AuthorName = news.Author.FullName
	}
	return resp
}

// NewsToListResponse maps for listings: content omitted, excerpt kept.
func NewsToListResponse(items []models.News) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for i := range items {
		resp := NewsToResponse(&items[i])
		resp.Content = ""
		out = append(out, *resp)
	}
	return out
}
