// Package seed provisions a development database: an admin account, a sample
// published article, and a comment on it. Seeding is idempotent and safe to
// run repeatedly.
package seed

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/user/newswire-go/apperror"
	"github.com/user/newswire-go/auth"
	"github.com/user/newswire-go/models"
	"github.com/user/newswire-go/store"
)

const (
	defaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "admin"
)

// Run seeds the admin user and sample content.
func Run(ctx context.Context, users store.Users, news store.News, comments store.Comments, log *zap.Logger) error {
	admin, err := seedAdmin(ctx, users, log)
	if err != nil {
		return err
	}
	return seedSampleContent(ctx, news, comments, admin, log)
}

func seedAdmin(ctx context.Context, users store.Users, log *zap.Logger) (*models.User, error) {
	email := envOr("ADMIN_EMAIL", defaultAdminEmail)
	password := envOr("ADMIN_PASSWORD", defaultAdminPassword)

	if existing, err := users.GetByEmail(ctx, email); err == nil {
		log.Info("admin user already present", zap.String("email", email))
		return existing, nil
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.User{
		Name:           "Administrator",
		Email:          email,
		HashedPassword: hashed,
		Role:           models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return nil, err
	}
	log.Info("admin user created", zap.String("email", email))
	return admin, nil
}

func seedSampleContent(ctx context.Context, news store.News, comments store.Comments, admin *models.User, log *zap.Logger) error {
	published := models.StatusPublished
	existing, err := news.List(ctx, models.NewsFilter{Status: &published})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("sample content already present")
		return nil
	}

	article := &models.News{
		Title:    "Welcome to Newswire",
		Content:  "This sample article demonstrates the publishing pipeline. Feel free to delete it.",
		Category: models.CategoryTechnology,
		AuthorID: admin.ID,
		Status:   models.StatusPublished,
	}
	if err := news.Create(ctx, article); err != nil {
		return err
	}

	comment := &models.Comment{
		Content:  "First!",
		NewsID:   article.ID,
		AuthorID: admin.ID,
	}
	if err := comments.Create(ctx, comment); err != nil {
		return err
	}
	if _, err := news.RecomputePopularity(ctx, article.ID); err != nil {
		return err
	}

	log.Info("sample content created", zap.Int64("news_id", article.ID))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
