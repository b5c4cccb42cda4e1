package interfaces

import (
	"context"

	"github.com/customeros/trustwatch/internal/models"
)

type WebsiteVerifier interface {
	VerifyWebsite(ctx context.Context, website string) (*models.WebsiteVerification, error)
}

type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email string) (*models.EmailVerification, error)
}
