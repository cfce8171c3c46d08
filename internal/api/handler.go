package api

import (
	"time"

	"coffeejournal/internal/dashboard"
	"coffeejournal/internal/db"
	"coffeejournal/internal/services"
	"coffeejournal/internal/storage"
	"coffeejournal/internal/wizard"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	authCookieName   = "coffeejournal_auth"
	clientCookieName = "coffeejournal_client"
	contextUserKey   = "current_user"
	contextClientKey = "client_token"
)

const authTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	logger       zerolog.Logger

	repositories     *db.Repositories
	authService      *services.AuthService
	tastingService   *services.TastingService
	pendingService   *services.PendingService
	dashboardService *dashboard.Service
	sessions         *wizard.Manager
	images           *storage.ImageStore
}

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool, uploadsDir string, logger zerolog.Logger) (*Handler, error) {
	images, err := storage.NewImageStore(uploadsDir)
	if err != nil {
		return nil, err
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:               database,
		secretKey:        []byte(secretKey),
		cookieSecure:     cookieSecure,
		logger:           logger,
		repositories:     repositories,
		authService:      services.NewAuthService(repositories.Users),
		tastingService:   services.NewTastingService(repositories.Tastings),
		pendingService:   services.NewPendingService(repositories.Pending, logger),
		dashboardService: dashboard.NewService(repositories.Tastings),
		sessions:         wizard.NewManager(),
		images:           images,
	}, nil
}
