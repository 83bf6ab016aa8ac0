package service

import (
	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/store"
	"github.com/MKhiriev/messagely/models"
)

type Services struct {
	UserService    UserService
	MessageService MessageService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the service layer on top of storages. Account and
// message services are wrapped with input validation.
func NewServices(storages *store.Storages, notifier Notifier, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	messageService := NewMessageValidationService().Wrap(
		NewMessageService(storages.MessageRepository, notifier, logger),
	)
	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, messageService, NewBcryptHasher(cfg.App.BcryptCost), logger),
	)

	return &Services{
		UserService:    userService,
		MessageService: messageService,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
