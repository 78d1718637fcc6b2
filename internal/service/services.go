package service

import (
	"github.com/ndanilenko/authgate/internal/config"
	"github.com/ndanilenko/authgate/internal/logger"
	"github.com/ndanilenko/authgate/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenValidator TokenValidator
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages, cfg, logger),
		TokenValidator: NewTokenValidator(storages, cfg, logger),
	}
}
