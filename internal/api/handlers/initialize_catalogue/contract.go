package initialize_catalogue

import (
	"context"

	initializeCatalogue "github.com/m04kA/SMC-CareSlotService/internal/usecase/initialize_catalogue"
)

type InitializeCatalogueUseCase interface {
	Execute(ctx context.Context) (*initializeCatalogue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
