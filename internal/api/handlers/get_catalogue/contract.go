package get_catalogue

import "github.com/m04kA/SMC-CareSlotService/internal/domain"

// CatalogueProvider exposes the catalogue the service was started with.
type CatalogueProvider interface {
	Spec() domain.CatalogueSpec
}

type Logger interface {
	Info(format string, v ...interface{})
}
