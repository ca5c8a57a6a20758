package initialize_catalogue

import (
	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	initializeCatalogue "github.com/m04kA/SMC-CareSlotService/internal/usecase/initialize_catalogue"
)

// InitializeResponse HTTP response model
type InitializeResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Total    int    `json:"total"`
	Created  int    `json:"created"`
	Existing int    `json:"existing"`
	Failed   int    `json:"failed"`
}

func FromUseCaseResponse(resp *initializeCatalogue.Response) *InitializeResponse {
	return &InitializeResponse{
		Success:  true,
		Message:  domain.MsgInitialized,
		Total:    resp.Total,
		Created:  resp.Created,
		Existing: resp.Existing,
		Failed:   resp.Failed,
	}
}
