package list_models

import "github.com/m04kA/RIZZA-BookingService/internal/service/catalog/models"

// ModelResponse HTTP model модели автомобиля
type ModelResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageKey string `json:"imageKey"`
	MakeID   int64  `json:"makeId"`
}

// ModelsListResponse HTTP response model списка моделей
type ModelsListResponse struct {
	Models []ModelResponse `json:"models"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ModelsResponse) *ModelsListResponse {
	result := make([]ModelResponse, len(resp.Models))
	for i, m := range resp.Models {
		result[i] = ModelResponse{
			ID:       m.ID,
			Name:     m.Name,
			ImageKey: m.ImageKey,
			MakeID:   m.MakeID,
		}
	}
	return &ModelsListResponse{Models: result}
}
