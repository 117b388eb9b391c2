package list_makes

import "github.com/m04kA/RIZZA-BookingService/internal/service/catalog/models"

// MakeResponse HTTP model марки
type MakeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MakesListResponse HTTP response model списка марок
type MakesListResponse struct {
	Makes []MakeResponse `json:"makes"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.MakesResponse) *MakesListResponse {
	makes := make([]MakeResponse, len(resp.Makes))
	for i, m := range resp.Makes {
		makes[i] = MakeResponse{ID: m.ID, Name: m.Name}
	}
	return &MakesListResponse{Makes: makes}
}
