package models

import "github.com/m04kA/RIZZA-BookingService/internal/domain"

// Make марка автомобиля в ответе сервиса
type Make struct {
	ID   int64
	Name string
}

// Model модель автомобиля в ответе сервиса
type Model struct {
	ID       int64
	MakeID   int64
	Name     string
	ImageKey string
}

// MakesResponse список марок
type MakesResponse struct {
	Makes []Make
}

// ModelsResponse список моделей одной марки
type ModelsResponse struct {
	Models []Model
}

// FromDomainMakes конвертирует доменные марки в ответ сервиса
func FromDomainMakes(makes []*domain.VehicleMake) *MakesResponse {
	result := make([]Make, len(makes))
	for i, m := range makes {
		result[i] = Make{ID: m.ID, Name: m.Name}
	}
	return &MakesResponse{Makes: result}
}

// FromDomainModels конвертирует доменные модели в ответ сервиса
func FromDomainModels(models []*domain.VehicleModel) *ModelsResponse {
	result := make([]Model, len(models))
	for i, m := range models {
		result[i] = Model{ID: m.ID, MakeID: m.MakeID, Name: m.Name, ImageKey: m.ImageKey}
	}
	return &ModelsResponse{Models: result}
}
