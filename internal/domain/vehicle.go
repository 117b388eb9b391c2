package domain

// VehicleMake марка автомобиля (статический справочник)
type VehicleMake struct {
	ID   int64
	Name string
}

// VehicleModel модель автомобиля, принадлежит марке
type VehicleModel struct {
	ID       int64
	MakeID   int64
	Name     string
	ImageKey string
}

// VehicleModelWithMake модель вместе с маркой
// Используется при валидации пары (makeId, modelId) и для подписи автомобиля
type VehicleModelWithMake struct {
	Model VehicleModel
	Make  VehicleMake
}
