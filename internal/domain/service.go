package domain

// ServiceType тип услуги автосервиса
type ServiceType string

const (
	ServiceWashFull ServiceType = "WASH_FULL"
	ServiceReview   ServiceType = "REVIEW"
)

// serviceLabels подписи услуг для клиента (письма, экспорт)
var serviceLabels = map[ServiceType]string{
	ServiceWashFull: "Lavagem Completa",
	ServiceReview:   "Revisão",
}

// IsValid returns true if the service type is one of the known values
func (s ServiceType) IsValid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label возвращает клиентскую подпись услуги
// Для неизвестного типа возвращает сырое значение
func (s ServiceType) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}
