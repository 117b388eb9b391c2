package catalog

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса справочника
	ErrInternal = errors.New("catalog: internal error")
)
