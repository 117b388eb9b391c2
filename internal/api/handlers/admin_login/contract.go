package admin_login

import "net/http"

// SessionManager интерфейс менеджера административной сессии
type SessionManager interface {
	Set(w http.ResponseWriter, username string) error
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
