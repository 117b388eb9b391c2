package session

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

// sessionName имя административной сессионной куки
const sessionName = "rizza_admin_session"

// Manager менеджер административной сессии на securecookie
type Manager struct {
	sc *securecookie.SecureCookie
}

// NewManager создает менеджер сессий
// hashKey - 32 байта, blockKey - 16/24/32 байта
func NewManager(hashKey, blockKey []byte) *Manager {
	return &Manager{sc: securecookie.New(hashKey, blockKey)}
}

// Set выставляет сессионную куку администратора
func (m *Manager) Set(w http.ResponseWriter, username string) error {
	value := map[string]string{"user": username}
	encoded, err := m.sc.Encode(sessionName, value)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear сбрасывает сессионную куку
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get возвращает имя администратора из куки, если сессия валидна
func (m *Manager) Get(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionName)
	if err != nil {
		return "", false
	}

	value := map[string]string{}
	if err := m.sc.Decode(sessionName, cookie.Value, &value); err != nil {
		return "", false
	}

	user := value["user"]
	if user == "" {
		return "", false
	}
	return user, true
}
