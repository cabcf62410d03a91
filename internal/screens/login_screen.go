package screens

import (
	"context"
	"errors"
	"log"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/services"
)

// LoginScreen - экран входа преподавателя
type LoginScreen struct {
	session  *services.SessionService
	notifier Notifier

	// onLoggedIn вызывается после успешного входа: навигация к списку учеников
	onLoggedIn func()

	Username   string
	Password   string
	RememberMe bool
	Loading    bool
}

// NewLoginScreen создает экран входа
func NewLoginScreen(session *services.SessionService, notifier Notifier, onLoggedIn func()) *LoginScreen {
	return &LoginScreen{
		session:    session,
		notifier:   notifier,
		onLoggedIn: onLoggedIn,
	}
}

// Activate предзаполняет поля сохраненными учетными данными, если они есть
func (s *LoginScreen) Activate() {
	username, password := s.session.SavedCredentials()
	if username != "" {
		s.Username = username
	}
	if password != "" {
		s.Password = password
	}
}

// Submit выполняет вход с текущими значениями полей.
// Пока запрос в полете, повторное нажатие игнорируется.
func (s *LoginScreen) Submit(ctx context.Context) {
	if s.Loading {
		return
	}

	s.Loading = true
	err := s.session.SubmitLogin(ctx, s.Username, s.Password, s.RememberMe)
	s.Loading = false

	if err != nil {
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			s.notifier.Alert(titleWarning, vErr.Message)
			return
		}
		// Причина отказа пользователю не показывается
		log.Printf("Login failed: %v", err)
		s.notifier.Alert(titleError, msgLoginFailed)
		return
	}

	s.onLoggedIn()
}
