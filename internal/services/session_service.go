package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/pkg/credstore"
)

// SessionState определяет состояние сессии преподавателя
type SessionState string

const (
	StateLoggedOut      SessionState = "logged_out"
	StateAuthenticating SessionState = "authenticating"
	StateLoggedIn       SessionState = "logged_in"
)

// ErrFieldsRequired возвращается, когда логин или пароль пустые.
// Запрос в сеть в этом случае не уходит.
var ErrFieldsRequired = api.NewValidationError("Lütfen tüm alanları doldurunuz.")

// SessionService управляет входом преподавателя: обменивает учетные
// данные на токены, сохраняет их в локальном хранилище и открывает
// дорогу к авторизованным экранам. Выхода из сессии в дизайне нет -
// сессия заканчивается вместе с процессом.
type SessionService struct {
	creds *credstore.Store
	api   *api.Client
	state SessionState
}

// NewSessionService создает сервис сессии
func NewSessionService(creds *credstore.Store, apiClient *api.Client) *SessionService {
	return &SessionService{
		creds: creds,
		api:   apiClient,
		state: StateLoggedOut,
	}
}

// State возвращает текущее состояние сессии
func (s *SessionService) State() SessionState {
	return s.state
}

// SavedCredentials возвращает сохраненные логин и пароль для
// предзаполнения формы входа. Промах по ключу - пустая строка.
func (s *SessionService) SavedCredentials() (username, password string) {
	username, _ = s.creds.Get(credstore.KeySavedUsername)
	password, _ = s.creds.Get(credstore.KeySavedPassword)
	return username, password
}

// SubmitLogin выполняет вход. Токены сохраняются всегда, логин и пароль -
// только при включенном rememberMe, иначе сохраненная пара стирается.
// При отказе сервера детали ошибки отбрасываются: наружу уходит только
// факт отказа, сервис возвращается в состояние logged_out.
func (s *SessionService) SubmitLogin(ctx context.Context, username, password string, rememberMe bool) error {
	if username == "" || password == "" {
		return ErrFieldsRequired
	}

	s.state = StateAuthenticating

	pair, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.state = StateLoggedOut
		return err
	}

	if err := s.creds.Set(credstore.KeyAccessToken, pair.Access); err != nil {
		s.state = StateLoggedOut
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	if err := s.creds.Set(credstore.KeyRefreshToken, pair.Refresh); err != nil {
		s.state = StateLoggedOut
		return fmt.Errorf("failed to persist refresh token: %w", err)
	}

	s.saveCredentials(username, password, rememberMe)

	s.state = StateLoggedIn
	return nil
}

// saveCredentials сохраняет или стирает пару логин-пароль по флагу rememberMe
func (s *SessionService) saveCredentials(username, password string, rememberMe bool) {
	if rememberMe {
		if err := s.creds.Set(credstore.KeySavedUsername, username); err != nil {
			log.Printf("Failed to save username: %v", err)
		}
		if err := s.creds.Set(credstore.KeySavedPassword, password); err != nil {
			log.Printf("Failed to save password: %v", err)
		}
		return
	}

	if err := s.creds.Remove(credstore.KeySavedUsername); err != nil {
		log.Printf("Failed to clear saved username: %v", err)
	}
	if err := s.creds.Remove(credstore.KeySavedPassword); err != nil {
		log.Printf("Failed to clear saved password: %v", err)
	}
}

// SessionInfo - сведения о текущей сессии из claims access-токена
type SessionInfo struct {
	UserID    int64
	ExpiresAt time.Time
}

// CurrentUser разбирает сохраненный access-токен без проверки подписи
// и достает из него claims для отображения. Срок жизни токена клиент
// не проверяет и по нему ничего не решает: единственный сигнал
// истечения сессии - ответ 401 от сервера.
func (s *SessionService) CurrentUser() (SessionInfo, bool) {
	raw, ok := s.creds.Get(credstore.KeyAccessToken)
	if !ok {
		return SessionInfo{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return SessionInfo{}, false
	}

	info := SessionInfo{}
	if userID, ok := claims["user_id"].(float64); ok {
		info.UserID = int64(userID)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}
