package screens

import (
	"context"
	"log"
	"strings"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

// StudentDetailScreen - карточка ученика. Загружается по идентификатору
// из параметра навигации при каждом открытии.
type StudentDetailScreen struct {
	api      *api.Client
	notifier Notifier
	guard    opGuard

	Student *models.Student
	Loading bool
}

// NewStudentDetailScreen создает экран карточки ученика
func NewStudentDetailScreen(apiClient *api.Client, notifier Notifier) *StudentDetailScreen {
	return &StudentDetailScreen{api: apiClient, notifier: notifier}
}

// Load запрашивает данные ученика. При ошибке карточка остается пустой,
// отдельного уведомления нет - пользователь может вернуться и повторить.
func (s *StudentDetailScreen) Load(ctx context.Context, studentID int) {
	s.Loading = true
	token := s.guard.begin()

	student, err := s.api.GetStudent(ctx, studentID)

	if !s.guard.active(token) {
		return
	}
	s.Loading = false

	if err != nil {
		log.Printf("Error fetching student details: %v", err)
		return
	}
	s.Student = student
}

// CallParentURL возвращает ссылку для звонка родителю.
// Открытие ссылки - забота слоя презентации.
func (s *StudentDetailScreen) CallParentURL() string {
	if s.Student == nil {
		return ""
	}
	return "tel:" + s.Student.ParentContact
}

// WhatsAppURL возвращает ссылку на чат с родителем в WhatsApp.
// Номер приводится к цифрам и дополняется кодом страны 90.
func (s *StudentDetailScreen) WhatsAppURL() string {
	if s.Student == nil {
		return ""
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s.Student.ParentContact)
	digits = strings.TrimPrefix(digits, "0")

	return "whatsapp://send?phone=90" + digits
}

// Leave вызывается при уходе с экрана
func (s *StudentDetailScreen) Leave() {
	s.guard.cancel()
}
