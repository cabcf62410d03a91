package screens

import (
	"context"
	"log"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

// AddStudentScreen - форма добавления ученика
type AddStudentScreen struct {
	api      *api.Client
	notifier Notifier

	// onDone вызывается после успешного создания: навигация к списку
	// учеников, который перечитает данные сам
	onDone func()

	Form    models.StudentForm
	Loading bool
}

// NewAddStudentScreen создает форму добавления ученика
func NewAddStudentScreen(apiClient *api.Client, notifier Notifier, onDone func()) *AddStudentScreen {
	return &AddStudentScreen{api: apiClient, notifier: notifier, onDone: onDone}
}

// Submit проверяет форму и создает ученика. Созданная запись в локальное
// состояние не вливается: источник истины - повторная загрузка списка.
func (s *AddStudentScreen) Submit(ctx context.Context) {
	if s.Loading {
		return
	}

	if msg := validateStudentForm(s.Form); msg != "" {
		s.notifier.Alert(titleWarning, msg)
		return
	}

	s.Loading = true
	_, err := s.api.CreateStudent(ctx, s.Form.Payload())
	s.Loading = false

	if err != nil {
		log.Printf("Error creating student: %v", err)
		s.notifier.Alert(titleError, msgStudentAddFailed)
		return
	}

	s.notifier.Alert(titleSuccess, msgStudentAdded)
	s.onDone()
}
