package screens

import (
	"context"
	"log"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

// EditStudentScreen - форма редактирования ученика. Поля заполняются из
// записи, переданной параметром навигации, и не перечитываются с сервера.
// Сохранение - полная замена записи; список на предыдущем экране обязан
// перечитать данные при возврате.
type EditStudentScreen struct {
	api      *api.Client
	notifier Notifier

	onDone func()

	StudentID int
	Form      models.StudentForm
	Loading   bool
}

// NewEditStudentScreen создает форму редактирования ученика
func NewEditStudentScreen(apiClient *api.Client, notifier Notifier, onDone func()) *EditStudentScreen {
	return &EditStudentScreen{api: apiClient, notifier: notifier, onDone: onDone}
}

// Open заполняет форму текущими значениями записи
func (s *EditStudentScreen) Open(student models.Student) {
	s.StudentID = student.ID
	s.Form = models.FormFromStudent(student)
}

// Submit проверяет форму и отправляет полную замену записи
func (s *EditStudentScreen) Submit(ctx context.Context) {
	if s.Loading {
		return
	}

	if msg := validateStudentForm(s.Form); msg != "" {
		s.notifier.Alert(titleWarning, msg)
		return
	}

	s.Loading = true
	_, err := s.api.UpdateStudent(ctx, s.StudentID, s.Form.Payload())
	s.Loading = false

	if err != nil {
		log.Printf("Error updating student: %v", err)
		s.notifier.Alert(titleError, msgStudentUpdateError)
		return
	}

	s.notifier.Alert(titleSuccess, msgStudentUpdated)
	s.onDone()
}
