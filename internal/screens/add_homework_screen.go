package screens

import (
	"context"
	"log"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

// AddHomeworkScreen - форма добавления задания. Привязана к ученику
// через параметр навигации и получает оттуда же callback обновления
// списка на предыдущем экране.
type AddHomeworkScreen struct {
	api      *api.Client
	notifier Notifier

	StudentID int
	onAdded   func()
	onBack    func()

	Form    models.HomeworkForm
	Loading bool
}

// NewAddHomeworkScreen создает форму добавления задания
func NewAddHomeworkScreen(apiClient *api.Client, notifier Notifier) *AddHomeworkScreen {
	return &AddHomeworkScreen{api: apiClient, notifier: notifier}
}

// Open привязывает форму к ученику. onAdded - запрос обновления списка
// заданий, onBack - возврат на предыдущий экран.
func (s *AddHomeworkScreen) Open(studentID int, onAdded, onBack func()) {
	s.StudentID = studentID
	s.onAdded = onAdded
	s.onBack = onBack
	s.Form = models.HomeworkForm{}
}

// Submit проверяет форму и создает задание. Новое задание всегда
// создается невыполненным. При отказе сервера показывается его
// сообщение, если оно было в ответе.
func (s *AddHomeworkScreen) Submit(ctx context.Context) {
	if s.Loading {
		return
	}

	if msg := validateHomeworkForm(s.Form); msg != "" {
		s.notifier.Alert(titleWarning, msg)
		return
	}

	s.Loading = true
	payload := s.Form.Payload(s.StudentID)
	payload.IsCompleted = false
	_, err := s.api.CreateAssignment(ctx, payload)
	s.Loading = false

	if err != nil {
		log.Printf("Error creating homework: %v", err)
		message := api.ServerMessage(err)
		if message == "" {
			message = msgHomeworkAddFailed
		}
		s.notifier.Alert(titleError, message)
		return
	}

	s.notifier.Alert(titleSuccess, msgHomeworkAdded)
	s.onAdded()
	s.onBack()
}
