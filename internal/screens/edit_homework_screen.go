package screens

import (
	"context"
	"log"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

// EditHomeworkScreen - форма редактирования задания. Заполняется из
// записи в параметре навигации, сохраняет полной заменой вместе с
// флагом выполнения. Список на предыдущем экране перечитывает данные
// при возврате сам.
type EditHomeworkScreen struct {
	api      *api.Client
	notifier Notifier

	onDone func()

	HomeworkID int
	StudentID  int
	Form       models.HomeworkForm
	Loading    bool
}

// NewEditHomeworkScreen создает форму редактирования задания
func NewEditHomeworkScreen(apiClient *api.Client, notifier Notifier, onDone func()) *EditHomeworkScreen {
	return &EditHomeworkScreen{api: apiClient, notifier: notifier, onDone: onDone}
}

// Open заполняет форму из записи задания
func (s *EditHomeworkScreen) Open(homework models.Homework) {
	s.HomeworkID = homework.ID
	s.StudentID = homework.Student
	s.Form = models.FormFromHomework(homework)
}

// ToggleCompleted переключает флаг выполнения в форме
func (s *EditHomeworkScreen) ToggleCompleted() {
	s.Form.IsCompleted = !s.Form.IsCompleted
}

// Submit проверяет форму и отправляет полную замену записи
func (s *EditHomeworkScreen) Submit(ctx context.Context) {
	if s.Loading {
		return
	}

	if msg := validateHomeworkForm(s.Form); msg != "" {
		s.notifier.Alert(titleWarning, msg)
		return
	}

	s.Loading = true
	_, err := s.api.UpdateAssignment(ctx, s.HomeworkID, s.Form.Payload(s.StudentID))
	s.Loading = false

	if err != nil {
		log.Printf("Error updating homework: %v", err)
		s.notifier.Alert(titleError, msgHomeworkUpdateFailed)
		return
	}

	s.onDone()
}
