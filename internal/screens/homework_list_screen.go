package screens

import (
	"context"
	"log"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

// HomeworkListScreen - список заданий одного ученика. Открывается с
// идентификатором и именем ученика из параметров навигации.
type HomeworkListScreen struct {
	api      *api.Client
	notifier Notifier
	guard    opGuard

	StudentID   int
	StudentName string
	Homeworks   []models.Homework
	Loading     bool
}

// NewHomeworkListScreen создает экран списка заданий
func NewHomeworkListScreen(apiClient *api.Client, notifier Notifier) *HomeworkListScreen {
	return &HomeworkListScreen{api: apiClient, notifier: notifier}
}

// Open привязывает экран к ученику и загружает его задания
func (s *HomeworkListScreen) Open(ctx context.Context, studentID int, studentName string) {
	s.StudentID = studentID
	s.StudentName = studentName
	s.Homeworks = nil
	s.Loading = true
	s.fetch(ctx)
}

// Refresh перечитывает список заданий. Используется и как callback
// экрана добавления задания.
func (s *HomeworkListScreen) Refresh(ctx context.Context) {
	s.fetch(ctx)
}

func (s *HomeworkListScreen) fetch(ctx context.Context) {
	token := s.guard.begin()

	homeworks, err := s.api.ListAssignments(ctx, s.StudentID)

	if !s.guard.active(token) {
		return
	}
	s.Loading = false

	if err != nil {
		s.notifier.Alert(titleError, msgHomeworksLoadFailed)
		return
	}
	s.Homeworks = homeworks
}

// EmptyHint возвращает подсказку для пустого списка
func (s *HomeworkListScreen) EmptyHint() string {
	return msgNoHomeworkHint
}

// Toggle переключает флаг выполнения задания и перечитывает список.
// Единственное место, где клиент различает 401 и остальные ошибки:
// на 401 пользователь видит сообщение об истекшей сессии.
func (s *HomeworkListScreen) Toggle(ctx context.Context, homeworkID int, currentStatus bool) {
	_, err := s.api.PatchAssignment(ctx, homeworkID, !currentStatus)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.notifier.Alert(titleError, msgSessionExpired)
		} else {
			s.notifier.Alert(titleError, msgHomeworkToggleFailed)
		}
		return
	}

	s.notifier.Alert(titleSuccess, msgHomeworkToggled)
	s.fetch(ctx)
}

// Delete удаляет задание после подтверждения и перечитывает список.
// Отдельного уведомления об успехе нет.
func (s *HomeworkListScreen) Delete(ctx context.Context, homeworkID int) {
	if !s.notifier.Confirm(titleConfirm, msgHomeworkDeleteAsk) {
		return
	}

	if err := s.api.DeleteAssignment(ctx, homeworkID); err != nil {
		log.Printf("Error deleting homework: %v", err)
		s.notifier.Alert(titleError, msgHomeworkDeleteFailed)
		return
	}

	s.fetch(ctx)
}

// Leave вызывается при уходе с экрана
func (s *HomeworkListScreen) Leave() {
	s.guard.cancel()
}
