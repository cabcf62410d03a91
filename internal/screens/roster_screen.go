package screens

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

// RosterScreen - список учеников с поиском и удалением.
// Students хранит последний ответ сервера целиком, Filtered - срез
// под текущим поисковым запросом. Поиск выполняется только на клиенте.
type RosterScreen struct {
	api      *api.Client
	notifier Notifier
	guard    opGuard

	Students    []models.Student
	Filtered    []models.Student
	SearchQuery string
	Loading     bool
	Refreshing  bool
}

// NewRosterScreen создает экран списка учеников
func NewRosterScreen(apiClient *api.Client, notifier Notifier) *RosterScreen {
	return &RosterScreen{api: apiClient, notifier: notifier}
}

// Load загружает список при открытии экрана
func (s *RosterScreen) Load(ctx context.Context) {
	s.Loading = true
	s.fetch(ctx)
}

// Refresh перезагружает список жестом обновления
func (s *RosterScreen) Refresh(ctx context.Context) {
	s.Refreshing = true
	s.fetch(ctx)
}

// fetch запрашивает список и восстанавливает текущий фильтр.
// При ошибке список остается как был, пользователь видит уведомление.
func (s *RosterScreen) fetch(ctx context.Context) {
	token := s.guard.begin()

	students, err := s.api.ListStudents(ctx)

	if !s.guard.active(token) {
		return
	}
	s.Loading = false
	s.Refreshing = false

	if err != nil {
		log.Printf("Error fetching students: %v", err)
		s.notifier.Alert(titleError, msgStudentsLoadFailed)
		return
	}

	s.Students = students
	s.applyFilter()
}

// Search фильтрует уже загруженный список: подстрока без учета регистра
// по имени, фамилии и имени родителя
func (s *RosterScreen) Search(query string) {
	s.SearchQuery = query
	s.applyFilter()
}

func (s *RosterScreen) applyFilter() {
	query := strings.ToLower(s.SearchQuery)
	if query == "" {
		s.Filtered = s.Students
		return
	}

	filtered := make([]models.Student, 0, len(s.Students))
	for _, student := range s.Students {
		if strings.Contains(strings.ToLower(student.Name), query) ||
			strings.Contains(strings.ToLower(student.Surname), query) ||
			strings.Contains(strings.ToLower(student.ParentName), query) {
			filtered = append(filtered, student)
		}
	}
	s.Filtered = filtered
}

// Delete удаляет ученика после явного подтверждения, называя его по
// имени. После удаления список перечитывается с сервера целиком.
func (s *RosterScreen) Delete(ctx context.Context, id int, studentName string) {
	ok := s.notifier.Confirm(
		titleDeleteStudent,
		fmt.Sprintf("%s isimli öğrenciyi silmek istediğinize emin misiniz?", studentName),
	)
	if !ok {
		return
	}

	if err := s.api.DeleteStudent(ctx, id); err != nil {
		log.Printf("Error deleting student: %v", err)
		s.notifier.Alert(titleError, msgStudentDeleteFailed)
		return
	}

	s.fetch(ctx)
	s.notifier.Alert(titleSuccess, msgStudentDeleted)
}

// Leave вызывается при уходе с экрана, чтобы ответ в полете
// не тронул уже брошенное состояние
func (s *RosterScreen) Leave() {
	s.guard.cancel()
}
