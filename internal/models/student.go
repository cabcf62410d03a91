package models

import (
	"strconv"
	"strings"
)

// Student представляет ученика в том виде, в котором его отдает сервер.
// Именование полей на проводе - snake_case, запись принадлежит серверу:
// клиент держит только временную копию на экране.
type Student struct {
	ID                             int     `json:"id"`
	Name                           string  `json:"name"`
	Surname                        string  `json:"surname"`
	ParentName                     string  `json:"parent_name"`
	ParentContact                  string  `json:"parent_contact"`
	DebtStatus                     float64 `json:"debt_status"`
	LastTopic                      string  `json:"last_topic"`
	BookProgress                   int     `json:"book_progress"`
	LastLessonDate                 string  `json:"last_lesson_date"`
	AssignmentCompletionPercentage float64 `json:"assignment_completion_percentage"`
}

// StudentPayload - тело запроса на создание/полную замену ученика.
// ID назначает сервер, процент выполнения заданий сервер считает сам.
type StudentPayload struct {
	Name           string  `json:"name"`
	Surname        string  `json:"surname"`
	ParentName     string  `json:"parent_name"`
	ParentContact  string  `json:"parent_contact"`
	DebtStatus     float64 `json:"debt_status"`
	LastTopic      string  `json:"last_topic"`
	BookProgress   int     `json:"book_progress"`
	LastLessonDate string  `json:"last_lesson_date"`
}

// HasDebt возвращает true, если за учеником числится долг.
// Порог отображения - строго больше нуля.
func (s Student) HasDebt() bool {
	return s.DebtStatus > 0
}

// FullName возвращает имя и фамилию ученика для заголовков и диалогов
func (s Student) FullName() string {
	return strings.TrimSpace(s.Name + " " + s.Surname)
}

// StudentForm - состояние формы добавления/редактирования ученика.
// Все поля хранятся строками так, как их набрал пользователь,
// преобразование в числа происходит только при сборке payload.
type StudentForm struct {
	Name           string `validate:"required"`
	Surname        string `validate:"required"`
	ParentName     string `validate:"required"`
	ParentContact  string `validate:"required"`
	DebtStatus     string
	LastTopic      string
	BookProgress   string
	LastLessonDate string
}

// FormFromStudent заполняет форму редактирования текущими значениями записи.
// Запись приходит параметром навигации и повторно с сервера не запрашивается.
func FormFromStudent(s Student) StudentForm {
	return StudentForm{
		Name:           s.Name,
		Surname:        s.Surname,
		ParentName:     s.ParentName,
		ParentContact:  s.ParentContact,
		DebtStatus:     strconv.FormatFloat(s.DebtStatus, 'f', -1, 64),
		LastTopic:      s.LastTopic,
		BookProgress:   strconv.Itoa(s.BookProgress),
		LastLessonDate: s.LastLessonDate,
	}
}

// Payload собирает тело запроса из формы. Форма должна быть уже
// провалидирована: нечисловые значения здесь молча превращаются в 0,
// как и пустые необязательные поля.
func (f StudentForm) Payload() StudentPayload {
	debt, _ := strconv.ParseFloat(strings.TrimSpace(f.DebtStatus), 64)
	progress, _ := strconv.Atoi(strings.TrimSpace(f.BookProgress))

	return StudentPayload{
		Name:           strings.TrimSpace(f.Name),
		Surname:        strings.TrimSpace(f.Surname),
		ParentName:     strings.TrimSpace(f.ParentName),
		ParentContact:  strings.TrimSpace(f.ParentContact),
		DebtStatus:     debt,
		LastTopic:      strings.TrimSpace(f.LastTopic),
		BookProgress:   progress,
		LastLessonDate: strings.TrimSpace(f.LastLessonDate),
	}
}
