package models

import "strings"

// Homework представляет домашнее задание ученика.
// Поле student - внешний ключ на Student.ID, ссылочную целостность
// клиент не проверяет.
type Homework struct {
	ID          int    `json:"id"`
	Student     int    `json:"student"`
	Book        string `json:"book"`
	Topic       string `json:"topic"`
	Page        string `json:"page"`
	IsCompleted bool   `json:"is_completed"`
	DateAdded   string `json:"date_added"`
}

// HomeworkPayload - тело запроса на создание/полную замену задания.
// Page - свободный текст ("50-60"), диапазон не разбирается.
type HomeworkPayload struct {
	Student     int    `json:"student"`
	Book        string `json:"book"`
	Topic       string `json:"topic"`
	Page        string `json:"page"`
	IsCompleted bool   `json:"is_completed"`
}

// HomeworkForm - состояние формы добавления/редактирования задания
type HomeworkForm struct {
	Book        string `validate:"required"`
	Topic       string `validate:"required"`
	Page        string `validate:"required"`
	IsCompleted bool
}

// FormFromHomework заполняет форму редактирования из записи,
// переданной параметром навигации
func FormFromHomework(h Homework) HomeworkForm {
	return HomeworkForm{
		Book:        h.Book,
		Topic:       h.Topic,
		Page:        h.Page,
		IsCompleted: h.IsCompleted,
	}
}

// Payload собирает тело запроса из формы для задания ученика studentID
func (f HomeworkForm) Payload(studentID int) HomeworkPayload {
	return HomeworkPayload{
		Student:     studentID,
		Book:        strings.TrimSpace(f.Book),
		Topic:       strings.TrimSpace(f.Topic),
		Page:        strings.TrimSpace(f.Page),
		IsCompleted: f.IsCompleted,
	}
}
