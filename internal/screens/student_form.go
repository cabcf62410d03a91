package screens

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sabata06/mathMentor-app/internal/models"
)

var dateFormatRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateStudentForm проверяет форму ученика до обращения к сети и
// возвращает текст предупреждения для первой найденной проблемы.
// Пустая строка означает, что форма корректна.
//
// Обязательность полей проверяется по обрезанным значениям: строка из
// пробелов - это пустое поле. Необязательные числовые поля и дата
// проверяются только когда заполнены.
func validateStudentForm(form models.StudentForm) string {
	required := form
	required.Name = strings.TrimSpace(form.Name)
	required.Surname = strings.TrimSpace(form.Surname)
	required.ParentName = strings.TrimSpace(form.ParentName)
	required.ParentContact = strings.TrimSpace(form.ParentContact)

	if err := validate.Struct(required); err != nil {
		return msgFillRequiredFields
	}

	if debt := strings.TrimSpace(form.DebtStatus); debt != "" {
		if _, err := strconv.ParseFloat(debt, 64); err != nil {
			return msgDebtNotNumeric
		}
	}

	if progress := strings.TrimSpace(form.BookProgress); progress != "" {
		if _, err := strconv.Atoi(progress); err != nil {
			return msgProgressNotNumeric
		}
	}

	if date := strings.TrimSpace(form.LastLessonDate); date != "" && !dateFormatRe.MatchString(date) {
		return msgBadDateFormat
	}

	return ""
}

// validateHomeworkForm проверяет форму задания: все три поля обязательны
func validateHomeworkForm(form models.HomeworkForm) string {
	required := form
	required.Book = strings.TrimSpace(form.Book)
	required.Topic = strings.TrimSpace(form.Topic)
	required.Page = strings.TrimSpace(form.Page)

	if err := validate.Struct(required); err != nil {
		return msgFillAllFields
	}
	return ""
}
