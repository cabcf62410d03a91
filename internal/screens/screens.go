// Package screens содержит экраны приложения: состояние отображения и
// действия пользователя. Сами экраны ничего не рисуют - слой
// презентации снаружи читает состояние и вызывает операции.
package screens

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Notifier показывает пользователю модальные уведомления.
// Реализуется слоем презентации.
type Notifier interface {
	// Alert показывает сообщение с одной кнопкой подтверждения
	Alert(title, message string)
	// Confirm показывает вопрос с кнопками подтверждения и отмены
	// и возвращает выбор пользователя
	Confirm(title, message string) bool
}

// validate проверяет required-теги форм перед сборкой payload
var validate = validator.New()

// opGuard защищает состояние экрана от устаревших ответов: ответ
// применяется только если с момента отправки запроса на экране не
// началась новая операция и экран не был покинут.
type opGuard struct {
	current uuid.UUID
}

// begin открывает новую операцию и возвращает ее токен
func (g *opGuard) begin() uuid.UUID {
	g.current = uuid.New()
	return g.current
}

// active сообщает, остается ли операция с данным токеном текущей
func (g *opGuard) active(token uuid.UUID) bool {
	return g.current == token
}

// cancel обесценивает все выданные токены, например при уходе с экрана
func (g *opGuard) cancel() {
	g.current = uuid.Nil
}
