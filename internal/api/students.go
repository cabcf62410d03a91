package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sabata06/mathMentor-app/internal/models"
)

// ListStudents возвращает весь список учеников преподавателя.
// Пагинации нет, поиск по списку выполняется на клиенте.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.do(ctx, http.MethodGet, "/api/students/", nil, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent возвращает одного ученика по идентификатору
func (c *Client) GetStudent(ctx context.Context, id int) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/students/%d/", id), nil, nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent создает ученика, идентификатор назначает сервер
func (c *Client) CreateStudent(ctx context.Context, payload models.StudentPayload) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodPost, "/api/students/", nil, payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent полностью заменяет запись ученика
func (c *Client) UpdateStudent(ctx context.Context, id int, payload models.StudentPayload) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/students/%d/", id), nil, payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent удаляет ученика. Каскадного удаления его заданий
// на клиенте нет, поведение сервера здесь не определено.
func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/students/%d/", id), nil, nil, nil)
}
