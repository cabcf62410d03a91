package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sabata06/mathMentor-app/internal/models"
)

// ListAssignments возвращает задания одного ученика
func (c *Client) ListAssignments(ctx context.Context, studentID int) ([]models.Homework, error) {
	query := url.Values{"student_id": []string{strconv.Itoa(studentID)}}

	var homeworks []models.Homework
	if err := c.do(ctx, http.MethodGet, "/api/assignments/", query, nil, &homeworks); err != nil {
		return nil, err
	}
	return homeworks, nil
}

// CreateAssignment создает задание для ученика из payload.Student
func (c *Client) CreateAssignment(ctx context.Context, payload models.HomeworkPayload) (*models.Homework, error) {
	var homework models.Homework
	if err := c.do(ctx, http.MethodPost, "/api/assignments/", nil, payload, &homework); err != nil {
		return nil, err
	}
	return &homework, nil
}

// UpdateAssignment полностью заменяет запись задания
func (c *Client) UpdateAssignment(ctx context.Context, id int, payload models.HomeworkPayload) (*models.Homework, error) {
	var homework models.Homework
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/assignments/%d/", id), nil, payload, &homework); err != nil {
		return nil, err
	}
	return &homework, nil
}

// PatchAssignment меняет только флаг выполнения задания
func (c *Client) PatchAssignment(ctx context.Context, id int, isCompleted bool) (*models.Homework, error) {
	body := map[string]bool{"is_completed": isCompleted}

	var homework models.Homework
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/assignments/%d/", id), nil, body, &homework); err != nil {
		return nil, err
	}
	return &homework, nil
}

// DeleteAssignment удаляет задание
func (c *Client) DeleteAssignment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/assignments/%d/", id), nil, nil, nil)
}
