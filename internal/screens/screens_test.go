package screens

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// alertRecord - одно показанное уведомление
type alertRecord struct {
	Title   string
	Message string
}

// notifierRecorder записывает уведомления и отвечает на подтверждения
// заранее заданным образом
type notifierRecorder struct {
	alerts        []alertRecord
	confirmAnswer bool
	confirmAsked  int
}

func (n *notifierRecorder) Alert(title, message string) {
	n.alerts = append(n.alerts, alertRecord{Title: title, Message: message})
}

func (n *notifierRecorder) Confirm(title, message string) bool {
	n.confirmAsked++
	return n.confirmAnswer
}

func (n *notifierRecorder) lastAlert(t *testing.T) alertRecord {
	t.Helper()
	if len(n.alerts) == 0 {
		t.Fatal("no alerts were shown")
	}
	return n.alerts[len(n.alerts)-1]
}

// fakeAPI - поддельный сервер MathMentor с состоянием в памяти.
// Считает запросы по ресурсам, статус ответа на PATCH можно подменить.
type fakeAPI struct {
	mu        sync.Mutex
	students  map[int]models.Student
	homeworks map[int]models.Homework
	nextID    int

	requests        int
	patchStatusCode int // 0 - обычное поведение

	server *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{
		students:  make(map[int]models.Student),
		homeworks: make(map[int]models.Homework),
		nextID:    1,
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		f.mu.Lock()
		f.requests++
		f.mu.Unlock()
	})

	router.GET("/api/students/", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		list := make([]models.Student, 0, len(f.students))
		for _, s := range f.students {
			list = append(list, s)
		}
		c.JSON(http.StatusOK, list)
	})
	router.POST("/api/students/", func(c *gin.Context) {
		var payload models.StudentPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		student := models.Student{
			ID:             f.nextID,
			Name:           payload.Name,
			Surname:        payload.Surname,
			ParentName:     payload.ParentName,
			ParentContact:  payload.ParentContact,
			DebtStatus:     payload.DebtStatus,
			LastTopic:      payload.LastTopic,
			BookProgress:   payload.BookProgress,
			LastLessonDate: payload.LastLessonDate,
		}
		f.nextID++
		f.students[student.ID] = student
		c.JSON(http.StatusCreated, student)
	})
	router.GET("/api/students/:id/", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		student, ok := f.students[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
			return
		}
		c.JSON(http.StatusOK, student)
	})
	router.PUT("/api/students/:id/", func(c *gin.Context) {
		var payload models.StudentPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		if _, ok := f.students[id]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
			return
		}
		student := f.students[id]
		student.Name = payload.Name
		student.Surname = payload.Surname
		student.ParentName = payload.ParentName
		student.ParentContact = payload.ParentContact
		student.DebtStatus = payload.DebtStatus
		student.LastTopic = payload.LastTopic
		student.BookProgress = payload.BookProgress
		student.LastLessonDate = payload.LastLessonDate
		f.students[id] = student
		c.JSON(http.StatusOK, student)
	})
	router.DELETE("/api/students/:id/", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		delete(f.students, id)
		c.Status(http.StatusNoContent)
	})

	router.GET("/api/assignments/", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		studentID, _ := strconv.Atoi(c.Query("student_id"))
		list := make([]models.Homework, 0)
		for _, hw := range f.homeworks {
			if hw.Student == studentID {
				list = append(list, hw)
			}
		}
		c.JSON(http.StatusOK, list)
	})
	router.POST("/api/assignments/", func(c *gin.Context) {
		var payload models.HomeworkPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		hw := models.Homework{
			ID:          f.nextID,
			Student:     payload.Student,
			Book:        payload.Book,
			Topic:       payload.Topic,
			Page:        payload.Page,
			IsCompleted: payload.IsCompleted,
			DateAdded:   "2025-01-01",
		}
		f.nextID++
		f.homeworks[hw.ID] = hw
		c.JSON(http.StatusCreated, hw)
	})
	router.PUT("/api/assignments/:id/", func(c *gin.Context) {
		var payload models.HomeworkPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		hw, ok := f.homeworks[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
			return
		}
		hw.Student = payload.Student
		hw.Book = payload.Book
		hw.Topic = payload.Topic
		hw.Page = payload.Page
		hw.IsCompleted = payload.IsCompleted
		f.homeworks[id] = hw
		c.JSON(http.StatusOK, hw)
	})
	router.PATCH("/api/assignments/:id/", func(c *gin.Context) {
		f.mu.Lock()
		status := f.patchStatusCode
		f.mu.Unlock()
		if status != 0 {
			c.JSON(status, gin.H{"detail": "forced failure"})
			return
		}

		var body struct {
			IsCompleted bool `json:"is_completed"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		hw, ok := f.homeworks[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
			return
		}
		hw.IsCompleted = body.IsCompleted
		f.homeworks[id] = hw
		c.JSON(http.StatusOK, hw)
	})
	router.DELETE("/api/assignments/:id/", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		delete(f.homeworks, id)
		c.Status(http.StatusNoContent)
	})

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) setPatchStatus(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patchStatusCode = code
}

func (f *fakeAPI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeAPI) addStudent(s models.Student) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	} else if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	f.students[s.ID] = s
}

func (f *fakeAPI) addHomework(hw models.Homework) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if hw.ID == 0 {
		hw.ID = f.nextID
		f.nextID++
	} else if hw.ID >= f.nextID {
		f.nextID = hw.ID + 1
	}
	f.homeworks[hw.ID] = hw
}

func (f *fakeAPI) homework(id int) (models.Homework, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hw, ok := f.homeworks[id]
	return hw, ok
}

// staticTokens - неизменный источник токена для тестов экранов
type staticTokens struct{}

func (staticTokens) AccessToken() (string, bool) { return "test-token", true }

func (f *fakeAPI) client() *api.Client {
	return api.NewClient(f.server.URL, 5*time.Second, staticTokens{})
}
