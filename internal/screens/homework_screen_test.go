package screens

import (
	"context"
	"net/http"
	"testing"

	"github.com/sabata06/mathMentor-app/internal/models"
)

func TestHomeworkListLoadsStudentAssignments(t *testing.T) {
	fake := newFakeAPI(t)
	fake.addHomework(models.Homework{ID: 1, Student: 7, Book: "Soru Bankası", Topic: "Limit", Page: "50-60"})
	fake.addHomework(models.Homework{ID: 2, Student: 8, Book: "Başka Kitap", Topic: "Türev", Page: "10"})

	screen := NewHomeworkListScreen(fake.client(), &notifierRecorder{})
	screen.Open(context.Background(), 7, "Ali Yılmaz")

	if len(screen.Homeworks) != 1 || screen.Homeworks[0].ID != 1 {
		t.Fatalf("Homeworks = %v, want only student 7", screen.Homeworks)
	}
	if screen.StudentName != "Ali Yılmaz" {
		t.Fatalf("StudentName = %q", screen.StudentName)
	}
}

func TestToggleTwiceRestoresOriginalValue(t *testing.T) {
	fake := newFakeAPI(t)
	fake.addHomework(models.Homework{ID: 1, Student: 7, Book: "Kitap", Topic: "Limit", Page: "5", IsCompleted: false})

	screen := NewHomeworkListScreen(fake.client(), &notifierRecorder{})
	screen.Open(context.Background(), 7, "Ali")

	screen.Toggle(context.Background(), 1, false)
	hw, _ := fake.homework(1)
	if !hw.IsCompleted {
		t.Fatal("first toggle did not mark homework completed")
	}
	if len(screen.Homeworks) != 1 || !screen.Homeworks[0].IsCompleted {
		t.Fatal("list not refetched after toggle")
	}

	screen.Toggle(context.Background(), 1, true)
	hw, _ = fake.homework(1)
	if hw.IsCompleted {
		t.Fatal("double toggle did not restore the original value")
	}
}

func TestToggle401ShowsSessionExpiredMessage(t *testing.T) {
	fake := newFakeAPI(t)
	fake.addHomework(models.Homework{ID: 1, Student: 7, Book: "Kitap", Topic: "Limit", Page: "5"})

	notifier := &notifierRecorder{}
	screen := NewHomeworkListScreen(fake.client(), notifier)
	screen.Open(context.Background(), 7, "Ali")

	fake.setPatchStatus(http.StatusUnauthorized)
	screen.Toggle(context.Background(), 1, false)

	if got := notifier.lastAlert(t); got.Message != msgSessionExpired {
		t.Fatalf("alert on 401 = %q, want %q", got.Message, msgSessionExpired)
	}
}

func TestToggleOtherFailureShowsGenericMessage(t *testing.T) {
	fake := newFakeAPI(t)
	fake.addHomework(models.Homework{ID: 1, Student: 7, Book: "Kitap", Topic: "Limit", Page: "5"})

	notifier := &notifierRecorder{}
	screen := NewHomeworkListScreen(fake.client(), notifier)
	screen.Open(context.Background(), 7, "Ali")

	fake.setPatchStatus(http.StatusInternalServerError)
	screen.Toggle(context.Background(), 1, false)

	if got := notifier.lastAlert(t); got.Message != msgHomeworkToggleFailed {
		t.Fatalf("alert on 500 = %q, want %q", got.Message, msgHomeworkToggleFailed)
	}
}

func TestHomeworkDeleteRefetches(t *testing.T) {
	fake := newFakeAPI(t)
	fake.addHomework(models.Homework{ID: 1, Student: 7, Book: "Kitap", Topic: "Limit", Page: "5"})
	fake.addHomework(models.Homework{ID: 2, Student: 7, Book: "Kitap", Topic: "Türev", Page: "6"})

	notifier := &notifierRecorder{confirmAnswer: true}
	screen := NewHomeworkListScreen(fake.client(), notifier)
	screen.Open(context.Background(), 7, "Ali")

	screen.Delete(context.Background(), 1)

	if notifier.confirmAsked != 1 {
		t.Fatal("delete did not ask for confirmation")
	}
	if len(screen.Homeworks) != 1 || screen.Homeworks[0].ID != 2 {
		t.Fatalf("list after delete = %v, want only id 2", screen.Homeworks)
	}
}

func TestAddHomeworkValidation(t *testing.T) {
	fake := newFakeAPI(t)
	notifier := &notifierRecorder{}
	screen := NewAddHomeworkScreen(fake.client(), notifier)
	screen.Open(7, func() {}, func() {})

	screen.Form = models.HomeworkForm{Book: "Kitap", Topic: "Limit", Page: "  "}

	before := fake.requestCount()
	screen.Submit(context.Background())

	if fake.requestCount() != before {
		t.Fatal("invalid form issued a request")
	}
	if got := notifier.lastAlert(t); got.Message != msgFillAllFields {
		t.Fatalf("alert = %q, want %q", got.Message, msgFillAllFields)
	}
}

func TestAddHomeworkInvokesRefreshCallbackAndNavigatesBack(t *testing.T) {
	fake := newFakeAPI(t)
	notifier := &notifierRecorder{}
	screen := NewAddHomeworkScreen(fake.client(), notifier)

	refreshed := false
	wentBack := false
	screen.Open(7, func() { refreshed = true }, func() { wentBack = true })
	screen.Form = models.HomeworkForm{Book: "Soru Bankası", Topic: "Limit", Page: "50-60"}

	screen.Submit(context.Background())

	if !refreshed || !wentBack {
		t.Fatalf("callbacks = (refreshed=%v, back=%v), want both", refreshed, wentBack)
	}
	if got := notifier.lastAlert(t); got.Message != msgHomeworkAdded {
		t.Fatalf("alert = %q, want %q", got.Message, msgHomeworkAdded)
	}

	// Новая запись создается невыполненной, с привязкой к ученику
	list := NewHomeworkListScreen(fake.client(), &notifierRecorder{})
	list.Open(context.Background(), 7, "Ali")
	if len(list.Homeworks) != 1 {
		t.Fatalf("refetched list = %v", list.Homeworks)
	}
	hw := list.Homeworks[0]
	if hw.Student != 7 || hw.IsCompleted || hw.Book != "Soru Bankası" {
		t.Fatalf("created homework = %+v", hw)
	}
}

func TestEditHomeworkFullReplace(t *testing.T) {
	fake := newFakeAPI(t)
	original := models.Homework{ID: 3, Student: 7, Book: "Kitap", Topic: "Limit", Page: "5", IsCompleted: false}
	fake.addHomework(original)

	done := false
	screen := NewEditHomeworkScreen(fake.client(), &notifierRecorder{}, func() { done = true })
	screen.Open(original)

	if screen.Form.Book != "Kitap" || screen.Form.IsCompleted {
		t.Fatalf("form not seeded from navigation parameter: %+v", screen.Form)
	}

	screen.Form.Topic = "Integral"
	screen.ToggleCompleted()
	screen.Submit(context.Background())

	if !done {
		t.Fatal("successful update did not navigate back")
	}

	hw, _ := fake.homework(3)
	if hw.Topic != "Integral" || !hw.IsCompleted || hw.Student != 7 {
		t.Fatalf("server record = %+v, want full replace applied", hw)
	}
}

func TestEmptyHint(t *testing.T) {
	screen := NewHomeworkListScreen(nil, &notifierRecorder{})
	if screen.EmptyHint() != msgNoHomeworkHint {
		t.Fatal("unexpected empty state hint")
	}
}
