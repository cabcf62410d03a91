package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sabata06/mathMentor-app/internal/api"
	"github.com/sabata06/mathMentor-app/internal/config"
	"github.com/sabata06/mathMentor-app/internal/models"
	"github.com/sabata06/mathMentor-app/internal/screens"
	"github.com/sabata06/mathMentor-app/internal/services"
	"github.com/sabata06/mathMentor-app/pkg/credstore"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Открываем локальное хранилище учетных данных
	creds, err := credstore.Open(cfg.CredentialsDBPath)
	if err != nil {
		log.Fatalf("Failed to open credentials store: %v", err)
	}
	defer creds.Close()

	// Клиент API читает токен из хранилища перед каждым запросом
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, creds)

	// Сервис сессии
	session := services.NewSessionService(creds, apiClient)

	// Запускаем терминальную оболочку
	shell := newShell(os.Stdin, os.Stdout, apiClient, session)
	shell.run()
}

// shell - простейший терминальный слой презентации поверх экранов.
// Читает команды построчно, печатает состояние экрана после каждого
// действия и реализует модальные уведомления.
type shell struct {
	in  *bufio.Scanner
	out *os.File

	session  *services.SessionService
	login    *screens.LoginScreen
	roster   *screens.RosterScreen
	detail   *screens.StudentDetailScreen
	addStu   *screens.AddStudentScreen
	editStu  *screens.EditStudentScreen
	homework *screens.HomeworkListScreen
	addHW    *screens.AddHomeworkScreen
	editHW   *screens.EditHomeworkScreen

	route string
	done  bool
}

func newShell(in *os.File, out *os.File, apiClient *api.Client, session *services.SessionService) *shell {
	s := &shell{
		in:      bufio.NewScanner(in),
		out:     out,
		session: session,
		route:   "login",
	}

	s.login = screens.NewLoginScreen(session, s, func() { s.route = "roster" })
	s.roster = screens.NewRosterScreen(apiClient, s)
	s.detail = screens.NewStudentDetailScreen(apiClient, s)
	s.addStu = screens.NewAddStudentScreen(apiClient, s, func() { s.route = "roster" })
	s.editStu = screens.NewEditStudentScreen(apiClient, s, func() { s.route = "roster" })
	s.homework = screens.NewHomeworkListScreen(apiClient, s)
	s.addHW = screens.NewAddHomeworkScreen(apiClient, s)
	s.editHW = screens.NewEditHomeworkScreen(apiClient, s, func() { s.route = "homework" })

	return s
}

// Alert показывает сообщение с одной кнопкой
func (s *shell) Alert(title, message string) {
	fmt.Fprintf(s.out, "\n[%s] %s\n", title, message)
}

// Confirm показывает вопрос и ждет ответа e/h (evet/hayır)
func (s *shell) Confirm(title, message string) bool {
	fmt.Fprintf(s.out, "\n[%s] %s (e/h): ", title, message)
	answer := s.readLine()
	return strings.EqualFold(answer, "e")
}

func (s *shell) readLine() string {
	if !s.in.Scan() {
		s.done = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *shell) run() {
	ctx := context.Background()

	s.login.Activate()

	for !s.done {
		switch s.route {
		case "login":
			s.runLogin(ctx)
		case "roster":
			s.runRoster(ctx)
		case "homework":
			s.runHomework(ctx)
		default:
			s.done = true
		}
	}
}

func (s *shell) runLogin(ctx context.Context) {
	fmt.Fprintln(s.out, "\n== MathMentor - Öğretmen Girişi ==")

	fmt.Fprintf(s.out, "Kullanıcı Adı [%s]: ", s.login.Username)
	if v := s.readLine(); v != "" {
		s.login.Username = v
	}
	fmt.Fprint(s.out, "Şifre: ")
	if v := s.readLine(); v != "" {
		s.login.Password = v
	}
	fmt.Fprint(s.out, "Beni Hatırla (e/h): ")
	s.login.RememberMe = strings.EqualFold(s.readLine(), "e")

	s.login.Submit(ctx)
}

func (s *shell) runRoster(ctx context.Context) {
	s.roster.Load(ctx)

	for !s.done && s.route == "roster" {
		fmt.Fprintln(s.out, "\n== Öğrenciler ==")
		for _, st := range s.roster.Filtered {
			debt := ""
			if st.HasDebt() {
				debt = fmt.Sprintf(" (borç: %v TL)", st.DebtStatus)
			}
			fmt.Fprintf(s.out, "  %d. %s%s\n", st.ID, st.FullName(), debt)
		}

		fmt.Fprint(s.out, "komut (ara <q> | aç <id> | ekle | sil <id> | ödev <id> | çık): ")
		cmd, arg := splitCommand(s.readLine())

		switch cmd {
		case "ara":
			s.roster.Search(arg)
		case "aç":
			if id, err := strconv.Atoi(arg); err == nil {
				s.runStudentDetail(ctx, id)
				s.roster.Refresh(ctx)
			}
		case "ekle":
			s.runAddStudent(ctx)
		case "sil":
			if id, err := strconv.Atoi(arg); err == nil {
				s.roster.Delete(ctx, id, s.studentName(id))
			}
		case "ödev":
			if id, err := strconv.Atoi(arg); err == nil {
				s.homework.Open(ctx, id, s.studentName(id))
				s.route = "homework"
			}
		case "çık", "":
			s.roster.Leave()
			s.done = true
		}
	}
}

func (s *shell) studentName(id int) string {
	for _, st := range s.roster.Students {
		if st.ID == id {
			return st.FullName()
		}
	}
	return ""
}

func (s *shell) runStudentDetail(ctx context.Context, id int) {
	s.detail.Load(ctx, id)
	if s.detail.Student == nil {
		return
	}

	st := s.detail.Student
	fmt.Fprintf(s.out, "\n== %s ==\n", st.FullName())
	fmt.Fprintf(s.out, "  Veli: %s (%s)\n", st.ParentName, st.ParentContact)
	fmt.Fprintf(s.out, "  Son Konu: %s, Kitap: %d. sayfa\n", st.LastTopic, st.BookProgress)
	fmt.Fprintf(s.out, "  Ödev tamamlama: %%%v\n", st.AssignmentCompletionPercentage)
	if st.HasDebt() {
		fmt.Fprintf(s.out, "  Borç: %v TL\n", st.DebtStatus)
	}
	fmt.Fprintf(s.out, "  Ara: %s\n  WhatsApp: %s\n", s.detail.CallParentURL(), s.detail.WhatsAppURL())

	fmt.Fprint(s.out, "komut (düzenle | geri): ")
	cmd, _ := splitCommand(s.readLine())
	if cmd == "düzenle" {
		s.editStu.Open(*st)
		s.runEditStudent(ctx)
	}
	s.detail.Leave()
}

func (s *shell) runAddStudent(ctx context.Context) {
	form := &s.addStu.Form
	fmt.Fprintln(s.out, "\n== Yeni Öğrenci ==")
	form.Name = s.prompt("Öğrencinin Adı", "")
	form.Surname = s.prompt("Öğrencinin Soyadı", "")
	form.ParentName = s.prompt("Velinin Adı", "")
	form.ParentContact = s.prompt("Velinin Telefonu", "")
	form.LastTopic = s.prompt("Son İşlenen Konu", "")
	form.BookProgress = s.prompt("Kitap İlerlemesi (Sayfa)", "")
	form.LastLessonDate = s.prompt("Son Ders Tarihi (YYYY-MM-DD)", "")
	form.DebtStatus = s.prompt("Borç Miktarı (TL)", "")

	s.addStu.Submit(ctx)
}

func (s *shell) runEditStudent(ctx context.Context) {
	form := &s.editStu.Form
	fmt.Fprintln(s.out, "\n== Öğrenci Düzenle (boş bırakılan alan değişmez) ==")
	form.Name = s.prompt("Öğrencinin Adı", form.Name)
	form.Surname = s.prompt("Öğrencinin Soyadı", form.Surname)
	form.ParentName = s.prompt("Velinin Adı", form.ParentName)
	form.ParentContact = s.prompt("Velinin Telefonu", form.ParentContact)
	form.LastTopic = s.prompt("Son İşlenen Konu", form.LastTopic)
	form.BookProgress = s.prompt("Kitap İlerlemesi (Sayfa)", form.BookProgress)
	form.LastLessonDate = s.prompt("Son Ders Tarihi (YYYY-MM-DD)", form.LastLessonDate)
	form.DebtStatus = s.prompt("Borç Miktarı (TL)", form.DebtStatus)

	s.editStu.Submit(ctx)
}

func (s *shell) runHomework(ctx context.Context) {
	for !s.done && s.route == "homework" {
		fmt.Fprintf(s.out, "\n== Ödevler - %s ==\n", s.homework.StudentName)
		if len(s.homework.Homeworks) == 0 {
			fmt.Fprintf(s.out, "  %s\n", s.homework.EmptyHint())
		}
		for _, hw := range s.homework.Homeworks {
			mark := " "
			if hw.IsCompleted {
				mark = "x"
			}
			fmt.Fprintf(s.out, "  [%s] %d. %s - %s (sayfa %s)\n", mark, hw.ID, hw.Book, hw.Topic, hw.Page)
		}

		fmt.Fprint(s.out, "komut (işaretle <id> | ekle | düzenle <id> | sil <id> | geri): ")
		cmd, arg := splitCommand(s.readLine())

		switch cmd {
		case "işaretle":
			if id, err := strconv.Atoi(arg); err == nil {
				if hw, ok := s.findHomework(id); ok {
					s.homework.Toggle(ctx, hw.ID, hw.IsCompleted)
				}
			}
		case "ekle":
			s.runAddHomework(ctx)
		case "düzenle":
			if id, err := strconv.Atoi(arg); err == nil {
				if hw, ok := s.findHomework(id); ok {
					s.editHW.Open(hw)
					s.runEditHomework(ctx)
					s.homework.Refresh(ctx)
				}
			}
		case "sil":
			if id, err := strconv.Atoi(arg); err == nil {
				s.homework.Delete(ctx, id)
			}
		case "geri", "":
			s.homework.Leave()
			s.route = "roster"
		}
	}
}

func (s *shell) findHomework(id int) (models.Homework, bool) {
	for _, hw := range s.homework.Homeworks {
		if hw.ID == id {
			return hw, true
		}
	}
	return models.Homework{}, false
}

func (s *shell) runAddHomework(ctx context.Context) {
	s.addHW.Open(s.homework.StudentID,
		func() { s.homework.Refresh(ctx) },
		func() { /* остаемся на списке заданий */ },
	)

	form := &s.addHW.Form
	fmt.Fprintln(s.out, "\n== Yeni Ödev ==")
	form.Book = s.prompt("Ödev Kitabı", "")
	form.Topic = s.prompt("Konu", "")
	form.Page = s.prompt("Sayfa (örn: 50-60)", "")

	s.addHW.Submit(ctx)
}

func (s *shell) runEditHomework(ctx context.Context) {
	form := &s.editHW.Form
	fmt.Fprintln(s.out, "\n== Ödev Düzenle (boş bırakılan alan değişmez) ==")
	form.Book = s.prompt("Ödev Kitabı", form.Book)
	form.Topic = s.prompt("Konu", form.Topic)
	form.Page = s.prompt("Sayfa", form.Page)
	fmt.Fprintf(s.out, "Tamamlandı mı? şu an: %v, değiştir (e/h): ", form.IsCompleted)
	if strings.EqualFold(s.readLine(), "e") {
		s.editHW.ToggleCompleted()
	}

	s.editHW.Submit(ctx)
}

// prompt читает значение поля, пустой ввод оставляет значение по умолчанию
func (s *shell) prompt(label, current string) string {
	if current != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}
	if v := s.readLine(); v != "" {
		return v
	}
	return current
}

// splitCommand разбирает строку "команда аргумент"
func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = strings.ToLower(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}
