package repository

import (
	"answer_board_backend/internal/model"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.Teacher{}, &model.Session{}, &model.Question{}, &model.Answer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSessionFindByCodeIgnoresCase(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	session := &model.Session{TeacherID: "t-1", SessionName: "Period 1"}
	if err := repo.Create(session); err != nil {
		t.Fatal(err)
	}
	if len(session.SessionCode) != model.SessionCodeLength {
		t.Fatalf("session code %q not generated", session.SessionCode)
	}

	got, err := repo.FindByCode(session.SessionCode)
	if err != nil || got.ID != session.ID {
		t.Fatalf("FindByCode() = %v, %v", got, err)
	}

	lower := []byte(session.SessionCode)
	for i, c := range lower {
		if c >= 'A' && c <= 'Z' {
			lower[i] = c + 'a' - 'A'
		}
	}
	if _, err := repo.FindByCode(string(lower)); err != nil {
		t.Errorf("FindByCode(lowercase) error = %v", err)
	}

	if _, err := repo.FindByCode("ZZZZZZ"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByCode(unknown) error = %v, want ErrRecordNotFound", err)
	}
}

func TestSessionUpdatesReportMissingRows(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	affected, err := repo.UpdateName(uuid.NewString(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}
}

func TestAnswerListByQuestionIDsBoardToggle(t *testing.T) {
	db := openTestDB(t)
	answers := NewAnswerRepository(db)

	for _, q := range []string{"q-1", "q-2", "q-3"} {
		err := answers.Create(&model.Answer{
			SessionID:  "s-1",
			QuestionID: q,
			BoardJSON:  datatypes.JSON(`{"strokes":[1,2,3]}`),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	lean, err := answers.ListByQuestionIDs([]string{"q-1", "q-2"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(lean) != 2 {
		t.Fatalf("got %d answers, want 2", len(lean))
	}
	for _, a := range lean {
		if len(a.BoardJSON) != 0 {
			t.Errorf("board loaded without includeBoard: %s", a.BoardJSON)
		}
	}

	full, err := answers.ListByQuestionIDs([]string{"q-1"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(full) != 1 || len(full[0].BoardJSON) == 0 {
		t.Errorf("board missing with includeBoard: %+v", full)
	}

	none, err := answers.ListByQuestionIDs(nil, true)
	if err != nil || len(none) != 0 {
		t.Errorf("ListByQuestionIDs(nil) = %v, %v", none, err)
	}
}

func TestQuestionUpdateContentWritesBothColumns(t *testing.T) {
	questions := NewQuestionRepository(openTestDB(t))
	q := &model.Question{SessionID: "s-1"}
	if err := q.SetContent(model.PlainText("old")); err != nil {
		t.Fatal(err)
	}
	if err := questions.Create(q); err != nil {
		t.Fatal(err)
	}

	content, err := model.Structured(map[string]any{"text": "new", "hint": "think"})
	if err != nil {
		t.Fatal(err)
	}
	affected, err := questions.UpdateContent(q.ID, content)
	if err != nil || affected != 1 {
		t.Fatalf("UpdateContent() = %d, %v", affected, err)
	}

	got, err := questions.FindByID(q.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.QuestionText != "new" {
		t.Errorf("question_text column = %q, want new", got.QuestionText)
	}
	if doc := got.Content().Document(); doc["hint"] != "think" {
		t.Errorf("question_body = %v", doc)
	}
}
