package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/quickcalc/internal/diagnosis"
	"github.com/abhisek/quickcalc/internal/problemgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	got := withPragmas("file:x.db?mode=rwc")
	want := "file:x.db?mode=rwc&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"
	if got != want {
		t.Errorf("withPragmas = %q, want %q", got, want)
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.ProfileRepo().SaveLevel(ctx, 4); err != nil {
		t.Fatalf("save level: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	p, err := s.ProfileRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Level != 4 {
		t.Errorf("Level = %d, want 4", p.Level)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx, s.DB())
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestProfile_Defaults(t *testing.T) {
	s := openTestStore(t)
	p, err := s.ProfileRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
	if len(p.Learned) != 0 {
		t.Errorf("Learned = %v, want empty", p.Learned)
	}
	if !p.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt = %v, want zero", p.UpdatedAt)
	}
}

func TestProfile_SaveLevelClamps(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	tests := []struct{ in, want int }{
		{5, 5},
		{7, 7},
		{42, 10},
		{-3, 1},
	}
	for _, tt := range tests {
		if err := repo.SaveLevel(ctx, tt.in); err != nil {
			t.Fatalf("save %d: %v", tt.in, err)
		}
		p, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if p.Level != tt.want {
			t.Errorf("SaveLevel(%d) then Load = %d, want %d", tt.in, p.Level, tt.want)
		}
	}
}

func TestProfile_LearnTechnique(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for _, slug := range []string{"multiply-by-11", "multiply-by-5", "multiply-by-11"} {
		if err := repo.LearnTechnique(ctx, slug); err != nil {
			t.Fatalf("learn %s: %v", slug, err)
		}
	}

	learned, err := repo.LearnedTechniques(ctx)
	if err != nil {
		t.Fatalf("learned: %v", err)
	}
	if len(learned) != 2 {
		t.Fatalf("learned = %v, want 2 distinct slugs", learned)
	}
	seen := map[string]bool{}
	for _, s := range learned {
		seen[s] = true
	}
	if !seen["multiply-by-11"] || !seen["multiply-by-5"] {
		t.Errorf("learned = %v", learned)
	}
}

func answer(a, b float64, op problemgen.Operator, given float64) AnswerEventData {
	p := problemgen.NewProblem(a, b, op)
	return AnswerEventData{
		SessionID:     "s1",
		Problem:       p,
		LearnerAnswer: given,
		Correct:       problemgen.CheckAnswer(p, given),
		TimeMs:        3000,
	}
}

func TestRecentErrors_MostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		answer(3, 4, problemgen.OpAdd, 8),  // wrong +
		answer(9, 4, problemgen.OpSub, 5),  // right
		answer(6, 7, problemgen.OpMul, 41), // wrong ×
		answer(8, 2, problemgen.OpDiv, 5),  // wrong ÷
	}
	for _, e := range events {
		if !e.Correct {
			e.Category = diagnosis.CategoryCareless
		}
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentErrors(ctx, 0)
	if err != nil {
		t.Fatalf("recent errors: %v", err)
	}
	want := []problemgen.Operator{problemgen.OpDiv, problemgen.OpMul, problemgen.OpAdd}
	if len(got) != len(want) {
		t.Fatalf("RecentErrors = %v, want %v", got, want)
	}
	for i, op := range want {
		if got[i].Operator != op {
			t.Errorf("RecentErrors[%d] = %s, want %s", i, got[i].Operator, op)
		}
	}

	limited, err := repo.RecentErrors(ctx, 2)
	if err != nil {
		t.Fatalf("recent errors (limit): %v", err)
	}
	if len(limited) != 2 || limited[0].Operator != problemgen.OpDiv {
		t.Errorf("RecentErrors(2) = %v", limited)
	}
}

func TestOperatorAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, err := repo.OperatorAccuracy(ctx, problemgen.OpMul)
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy with no answers = %f, want 0", acc)
	}

	for _, e := range []AnswerEventData{
		answer(6, 7, problemgen.OpMul, 42),
		answer(6, 8, problemgen.OpMul, 48),
		answer(6, 9, problemgen.OpMul, 54),
		answer(7, 7, problemgen.OpMul, 48),
		answer(2, 2, problemgen.OpAdd, 5),
	} {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, err = repo.OperatorAccuracy(ctx, problemgen.OpMul)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %f, want 0.75", acc)
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, action := range []string{SessionStart, SessionEnd, SessionStart} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:   "s1",
			Action:      action,
			Duration:    90 * time.Second,
			LevelBefore: 3,
			LevelAfter:  4,
		})
		if err != nil {
			t.Fatalf("append %s: %v", action, err)
		}
	}

	n, err := repo.SessionCount(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("SessionCount = %d, want 1 (only ended sessions)", n)
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnswerEvent(ctx, answer(1, 2, problemgen.OpAdd, 3)); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendHintEvent(ctx, HintEventData{SessionID: "s1", ProblemText: "23 × 11", HintText: "Add the digits."}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLessonEvent(ctx, LessonEventData{SessionID: "s1", Slug: "multiply-by-11", Phase: "guided", Attempts: 2, Solved: true}); err != nil {
		t.Fatal(err)
	}

	var seqs []int64
	for _, table := range []string{AnswerEventsTable.Name, HintEventsTable.Name, LessonEventsTable.Name} {
		var seq int64
		if err := s.DB().QueryRow("SELECT sequence FROM " + table).Scan(&seq); err != nil {
			t.Fatalf("select %s: %v", table, err)
		}
		seqs = append(seqs, seq)
	}
	if !(seqs[0] < seqs[1] && seqs[1] < seqs[2]) {
		t.Errorf("sequences not increasing across tables: %v", seqs)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(events EventRepo, profiles ProfileRepo) error {
		if err := events.AppendAnswerEvent(ctx, answer(6, 7, problemgen.OpMul, 40)); err != nil {
			return err
		}
		if err := profiles.SaveLevel(ctx, 8); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx error = %v, want %v", err, boom)
	}

	recent, err := s.EventRepo().RecentErrors(ctx, 0)
	if err != nil {
		t.Fatalf("recent errors: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("rolled-back answer persisted: %v", recent)
	}
	p, err := s.ProfileRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.Level != 1 {
		t.Errorf("level = %d after rollback, want 1", p.Level)
	}
}

func TestWithTx_Commits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(events EventRepo, profiles ProfileRepo) error {
		if err := events.AppendAnswerEvent(ctx, answer(6, 7, problemgen.OpMul, 40)); err != nil {
			return err
		}
		return profiles.SaveLevel(ctx, 8)
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	recent, err := s.EventRepo().RecentErrors(ctx, 0)
	if err != nil {
		t.Fatalf("recent errors: %v", err)
	}
	if len(recent) != 1 || recent[0].Operator != problemgen.OpMul {
		t.Errorf("recent = %v, want one × error", recent)
	}
	p, err := s.ProfileRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.Level != 8 {
		t.Errorf("level = %d, want 8", p.Level)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	profiles, events := s.ProfileRepo(), s.EventRepo()

	if err := profiles.SaveLevel(ctx, 6); err != nil {
		t.Fatal(err)
	}
	if err := profiles.LearnTechnique(ctx, "multiply-by-9"); err != nil {
		t.Fatal(err)
	}
	if err := events.AppendAnswerEvent(ctx, answer(3, 4, problemgen.OpAdd, 8)); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	p, err := profiles.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.Level != 1 || len(p.Learned) != 0 {
		t.Errorf("profile after reset = %+v, want defaults", p)
	}
	errs, err := events.RecentErrors(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 0 {
		t.Errorf("RecentErrors after reset = %v, want none", errs)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "nested", "custom.db")
		t.Setenv("QUICKCALC_DB", want)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("DefaultDBPath = %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("QUICKCALC_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(dir, "quickcalc", "quickcalc.db")
		if got != want {
			t.Errorf("DefaultDBPath = %q, want %q", got, want)
		}
	})
}
