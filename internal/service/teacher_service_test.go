package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"schoolgrid/backend/internal/dto"
	"schoolgrid/backend/internal/model"
)

func TestTeacherCRUD(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewTeacherService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTeacherRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.org",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}

	fetched, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.FirstName != "Jean" || fetched.LastName != "Dupont" {
		t.Errorf("fetched = %+v", fetched)
	}

	newPhone := "+33 6 12 34 56 78"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateTeacherRequest{Phone: &newPhone})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Phone != newPhone {
		t.Errorf("phone = %q, want %q", updated.Phone, newPhone)
	}
	if updated.Email != "jean.dupont@example.org" {
		t.Errorf("untouched email changed: %q", updated.Email)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}

func TestTeacherDeleteRefusedWhileScheduled(t *testing.T) {
	repo, store := newMockRepository()
	svc := NewTeacherService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTeacherRequest{
		FirstName: "Claire",
		LastName:  "Martin",
		Email:     "claire.martin@example.org",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	store.schedules.rows[1] = model.Schedule{
		ID: 1, ClassID: 1, TeacherID: created.ID, SubjectID: 1,
		DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "10:00",
		AcademicYear: "2025-2026", Semester: "S1",
	}

	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrTeacherInUse) {
		t.Fatalf("expected ErrTeacherInUse, got %v", err)
	}

	delete(store.schedules.rows, 1)
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete after unscheduling: %v", err)
	}
}

func TestTeacherGetByIDNotFound(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewTeacherService(repo, zap.NewNop())

	if _, err := svc.GetByID(context.Background(), 7); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}

func TestClassDeleteRefusedWhileReferenced(t *testing.T) {
	repo, store := newMockRepository()
	svc := NewClassService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateClassRequest{Name: "Terminale C", Level: "Terminale"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	classID := created.ID
	store.students.rows[1] = model.Student{ID: 1, FirstName: "Awa", LastName: "Diallo", ClassID: &classID}

	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrClassInUse) {
		t.Fatalf("expected ErrClassInUse, got %v", err)
	}

	delete(store.students.rows, 1)
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete after emptying class: %v", err)
	}
}

func TestClassResponseCountsStudents(t *testing.T) {
	repo, store := newMockRepository()
	svc := NewClassService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateClassRequest{Name: "Seconde A", Level: "Seconde"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	classID := created.ID
	store.students.rows[1] = model.Student{ID: 1, FirstName: "Awa", LastName: "Diallo", ClassID: &classID}
	store.students.rows[2] = model.Student{ID: 2, FirstName: "Paul", LastName: "Mbarga", ClassID: &classID}

	fetched, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.StudentCount != 2 {
		t.Errorf("student count = %d, want 2", fetched.StudentCount)
	}
}

func TestSubjectDeleteRefusedWhileScheduled(t *testing.T) {
	repo, store := newMockRepository()
	svc := NewSubjectService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateSubjectRequest{Name: "Mathématiques", Code: "MATH", Coefficient: 4})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	store.schedules.rows[1] = model.Schedule{
		ID: 1, ClassID: 1, TeacherID: 1, SubjectID: created.ID,
		DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "10:00",
		AcademicYear: "2025-2026", Semester: "S1",
	}

	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrSubjectInUse) {
		t.Fatalf("expected ErrSubjectInUse, got %v", err)
	}
}

func TestStudentCreateValidatesClass(t *testing.T) {
	repo, store := newMockRepository()
	svc := NewStudentService(repo, zap.NewNop())
	ctx := context.Background()

	missing := uint(42)
	_, err := svc.Create(ctx, &dto.CreateStudentRequest{
		FirstName: "Awa",
		LastName:  "Diallo",
		ClassID:   &missing,
	})
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}

	store.classes.rows[1] = model.Class{ID: 1, Name: "Terminale C", Level: "Terminale"}
	known := uint(1)
	created, err := svc.Create(ctx, &dto.CreateStudentRequest{
		FirstName: "Awa",
		LastName:  "Diallo",
		ClassID:   &known,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
}
