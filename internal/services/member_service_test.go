package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/activity"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/repository"
)

type stubMemberRepo struct {
	listResult   []models.Member
	listErr      error
	getResult    *models.Member
	getErr       error
	createResult *models.Member
	createErr    error
	updateResult *models.Member
	updateErr    error
	lastCreate   repository.CreateMemberInput
	lastUpdateID string
	lastUpdate   repository.UpdateBankDetailsInput
}

func (r *stubMemberRepo) List(_ context.Context) ([]models.Member, error) {
	return r.listResult, r.listErr
}

func (r *stubMemberRepo) GetByID(_ context.Context, _ string) (*models.Member, error) {
	return r.getResult, r.getErr
}

func (r *stubMemberRepo) Create(_ context.Context, input repository.CreateMemberInput) (*models.Member, error) {
	r.lastCreate = input
	return r.createResult, r.createErr
}

func (r *stubMemberRepo) UpdateBankDetails(_ context.Context, id string, input repository.UpdateBankDetailsInput) (*models.Member, error) {
	r.lastUpdateID = id
	r.lastUpdate = input
	return r.updateResult, r.updateErr
}

type stubRecorder struct {
	events []activity.Event
}

func (r *stubRecorder) Record(event activity.Event) {
	r.events = append(r.events, event)
}

var memberTestTime = time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

func TestMemberServiceCreateMemberNormalizesInput(t *testing.T) {
	repo := &stubMemberRepo{
		createResult: &models.Member{ID: "m1", Name: "Sarah Chen", Initials: "SC", CreatedAt: memberTestTime},
	}
	recorder := &stubRecorder{}
	service := NewMemberService(repo, recorder)

	member, err := service.CreateMember(context.Background(), repository.CreateMemberInput{
		Name:     "  Sarah Chen ",
		Initials: " sc ",
	})
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if member.ID != "m1" {
		t.Fatalf("expected member m1, got %q", member.ID)
	}
	if repo.lastCreate.Name != "Sarah Chen" {
		t.Fatalf("expected trimmed name, got %q", repo.lastCreate.Name)
	}
	if repo.lastCreate.Initials != "SC" {
		t.Fatalf("expected uppercased initials, got %q", repo.lastCreate.Initials)
	}
	if len(recorder.events) != 1 || recorder.events[0].Type != "member.created" {
		t.Fatalf("expected member.created event, got %+v", recorder.events)
	}
}

func TestMemberServiceCreateMemberRequiresNameAndInitials(t *testing.T) {
	service := NewMemberService(&stubMemberRepo{}, nil)

	if _, err := service.CreateMember(context.Background(), repository.CreateMemberInput{Initials: "SC"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := service.CreateMember(context.Background(), repository.CreateMemberInput{Name: "Sarah"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing initials, got %v", err)
	}
	if _, err := service.CreateMember(context.Background(), repository.CreateMemberInput{Name: "   ", Initials: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank fields, got %v", err)
	}
}

func TestMemberServiceUpdateBankDetailsRequiresAField(t *testing.T) {
	service := NewMemberService(&stubMemberRepo{}, nil)

	_, err := service.UpdateBankDetails(context.Background(), "m1", repository.UpdateBankDetailsInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMemberServiceUpdateBankDetailsPassesThroughNotFound(t *testing.T) {
	repo := &stubMemberRepo{updateErr: pgx.ErrNoRows}
	service := NewMemberService(repo, nil)

	bankName := "BCA"
	_, err := service.UpdateBankDetails(context.Background(), "missing", repository.UpdateBankDetailsInput{
		BankName: &bankName,
	})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
	if repo.lastUpdateID != "missing" {
		t.Fatalf("expected update for id missing, got %q", repo.lastUpdateID)
	}
}
