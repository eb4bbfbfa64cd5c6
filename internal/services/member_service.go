package services

import (
	"context"
	"strings"

	"github.com/tnguyenanh065/Pickleball-Splitting/internal/activity"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/models"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/repository"
)

type memberStore interface {
	List(ctx context.Context) ([]models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	Create(ctx context.Context, input repository.CreateMemberInput) (*models.Member, error)
	UpdateBankDetails(ctx context.Context, id string, input repository.UpdateBankDetailsInput) (*models.Member, error)
}

type activityRecorder interface {
	Record(event activity.Event)
}

type MemberService struct {
	memberRepo memberStore
	activity   activityRecorder
}

func NewMemberService(memberRepo memberStore, recorder activityRecorder) *MemberService {
	return &MemberService{memberRepo: memberRepo, activity: recorder}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *MemberService) GetMember(ctx context.Context, id string) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *MemberService) CreateMember(
	ctx context.Context,
	input repository.CreateMemberInput,
) (*models.Member, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Initials = strings.ToUpper(strings.TrimSpace(input.Initials))
	if input.Name == "" || input.Initials == "" {
		return nil, ErrInvalidInput
	}

	member, err := s.memberRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(activity.NewEvent("member.created", map[string]string{
			"member_id": member.ID,
			"name":      member.Name,
		}))
	}
	return member, nil
}

func (s *MemberService) UpdateBankDetails(
	ctx context.Context,
	id string,
	input repository.UpdateBankDetailsInput,
) (*models.Member, error) {
	if input.BankName == nil && input.BankAccount == nil {
		return nil, ErrInvalidInput
	}
	return s.memberRepo.UpdateBankDetails(ctx, id, input)
}
