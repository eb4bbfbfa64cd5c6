package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/config"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/database"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/repository"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	ctx := context.Background()
	db := database.DB

	log.Println("Seeding database...")

	// Clear existing data, children first.
	for _, table := range []string{"activities", "debts", "session_participants", "sessions", "members"} {
		if _, err := db.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("clearing %s: %v", table, err)
		}
	}

	memberRepo := repository.NewMemberRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	debtRepo := repository.NewDebtRepository(db)

	memberService := services.NewMemberService(memberRepo, nil)
	sessionService := services.NewSessionService(db, sessionRepo, participantRepo, memberRepo, nil)
	debtService := services.NewDebtService(db, debtRepo, nil)

	names := []struct {
		name     string
		initials string
	}{
		{"You", "ME"},
		{"Sarah Chen", "SC"},
		{"Mike Ross", "MR"},
		{"Jessica Pearson", "JP"},
		{"Harvey Specter", "HS"},
	}

	memberIDs := make([]string, 0, len(names))
	for _, n := range names {
		member, err := memberService.CreateMember(ctx, repository.CreateMemberInput{
			Name:     n.name,
			Initials: n.initials,
		})
		if err != nil {
			log.Fatalf("creating member %s: %v", n.name, err)
		}
		memberIDs = append(memberIDs, member.ID)
	}
	me, sarah, mike, jessica, harvey := memberIDs[0], memberIDs[1], memberIDs[2], memberIDs[3], memberIDs[4]
	log.Printf("Created %d members", len(memberIDs))

	now := time.Now().UTC()

	if _, err := sessionService.CreateSession(ctx, services.CreateSessionInput{
		Date:           now.AddDate(0, 0, -2),
		Location:       "Riverside Courts",
		TotalCost:      decimal.RequireFromString("400000"),
		PayerID:        me,
		ParticipantIDs: []string{me, sarah, mike, jessica},
	}); err != nil {
		log.Fatalf("creating session 1: %v", err)
	}

	if _, err := sessionService.CreateSession(ctx, services.CreateSessionInput{
		Date:           now.AddDate(0, 0, -5),
		Location:       "Downtown Club",
		TotalCost:      decimal.RequireFromString("350000"),
		PayerID:        sarah,
		ParticipantIDs: []string{me, sarah, harvey},
	}); err != nil {
		log.Fatalf("creating session 2: %v", err)
	}

	// Session 3 starts pending and is settled debt by debt, which also
	// exercises the settle cascade.
	settled, err := sessionService.CreateSession(ctx, services.CreateSessionInput{
		Date:           now.AddDate(0, 0, -9),
		Location:       "Riverside Courts",
		TotalCost:      decimal.RequireFromString("420000"),
		PayerID:        mike,
		ParticipantIDs: []string{me, sarah, mike, jessica},
	})
	if err != nil {
		log.Fatalf("creating session 3: %v", err)
	}
	debts, err := debtRepo.List(ctx, "")
	if err != nil {
		log.Fatalf("listing debts: %v", err)
	}
	for _, debt := range debts {
		if debt.SessionID != settled.ID {
			continue
		}
		if _, err := debtService.SettleDebt(ctx, debt.ID); err != nil {
			log.Fatalf("settling debt %s: %v", debt.ID, err)
		}
	}

	log.Println("Seeding complete!")
}
