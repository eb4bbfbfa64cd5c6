package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/activity"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/handlers"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/repository"
	"github.com/tnguyenanh065/Pickleball-Splitting/internal/services"
)

func RegisterRoutes(
	app *fiber.App,
	db *pgxpool.Pool,
	eventLog *activity.PgEventLog,
	recorder *activity.Worker,
) {
	memberRepo := repository.NewMemberRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	debtRepo := repository.NewDebtRepository(db)

	memberService := services.NewMemberService(memberRepo, recorder)
	summaryService := services.NewSummaryService(debtRepo, memberRepo)
	sessionService := services.NewSessionService(db, sessionRepo, participantRepo, memberRepo, recorder)
	debtService := services.NewDebtService(db, debtRepo, recorder)

	memberHandler := handlers.NewMemberHandler(memberService, summaryService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	debtHandler := handlers.NewDebtHandler(debtService)
	activityHandler := handlers.NewActivityHandler(eventLog)

	api := app.Group("/api")

	members := api.Group("/members")
	members.Get("", memberHandler.ListMembers)
	members.Post("", memberHandler.CreateMember)
	members.Get("/:id", memberHandler.GetMember)
	members.Patch("/:id", memberHandler.UpdateMember)
	members.Get("/:id/ledger", memberHandler.GetMemberLedger)
	members.Get("/:id/summary", memberHandler.GetMemberSummary)

	sessions := api.Group("/sessions")
	sessions.Get("", sessionHandler.ListSessions)
	sessions.Post("", sessionHandler.CreateSession)
	sessions.Get("/:id", sessionHandler.GetSession)

	debts := api.Group("/debts")
	debts.Get("", debtHandler.ListDebts)
	debts.Post("/:id/settle", debtHandler.SettleDebt)

	api.Get("/activities", activityHandler.ListActivities)
}
