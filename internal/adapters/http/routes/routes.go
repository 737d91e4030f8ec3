package routes

import (
	"fmt"

	"teamhub/internal/adapters/http/handlers"
	"teamhub/internal/adapters/http/middleware"
	"teamhub/internal/adapters/persistence/repositories"
	"teamhub/internal/config"
	"teamhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.ReminderService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	feeRepo := repositories.NewFeeRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	leadershipRepo := repositories.NewLeadershipRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo, memberRepo)
	memberService := services.NewMemberService(memberRepo)
	eventService := services.NewEventService(eventRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, eventRepo, memberRepo)
	leadershipService := services.NewLeadershipService(leadershipRepo, memberRepo)
	contributionService := services.NewContributionService(contributionRepo, memberRepo)
	feeService := services.NewFeeService(feeRepo, memberRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	dashboardService := services.NewDashboardService(db)
	reportService := services.NewReportService(memberRepo, feeRepo, attendanceRepo, eventRepo)
	notifyService := services.NewNotificationService()
	reminderService := services.NewReminderService(feeService, notifyService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	memberHandler := handlers.NewMemberHandler(memberService)
	eventHandler := handlers.NewEventHandler(eventService, notifyService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	leadershipHandler := handlers.NewLeadershipHandler(leadershipService)
	contributionHandler := handlers.NewContributionHandler(contributionService)
	feeHandler := handlers.NewFeeHandler(feeService, notifyService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	setupAuthRoutes(apiV1.Group("/auth"), authHandler, cfg)

	// Account management (admin only, role-guarded rather than capability-guarded)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.AdminOnly())
	userRoutes.Get("/", userHandler.ListUsers)
	userRoutes.Get("/:id", userHandler.GetUser)
	userRoutes.Put("/:id", userHandler.UpdateUser)
	userRoutes.Delete("/:id", userHandler.DeleteUser)

	// Profile routes (authenticated users)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Get("/", userHandler.GetProfile)
	profileRoutes.Put("/", userHandler.UpdateProfile)
	profileRoutes.Put("/password", middleware.StrictRateLimiter(), userHandler.ChangePassword)

	// Capability-guarded domain routes
	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))

	// Members
	register(protected, "GET", "/members", memberHandler.ListMembers)
	register(protected, "GET", "/members/search", memberHandler.SearchMembers)
	register(protected, "GET", "/members/:id", memberHandler.GetMember)
	register(protected, "POST", "/members", memberHandler.CreateMember)
	register(protected, "PUT", "/members/:id", memberHandler.UpdateMember)
	register(protected, "DELETE", "/members/:id", memberHandler.DeleteMember)
	register(protected, "GET", "/members/:id/attendance", attendanceHandler.GetMemberAttendance)
	register(protected, "GET", "/members/:id/fees", feeHandler.GetMemberFeeSummary)

	// Events
	register(protected, "GET", "/events", eventHandler.ListEvents)
	register(protected, "GET", "/events/upcoming", eventHandler.ListUpcomingEvents)
	register(protected, "GET", "/events/:id", eventHandler.GetEvent)
	register(protected, "POST", "/events", eventHandler.CreateEvent)
	register(protected, "PUT", "/events/:id", eventHandler.UpdateEvent)
	register(protected, "DELETE", "/events/:id", eventHandler.DeleteEvent)
	register(protected, "GET", "/events/:id/attendance", attendanceHandler.GetEventAttendance)
	register(protected, "POST", "/events/:id/attendance", attendanceHandler.MarkAttendance)

	// Leadership
	register(protected, "GET", "/leadership", leadershipHandler.ListLeadership)
	register(protected, "POST", "/leadership", leadershipHandler.AssignLeadership)
	register(protected, "PUT", "/leadership/:id/end", leadershipHandler.EndLeadership)
	register(protected, "DELETE", "/leadership/:id", leadershipHandler.DeleteLeadership)

	// Contributions
	register(protected, "GET", "/contributions", contributionHandler.ListContributions)
	register(protected, "GET", "/contributions/:id", contributionHandler.GetContribution)
	register(protected, "POST", "/contributions", contributionHandler.RecordContribution)
	register(protected, "PUT", "/contributions/:id", contributionHandler.UpdateContribution)
	register(protected, "DELETE", "/contributions/:id", contributionHandler.DeleteContribution)

	// Fees. The period catalog is a fixed table, cached aggressively.
	register(protected, "GET", "/fees/periods", middleware.CatalogCache(), feeHandler.GetPeriodCatalog)
	register(protected, "GET", "/fees", feeHandler.ListFees)
	register(protected, "GET", "/fees/:id", feeHandler.GetFee)
	register(protected, "POST", "/fees", feeHandler.RegisterFee)
	register(protected, "POST", "/fees/:id/payments", feeHandler.RecordPayment)
	register(protected, "DELETE", "/fees/:id", feeHandler.DeleteFee)

	// Inventory
	register(protected, "GET", "/inventory", inventoryHandler.ListItems)
	register(protected, "GET", "/inventory/:id", inventoryHandler.GetItem)
	register(protected, "POST", "/inventory", inventoryHandler.CreateItem)
	register(protected, "PUT", "/inventory/:id", inventoryHandler.UpdateItem)
	register(protected, "DELETE", "/inventory/:id", inventoryHandler.DeleteItem)

	// Dashboard
	register(protected, "GET", "/dashboard", dashboardHandler.GetDashboard)

	// Reports
	register(protected, "GET", "/reports/members", reportHandler.ExportMembers)
	register(protected, "GET", "/reports/fees", reportHandler.ExportFees)
	register(protected, "GET", "/reports/events/:id/attendance", reportHandler.ExportEventAttendance)

	return reminderService
}

// register wires a protected route through the capability table. A route not
// listed in the table fails at startup rather than shipping unguarded.
func register(router fiber.Router, method, path string, handlerChain ...fiber.Handler) {
	capability, ok := capabilityFor(method, path)
	if !ok {
		panic(fmt.Sprintf("route %s %s has no entry in the route policy table", method, path))
	}

	chain := append([]fiber.Handler{middleware.RequireCapability(capability)}, handlerChain...)
	router.Add(method, path, chain...)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, rate limited against brute force
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}
