package router

import (
	"net/http"

	abssvc "confera-backend/internal/application/abstracts"
	authsvc "confera-backend/internal/application/auth"
	awardsvc "confera-backend/internal/application/awards"
	comsvc "confera-backend/internal/application/committee"
	emailsvc "confera-backend/internal/application/emails"
	invsvc "confera-backend/internal/application/invitations"
	notifsvc "confera-backend/internal/application/notifications"
	usersvc "confera-backend/internal/application/user"
	"confera-backend/internal/config"
	"confera-backend/internal/infrastructure/database"
	abshandler "confera-backend/internal/interfaces/handlers/abstracts"
	authhandler "confera-backend/internal/interfaces/handlers/auth"
	awardhandler "confera-backend/internal/interfaces/handlers/awards"
	comhandler "confera-backend/internal/interfaces/handlers/committee"
	healthhandler "confera-backend/internal/interfaces/handlers/health"
	invhandler "confera-backend/internal/interfaces/handlers/invitations"
	notifhandler "confera-backend/internal/interfaces/handlers/notifications"
	userhandler "confera-backend/internal/interfaces/handlers/user"
	"confera-backend/internal/middleware"
	"confera-backend/internal/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all middleware and routes wired.
// Returns the app plus the DB and Redis handles for startup pings.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendSuffix,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		RedisURL:     cfg.RedisURL,
		CookieDomain: cfg.CookieDomain,
		IsProduction: cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		hh.DB = &gormDBPinger{db: db}
	}

	var userFinder authsvc.UserFinder
	if db != nil {
		userFinder = &authsvc.GormUserFinder{DB: db}
	}
	ah := &authhandler.Handlers{
		UserFinder: userFinder,
		Rdb:        rdb,
		Config:     sessionCfg,
	}
	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", ah.Login)
	authGroup.Get("/me", ah.Me)
	authGroup.Delete("/logout", ah.Logout)

	if db != nil && rdb != nil {
		var emailSender emailsvc.Sender
		switch {
		case cfg.BrevoAPIKey != "":
			emailSender = &emailsvc.BrevoClient{APIKey: cfg.BrevoAPIKey, MailFrom: cfg.MailFrom}
		case cfg.SMTPHost != "":
			emailSender = &emailsvc.SMTPClient{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.SMTPUsername,
				Password: cfg.SMTPPassword,
				MailFrom: cfg.MailFrom,
			}
		}

		admin := app.Group("/api/admin", middleware.RequireAuth())

		// Users
		us := &usersvc.Service{DB: db, Rdb: rdb, EmailSender: emailSender}
		uh := &userhandler.Handlers{Service: us}
		app.Post("/api/users/register", uh.Register)
		ug := app.Group("/api/users", middleware.RequireAuth())
		ug.Get("/me", uh.Me)
		ug.Put("/me", uh.UpdateMe)
		admin.Get("/users", middleware.AuthorizePermission(constants.ManageUsers), uh.List)
		admin.Delete("/users/:id", middleware.AuthorizePermission(constants.ManageUsers), uh.Delete)

		// Invitations
		is := &invsvc.Service{DB: db, EmailSender: emailSender, InviteBaseURL: cfg.InviteBaseURL}
		ih := &invhandler.Handlers{Service: is, Config: sessionCfg}
		app.Get("/api/invitations/verify", ih.Verify)
		app.Post("/api/invitations/attendance-response", ih.AttendanceResponse)
		app.Post("/api/invitations/accept", ih.AcceptAccount)
		app.Post("/api/invitations", middleware.RequireAuth(), middleware.AuthorizePermission(constants.InviteUser), ih.Create)
		admin.Get("/invitations", middleware.AuthorizePermission(constants.ManageInvitations), ih.List)
		admin.Delete("/invitations/:id", middleware.AuthorizePermission(constants.ManageInvitations), ih.Delete)

		// Abstracts
		as := &abssvc.Service{DB: db, EmailSender: emailSender}
		abh := &abshandler.Handlers{Service: as}
		ag := app.Group("/api/abstracts", middleware.RequireAuth())
		ag.Post("/", abh.Submit)
		ag.Get("/", abh.ListMine)
		ag.Put("/:id", abh.Update)
		ag.Delete("/:id", abh.Withdraw)
		admin.Get("/abstracts", middleware.AuthorizePermission(constants.ReviewAbstracts), abh.ListAll)
		admin.Patch("/abstracts/:id/status", middleware.AuthorizePermission(constants.ReviewAbstracts), abh.Review)

		// Notifications
		ns := &notifsvc.Service{DB: db}
		nh := &notifhandler.Handlers{Service: ns}
		app.Get("/api/notifications", nh.ListPublished)
		admin.Get("/notifications", middleware.AuthorizePermission(constants.ManageNotifications), nh.ListAll)
		admin.Post("/notifications", middleware.AuthorizePermission(constants.ManageNotifications), nh.Create)
		admin.Put("/notifications/:id", middleware.AuthorizePermission(constants.ManageNotifications), nh.Update)
		admin.Delete("/notifications/:id", middleware.AuthorizePermission(constants.ManageNotifications), nh.Delete)

		// Committee
		cs := &comsvc.Service{DB: db}
		ch := &comhandler.Handlers{Service: cs}
		app.Get("/api/committee", ch.List)
		admin.Post("/committee", middleware.AuthorizePermission(constants.ManageCommittee), ch.Create)
		admin.Put("/committee/:id", middleware.AuthorizePermission(constants.ManageCommittee), ch.Update)
		admin.Delete("/committee/:id", middleware.AuthorizePermission(constants.ManageCommittee), ch.Delete)

		// Awards
		aws := &awardsvc.Service{DB: db}
		awh := &awardhandler.Handlers{Service: aws}
		app.Get("/api/awards", awh.List)
		admin.Post("/awards", middleware.AuthorizePermission(constants.ManageAwards), awh.Create)
		admin.Put("/awards/:id", middleware.AuthorizePermission(constants.ManageAwards), awh.Update)
		admin.Delete("/awards/:id", middleware.AuthorizePermission(constants.ManageAwards), awh.Delete)
	}

	return app, db, rdb, nil
}

// Handler adapts the Fiber app to net/http for serverless deployment.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
