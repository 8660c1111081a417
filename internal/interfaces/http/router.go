package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vagones-api/internal/application/auth"
	"github.com/jhoicas/vagones-api/internal/application/company"
	"github.com/jhoicas/vagones-api/internal/application/counterparty"
	"github.com/jhoicas/vagones-api/internal/application/dislocation"
	"github.com/jhoicas/vagones-api/internal/application/identity"
	"github.com/jhoicas/vagones-api/internal/application/ledger"
	"github.com/jhoicas/vagones-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC       *ledger.LedgerUseCase
	CounterpartyUC *counterparty.DirectoryUseCase
	DislocationUC  *dislocation.ReportUseCase
	CompanyUC      *company.UseCase
	AuthUC         *auth.AuthUseCase
	Resolver       *identity.Resolver
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Directorio de contrapartes (protegido)
	counterparties := protected.Group("/counterparties")
	counterpartyHandler := NewCounterpartyHandler(deps.CounterpartyUC, deps.Resolver)
	counterparties.Get("/", counterpartyHandler.List)
	counterparties.Post("/", counterpartyHandler.Create)

	// Libro de asignaciones (protegido)
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Resolver)
	ledgerGroup.Post("/assignments", ledgerHandler.Assign)
	ledgerGroup.Post("/exclusions", ledgerHandler.Exclude)
	ledgerGroup.Get("/history", ledgerHandler.History)
	ledgerGroup.Delete("/owned/:id", ledgerHandler.SoftRemove)
	// Borrado físico: override administrativo, irreversible
	ledgerGroup.Delete("/owned/:id/hard", RequireRole(entity.RoleAdmin), ledgerHandler.HardDelete)

	// Reporte de dislocación (protegido, solo lectura)
	dislocations := protected.Group("/dislocations")
	dislocationHandler := NewDislocationHandler(deps.DislocationUC, deps.Resolver)
	dislocations.Get("/", dislocationHandler.List)
	dislocations.Get("/options", dislocationHandler.Options)
	dislocations.Get("/summary", dislocationHandler.Summary)
}
