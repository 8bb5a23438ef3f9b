package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-manager/internal/audit"
	"github.com/BruksfildServices01/autoshop-manager/internal/cache"
	"github.com/BruksfildServices01/autoshop-manager/internal/config"
	"github.com/BruksfildServices01/autoshop-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/autoshop-manager/internal/infra/repository"
	"github.com/BruksfildServices01/autoshop-manager/internal/middleware"
	"github.com/BruksfildServices01/autoshop-manager/internal/models"
	"github.com/BruksfildServices01/autoshop-manager/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/autoshop-manager/internal/usecase/appointment"
	ucReport "github.com/BruksfildServices01/autoshop-manager/internal/usecase/report"
)

type Deps struct {
	DB          *gorm.DB
	Config      *config.Config
	Logger      *zap.Logger
	ReportCache cache.ReportCache
	Audit       *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		gin.Recovery(),
		middleware.CORSMiddleware(d.Config.CORSAllowedOrigins...),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clock := timezone.SystemClock(d.Config.ShopTimezone)
	invalidate := cache.Invalidator(d.ReportCache, d.Logger)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	reportRepo := infraRepo.NewReportGormRepository(d.DB)
	vehicleRepo := infraRepo.NewVehicleGormRepository(d.DB, invalidate)

	customerRepo := infraRepo.NewEntityGormRepository[models.Customer](d.DB, invalidate)
	packageRepo := infraRepo.NewEntityGormRepository[models.ServicePackage](d.DB, invalidate)
	employeeRepo := infraRepo.NewEntityGormRepository[models.Employee](d.DB, invalidate)
	inventoryRepo := infraRepo.NewEntityGormRepository[models.Inventory](d.DB, invalidate)
	feedbackRepo := infraRepo.NewEntityGormRepository[models.Feedback](d.DB, nil)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	scheduleUC := ucAppointment.NewScheduleAppointment(appointmentRepo, d.Audit, invalidate, d.Logger)
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit, invalidate)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, clock, invalidate)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit, clock, invalidate)

	dashboard := ucReport.NewDashboard(reportRepo, d.ReportCache, clock, d.Logger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	customerHandler := handlers.NewEntityHandler[models.Customer, handlers.CustomerRequest](customerRepo, "Customer", "customer")
	vehicleCRUD := handlers.NewEntityHandler[models.Vehicle, handlers.VehicleRequest](vehicleRepo, "Vehicle", "vehicle")
	packageHandler := handlers.NewEntityHandler[models.ServicePackage, handlers.ServicePackageRequest](packageRepo, "Service package", "service_package")
	employeeHandler := handlers.NewEntityHandler[models.Employee, handlers.EmployeeRequest](employeeRepo, "Employee", "employee")
	inventoryHandler := handlers.NewEntityHandler[models.Inventory, handlers.InventoryRequest](inventoryRepo, "Inventory item", "inventory")
	feedbackHandler := handlers.NewEntityHandler[models.Feedback, handlers.FeedbackRequest](feedbackRepo, "Feedback", "feedback")

	vehicleHandler := handlers.NewVehicleHandler(vehicleRepo)
	appointmentHandler := handlers.NewAppointmentHandler(scheduleUC, createUC, cancelUC, completeUC, dashboard)
	reportHandler := handlers.NewReportHandler(dashboard)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.NewRecorder(d.DB))

	// ======================================================
	// 👤 CUSTOMERS / VEHICLES
	// ======================================================
	r.GET("/customers", customerHandler.List)
	r.POST("/customers", customerHandler.Create)
	r.GET("/customers/:id", customerHandler.Get)
	r.PUT("/customers/:id", customerHandler.Update)
	r.DELETE("/customers/:id", customerHandler.Delete)

	r.GET("/customers/:id/vehicles", vehicleHandler.ListByCustomer)
	r.POST("/customers/:id/vehicles", vehicleHandler.CreateForCustomer)

	r.GET("/vehicles", vehicleHandler.List)
	r.POST("/vehicles", vehicleHandler.Create)
	r.GET("/vehicles/:id", vehicleCRUD.Get)
	r.PUT("/vehicles/:id", vehicleCRUD.Update)
	r.DELETE("/vehicles/:id", vehicleCRUD.Delete)

	// ======================================================
	// 🧰 CATÁLOGO / EQUIPE / ESTOQUE
	// ======================================================
	registerCRUD(r, "/service_packages", packageHandler)
	registerCRUD(r, "/employees", employeeHandler)
	registerCRUD(r, "/inventory", inventoryHandler)

	r.GET("/feedback", feedbackHandler.List)
	r.POST("/feedback", feedbackHandler.Create)

	// ======================================================
	// 📅 APPOINTMENTS
	// ======================================================
	r.GET("/appointments", appointmentHandler.List)
	r.POST("/appointments", appointmentHandler.Create)
	r.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
	r.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
	r.POST("/schedule_appointment", appointmentHandler.Schedule)

	// ======================================================
	// 📊 PAINEL
	// ======================================================
	r.GET("/monthly_appointments", reportHandler.MonthlyAppointments)
	r.GET("/monthy_appointments", reportHandler.MonthlyAppointments) // grafia antiga do painel
	r.GET("/service-usage", reportHandler.ServiceUsage)
	r.GET("/inventory-usage", reportHandler.InventoryUsage)
	r.GET("/actionable-insights", reportHandler.ActionableInsights)
	r.GET("/upcoming-appointments", reportHandler.UpcomingAppointments)
	r.GET("/metrics", reportHandler.Metrics)

	r.GET("/audit-logs", auditLogsHandler.List)
}

type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCRUD(r gin.IRouter, path string, h crudHandler) {
	r.GET(path, h.List)
	r.POST(path, h.Create)
	r.GET(path+"/:id", h.Get)
	r.PUT(path+"/:id", h.Update)
	r.DELETE(path+"/:id", h.Delete)
}
