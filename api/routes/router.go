package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/floordesk/floordesk-backend/api/controllers"
	"github.com/floordesk/floordesk-backend/api/middleware"
	"github.com/floordesk/floordesk-backend/internal/catalog"
	"github.com/floordesk/floordesk-backend/internal/orders"
	"github.com/floordesk/floordesk-backend/internal/snapshot"
	"github.com/floordesk/floordesk-backend/internal/users"
	"github.com/floordesk/floordesk-backend/pkg/config"
	"github.com/floordesk/floordesk-backend/pkg/db"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	"github.com/floordesk/floordesk-backend/pkg/logger"
	"github.com/floordesk/floordesk-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	usersService users.Service,
	catalogService catalog.Service,
	ordersService orders.Service,
	snapshotService snapshot.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(usersService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, usersService, logg))

		r.Get("/auth/me", controllers.AuthMe(logg))

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(middleware.RequireModule(enums.ModuleDashboard, enums.PermissionView, logg))
			r.Get("/summary", controllers.DashboardSummary(ordersService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleOrders, enums.PermissionView, logg))
				r.Get("/", controllers.OrdersList(ordersService, logg))
				r.Get("/{orderId}", controllers.OrdersGet(ordersService, logg))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleOrders, enums.PermissionEdit, logg))
				r.Post("/", controllers.OrdersCreate(ordersService, logg))
				r.Put("/{orderId}", controllers.OrdersUpdate(ordersService, logg))
				r.Delete("/{orderId}", controllers.OrdersDelete(ordersService, logg))
				r.Post("/{orderId}/settle", controllers.OrdersSettle(ordersService, logg))
				r.Post("/{orderId}/restore", controllers.OrdersRestore(ordersService, logg))
			})
		})

		r.Route("/debtors", func(r chi.Router) {
			r.Use(middleware.RequireModule(enums.ModuleDebtors, enums.PermissionView, logg))
			r.Get("/", controllers.OrdersDebtors(ordersService, logg))
		})

		r.Route("/positions", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModulePositions, enums.PermissionView, logg))
				r.Get("/", controllers.PositionsList(catalogService, logg))
				r.Get("/{positionId}", controllers.PositionsGet(catalogService, logg))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModulePositions, enums.PermissionEdit, logg))
				r.Post("/", controllers.PositionsCreate(catalogService, logg))
				r.Post("/import", controllers.PositionsImport(catalogService, logg))
				r.Put("/{positionId}", controllers.PositionsUpdate(catalogService, logg))
				r.Delete("/{positionId}", controllers.PositionsDelete(catalogService, logg))
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleCategories, enums.PermissionView, logg))
				r.Get("/", controllers.CategoriesList(catalogService, logg))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleCategories, enums.PermissionEdit, logg))
				r.Post("/", controllers.CategoriesCreate(catalogService, logg))
				r.Put("/{categoryId}", controllers.CategoriesUpdate(catalogService, logg))
				r.Delete("/{categoryId}", controllers.CategoriesDelete(catalogService, logg))
			})
		})

		r.Route("/work-categories", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleCategories, enums.PermissionView, logg))
				r.Get("/", controllers.WorkCategoriesList(catalogService, logg))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleCategories, enums.PermissionEdit, logg))
				r.Post("/", controllers.WorkCategoriesCreate(catalogService, logg))
				r.Put("/{workCategoryId}", controllers.WorkCategoriesUpdate(catalogService, logg))
				r.Delete("/{workCategoryId}", controllers.WorkCategoriesDelete(catalogService, logg))
			})
		})

		r.Route("/work-positions", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModulePositions, enums.PermissionView, logg))
				r.Get("/", controllers.WorkPositionsList(catalogService, logg))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModulePositions, enums.PermissionEdit, logg))
				r.Post("/", controllers.WorkPositionsCreate(catalogService, logg))
				r.Put("/{workPositionId}", controllers.WorkPositionsUpdate(catalogService, logg))
				r.Delete("/{workPositionId}", controllers.WorkPositionsDelete(catalogService, logg))
			})
		})

		r.Route("/cargo-statuses", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleSettings, enums.PermissionView, logg))
				r.Get("/", controllers.CargoStatusesList(catalogService, logg))
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireModule(enums.ModuleSettings, enums.PermissionEdit, logg))
				r.Post("/", controllers.CargoStatusesCreate(catalogService, logg))
				r.Put("/{statusId}", controllers.CargoStatusesUpdate(catalogService, logg))
				r.Delete("/{statusId}", controllers.CargoStatusesDelete(catalogService, logg))
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(middleware.RequireModule(enums.ModuleAnalytics, enums.PermissionView, logg))
			r.Get("/summary", controllers.AnalyticsSummary(ordersService, logg))
			r.Get("/daily", controllers.AnalyticsDaily(ordersService, logg))
			r.Get("/statuses", controllers.AnalyticsStatuses(ordersService, logg))
			r.Get("/categories", controllers.AnalyticsCategories(ordersService, logg))
			r.Get("/top-products", controllers.AnalyticsTopProducts(ordersService, logg))
			r.Get("/top-clients", controllers.AnalyticsTopClients(ordersService, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.RequireModule(enums.ModuleAnalytics, enums.PermissionView, logg))
			r.Get("/discounts", controllers.ReportsDiscounts(ordersService, logg))
			r.Get("/revenue", controllers.ReportsRevenue(ordersService, logg))
			r.Get("/reconciliation", controllers.ReportsReconciliation(ordersService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/", controllers.UsersList(usersService, logg))
			r.Post("/", controllers.UsersCreate(usersService, logg))
			r.Put("/{userId}", controllers.UsersUpdate(usersService, logg))
			r.Delete("/{userId}", controllers.UsersDelete(usersService, logg))
			r.Post("/{userId}/reset-password", controllers.UsersResetPassword(usersService, logg))
		})

		r.Route("/data", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/export", controllers.SnapshotExport(snapshotService, logg))
			r.Post("/import", controllers.SnapshotImport(snapshotService, logg))
			r.Post("/import-orders", controllers.OrdersImport(ordersService, logg))
			r.Post("/clear-orders", controllers.SnapshotClearOrders(snapshotService, logg))
			r.Post("/clear-all", controllers.SnapshotClearAll(snapshotService, logg))
		})
	})

	return r
}
