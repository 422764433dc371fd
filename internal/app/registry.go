package app

import (
	"os"
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/entitlement"
	"go-leave/internal/leaverequest"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/calendar"
	"go-leave/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	entitlementRepo := entitlement.NewRepository(gormDB)
	leaveRequestRepo := leaverequest.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// The second approval level goes to a fixed HR approver. When unset the
	// chain degrades to manager-only.
	hrApproverID := uuid.Nil
	if raw := os.Getenv("HR_APPROVER_ID"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return err
		}
		hrApproverID = parsed
	}

	// --- Services ---
	leaveTypeService := leavetype.NewService(leaveTypeRepo, logger)
	entitlementService := entitlement.NewService(entitlementRepo, leaveTypeRepo, logger)
	leaveRequestService := leaverequest.NewService(
		gormDB,
		leaveRequestRepo,
		employeeRepo,
		leaveTypeRepo,
		entitlementService,
		leaverequest.NewValidator(calendar.New()),
		leaverequest.NewNumbering(counterRepo, logger),
		leaverequest.NewChainBuilder(hrApproverID),
		outboxRepo,
		logger,
	)

	// --- Handlers ---
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService, logger)
	entitlementHandler := entitlement.NewHandler(entitlementService, logger)
	leaveRequestHandler := leaverequest.NewHandler(leaveRequestService, logger)

	idempotency := middleware.Idempotency(rdb, 24*time.Hour)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leavetype.RegisterRoutes(api, leaveTypeHandler)
		entitlement.RegisterRoutes(api, entitlementHandler)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, idempotency)
	}

	return nil
}
