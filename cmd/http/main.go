package main

import (
	"context"
	"emr-service/internal/app/config"
	"emr-service/internal/app/delivery/http/middlewares"
	"emr-service/internal/app/delivery/http/routers"
	"emr-service/internal/app/drivers/database"
	"emr-service/internal/app/drivers/logger"
	"emr-service/internal/app/drivers/messaging"
	"emr-service/internal/app/services/core/audits"
	"emr-service/internal/app/services/core/billings"
	"emr-service/internal/app/services/core/consultations"
	"emr-service/internal/app/services/core/notifications"
	"emr-service/internal/app/services/core/patients"
	"emr-service/internal/app/services/core/payments"
	"emr-service/internal/app/services/core/serviceorders"
	"emr-service/internal/app/services/core/users"
	"emr-service/internal/app/services/core/vitalsigns"
	"emr-service/internal/app/services/shared/locker"
	"emr-service/internal/app/services/shared/notificationqueue"
	"emr-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(); err != nil {
		logrus.Printf("Error closing resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	notificationPublisher, err := notificationqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize notification queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	serviceOrderMongoRepository := serviceorders.NewServiceOrderMongoRepository(bootstrap.MongoDB, dbName)
	billingMongoRepository := billings.NewBillingMongoRepository(bootstrap.MongoDB, dbName)
	paymentMongoRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	settlementMongoRepository := payments.NewSettlementMongoRepository(bootstrap.MongoDB, dbName)
	auditLogMongoRepository := audits.NewAuditLogMongoRepository(bootstrap.MongoDB, dbName)
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	consultationMongoRepository := consultations.NewConsultationMongoRepository(bootstrap.MongoDB, dbName)
	medicalHistoryMongoRepository := consultations.NewMedicalHistoryMongoRepository(bootstrap.MongoDB, dbName)
	vitalSignsMongoRepository := vitalsigns.NewVitalSignsMongoRepository(bootstrap.MongoDB, dbName)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Service order
	serviceOrderUsecase := serviceorders.NewServiceOrderUsecase(
		serviceOrderMongoRepository,
		patientMongoRepository,
		auditLogMongoRepository,
		bootstrap.Logger,
	)
	serviceOrderController := serviceorders.NewServiceOrderController(bootstrap.Logger, serviceOrderUsecase)

	// Billing
	billingUsecase := billings.NewBillingUsecase(
		billingMongoRepository,
		serviceOrderMongoRepository,
		auditLogMongoRepository,
		bootstrap.Logger,
	)
	billingController := billings.NewBillingController(bootstrap.Logger, billingUsecase)

	// Settlement
	settlementUsecase := payments.NewSettlementUsecase(
		settlementMongoRepository,
		paymentMongoRepository,
		serviceOrderMongoRepository,
		billingMongoRepository,
		userMongoRepository,
		notificationMongoRepository,
		notificationPublisher,
		auditLogMongoRepository,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentController := payments.NewPaymentController(bootstrap.Logger, settlementUsecase, bootstrap.InternalConfig)

	// Notification
	notificationUsecase := notifications.NewNotificationUsecase(
		notificationMongoRepository,
		notificationPublisher,
		userMongoRepository,
		bootstrap.Logger,
	)
	notificationController := notifications.NewNotificationController(bootstrap.Logger, notificationUsecase)

	// Consultation
	consultationUsecase := consultations.NewConsultationUsecase(
		consultationMongoRepository,
		medicalHistoryMongoRepository,
		patientMongoRepository,
		auditLogMongoRepository,
		bootstrap.Logger,
	)
	consultationController := consultations.NewConsultationController(bootstrap.Logger, consultationUsecase)

	// Vital signs
	vitalSignsUsecase := vitalsigns.NewVitalSignsUsecase(
		vitalSignsMongoRepository,
		patientMongoRepository,
		bootstrap.Logger,
	)
	vitalSignsController := vitalsigns.NewVitalSignsController(bootstrap.Logger, vitalSignsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patientController,
		serviceOrderController,
		billingController,
		paymentController,
		notificationController,
		consultationController,
		vitalSignsController,
	)
}
