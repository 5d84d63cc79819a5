package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mfava/shoproll/internal/appointment"
	appointmentStore "github.com/mfava/shoproll/internal/appointment/store"
	"github.com/mfava/shoproll/internal/auth"
	"github.com/mfava/shoproll/internal/config"
	"github.com/mfava/shoproll/internal/customer"
	customerStore "github.com/mfava/shoproll/internal/customer/store"
	"github.com/mfava/shoproll/internal/database"
	shopHttp "github.com/mfava/shoproll/internal/http"
	appointmentHandler "github.com/mfava/shoproll/internal/http/appointment"
	authHandler "github.com/mfava/shoproll/internal/http/auth"
	customerHandler "github.com/mfava/shoproll/internal/http/customer"
	importHandler "github.com/mfava/shoproll/internal/http/importcsv"
	invoiceHandler "github.com/mfava/shoproll/internal/http/invoice"
	quotationHandler "github.com/mfava/shoproll/internal/http/quotation"
	tireHandler "github.com/mfava/shoproll/internal/http/tire"
	userHandler "github.com/mfava/shoproll/internal/http/user"
	vehicleHandler "github.com/mfava/shoproll/internal/http/vehicle"
	"github.com/mfava/shoproll/internal/importer"
	"github.com/mfava/shoproll/internal/invoice"
	invoiceStore "github.com/mfava/shoproll/internal/invoice/store"
	"github.com/mfava/shoproll/internal/quotation"
	quotationStore "github.com/mfava/shoproll/internal/quotation/store"
	"github.com/mfava/shoproll/internal/tire"
	tireStore "github.com/mfava/shoproll/internal/tire/store"
	"github.com/mfava/shoproll/internal/user"
	userStore "github.com/mfava/shoproll/internal/user/store"
	"github.com/mfava/shoproll/internal/vehicle"
	vehicleStore "github.com/mfava/shoproll/internal/vehicle/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	var (
		invoiceService     = invoice.NewService(invoiceStore.New(db))
		quotationService   = quotation.NewService(quotationStore.New(db), invoiceService)
		customerService    = customer.NewService(customerStore.New(db))
		vehicleService     = vehicle.NewService(vehicleStore.New(db))
		tireService        = tire.NewService(tireStore.New(db))
		appointmentService = appointment.NewService(appointmentStore.New(db))
		userService        = user.NewService(userStore.New(db))
		importService      = importer.NewService()
	)

	router := shopHttp.New(tokens, shopHttp.Handlers{
		Auth:         authHandler.NewHandler(userService, tokens),
		Invoices:     invoiceHandler.NewHandler(invoiceService),
		Quotations:   quotationHandler.NewHandler(quotationService),
		Customers:    customerHandler.NewHandler(customerService),
		Vehicles:     vehicleHandler.NewHandler(vehicleService),
		Tires:        tireHandler.NewHandler(tireService),
		Appointments: appointmentHandler.NewHandler(appointmentService),
		Import:       importHandler.NewHandler(importService, tireService),
		Users:        userHandler.NewHandler(userService),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
