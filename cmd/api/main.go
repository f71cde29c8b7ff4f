package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zapcapta/zapcapta-api/internal/config"
	"github.com/zapcapta/zapcapta-api/internal/infra/database"
	"github.com/zapcapta/zapcapta-api/internal/infra/http/handlers"
	apimw "github.com/zapcapta/zapcapta-api/internal/infra/http/middleware"
	"github.com/zapcapta/zapcapta-api/internal/infra/mail"
	"github.com/zapcapta/zapcapta-api/internal/infra/queue"
	"github.com/zapcapta/zapcapta-api/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	profileRepo := database.NewProfileRepository(db)
	clientRepo := database.NewClientRepository(db)
	siteRepo := database.NewSiteRepository(db)
	planRepo := database.NewPlanRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	// 3. Worker (consome a fila e notifica o dono do site por e-mail)
	worker := queue.NewWorker(rabbitMQ.Ch, clientRepo, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	submitUC := usecase.NewSubmitLeadUseCase(leadRepo, siteRepo, clientRepo, planRepo, producer)
	importUC := usecase.NewImportLeadsUseCase(profileRepo, clientRepo, leadRepo)
	createSiteUC := usecase.NewCreateSiteUseCase(siteRepo, clientRepo, planRepo)

	// 5. Handlers
	submissionHandler := handlers.NewSubmissionHandler(submitUC)
	importHandler := handlers.NewImportHandler(importUC)
	leadsHandler := handlers.NewLeadsHandler(leadRepo)
	exportHandler := handlers.NewExportHandler(leadRepo)
	widgetHandler := handlers.NewWidgetHandler(siteRepo, cfg.APIBaseURL)
	siteHandler := handlers.NewSiteHandler(createSiteUC, siteRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.MailHost)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(apimw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/submit", submissionHandler.Handle)
	r.Get("/widget/{siteId}.js", widgetHandler.HandleScript)

	r.Post("/leads/import/file", importHandler.HandleFile)
	r.Post("/leads/import/paste", importHandler.HandlePaste)
	r.Get("/clients/{clientId}/leads", leadsHandler.HandleList)
	r.Get("/clients/{clientId}/leads/export", exportHandler.HandleExport)

	r.Post("/sites", siteHandler.HandleCreate)
	r.Get("/clients/{clientId}/sites", siteHandler.HandleList)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 Server ZapCapta rodando na porta %s", addr)
	http.ListenAndServe(addr, r)
}
