package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/idealmodas/crediario/internal/infra/auth"
	"github.com/idealmodas/crediario/internal/infra/database"
	"github.com/idealmodas/crediario/internal/infra/http/handlers"
	custom "github.com/idealmodas/crediario/internal/infra/http/middleware"
	"github.com/idealmodas/crediario/internal/infra/mail"
	"github.com/idealmodas/crediario/internal/infra/queue"
	"github.com/idealmodas/crediario/internal/usecase"
)

func main() {
	godotenv.Load()

	// Segredo vem de fora, sempre. Sem ele o serviço não sobe.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET não definida nas variáveis de ambiente")
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// O broker é opcional: sem ele a decisão só não vira email.
	var rabbitMQ *queue.RabbitMQ
	rabbitMQ, err = queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Printf("RabbitMQ indisponível, decisões não serão notificadas: %v", err)
		rabbitMQ = nil
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
	}

	// 1. Repositórios
	appRepo := database.NewApplicationRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Adapters
	tokens := auth.NewManager(jwtSecret)

	var producer usecase.DecisionPublisherInterface
	if rabbitMQ != nil {
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)

		// 3. Worker (consome decisões e manda o email)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	}

	// 4. UseCases
	createUC := usecase.NewCreateApplicationUseCase(appRepo)
	decideUC := usecase.NewDecideApplicationUseCase(appRepo, producer)
	loginUC := usecase.NewLoginUseCase(userRepo, tokens)

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(loginUC)
	appHandler := handlers.NewApplicationHandler(createUC)
	adminHandler := handlers.NewAdminHandler(appRepo, decideUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(custom.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin()},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/pre-cadastro", appHandler.HandleCreate)

	r.Group(func(r chi.Router) {
		r.Use(custom.RequireAuth(tokens))
		r.Get("/cadastros", adminHandler.HandleList)
		r.Put("/cadastros/{id}", adminHandler.HandleUpdate)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Servidor rodando na porta %s", port)
	http.ListenAndServe(":"+port, r)
}

func corsOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "*"
}
