package main

import (
	"academyProject/config"
	"academyProject/controllers"
	"academyProject/database"
	"academyProject/middleware"
	"academyProject/services"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"log"
	"net/http"
)

// initArrearsScheduler запускает фоновый обход задолженностей
func initArrearsScheduler(cfg *config.Config, db *database.Database, emailService *services.EmailService) {
	scheduler := services.NewArrearsSchedulerService(db.GetDB(), emailService, cfg.Scheduler.SweepInterval)
	scheduler.Start()
	log.Println("Планировщик обхода задолженностей запущен")
}

// healthzHandler отвечает на проверку живости сервиса
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

func main() {
	// Загружаем переменные окружения из .env, если файл есть
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	// Инициализируем конфигурацию
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализируем подключение к базе данных
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	// Инициализируем сервис email
	emailService := services.NewEmailService(cfg)

	// Запускаем обход задолженностей
	initArrearsScheduler(cfg, db, emailService)

	// Создаем роутер
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RateLimit(cfg.Server.RateLimit))

	// Инициализируем контроллеры
	studentController := controllers.NewStudentController(db)
	paymentController := controllers.NewPaymentController(db, emailService)
	settingsController := controllers.NewSettingsController(db)
	evaluationController := controllers.NewEvaluationController(db)
	classController := controllers.NewClassController(db)

	// Проверка живости
	router.HandleFunc("/healthz", healthzHandler)

	api := router.PathPrefix("/api").Subrouter()

	// Маршруты для работы с учениками
	api.HandleFunc("/students", studentController.CreateStudent).Methods("POST")
	api.HandleFunc("/students", studentController.GetStudents).Methods("GET")
	api.HandleFunc("/students/{id}", studentController.GetStudent).Methods("GET")
	api.HandleFunc("/students/{id}", studentController.UpdateStudent).Methods("PUT")
	api.HandleFunc("/students/{id}", studentController.WithdrawStudent).Methods("DELETE")
	api.HandleFunc("/students/{id}/billing", studentController.UpdateBillingTerms).Methods("PUT")

	// Маршруты для работы с оценками за экзамены
	api.HandleFunc("/students/{id}/exams", studentController.GetExamScores).Methods("GET")
	api.HandleFunc("/students/{id}/exams", studentController.AddExamScore).Methods("POST")
	api.HandleFunc("/exams/{id}", studentController.DeleteExamScore).Methods("DELETE")

	// Маршруты для работы с классами
	api.HandleFunc("/classes", classController.CreateClass).Methods("POST")
	api.HandleFunc("/classes", classController.GetClasses).Methods("GET")
	api.HandleFunc("/classes/{id}", classController.UpdateClass).Methods("PUT")
	api.HandleFunc("/classes/{id}", classController.DeleteClass).Methods("DELETE")
	api.HandleFunc("/classes/{id}/students", classController.GetRoster).Methods("GET")
	api.HandleFunc("/classes/{id}/students", classController.AssignStudents).Methods("PUT")

	// Маршруты для работы с оплатами
	api.HandleFunc("/payments/summary", paymentController.GetMonthlySummary).Methods("GET")
	api.HandleFunc("/payments", paymentController.RecordPayment).Methods("POST")
	api.HandleFunc("/payments/{id}", paymentController.DeletePayment).Methods("DELETE")
	api.HandleFunc("/students/{id}/remind", paymentController.SendReminder).Methods("POST")

	// Маршруты для работы с настройками
	api.HandleFunc("/settings/fees", settingsController.GetDefaultFees).Methods("GET")
	api.HandleFunc("/settings/fees", settingsController.UpdateDefaultFees).Methods("PUT")

	// Маршруты для работы с журналом занятий
	api.HandleFunc("/evaluations", evaluationController.CreateClassLog).Methods("POST")
	api.HandleFunc("/students/{id}/evaluations", evaluationController.GetStudentEvaluations).Methods("GET")

	// Запускаем сервер
	port := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на порту %s", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
