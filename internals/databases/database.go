package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	docModel "estagios_backend/internals/features/internships/documents/model"
	internshipModel "estagios_backend/internals/features/internships/internships/model"
	authModel "estagios_backend/internals/features/users/auth/model"
	userModel "estagios_backend/internals/features/users/user/model"
	vacancyModel "estagios_backend/internals/features/vacancies/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	// ✅ DSN completo + statement_timeout
	// Obs: com PgBouncer (transaction pooling) mantenha PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=estagios&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// Migrate roda o AutoMigrate quando DB_AUTO_MIGRATE=true (dev/staging).
// Em produção o schema é versionado fora da aplicação.
func Migrate() {
	if getenv("DB_AUTO_MIGRATE", "false") != "true" {
		return
	}
	log.Println("🛠 Rodando AutoMigrate...")
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&internshipModel.InternshipModel{},
		&docModel.DocumentModel{},
		&vacancyModel.JobVacancyModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate falhou: %v", err)
	}
	log.Println("✅ AutoMigrate concluído.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
