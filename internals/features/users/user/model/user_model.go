package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel representa a tabela users. O role define o perfil no portal:
// ADMIN (coordenação de estágios), STUDENT (aluno) ou COMPANY (empresa).
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(120);not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(160);not null;unique;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:text;not null;column:user_password" json:"-"`
	UserRole     string    `gorm:"type:varchar(16);not null;default:'STUDENT';column:user_role" json:"user_role"`
	UserIsActive bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
