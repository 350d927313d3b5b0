package models

import "time"

// Role gates which mutating operations a user may perform.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDoctor    Role = "DOCTOR"
	RoleAssistant Role = "ASSISTANT"
)

// Audit actions recorded after successful operations on sensitive
// entities.
const (
	ActionLogin  = "LOGIN"
	ActionCreate = "CREATE"
	ActionRead   = "READ"
	ActionUpdate = "UPDATE"
)

// Clinic is the tenancy root. Every other entity carries a ClinicID
// and all queries filter by it.
type Clinic struct {
	ID                    string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name                  string    `gorm:"not null" json:"name"`
	Address               string    `json:"address"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	DataControllerName    string    `json:"dataControllerName"`
	DataControllerContact string    `json:"dataControllerContact"`
	IsActive              bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// User belongs to exactly one clinic. Emails are stored lowercase and
// unique across the whole system.
type User struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         Role       `gorm:"size:16;not null;default:DOCTOR" json:"role"`
	ClinicID     string     `gorm:"type:uuid;index;not null" json:"clinicId"`
	Clinic       *Clinic    `json:"clinic,omitempty"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Patient is scoped to a clinic; the (clinic_id, cnp) pair is the
// authoritative uniqueness guard, enforced by the database index. Two
// clinics may each register a patient with the same CNP.
type Patient struct {
	ID              string       `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID        string       `gorm:"type:uuid;uniqueIndex:idx_patients_clinic_cnp;not null" json:"clinicId"`
	FirstName       string       `gorm:"not null" json:"firstName"`
	LastName        string       `gorm:"not null" json:"lastName"`
	CNP             string       `gorm:"uniqueIndex:idx_patients_clinic_cnp;not null" json:"cnp"`
	Address         string       `gorm:"not null" json:"address"`
	City            string       `json:"city"`
	County          string       `json:"county"`
	IDType          string       `json:"idType"`
	IDSeries        string       `json:"idSeries"`
	IDNumber        string       `json:"idNumber"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	GDPRConsent     bool         `gorm:"not null;default:false" json:"gdprConsent"`
	GDPRConsentDate *time.Time   `json:"gdprConsentDate,omitempty"`
	IsArchived      bool         `gorm:"not null;default:false;index" json:"isArchived"`
	ArchivedAt      *time.Time   `json:"archivedAt,omitempty"`
	Evaluations     []Evaluation `json:"evaluations,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// AuditLog is append-only: written after a successful mutating or read
// operation, never updated or deleted by the application.
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClinicID   string    `gorm:"type:uuid;index;not null" json:"clinicId"`
	UserID     *string   `gorm:"type:uuid" json:"userId,omitempty"`
	Action     string    `gorm:"not null" json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Changes    JSONB     `gorm:"type:jsonb;default:'{}'::jsonb" json:"changes"`
	IPAddress  string    `json:"ipAddress"`
	UserAgent  string    `json:"userAgent"`
	CreatedAt  time.Time `json:"createdAt"`
}
