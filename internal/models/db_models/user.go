package db_models

type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleSchoolAdmin UserRole = "school_admin"
	RoleUser        UserRole = "user"
)

type User struct {
	BaseModel
	Username     string   `gorm:"size:30;uniqueIndex" json:"username"`
	Email        string   `gorm:"uniqueIndex" json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `gorm:"size:20;default:'user'" json:"role"`
	// Required when Role is school_admin, empty otherwise.
	SchoolID  string `gorm:"index" json:"school_id,omitempty"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
	LastLogin *int64 `json:"last_login,omitempty"`
}
