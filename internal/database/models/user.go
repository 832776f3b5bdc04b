package models

// User is a person who can log in and be assigned to campaigns.
// Users are managed by the identity service; this backend only reads them.
type User struct {
	BaseModel
	Name     string   `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Initials string   `json:"initials" gorm:"size:10"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null;default:'caller'" validate:"required"`
	Phone    string   `json:"phone" gorm:"size:30"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
