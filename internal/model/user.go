package model

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User accounts are created by cmd/seed, never through the service
// itself. Email is stored lowercase.
type User struct {
	ID           int64  `json:"id" gorm:"column:id;primary_key;auto_increment"`
	Email        string `json:"email" gorm:"column:email;type:varchar(255);unique"`
	PasswordHash string `json:"-" gorm:"column:password;type:varchar(255)"`
	Role         string `json:"role" gorm:"column:role;type:varchar(50);default:'USER'"`
	Name         string `json:"name" gorm:"column:name;type:varchar(255)"`
}

func (User) TableName() string {
	return "users"
}
