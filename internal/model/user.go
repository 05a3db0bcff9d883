package model

// User holds login credentials. Passwords are stored as bcrypt hashes; the
// default admin row is seeded at startup.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
}
