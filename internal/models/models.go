package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Serves      int     `gorm:"not null"                 json:"serves"`
	Description string  `gorm:"not null"                 json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Image       string  `gorm:"not null"                 json:"image"`
}
