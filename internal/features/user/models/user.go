package models

// User is an account in the directory. Email is unique across the store;
// Name is optional and serializes as JSON null when absent.
type User struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Email string  `gorm:"uniqueIndex;not null" json:"email"`
	Name  *string `json:"name"`
	Posts []Post  `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

func (User) TableName() string { return "users" }

// Post belongs to exactly one User through AuthorID. The store enforces the
// author reference and the false default on Published.
type Post struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `gorm:"not null" json:"title"`
	Content   *string `json:"content"`
	Published bool    `gorm:"not null;default:false" json:"published"`
	AuthorID  uint    `gorm:"not null;index" json:"authorId"`
	Author    *User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Post) TableName() string { return "posts" }
