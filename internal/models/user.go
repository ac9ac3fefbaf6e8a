package models

type User struct {
	Username string `gorm:"column:username;primaryKey" json:"username" example:"johndoe"`
	Name     string `gorm:"column:name;not null" json:"name" example:"John Doe"`
	// Password holds the bcrypt digest, never the plaintext.
	Password  string `gorm:"column:password;not null" json:"-"`
	BirthYear int    `gorm:"column:birth_year;not null" json:"birth_year" example:"1990"`
}

func (User) TableName() string {
	return "movie_users"
}
