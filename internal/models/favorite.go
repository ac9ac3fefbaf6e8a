package models

type Favorite struct {
	Username  string `gorm:"column:username;primaryKey" json:"username" example:"johndoe"`
	MovieName string `gorm:"column:movie_name;primaryKey" json:"movie_name" example:"Inception"`
}

func (Favorite) TableName() string {
	return "favorite_movies"
}
