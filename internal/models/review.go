package models

type Review struct {
	ID         uint    `gorm:"column:review_id;primaryKey" json:"review_id" example:"1"`
	Stars      float64 `gorm:"column:stars;type:numeric;not null" json:"stars" example:"5"`
	MovieName  string  `gorm:"column:movie_name;not null;index" json:"movie_name" example:"Inception"`
	Username   string  `gorm:"column:username;not null" json:"username" example:"johndoe"`
	ReviewText string  `gorm:"column:review_text;not null" json:"review_text" example:"Fantastic movie with great visuals!"`
}

func (Review) TableName() string {
	return "reviews"
}
