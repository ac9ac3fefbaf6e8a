package models

type Genre struct {
	Name string `gorm:"column:genre_name;primaryKey" json:"genre_name" example:"Sci-Fi"`
}

func (Genre) TableName() string {
	return "genres"
}
