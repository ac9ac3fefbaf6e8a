package models

// Movie is looked up by name; the name is indexed but not unique and
// GenreName is not checked against the genres table.
type Movie struct {
	Name      string `gorm:"column:movie_name;not null;index" json:"movie_name" example:"Inception"`
	Year      int    `gorm:"column:movie_year;not null" json:"movie_year" example:"2010"`
	GenreName string `gorm:"column:genre_name;not null" json:"genre_name" example:"Sci-Fi"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieSearchResult is one page of a name search.
type MovieSearchResult struct {
	CurrentPage  int     `json:"currentPage" example:"2"`
	TotalPages   int     `json:"totalPages" example:"3"`
	TotalResults int64   `json:"totalResults" example:"27"`
	Movies       []Movie `json:"movies"`
}
