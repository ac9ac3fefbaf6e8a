package handlers

type GenreRequest struct {
	GenreName string `json:"genre_name" example:"Sci-Fi"`
}

type MovieRequest struct {
	MovieName string `json:"movie_name" example:"Inception"`
	MovieYear int    `json:"movie_year" example:"2010"`
	GenreName string `json:"genre_name" example:"Sci-Fi"`
}

// ReviewRequest treats a zero Stars value as missing.
type ReviewRequest struct {
	Username   string  `json:"username" example:"johndoe"`
	MovieName  string  `json:"movie_name" example:"Inception"`
	Stars      float64 `json:"stars" example:"5"`
	ReviewText string  `json:"review_text" example:"Fantastic movie with great visuals!"`
}

type FavoriteRequest struct {
	Username  string `json:"username" example:"john_doe"`
	MovieName string `json:"movie_name" example:"Inception"`
}

type LoginRequest struct {
	Username string `json:"username" example:"johndoe"`
	Password string `json:"password" example:"securepassword123"`
}

type LoginResponse struct {
	Username string `json:"username" example:"johndoe"`
}

type RegisterRequest struct {
	Name      string `json:"name" example:"John Doe"`
	Username  string `json:"username" example:"johndoe"`
	Password  string `json:"password" example:"securepassword123"`
	BirthYear int    `json:"birth_year" example:"1990"`
}
