package catalog

import "cineflix/models"

// HomeCategoryConfigs is the curated shelf list for the home page.
func HomeCategoryConfigs() []models.CategoryConfig {
	return []models.CategoryConfig{
		{Title: "Trending Movies & TV Shows", Endpoint: "trending/all/week", MediaType: models.MediaTypeAll},
		{Title: "Popular TV Series", Endpoint: "tv/popular", MediaType: models.MediaTypeTV},
		{Title: "Upcoming Releases", Endpoint: "movie/upcoming", MediaType: models.MediaTypeMovie},
		{Title: "Top 10 Hollywood Blockbusters", Endpoint: "discover/movie", Params: map[string]string{"with_origin_country": "US", "sort_by": "revenue.desc"}, MediaType: models.MediaTypeMovie, Limit: 10},
		{Title: "Hollywood Movies", Endpoint: "discover/movie", Params: map[string]string{"with_origin_country": "US", "sort_by": "popularity.desc"}, MediaType: models.MediaTypeMovie},
		{Title: "Bollywood Movies", Endpoint: "discover/movie", Params: map[string]string{"with_origin_country": "IN", "sort_by": "popularity.desc"}, MediaType: models.MediaTypeMovie},
		{Title: "South Indian Hits", Endpoint: "discover/movie", Params: map[string]string{"with_origin_country": "IN", "with_original_language": "ta|te|ml|kn", "sort_by": "popularity.desc"}, MediaType: models.MediaTypeMovie},
		{Title: "Top Rated Anime", Endpoint: "discover/tv", Params: map[string]string{"with_genres": "16", "sort_by": "vote_average.desc", "vote_count.gte": "100"}, MediaType: models.MediaTypeTV},
		{Title: "Action Anime Battles", Endpoint: "discover/tv", Params: map[string]string{"with_genres": "16,10759", "sort_by": "popularity.desc"}, MediaType: models.MediaTypeTV},
		{Title: "Action Movies", Endpoint: "discover/movie", Params: map[string]string{"with_genres": "28"}, MediaType: models.MediaTypeMovie},
		{Title: "Superhero Movies (Marvel & DC)", Endpoint: "discover/movie", Params: map[string]string{"with_keywords": "9715", "sort_by": "popularity.desc"}, MediaType: models.MediaTypeMovie},
		{Title: "Comedy Movies", Endpoint: "discover/movie", Params: map[string]string{"with_genres": "35"}, MediaType: models.MediaTypeMovie},
		{Title: "Horror Movies", Endpoint: "discover/movie", Params: map[string]string{"with_genres": "27"}, MediaType: models.MediaTypeMovie},
		{Title: "Korean Drama Series", Endpoint: "discover/tv", Params: map[string]string{"with_origin_country": "KR", "sort_by": "popularity.desc"}, MediaType: models.MediaTypeTV},
	}
}
