package omdb

// OMDb replies with capitalized keys and stringly-typed numbers; the proxy
// passes them through unchanged, so the tags mirror the upstream contract.

type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type SearchResult struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error,omitempty"`
}

type MovieDetail struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated,omitempty"`
	Released   string `json:"Released,omitempty"`
	Runtime    string `json:"Runtime,omitempty"`
	Genre      string `json:"Genre,omitempty"`
	Director   string `json:"Director,omitempty"`
	Writer     string `json:"Writer,omitempty"`
	Actors     string `json:"Actors,omitempty"`
	Plot       string `json:"Plot,omitempty"`
	Language   string `json:"Language,omitempty"`
	Country    string `json:"Country,omitempty"`
	Awards     string `json:"Awards,omitempty"`
	Poster     string `json:"Poster,omitempty"`
	Metascore  string `json:"Metascore,omitempty"`
	ImdbRating string `json:"imdbRating,omitempty"`
	ImdbVotes  string `json:"imdbVotes,omitempty"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type,omitempty"`
	Response   string `json:"Response"`
	Error      string `json:"Error,omitempty"`
}
