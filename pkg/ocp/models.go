package ocp

// User is a sample entity served by Fetcher[User].
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Player is a sample entity served by Fetcher[Player].
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Team   string `json:"team,omitempty"`
	Rating int    `json:"rating,omitempty"`
}
