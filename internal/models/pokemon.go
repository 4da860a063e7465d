package models

// Pokemon is a single entry from the upstream list: a name and the URL
// of its detail resource. No further fields are fetched.
type Pokemon struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
