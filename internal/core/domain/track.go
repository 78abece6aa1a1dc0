package domain

// Track is a single recording suggested by the music provider.
type Track struct {
	Title  string
	Artist string
	URL    string
}
