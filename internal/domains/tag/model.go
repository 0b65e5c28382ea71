package tag

// Tag is a named category with an icon, attached to zero or more posts.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
