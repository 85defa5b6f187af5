package entity

// Member is a roster entry expected to report every day.
type Member struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}
