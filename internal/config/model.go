package config

// Model holds the settings read from one configuration file.
type Model struct {
	// Source is the path the model was loaded from.
	Source string

	Input     *string
	LogLevel  *string
	LogFormat *string
	Workers   *int
}
