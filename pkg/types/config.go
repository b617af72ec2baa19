package types

import "errors"

// Config holds the parameters for opening a store.
type Config struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config validation errors.
var (
	ErrDBPathEmpty = errors.New("db path must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}
