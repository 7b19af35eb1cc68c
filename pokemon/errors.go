package pokemon

import "fmt"

// InvalidDexIDError is returned for a numeric token past the end of the registry.
// ID is the 1-based number the user typed.
type InvalidDexIDError struct {
	ID int
}

func (e *InvalidDexIDError) Error() string {
	return fmt.Sprintf("%d is not a valid pokedex id", e.ID)
}

// AssetNotFoundError is returned when no sprite generation has the path.
type AssetNotFoundError struct {
	Path string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("pokemon not found (no sprite at %s)", e.Path)
}

type MalformedImageError struct {
	Path string
	Err  error
}

func (e *MalformedImageError) Error() string {
	return fmt.Sprintf("couldn't decode sprite %s: %s", e.Path, e.Err)
}

func (e *MalformedImageError) Unwrap() error {
	return e.Err
}

// MalformedEnvError is never fatal, the default value is used instead.
type MalformedEnvError struct {
	Var   string
	Value string
	Err   error
}

func (e *MalformedEnvError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Var, e.Err)
}

func (e *MalformedEnvError) Unwrap() error {
	return e.Err
}
