package storage

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

// CurrentVersion is the asset envelope version written by Save.
const CurrentVersion = 1

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)

// ValidatingSpec is any payload that can check itself after loading.
type ValidatingSpec interface {
	Validate() error
}

// Asset is the on-disk envelope around a spec: world rooms and save games
// are both stored this way, one file per id.
type Asset[T ValidatingSpec] struct {
	Version    uint   `json:"version"`
	Identifier string `json:"id"`
	Spec       T      `json:"spec"`
}

func (a *Asset[T]) Id() string {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	}

	if !identifierPattern.MatchString(a.Identifier) {
		el.Add(fmt.Errorf("id must be alphanumeric"))
	}

	if isNil(a.Spec) {
		el.Add(fmt.Errorf("spec must be set"))
	} else {
		el.Add(a.Spec.Validate())
	}

	return el.Err()
}

// ValidIdentifier reports whether id can name an asset file.
func ValidIdentifier(id string) bool {
	return id != "" && identifierPattern.MatchString(id)
}
