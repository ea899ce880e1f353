package storage

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxNameLength  = 253
	maxLabelLength = 63
)

// labelPattern matches a single LDH label: letters, digits and hyphens,
// not starting or ending with a hyphen.
var labelPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// ValidateName checks that a domain name is well formed before it is stored.
func ValidateName(name string) error {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}

	for _, label := range strings.Split(name, ".") {
		if label == "" {
			return fmt.Errorf("%w: empty label in %q", ErrInvalidName, name)
		}

		if len(label) > maxLabelLength {
			return fmt.Errorf("%w: label %q exceeds %d characters", ErrInvalidName, label, maxLabelLength)
		}

		if !labelPattern.MatchString(label) {
			return fmt.Errorf("%w: label %q contains invalid characters", ErrInvalidName, label)
		}
	}

	return nil
}

// ValidateRecord checks a record before it is written to a store.
func ValidateRecord(record Record) error {
	if err := ValidateName(record.Name); err != nil {
		return err
	}

	if record.Type == 0 {
		return fmt.Errorf("%w: record type must not be zero", ErrInvalidRecord)
	}

	if record.Class == 0 {
		return fmt.Errorf("%w: record class must not be zero", ErrInvalidRecord)
	}

	if len(record.Data) > 0xFFFF {
		return fmt.Errorf("%w: data exceeds maximum record length", ErrInvalidRecord)
	}

	return nil
}
