package store

import "github.com/zx06/pw/internal/errors"

// IsNotFound reports whether err is a lookup miss (PW_NOT_FOUND).
func IsNotFound(err error) bool {
	return errors.HasCode(err, errors.CodeNotFound)
}

// IsDuplicateName reports whether err is a taken credential name (PW_DUPLICATE_NAME).
func IsDuplicateName(err error) bool {
	return errors.HasCode(err, errors.CodeDuplicateName)
}
