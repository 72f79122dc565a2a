package domain

import "time"

func guardSet(set bool, field string) error {
	if !set {
		return invalidArgument(field, "must not be null")
	}
	return nil
}

func guardNotEmpty(s string, field string) (string, error) {
	if s == "" {
		return "", invalidArgument(field, "must not be empty")
	}
	return s, nil
}

func guardNotNil[T any](v *T, field string) (*T, error) {
	if v == nil {
		return nil, invalidArgument(field, "must not be null")
	}
	return v, nil
}

func guardNotNilSlice[T any](v []T, field string) ([]T, error) {
	if v == nil {
		return nil, invalidArgument(field, "must not be null")
	}
	return v, nil
}

func guardNotNegative(d time.Duration, field string) (time.Duration, error) {
	if d < 0 {
		return 0, invalidArgument(field, "must not be negative")
	}
	return d, nil
}

func guardNotNegativeCount(n int64, field string) (int64, error) {
	if n < 0 {
		return 0, invalidArgument(field, "must not be negative")
	}
	return n, nil
}
