package domain

import (
	"fmt"
	"strings"
)

// Permission is the access level granted to a user on a shared token list.
type Permission string

const (
	PermissionRead  Permission = "READ"
	PermissionWrite Permission = "WRITE"
	PermissionAdmin Permission = "ADMIN"
)

func ParsePermission(raw string) (Permission, error) {
	permission := Permission(strings.ToUpper(strings.TrimSpace(raw)))
	switch permission {
	case PermissionRead, PermissionWrite, PermissionAdmin:
		return permission, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPermission, raw)
}

func (p Permission) String() string {
	return string(p)
}
