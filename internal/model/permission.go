package model

import (
	"context"
	"sort"
	"strings"
)

// PermissionStore defines read access to per-user application grants.
type PermissionStore interface {
	ListByEmail(ctx context.Context, email string) ([]Permission, error)
}

// Permission is an application link granted to a user.
type Permission struct {
	AppName string `json:"app_name"`
	AppLink string `json:"app_link"`
}

// placeholderLinks are values operators put in app_link instead of leaving it empty.
var placeholderLinks = map[string]struct{}{
	"n/a":  {},
	"none": {},
	"null": {},
}

// IsListable reports whether the permission carries a usable link.
func (p Permission) IsListable() bool {
	if p.AppLink == "" {
		return false
	}
	if _, ok := placeholderLinks[strings.ToLower(p.AppLink)]; ok {
		return false
	}
	return strings.HasPrefix(p.AppLink, "http")
}

// ListablePermissions returns the listable permissions ordered by AppName.
// The result is never nil.
func ListablePermissions(perms []Permission) []Permission {
	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		if p.IsListable() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppName < out[j].AppName
	})
	return out
}
