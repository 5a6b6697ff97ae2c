// Package fonts resolves role fonts against a font registry.
//
// Each text role (title, body) names a preferred family and a generic
// fallback. Resolution asks a [Registry] whether the preferred family is
// installed and otherwise returns the fallback:
//
//	reg := fonts.NewSystemRegistry(cacheDir, logger)
//	family := fonts.Resolve(reg, fonts.Title) // "Lora" or "serif"
//
// Nothing is cached between calls to [Resolve]; a font installed while the
// process runs is picked up by the next resolution that rescans.
package fonts

import (
	"strings"
)

// Role is the font preference for one text purpose.
type Role struct {
	Name     string // Role name, e.g. "title"
	Primary  string // Preferred family
	Fallback string // Used when Primary is unavailable
}

// Role fonts used by the blog theme.
var (
	Title = Role{Name: "title", Primary: "Lora", Fallback: "serif"}
	Body  = Role{Name: "body", Primary: "Poppins", Fallback: "sans-serif"}
)

// Roles lists the theme roles in display order.
var Roles = []Role{Title, Body}

// Resolution holds the resolved family of every theme role.
type Resolution struct {
	Title string
	Body  string
}

// Registry answers whether a font family can be used for rendering.
type Registry interface {
	Available(family string) bool
}

// RegistryFunc adapts a function to [Registry].
type RegistryFunc func(family string) bool

func (f RegistryFunc) Available(family string) bool { return f(family) }

// Resolve returns role.Primary if r reports it available, role.Fallback otherwise.
func Resolve(r Registry, role Role) string {
	if r != nil && r.Available(role.Primary) {
		return role.Primary
	}
	return role.Fallback
}

// ResolveRoles resolves the title and body roles.
func ResolveRoles(r Registry) Resolution {
	return Resolution{
		Title: Resolve(r, Title),
		Body:  Resolve(r, Body),
	}
}

var genericFamilies = map[string]bool{
	"serif":      true,
	"sans-serif": true,
	"monospace":  true,
	"cursive":    true,
	"fantasy":    true,
	"system-ui":  true,
}

// IsGeneric reports whether family is a CSS generic family name. Generic
// families are always available.
func IsGeneric(family string) bool {
	return genericFamilies[normalize(family)]
}

// CSSFamily formats family as a CSS font-family list. Named families are
// quoted and followed by their role's generic fallback, or sans-serif.
func CSSFamily(family string) string {
	family = strings.TrimSpace(family)
	switch {
	case family == "":
		return "sans-serif"
	case IsGeneric(family):
		return normalize(family)
	}
	fallback := "sans-serif"
	for _, role := range Roles {
		if strings.EqualFold(family, role.Primary) {
			fallback = role.Fallback
			break
		}
	}
	return "'" + strings.ReplaceAll(family, "'", "") + "', " + fallback
}

func normalize(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
