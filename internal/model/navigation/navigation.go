package navigation

import "github.com/samber/lo"

// Role is the kind of viewer using the app.
type Role string

const (
	RoleStudent   Role = "student"
	RoleCounselor Role = "counselor"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a raw value to a Role, defaulting to student.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleCounselor:
		return RoleCounselor
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleStudent
	}
}

// Item is an entry of the sidebar.
type Item struct {
	Path      string `json:"path"`
	Label     string `json:"label"`
	AdminOnly bool   `json:"adminOnly,omitempty"`
}

func items() []Item {
	return []Item{
		{Path: "/dashboard", Label: "Dashboard"},
		{Path: "/chat", Label: "AI Support"},
		{Path: "/booking", Label: "Book Session"},
		{Path: "/resources", Label: "Resources"},
		{Path: "/forum", Label: "Peer Forum"},
		{Path: "/admin", Label: "Admin", AdminOnly: true},
		{Path: "/settings", Label: "Settings"},
	}
}

// ItemsFor returns the sidebar entries visible to role. Visibility only; it
// does not authorize access to the underlying routes.
func ItemsFor(role Role) []Item {
	return lo.Filter(items(), func(item Item, _ int) bool {
		return !item.AdminOnly || role == RoleAdmin
	})
}
