package navigation

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestItemsForHidesAdminFromStudents(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleCounselor} {
		assert.False(t, lo.SomeBy(ItemsFor(role), func(i Item) bool { return i.AdminOnly }), "role=%s", role)
	}
	assert.True(t, lo.SomeBy(ItemsFor(RoleAdmin), func(i Item) bool { return i.Path == "/admin" }))
}

func TestParseRoleDefaultsToStudent(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleStudent, ParseRole(""))
	assert.Equal(t, RoleStudent, ParseRole("root"))
}
