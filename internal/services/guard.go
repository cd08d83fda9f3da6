package services

import (
	"github.com/dave9314/online-market/internal/models"
)

// Authorization predicates. They only answer yes or no; callers decide
// whether a false means 401 (no caller) or 403 (caller without rights).

func IsAuthenticated(caller *models.Caller) bool {
	return caller != nil && caller.ID > 0
}

// CanMutateItem reports whether caller may edit or delete the item:
// the item's owner or any admin.
func CanMutateItem(caller *models.Caller, item models.Item) bool {
	if !IsAuthenticated(caller) {
		return false
	}
	return caller.ID == item.OwnerID || caller.Role == models.RoleAdmin
}

// CanMutateUser reports whether caller may delete or change the role of
// target. Admins only, and never their own account through this path.
func CanMutateUser(caller *models.Caller, target models.User) bool {
	if !IsAuthenticated(caller) {
		return false
	}
	return caller.Role == models.RoleAdmin && caller.ID != target.ID
}
