package auth

// Decision is the outcome of a policy check. Reason is only meaningful when
// Allowed is false; it is surfaced verbatim to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanReadCollection reports whether the identity may list users or recipes.
// Any verified identity qualifies, regardless of role.
func CanReadCollection(id Identity) bool {
	return id.UserID != ""
}

// CanMutateOwned decides whether the identity may edit or delete a resource
// owned by ownerID. Admins are unscoped; normal users only touch their own.
func CanMutateOwned(id Identity, ownerID string) Decision {
	if id.Role.IsAdmin() {
		return allow
	}
	if id.UserID == ownerID {
		return allow
	}
	return deny("Normal users can only modify their own recipes")
}

// CanDeleteUser decides whether the identity may delete the user targetID.
// Only admins may delete accounts, and never their own through this path.
func CanDeleteUser(id Identity, targetID string) Decision {
	if !id.Role.IsAdmin() {
		return deny("Forbidden access for normal users")
	}
	if id.UserID == targetID {
		return deny("You can't delete your own account")
	}
	return allow
}
