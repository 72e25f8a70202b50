package common

import "github.com/google/uuid"

// CheckOwnership is the single authorization predicate for owner-scoped
// mutations (blogs, posts, comments). The entity name only changes the message
// so the check itself cannot drift between call sites.
func CheckOwnership(ownerID, callerID uuid.UUID, entity string) error {
	if ownerID != callerID {
		return NewValidationError(entity, "this "+entity+" belongs to another user", nil)
	}

	return nil
}
