package repository

import "strings"

// ownerArgs converts a scope set into query args
func ownerArgs(ownerIDs []int64) []interface{} {
	args := make([]interface{}, len(ownerIDs))
	for i, id := range ownerIDs {
		args[i] = id
	}
	return args
}

// ownerPlaceholders builds the placeholder list for an owner_id IN clause.
// Scope sets hold one or two ids, but the helper handles any length.
func ownerPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
