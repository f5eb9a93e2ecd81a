package shared

import "fmt"

// BusyLockKey builds the redis key guarding in-flight submissions of one
// resource page within a session.
func BusyLockKey(owner, resource string) string {
	return fmt.Sprintf("console:busy:%s:%s", owner, resource)
}

// PageStateKey builds the redis key holding the page state of one resource
// within a session.
func PageStateKey(owner, resource string) string {
	return fmt.Sprintf("console:page:%s:%s", owner, resource)
}
