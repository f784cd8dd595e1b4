package models

// All lists every model the migrator manages, in dependency order.
func All() []interface{} {
	return []interface{}{&User{}, &Post{}}
}
