// Package mongodb provides MongoDB implementations of the identity, course
// and purchase stores defined in internal/store.
//
// Documents keep the layout of the existing collections (admins, users,
// courses, purchases): camelCase keys with the entity id in _id. Ids are
// stored as canonical UUID strings.
package mongodb
