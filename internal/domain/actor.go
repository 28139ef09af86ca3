package domain

import "fmt"

// ActorType distinguishes the two disjoint identity spaces. Each actor type
// has its own store, signing secret and route group.
type ActorType string

const (
	ActorAdmin ActorType = "admin"
	ActorUser  ActorType = "user"
)

// ParseActorType converts s into an ActorType.
func ParseActorType(s string) (ActorType, error) {
	switch ActorType(s) {
	case ActorAdmin, ActorUser:
		return ActorType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownActorType, s)
	}
}

// Collection returns the collection (or table) name holding identities of
// this actor type.
func (a ActorType) Collection() string {
	switch a {
	case ActorAdmin:
		return "admins"
	case ActorUser:
		return "users"
	default:
		return ""
	}
}

func (a ActorType) String() string {
	return string(a)
}
