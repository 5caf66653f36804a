package social

import (
	"errors"
	"fmt"
)

// Sentinel errors for the relationship and messaging state machine. These are
// the caller-visible failure kinds; the service layer wraps them with context
// and the API layer maps them to HTTP status codes.
var (
	// ErrSelfRelation is returned when an account targets itself with a
	// relationship operation.
	ErrSelfRelation = errors.New("account cannot relate to itself")

	// ErrAlreadyFriends is returned when a friendship request targets an
	// account that is already a friend.
	ErrAlreadyFriends = errors.New("accounts are already friends")

	// ErrRequestPending is returned when a friendship request from the same
	// direction is already awaiting acceptance.
	ErrRequestPending = errors.New("friendship request already pending")

	// ErrAlreadyDeclared is returned when a one-directional relation
	// (idol, crush, enemy) is declared a second time.
	ErrAlreadyDeclared = errors.New("relation already declared")

	// ErrEnemyBlocked is returned when an idol or crush declaration is
	// attempted between accounts with an enemy edge in either direction.
	ErrEnemyBlocked = errors.New("interaction blocked by enemy relation")

	// ErrNoMessages is returned when a consume operation finds every relevant
	// queue empty.
	ErrNoMessages = errors.New("no messages")

	// ErrSelfMessage is returned when an account sends a direct message to
	// itself.
	ErrSelfMessage = errors.New("account cannot message itself")

	// ErrCommunityNotFound is returned when the named community does not exist.
	ErrCommunityNotFound = errors.New("community not found")

	// ErrCommunityExists is returned when creating a community whose name is
	// already taken.
	ErrCommunityExists = errors.New("community already exists")

	// ErrAlreadyMember is returned when an account joins a community it
	// already belongs to.
	ErrAlreadyMember = errors.New("account is already a member")

	// ErrNotMember is returned when a broadcast sender does not belong to the
	// community.
	ErrNotMember = errors.New("account is not a member")

	// Relation-specific "already declared" errors.

	// ErrIdolExists indicates the target is already in the actor's idol set.
	ErrIdolExists = fmt.Errorf("%w: idol", ErrAlreadyDeclared)

	// ErrCrushExists indicates the target is already in the actor's crush set.
	ErrCrushExists = fmt.Errorf("%w: crush", ErrAlreadyDeclared)

	// ErrEnemyExists indicates the target is already in the actor's enemy set.
	ErrEnemyExists = fmt.Errorf("%w: enemy", ErrAlreadyDeclared)
)
