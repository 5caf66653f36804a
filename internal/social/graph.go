package social

import "slices"

// RelationState holds the relation sets owned by a single account. Slices keep
// declaration order, which is the order lists are rendered in; membership is
// checked before every insert so each entry appears at most once.
type RelationState struct {
	Friends []string `json:"friends"`
	Pending []string `json:"pending"`
	Idols   []string `json:"idols"`
	Crushes []string `json:"crushes"`
	Enemies []string `json:"enemies"`
}

// Graph is the relationship graph between accounts. It owns every transition
// rule for friendship, admiration, romantic interest and enmity, and performs
// no side effects beyond mutating its own sets: notifications triggered by a
// transition (such as a mutual crush) are the interaction service's concern.
//
// Account existence is not checked here; the service layer validates both
// parties against the account directory before calling in.
type Graph struct {
	relations map[string]*RelationState
}

// NewGraph creates an empty relationship graph.
func NewGraph() *Graph {
	return &Graph{relations: make(map[string]*RelationState)}
}

// state returns the relation state for login, allocating it on first use.
func (g *Graph) state(login string) *RelationState {
	rs, ok := g.relations[login]
	if !ok {
		rs = &RelationState{}
		g.relations[login] = rs
	}
	return rs
}

// RequestFriendship records a friendship request from requester to target, or
// completes the friendship when the target has already requested it.
//
// The transition rules:
//   - requester == target fails with ErrSelfRelation
//   - target already a friend fails with ErrAlreadyFriends
//   - a request from the same direction still pending fails with ErrRequestPending
//   - a reciprocal request pending on the requester's side is interpreted as
//     acceptance: both friend sets gain each other and the pending entry is
//     cleared, making the edge symmetric in one atomic step
//   - otherwise the request lands in the target's pending inbox
func (g *Graph) RequestFriendship(requester, target string) error {
	if requester == target {
		return ErrSelfRelation
	}

	reqState := g.state(requester)
	tgtState := g.state(target)

	if slices.Contains(reqState.Friends, target) {
		return ErrAlreadyFriends
	}
	if slices.Contains(tgtState.Pending, requester) {
		return ErrRequestPending
	}

	if slices.Contains(reqState.Pending, target) {
		// The target asked first; this call accepts.
		reqState.Pending = remove(reqState.Pending, target)
		reqState.Friends = append(reqState.Friends, target)
		tgtState.Friends = append(tgtState.Friends, requester)
		return nil
	}

	tgtState.Pending = append(tgtState.Pending, requester)
	return nil
}

// DeclareIdol records that actor admires target. Admiration is
// one-directional and never made mutual by the graph.
func (g *Graph) DeclareIdol(actor, target string) error {
	if actor == target {
		return ErrSelfRelation
	}
	if g.Blocked(actor, target) {
		return ErrEnemyBlocked
	}

	state := g.state(actor)
	if slices.Contains(state.Idols, target) {
		return ErrIdolExists
	}
	state.Idols = append(state.Idols, target)
	return nil
}

// DeclareCrush records that actor is romantically interested in target.
// The returned flag reports whether the interest is mutual after insertion;
// acting on it (match notifications) is left to the caller.
func (g *Graph) DeclareCrush(actor, target string) (bool, error) {
	if actor == target {
		return false, ErrSelfRelation
	}
	if g.Blocked(actor, target) {
		return false, ErrEnemyBlocked
	}

	state := g.state(actor)
	if slices.Contains(state.Crushes, target) {
		return false, ErrCrushExists
	}
	state.Crushes = append(state.Crushes, target)

	return slices.Contains(g.state(target).Crushes, actor), nil
}

// DeclareEnemy records that actor declared target an adversary. The
// declaration is unilateral and is not blocked by any existing relation.
func (g *Graph) DeclareEnemy(actor, target string) error {
	if actor == target {
		return ErrSelfRelation
	}

	state := g.state(actor)
	if slices.Contains(state.Enemies, target) {
		return ErrEnemyExists
	}
	state.Enemies = append(state.Enemies, target)
	return nil
}

// Blocked reports whether an enemy edge exists between a and b in either
// direction. Idol and crush declarations are rejected while it holds.
func (g *Graph) Blocked(a, b string) bool {
	return g.IsEnemy(a, b) || g.IsEnemy(b, a)
}

// IsFriend reports whether other is in owner's friend set.
func (g *Graph) IsFriend(owner, other string) bool {
	rs, ok := g.relations[owner]
	return ok && slices.Contains(rs.Friends, other)
}

// IsIdol reports whether owner admires other.
func (g *Graph) IsIdol(owner, other string) bool {
	rs, ok := g.relations[owner]
	return ok && slices.Contains(rs.Idols, other)
}

// IsCrush reports whether owner has declared other a crush.
func (g *Graph) IsCrush(owner, other string) bool {
	rs, ok := g.relations[owner]
	return ok && slices.Contains(rs.Crushes, other)
}

// IsEnemy reports whether owner has declared other an enemy.
func (g *Graph) IsEnemy(owner, other string) bool {
	rs, ok := g.relations[owner]
	return ok && slices.Contains(rs.Enemies, other)
}

// HasPendingRequest reports whether a request from requester is awaiting
// owner's acceptance.
func (g *Graph) HasPendingRequest(owner, requester string) bool {
	rs, ok := g.relations[owner]
	return ok && slices.Contains(rs.Pending, requester)
}

// Friends returns owner's friend list in acceptance order.
func (g *Graph) Friends(owner string) []string {
	rs, ok := g.relations[owner]
	if !ok {
		return nil
	}
	return slices.Clone(rs.Friends)
}

// RemoveAccount deletes login's own relation state and strips login from
// every other account's sets. Idempotent; scans each account once.
func (g *Graph) RemoveAccount(login string) {
	delete(g.relations, login)
	for _, rs := range g.relations {
		rs.Friends = remove(rs.Friends, login)
		rs.Pending = remove(rs.Pending, login)
		rs.Idols = remove(rs.Idols, login)
		rs.Crushes = remove(rs.Crushes, login)
		rs.Enemies = remove(rs.Enemies, login)
	}
}

// Snapshot returns the full relation state keyed by account login.
// The result shares no memory with the graph.
func (g *Graph) Snapshot() map[string]*RelationState {
	out := make(map[string]*RelationState, len(g.relations))
	for login, rs := range g.relations {
		out[login] = &RelationState{
			Friends: slices.Clone(rs.Friends),
			Pending: slices.Clone(rs.Pending),
			Idols:   slices.Clone(rs.Idols),
			Crushes: slices.Clone(rs.Crushes),
			Enemies: slices.Clone(rs.Enemies),
		}
	}
	return out
}

// Restore replaces the graph's state with the given snapshot.
func (g *Graph) Restore(relations map[string]*RelationState) {
	g.relations = make(map[string]*RelationState, len(relations))
	for login, rs := range relations {
		g.relations[login] = &RelationState{
			Friends: slices.Clone(rs.Friends),
			Pending: slices.Clone(rs.Pending),
			Idols:   slices.Clone(rs.Idols),
			Crushes: slices.Clone(rs.Crushes),
			Enemies: slices.Clone(rs.Enemies),
		}
	}
}

// Reset discards all relation state.
func (g *Graph) Reset() {
	g.relations = make(map[string]*RelationState)
}

// remove returns s without any occurrence of v, preserving order.
func remove(s []string, v string) []string {
	return slices.DeleteFunc(s, func(e string) bool { return e == v })
}
