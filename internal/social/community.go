package social

import (
	"slices"
	"sort"

	"github.com/wbrmagalhaes/jackut-api/internal/domain"
)

// Community is a named group with a fixed owner, an ordered member set and one
// broadcast queue per member. A member's queue exists exactly as long as the
// membership does, so broadcasts are never retroactively delivered to accounts
// that join later.
type Community struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Owner       string                      `json:"owner"`
	Members     []string                    `json:"members"`
	Queues      map[string][]domain.Message `json:"queues"`
}

func newCommunity(name, description, owner string) *Community {
	return &Community{
		Name:        name,
		Description: description,
		Owner:       owner,
		Members:     []string{owner},
		Queues:      map[string][]domain.Message{owner: nil},
	}
}

func (c *Community) isMember(login string) bool {
	return slices.Contains(c.Members, login)
}

func (c *Community) addMember(login string) {
	c.Members = append(c.Members, login)
	c.Queues[login] = nil
}

func (c *Community) removeMember(login string) {
	c.Members = remove(c.Members, login)
	delete(c.Queues, login)
}

// Communities is the set of all communities, keyed by their unique name.
// It also tracks, per account, the communities joined in join order.
type Communities struct {
	byName   map[string]*Community
	memberOf map[string][]string
}

// NewCommunities creates an empty community set.
func NewCommunities() *Communities {
	return &Communities{
		byName:   make(map[string]*Community),
		memberOf: make(map[string][]string),
	}
}

// Create registers a new community owned by owner, who becomes its sole
// member. Returns ErrCommunityExists when the name is already taken.
func (c *Communities) Create(name, description, owner string) error {
	if _, ok := c.byName[name]; ok {
		return ErrCommunityExists
	}

	c.byName[name] = newCommunity(name, description, owner)
	c.memberOf[owner] = append(c.memberOf[owner], name)
	return nil
}

// Join adds account to the named community and allocates its empty broadcast
// queue. Returns ErrCommunityNotFound or ErrAlreadyMember.
func (c *Communities) Join(name, account string) error {
	community, ok := c.byName[name]
	if !ok {
		return ErrCommunityNotFound
	}
	if community.isMember(account) {
		return ErrAlreadyMember
	}

	community.addMember(account)
	c.memberOf[account] = append(c.memberOf[account], name)
	return nil
}

// Broadcast appends the message to every current member's queue, including
// the sender's own. Returns ErrCommunityNotFound or ErrNotMember.
func (c *Communities) Broadcast(name, sender, body string) error {
	community, ok := c.byName[name]
	if !ok {
		return ErrCommunityNotFound
	}
	if !community.isMember(sender) {
		return ErrNotMember
	}

	msg := domain.NewMessage(sender, body)
	for _, member := range community.Members {
		community.Queues[member] = append(community.Queues[member], msg)
	}
	return nil
}

// LeaveOrEvict removes account from the named community, discarding its
// queue. When account owns the community the whole community is deleted;
// ownership is never reassigned. Returns ErrCommunityNotFound.
func (c *Communities) LeaveOrEvict(name, account string) error {
	community, ok := c.byName[name]
	if !ok {
		return ErrCommunityNotFound
	}

	if community.Owner == account {
		for _, member := range community.Members {
			c.memberOf[member] = remove(c.memberOf[member], name)
		}
		delete(c.byName, name)
		return nil
	}

	if community.isMember(account) {
		community.removeMember(account)
		c.memberOf[account] = remove(c.memberOf[account], name)
	}
	return nil
}

// ReadNext removes and returns the oldest message from the first non-empty
// queue among account's communities, scanned in name-ascending order so the
// result is deterministic. An empty queue on one community keeps the scan
// going; ErrNoMessages is returned only once every queue came up empty.
func (c *Communities) ReadNext(account string) (domain.Message, error) {
	names := slices.Clone(c.memberOf[account])
	sort.Strings(names)

	for _, name := range names {
		community, ok := c.byName[name]
		if !ok {
			continue
		}
		queue := community.Queues[account]
		if len(queue) == 0 {
			continue
		}
		msg := queue[0]
		community.Queues[account] = queue[1:]
		return msg, nil
	}
	return domain.Message{}, ErrNoMessages
}

// Description returns the named community's description.
func (c *Communities) Description(name string) (string, error) {
	community, ok := c.byName[name]
	if !ok {
		return "", ErrCommunityNotFound
	}
	return community.Description, nil
}

// Owner returns the named community's owner.
func (c *Communities) Owner(name string) (string, error) {
	community, ok := c.byName[name]
	if !ok {
		return "", ErrCommunityNotFound
	}
	return community.Owner, nil
}

// Members returns the named community's member list in join order.
func (c *Communities) Members(name string) ([]string, error) {
	community, ok := c.byName[name]
	if !ok {
		return nil, ErrCommunityNotFound
	}
	return slices.Clone(community.Members), nil
}

// CommunitiesOf returns the names of the communities account belongs to, in
// join order.
func (c *Communities) CommunitiesOf(account string) []string {
	return slices.Clone(c.memberOf[account])
}

// RemoveAccount cascades an account removal through every community: the
// communities it owns are deleted wholesale, the rest simply lose it as a
// member. Idempotent.
func (c *Communities) RemoveAccount(account string) {
	for _, name := range slices.Clone(c.memberOf[account]) {
		// Errors are impossible here: every name came from the member index.
		_ = c.LeaveOrEvict(name, account)
	}
	delete(c.memberOf, account)
}

// CommunitySnapshot is the serializable state of the community set.
type CommunitySnapshot struct {
	Communities map[string]*Community `json:"communities"`
	MemberOf    map[string][]string   `json:"member_of"`
}

// Snapshot returns the full community state, sharing no memory with the set.
func (c *Communities) Snapshot() *CommunitySnapshot {
	snap := &CommunitySnapshot{
		Communities: make(map[string]*Community, len(c.byName)),
		MemberOf:    make(map[string][]string, len(c.memberOf)),
	}
	for name, community := range c.byName {
		clone := &Community{
			Name:        community.Name,
			Description: community.Description,
			Owner:       community.Owner,
			Members:     slices.Clone(community.Members),
			Queues:      make(map[string][]domain.Message, len(community.Queues)),
		}
		for member, queue := range community.Queues {
			clone.Queues[member] = slices.Clone(queue)
		}
		snap.Communities[name] = clone
	}
	for account, names := range c.memberOf {
		snap.MemberOf[account] = slices.Clone(names)
	}
	return snap
}

// Restore replaces the community state with the given snapshot.
func (c *Communities) Restore(snap *CommunitySnapshot) {
	c.byName = make(map[string]*Community, len(snap.Communities))
	c.memberOf = make(map[string][]string, len(snap.MemberOf))
	for name, community := range snap.Communities {
		clone := &Community{
			Name:        community.Name,
			Description: community.Description,
			Owner:       community.Owner,
			Members:     slices.Clone(community.Members),
			Queues:      make(map[string][]domain.Message, len(community.Queues)),
		}
		for member, queue := range community.Queues {
			clone.Queues[member] = slices.Clone(queue)
		}
		c.byName[name] = clone
	}
	for account, names := range snap.MemberOf {
		c.memberOf[account] = slices.Clone(names)
	}
}

// Reset discards every community.
func (c *Communities) Reset() {
	c.byName = make(map[string]*Community)
	c.memberOf = make(map[string][]string)
}
