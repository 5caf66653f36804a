// Package service provides the application-level orchestration of accounts,
// relationships, messaging and communities.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wbrmagalhaes/jackut-api/internal/domain"
	"github.com/wbrmagalhaes/jackut-api/internal/service/auth"
	"github.com/wbrmagalhaes/jackut-api/internal/social"
	"github.com/wbrmagalhaes/jackut-api/internal/store"
)

// matchNoteFormat is the body of the system-authored note both parties receive
// when a crush turns out to be mutual. The text is wire-compatible with the
// original Jackut clients.
const matchNoteFormat = "%s é seu paquera - Recado do Jackut."

// InteractionService orchestrates the account directory, relationship graph,
// mailboxes and communities to implement the use cases of the network. Every
// method is one atomic unit of work: multi-step transitions are never
// partially visible to concurrent callers.
type InteractionService interface {
	// CreateAccount registers a new account.
	// Returns store.ErrLoginExists if the login is taken and domain validation
	// errors for blank logins or passwords.
	CreateAccount(ctx context.Context, login, password, name string) (*domain.Account, error)

	// OpenSession checks the credentials and issues a session token.
	// Returns auth.ErrInvalidCredentials when the pair does not match.
	OpenSession(ctx context.Context, login, password string) (string, error)

	// EditProfile sets a profile attribute for the acting account.
	// The attribute "name" updates the display name.
	EditProfile(ctx context.Context, token, attribute, value string) error

	// Attribute reads a profile attribute of any registered account.
	// The attribute "name" reads the display name; unset attributes fail with
	// domain.ErrAttributeNotSet.
	Attribute(ctx context.Context, login, attribute string) (string, error)

	// AddFriend sends a friendship request from the acting account, or
	// completes the friendship when the target had already requested it.
	AddFriend(ctx context.Context, token, target string) error

	// IsFriend reports whether other is in login's friend set.
	IsFriend(ctx context.Context, login, other string) (bool, error)

	// Friends returns login's friend list in acceptance order.
	Friends(ctx context.Context, login string) ([]string, error)

	// SendMessage delivers a direct message from the acting account.
	SendMessage(ctx context.Context, token, recipient, body string) error

	// ReadMessage consumes and renders the acting account's oldest direct
	// message. Returns social.ErrNoMessages when the mailbox is empty.
	ReadMessage(ctx context.Context, token string) (string, error)

	// AddIdol declares admiration for target.
	AddIdol(ctx context.Context, token, target string) error

	// IsIdol reports whether login admires other.
	IsIdol(ctx context.Context, login, other string) (bool, error)

	// AddCrush declares romantic interest in target. When the interest turns
	// out to be mutual both parties receive a system-authored match note
	// before the call returns.
	AddCrush(ctx context.Context, token, target string) error

	// IsCrush reports whether login has declared other a crush.
	IsCrush(ctx context.Context, login, other string) (bool, error)

	// AddEnemy declares target an adversary. Unilateral; from then on idol and
	// crush declarations between the pair fail in both directions.
	AddEnemy(ctx context.Context, token, target string) error

	// IsEnemy reports whether login has declared other an enemy.
	IsEnemy(ctx context.Context, login, other string) (bool, error)

	// CreateCommunity registers a new community owned by the acting account.
	CreateCommunity(ctx context.Context, token, name, description string) error

	// JoinCommunity adds the acting account to the named community.
	JoinCommunity(ctx context.Context, token, name string) error

	// SendCommunityMessage broadcasts to every current member of the
	// community, including the sender.
	SendCommunityMessage(ctx context.Context, token, name, body string) error

	// ReadCommunityMessage consumes and renders the acting account's oldest
	// community message, scanning its communities in name order.
	ReadCommunityMessage(ctx context.Context, token string) (string, error)

	// CommunityInfo returns the named community's description, owner and
	// member list as one consistent view.
	CommunityInfo(ctx context.Context, name string) (*CommunityInfo, error)

	// CommunityDescription returns the named community's description.
	CommunityDescription(ctx context.Context, name string) (string, error)

	// CommunityOwner returns the named community's owner.
	CommunityOwner(ctx context.Context, name string) (string, error)

	// CommunityMembers returns the named community's members in join order.
	CommunityMembers(ctx context.Context, name string) ([]string, error)

	// AccountCommunities returns the communities login belongs to, in join order.
	AccountCommunities(ctx context.Context, login string) ([]string, error)

	// RemoveAccount removes the acting account and cascades: communities it
	// owns are deleted, memberships evicted, its authored messages purged from
	// every mailbox, and all relation-set references stripped.
	RemoveAccount(ctx context.Context, token string) error

	// Reset clears the entire data set.
	Reset(ctx context.Context) error

	// LoadState restores the data set from the most recent snapshot, if any.
	LoadState(ctx context.Context) error
}

// interactionServiceImpl implements the InteractionService interface. A single
// coarse RWMutex scopes each orchestration call; none of the operations block
// on I/O other than the snapshot hook, so hold times are short.
type interactionServiceImpl struct {
	mu sync.RWMutex

	directory   store.AccountDirectory
	graph       *social.Graph
	mailboxes   *social.Mailboxes
	communities *social.Communities

	sessions    auth.SessionService
	verifier    auth.PasswordVerifier
	snapshotter store.Snapshotter
	logger      *slog.Logger
}

// NewInteractionService creates a new InteractionService.
// It returns an error if any of the required dependencies are nil.
func NewInteractionService(
	directory store.AccountDirectory,
	sessions auth.SessionService,
	verifier auth.PasswordVerifier,
	snapshotter store.Snapshotter,
	logger *slog.Logger,
) (InteractionService, error) {
	if directory == nil {
		return nil, domain.NewValidationError("directory", "cannot be nil", domain.ErrValidation)
	}
	if sessions == nil {
		return nil, domain.NewValidationError("sessions", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if snapshotter == nil {
		snapshotter = store.NopSnapshotter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &interactionServiceImpl{
		directory:   directory,
		graph:       social.NewGraph(),
		mailboxes:   social.NewMailboxes(),
		communities: social.NewCommunities(),
		sessions:    sessions,
		verifier:    verifier,
		snapshotter: snapshotter,
		logger:      logger.With("component", "interaction_service"),
	}, nil
}

// resolve maps a session token to the acting account's login. Tokens survive
// account removal (they are stateless), so directory membership is re-checked
// on every call; a removed account's outstanding tokens die here.
func (s *interactionServiceImpl) resolve(ctx context.Context, token string) (string, error) {
	claims, err := s.sessions.ValidateToken(ctx, token)
	if err != nil {
		return "", err
	}

	exists, err := s.directory.Exists(ctx, claims.Login)
	if err != nil {
		return "", fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return "", store.ErrAccountNotFound
	}

	return claims.Login, nil
}

// requireAccount fails with store.ErrAccountNotFound when login is not registered.
func (s *interactionServiceImpl) requireAccount(ctx context.Context, login string) error {
	exists, err := s.directory.Exists(ctx, login)
	if err != nil {
		return fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return store.ErrAccountNotFound
	}
	return nil
}

// persist hands the full in-memory state to the snapshot hook. The mutation
// has already committed, so a hook failure is logged and never propagated.
func (s *interactionServiceImpl) persist(ctx context.Context) {
	accounts, err := s.directory.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to snapshot account directory", "error", err)
		return
	}

	snap := &store.Snapshot{
		Accounts:    accounts,
		Relations:   s.graph.Snapshot(),
		Mailboxes:   s.mailboxes.Snapshot(),
		Communities: s.communities.Snapshot(),
	}

	if err := s.snapshotter.Save(ctx, snap); err != nil {
		s.logger.Error("failed to persist snapshot", "error", err)
	}
}

// CreateAccount implements InteractionService.CreateAccount.
func (s *interactionServiceImpl) CreateAccount(ctx context.Context, login, password, name string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := domain.NewAccount(login, password, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.directory.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrLoginExists) {
			s.logger.Debug("attempted to register an existing login", "login", login)
		} else {
			s.logger.Error("failed to save account", "error", err, "login", login)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created", "login", login)
	s.persist(ctx)
	return account, nil
}

// OpenSession implements InteractionService.OpenSession.
func (s *interactionServiceImpl) OpenSession(ctx context.Context, login, password string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.directory.Get(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			// Same failure as a bad password; don't leak which part was wrong.
			return "", auth.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to retrieve account: %w", err)
	}

	if err := s.verifier.Compare(account.HashedPassword, password); err != nil {
		s.logger.Debug("password mismatch on session open", "login", login)
		return "", auth.ErrInvalidCredentials
	}

	token, err := s.sessions.GenerateToken(ctx, login)
	if err != nil {
		return "", fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info("session opened", "login", login)
	return token, nil
}

// EditProfile implements InteractionService.EditProfile.
func (s *interactionServiceImpl) EditProfile(ctx context.Context, token, attribute, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}

	account, err := s.directory.Get(ctx, login)
	if err != nil {
		return fmt.Errorf("failed to retrieve account for profile edit: %w", err)
	}

	if attribute == "name" {
		account.Name = value
	} else {
		account.SetAttribute(attribute, value)
	}

	if err := s.directory.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.persist(ctx)
	return nil
}

// Attribute implements InteractionService.Attribute.
func (s *interactionServiceImpl) Attribute(ctx context.Context, login, attribute string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.directory.Get(ctx, login)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve account: %w", err)
	}

	if attribute == "name" {
		return account.Name, nil
	}

	value, err := account.Attribute(attribute)
	if err != nil {
		return "", fmt.Errorf("failed to read attribute %q: %w", attribute, err)
	}
	return value, nil
}

// AddFriend implements InteractionService.AddFriend.
func (s *interactionServiceImpl) AddFriend(ctx context.Context, token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}
	if err := s.requireAccount(ctx, target); err != nil {
		return err
	}

	if err := s.graph.RequestFriendship(actor, target); err != nil {
		s.logger.Debug("friendship request rejected", "actor", actor, "target", target, "error", err)
		return fmt.Errorf("failed to add friend: %w", err)
	}

	s.logger.Info("friendship request processed", "actor", actor, "target", target,
		"friends", s.graph.IsFriend(actor, target))
	s.persist(ctx)
	return nil
}

// IsFriend implements InteractionService.IsFriend.
func (s *interactionServiceImpl) IsFriend(ctx context.Context, login, other string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAccount(ctx, login); err != nil {
		return false, err
	}
	return s.graph.IsFriend(login, other), nil
}

// Friends implements InteractionService.Friends.
func (s *interactionServiceImpl) Friends(ctx context.Context, login string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAccount(ctx, login); err != nil {
		return nil, err
	}
	return s.graph.Friends(login), nil
}

// SendMessage implements InteractionService.SendMessage.
func (s *interactionServiceImpl) SendMessage(ctx context.Context, token, recipient, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}
	if sender == recipient {
		return social.ErrSelfMessage
	}
	if err := s.requireAccount(ctx, recipient); err != nil {
		return err
	}

	s.mailboxes.Deliver(recipient, domain.NewMessage(sender, body))
	s.logger.Info("direct message delivered", "sender", sender, "recipient", recipient)
	s.persist(ctx)
	return nil
}

// ReadMessage implements InteractionService.ReadMessage.
func (s *interactionServiceImpl) ReadMessage(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.resolve(ctx, token)
	if err != nil {
		return "", err
	}

	msg, err := s.mailboxes.Consume(owner)
	if err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}

	s.persist(ctx)
	return msg.Render(), nil
}

// AddIdol implements InteractionService.AddIdol.
func (s *interactionServiceImpl) AddIdol(ctx context.Context, token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}
	if err := s.requireAccount(ctx, target); err != nil {
		return err
	}

	if err := s.graph.DeclareIdol(actor, target); err != nil {
		return fmt.Errorf("failed to add idol: %w", err)
	}

	s.persist(ctx)
	return nil
}

// IsIdol implements InteractionService.IsIdol.
func (s *interactionServiceImpl) IsIdol(ctx context.Context, login, other string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAccount(ctx, login); err != nil {
		return false, err
	}
	return s.graph.IsIdol(login, other), nil
}

// AddCrush implements InteractionService.AddCrush.
func (s *interactionServiceImpl) AddCrush(ctx context.Context, token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}

	targetAccount, err := s.directory.Get(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to retrieve crush target: %w", err)
	}

	mutual, err := s.graph.DeclareCrush(actor, target)
	if err != nil {
		return fmt.Errorf("failed to add crush: %w", err)
	}

	if mutual {
		// Each party is told the other's display name, via the ordinary
		// mailbox delivery path, before the call returns.
		actorAccount, err := s.directory.Get(ctx, actor)
		if err != nil {
			return fmt.Errorf("failed to retrieve actor account: %w", err)
		}

		s.mailboxes.Deliver(target, domain.NewMessage(domain.SystemLogin,
			fmt.Sprintf(matchNoteFormat, actorAccount.Name)))
		s.mailboxes.Deliver(actor, domain.NewMessage(domain.SystemLogin,
			fmt.Sprintf(matchNoteFormat, targetAccount.Name)))

		s.logger.Info("mutual crush detected", "actor", actor, "target", target)
	}

	s.persist(ctx)
	return nil
}

// IsCrush implements InteractionService.IsCrush.
func (s *interactionServiceImpl) IsCrush(ctx context.Context, login, other string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAccount(ctx, login); err != nil {
		return false, err
	}
	return s.graph.IsCrush(login, other), nil
}

// AddEnemy implements InteractionService.AddEnemy.
func (s *interactionServiceImpl) AddEnemy(ctx context.Context, token, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}
	if err := s.requireAccount(ctx, target); err != nil {
		return err
	}

	if err := s.graph.DeclareEnemy(actor, target); err != nil {
		return fmt.Errorf("failed to add enemy: %w", err)
	}

	s.persist(ctx)
	return nil
}

// IsEnemy implements InteractionService.IsEnemy.
func (s *interactionServiceImpl) IsEnemy(ctx context.Context, login, other string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAccount(ctx, login); err != nil {
		return false, err
	}
	return s.graph.IsEnemy(login, other), nil
}

// CreateCommunity implements InteractionService.CreateCommunity.
func (s *interactionServiceImpl) CreateCommunity(ctx context.Context, token, name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}
	if name == "" {
		return domain.NewValidationError("name", "cannot be empty", domain.ErrEmptyCommunityName)
	}

	if err := s.communities.Create(name, description, owner); err != nil {
		return fmt.Errorf("failed to create community: %w", err)
	}

	s.logger.Info("community created", "name", name, "owner", owner)
	s.persist(ctx)
	return nil
}

// JoinCommunity implements InteractionService.JoinCommunity.
func (s *interactionServiceImpl) JoinCommunity(ctx context.Context, token, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}

	if err := s.communities.Join(name, account); err != nil {
		return fmt.Errorf("failed to join community: %w", err)
	}

	s.logger.Info("account joined community", "name", name, "account", account)
	s.persist(ctx)
	return nil
}

// SendCommunityMessage implements InteractionService.SendCommunityMessage.
func (s *interactionServiceImpl) SendCommunityMessage(ctx context.Context, token, name, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}

	if err := s.communities.Broadcast(name, sender, body); err != nil {
		return fmt.Errorf("failed to send community message: %w", err)
	}

	s.logger.Info("community message broadcast", "name", name, "sender", sender)
	s.persist(ctx)
	return nil
}

// ReadCommunityMessage implements InteractionService.ReadCommunityMessage.
func (s *interactionServiceImpl) ReadCommunityMessage(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.resolve(ctx, token)
	if err != nil {
		return "", err
	}

	msg, err := s.communities.ReadNext(account)
	if err != nil {
		return "", fmt.Errorf("failed to read community message: %w", err)
	}

	s.persist(ctx)
	return msg.Render(), nil
}

// CommunityInfo is the public card of one community. All fields come from a
// single read of the community set, so the view is never torn by a concurrent
// deletion.
type CommunityInfo struct {
	Name        string
	Description string
	Owner       string
	Members     []string
}

// CommunityInfo implements InteractionService.CommunityInfo.
func (s *interactionServiceImpl) CommunityInfo(ctx context.Context, name string) (*CommunityInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	description, err := s.communities.Description(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read community: %w", err)
	}

	// The lock is still held, so the community cannot vanish between reads.
	owner, _ := s.communities.Owner(name)
	members, _ := s.communities.Members(name)

	return &CommunityInfo{
		Name:        name,
		Description: description,
		Owner:       owner,
		Members:     members,
	}, nil
}

// CommunityDescription implements InteractionService.CommunityDescription.
func (s *interactionServiceImpl) CommunityDescription(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	description, err := s.communities.Description(name)
	if err != nil {
		return "", fmt.Errorf("failed to read community description: %w", err)
	}
	return description, nil
}

// CommunityOwner implements InteractionService.CommunityOwner.
func (s *interactionServiceImpl) CommunityOwner(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, err := s.communities.Owner(name)
	if err != nil {
		return "", fmt.Errorf("failed to read community owner: %w", err)
	}
	return owner, nil
}

// CommunityMembers implements InteractionService.CommunityMembers.
func (s *interactionServiceImpl) CommunityMembers(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, err := s.communities.Members(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read community members: %w", err)
	}
	return members, nil
}

// AccountCommunities implements InteractionService.AccountCommunities.
func (s *interactionServiceImpl) AccountCommunities(ctx context.Context, login string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAccount(ctx, login); err != nil {
		return nil, err
	}
	return s.communities.CommunitiesOf(login), nil
}

// RemoveAccount implements InteractionService.RemoveAccount.
func (s *interactionServiceImpl) RemoveAccount(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}

	// Communities first: owned ones are deleted wholesale, the rest just
	// lose a member.
	s.communities.RemoveAccount(login)

	// Undelivered messages authored by the removed account vanish from every
	// remaining mailbox.
	logins, err := s.directory.Logins(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts for removal cascade: %w", err)
	}
	for _, other := range logins {
		if other != login {
			s.mailboxes.PurgeFrom(other, login)
		}
	}

	s.graph.RemoveAccount(login)
	s.mailboxes.RemoveAccount(login)

	if err := s.directory.Delete(ctx, login); err != nil {
		return fmt.Errorf("failed to delete account record: %w", err)
	}

	s.logger.Info("account removed", "login", login)
	s.persist(ctx)
	return nil
}

// Reset implements InteractionService.Reset.
func (s *interactionServiceImpl) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.directory.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset account directory: %w", err)
	}
	s.graph.Reset()
	s.mailboxes.Reset()
	s.communities.Reset()

	s.logger.Info("system reset")
	s.persist(ctx)
	return nil
}

// LoadState implements InteractionService.LoadState.
func (s *interactionServiceImpl) LoadState(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshotter.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			s.logger.Info("no persisted snapshot found, starting empty")
			return nil
		}
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err := s.directory.Restore(ctx, snap.Accounts); err != nil {
		return fmt.Errorf("failed to restore account directory: %w", err)
	}
	s.graph.Restore(snap.Relations)
	s.mailboxes.Restore(snap.Mailboxes)
	if snap.Communities != nil {
		s.communities.Restore(snap.Communities)
	}

	s.logger.Info("state restored from snapshot", "accounts", len(snap.Accounts))
	return nil
}
