package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"civic-reports/internal/cursor"
	"civic-reports/internal/i18n"
	"civic-reports/internal/models"
	"civic-reports/internal/repository"
	"civic-reports/internal/task"
	u "civic-reports/internal/utils"
)

// Snapshot is everything a client needs to render the current screen.
type Snapshot struct {
	SessionID     string               `json:"sessionId"`
	Page          models.Page          `json:"page"`
	Locale        i18n.Locale          `json:"locale"`
	Login         models.LoginState    `json:"login"`
	Municipality  *models.Municipality `json:"municipality,omitempty"`
	Staged        *models.Municipality `json:"stagedMunicipality,omitempty"`
	PendingDelete string               `json:"pendingDelete,omitempty"`
	Submitting    bool                 `json:"submitting"`
	Saving        bool                 `json:"saving"`
}

// State is the root controller of one client session. Everything the
// user does goes through it.
type State struct {
	ID           string
	Login        *LoginFlow
	Municipality *MunicipalitySelection
	Locale       *i18n.Store

	backend *Backend
	ctx     context.Context
	cancel  context.CancelFunc

	mu            sync.Mutex
	page          models.Page
	tasks         task.Group
	submitting    bool
	saving        bool
	pendingDelete string
	lastSeen      time.Time
}

func NewState(id string, b *Backend) *State {
	ctx, cancel := context.WithCancel(context.Background())
	return &State{
		ID:           id,
		Login:        NewLoginFlow(ctx, b.Delays),
		Municipality: NewMunicipalitySelection(b.Municipalities),
		Locale:       i18n.NewStore(b.DefaultLocale),
		backend:      b,
		ctx:          ctx,
		cancel:       cancel,
		lastSeen:     time.Now(),
	}
}

// Close cancels every task the session still has in flight.
func (s *State) Close() { s.cancel() }

func (s *State) T(key string) string { return s.Locale.T(key) }

func (s *State) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *State) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Page returns the page to render. Login and the municipality pick gate
// everything else.
func (s *State) Page() models.Page {
	id, ok := s.Login.Identity()
	if !ok {
		return models.PageLogin
	}
	if _, picked := s.Municipality.Active(); id.Role == models.RoleCitizen && !picked {
		return models.PageMunicipalitySelection
	}
	s.mu.Lock()
	p := s.page
	s.mu.Unlock()
	if p == "" || p == models.PageLogin {
		return homePage(id.Role)
	}
	return p
}

func homePage(r models.Role) models.Page {
	if r == models.RoleOfficer {
		return models.PageDashboard
	}
	return models.PageHome
}

// Navigate stores page as the current one. Moving to another page drops
// any compose or edit still waiting and closes the delete dialog.
func (s *State) Navigate(p models.Page) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPage, p)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p != s.page {
		s.resetLocked()
	}
	s.page = p
	return nil
}

// resetLocked cancels pending post tasks. Callers hold s.mu.
func (s *State) resetLocked() {
	if n := s.tasks.CancelAll(); n > 0 {
		log.Printf("session %s: cancelled %d pending task(s)", s.ID, n)
	}
	s.submitting = false
	s.saving = false
	s.pendingDelete = ""
}

func (s *State) Logout() {
	s.Login.Logout()
	s.Municipality.Reset()
	s.mu.Lock()
	s.resetLocked()
	s.page = ""
	s.mu.Unlock()
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.ID,
		Page:      s.Page(),
		Locale:    s.Locale.Locale(),
		Login:     s.Login.Snapshot(),
	}
	if err := s.Login.LastError(); err != nil {
		snap.Login.LastError = Localize(err, s.T)
	}
	if m, ok := s.Municipality.Active(); ok {
		snap.Municipality = &m
	}
	if m, ok := s.Municipality.Staged(); ok {
		snap.Staged = &m
	}
	s.mu.Lock()
	snap.PendingDelete = s.pendingDelete
	snap.Submitting = s.submitting
	snap.Saving = s.saving
	s.mu.Unlock()
	return snap
}

func (s *State) identity() (models.Identity, error) {
	id, ok := s.Login.Identity()
	if !ok {
		return models.Identity{}, ErrNotAuthenticated
	}
	return id, nil
}

func (s *State) officer() (models.Identity, error) {
	id, err := s.identity()
	if err != nil {
		return id, err
	}
	if id.Role != models.RoleOfficer {
		return id, ErrForbidden
	}
	return id, nil
}

func (s *State) activeMunicipalityID() string {
	if m, ok := s.Municipality.Active(); ok {
		return m.ID
	}
	return ""
}

// reportMunicipality is the jurisdiction of a new report. Citizens must have
// confirmed a municipality; officers file under the active one, if any.
func (s *State) reportMunicipality(id models.Identity) (string, error) {
	m := s.activeMunicipalityID()
	if m == "" && id.Role == models.RoleCitizen {
		return "", ErrNoActiveMunicipality
	}
	return m, nil
}

// Compose validates synchronously, then creates the post after the submit
// delay and moves to home. A blank title or content leaves the repository
// and the page untouched.
func (s *State) Compose(title, content string, images []string) (*task.Task[models.Post], error) {
	id, err := s.identity()
	if err != nil {
		return nil, err
	}
	if u.IsBlank(title) {
		return nil, repository.ErrBlankTitle
	}
	if u.IsBlank(content) {
		return nil, repository.ErrBlankContent
	}
	muni, err := s.reportMunicipality(id)
	if err != nil {
		return nil, err
	}
	in := repository.CreatePostInput{
		Author:         id.Username,
		MunicipalityID: muni,
		Title:          title,
		Content:        content,
		Images:         images,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return nil, ErrBusy
	}
	s.submitting = true
	return task.Go(&s.tasks, s.ctx, s.backend.Delays.Submit, func(ctx context.Context) (models.Post, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := ctx.Err(); err != nil {
			return models.Post{}, err
		}
		s.submitting = false
		p, err := s.backend.Posts.Create(in)
		if err != nil {
			return models.Post{}, err
		}
		s.page = models.PageHome
		log.Printf("post %s created by %s", p.ID, p.AuthorUsername)
		return p, nil
	}), nil
}

// Edit saves new title and/or content after the save delay. Only the
// author may edit.
func (s *State) Edit(postID string, f models.PostFields) (*task.Task[models.Post], error) {
	id, err := s.identity()
	if err != nil {
		return nil, err
	}
	if f.Title != nil && u.IsBlank(*f.Title) {
		return nil, repository.ErrBlankTitle
	}
	if f.Content != nil && u.IsBlank(*f.Content) {
		return nil, repository.ErrBlankContent
	}
	p, err := s.backend.Posts.Get(postID, id.Username)
	if err != nil {
		return nil, err
	}
	if p.AuthorUsername != id.Username {
		return nil, ErrForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return nil, ErrBusy
	}
	s.saving = true
	return task.Go(&s.tasks, s.ctx, s.backend.Delays.Save, func(ctx context.Context) (models.Post, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := ctx.Err(); err != nil {
			return models.Post{}, err
		}
		s.saving = false
		return s.backend.Posts.Update(postID, f)
	}), nil
}

func (s *State) canDelete(id models.Identity, p models.Post) bool {
	return id.Role == models.RoleOfficer || p.AuthorUsername == id.Username
}

// RequestDelete opens the confirmation for postID.
func (s *State) RequestDelete(postID string) (models.Post, error) {
	id, err := s.identity()
	if err != nil {
		return models.Post{}, err
	}
	p, err := s.backend.Posts.Get(postID, id.Username)
	if err != nil {
		return models.Post{}, err
	}
	if !s.canDelete(id, p) {
		return models.Post{}, ErrForbidden
	}
	s.mu.Lock()
	s.pendingDelete = postID
	s.mu.Unlock()
	return p, nil
}

// ConfirmDelete removes the post whose deletion was requested. It reports
// whether a post was actually removed; a post already gone is not an error.
func (s *State) ConfirmDelete(postID string) (bool, error) {
	if _, err := s.identity(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingDelete == "" || s.pendingDelete != postID {
		return false, ErrNoDeleteRequest
	}
	s.pendingDelete = ""
	removed := s.backend.Posts.Delete(postID)
	if removed {
		log.Printf("post %s deleted", postID)
	}
	return removed, nil
}

func (s *State) CancelDelete() {
	s.mu.Lock()
	s.pendingDelete = ""
	s.mu.Unlock()
}

func (s *State) SetStatus(postID string, status models.PostStatus) (models.Post, error) {
	id, err := s.officer()
	if err != nil {
		return models.Post{}, err
	}
	p, err := s.backend.Posts.SetStatus(postID, status)
	if err != nil {
		return models.Post{}, err
	}
	log.Printf("post %s marked %s by %s", postID, status, id.Username)
	return s.backend.Posts.Get(p.ID, id.Username)
}

func (s *State) ToggleUpvote(postID string) (models.Post, error) {
	id, err := s.identity()
	if err != nil {
		return models.Post{}, err
	}
	return s.backend.Posts.ToggleUpvote(postID, id.Username)
}

// Repost re-submits one of the user's own solved reports as a new one.
func (s *State) Repost(postID string) (models.Post, error) {
	id, err := s.identity()
	if err != nil {
		return models.Post{}, err
	}
	src, err := s.backend.Posts.Get(postID, id.Username)
	if err != nil {
		return models.Post{}, err
	}
	if src.AuthorUsername != id.Username {
		return models.Post{}, ErrForbidden
	}
	muni, err := s.reportMunicipality(id)
	if err != nil {
		return models.Post{}, err
	}
	return s.backend.Posts.Repost(postID, id.Username, muni)
}

func (s *State) Comment(postID, text string) (models.Comment, error) {
	id, err := s.identity()
	if err != nil {
		return models.Comment{}, err
	}
	return s.backend.Posts.AddComment(postID, id.Username, text)
}

func (s *State) Comments(postID string) ([]models.Comment, error) {
	if _, err := s.identity(); err != nil {
		return nil, err
	}
	return s.backend.Posts.Comments(postID)
}

func (s *State) Post(postID string) (models.Post, error) {
	id, err := s.identity()
	if err != nil {
		return models.Post{}, err
	}
	return s.backend.Posts.Get(postID, id.Username)
}

func (s *State) Feed() ([]models.Post, error) {
	id, err := s.identity()
	if err != nil {
		return nil, err
	}
	return s.backend.Posts.Feed(id.Username), nil
}

// FeedPage pages through the feed. An empty token starts at the newest post.
func (s *State) FeedPage(token string, limit int) ([]models.Post, *string, error) {
	id, err := s.identity()
	if err != nil {
		return nil, nil, err
	}
	var after *cursor.Cursor
	if token != "" {
		c, err := cursor.DecodeCursor(token)
		if err != nil {
			return nil, nil, err
		}
		after = &c
	}
	items, next := s.backend.Posts.FeedPage(id.Username, after, limit)
	return items, next, nil
}

// Mine lists the user's own reports, optionally only those with status.
func (s *State) Mine(status models.PostStatus) ([]models.Post, error) {
	id, err := s.identity()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return s.backend.Posts.Mine(id.Username), nil
	}
	if !status.Valid() {
		return nil, repository.ErrInvalidStatus
	}
	return s.backend.Posts.ByStatus(id.Username, status), nil
}

func (s *State) Counts() (models.StatusCounts, error) {
	id, err := s.identity()
	if err != nil {
		return models.StatusCounts{}, err
	}
	return s.backend.Posts.Counts(id.Username), nil
}

func (s *State) Profile() (models.Profile, error) {
	id, err := s.identity()
	if err != nil {
		return models.Profile{}, err
	}
	prof := models.Profile{Identity: id}
	if m, ok := s.Municipality.Active(); ok {
		prof.Municipality = &m
	}
	for _, p := range s.backend.Posts.Mine(id.Username) {
		prof.ReportsSubmitted++
		prof.UpvotesReceived += p.UpvoteCount
		prof.CommentsReceived += p.CommentCount
		if p.Status == models.StatusSolved {
			prof.IssuesResolved++
		}
	}
	return prof, nil
}

// Dashboard returns status totals for officers, scoped to the active
// municipality when one is chosen.
func (s *State) Dashboard() (models.StatusCounts, error) {
	if _, err := s.officer(); err != nil {
		return models.StatusCounts{}, err
	}
	return s.backend.Posts.Stats(s.activeMunicipalityID()), nil
}

// MunicipalityInfo describes municipality id, or the active one when id is
// empty, in the session's locale.
func (s *State) MunicipalityInfo(id string) (models.MunicipalityInfo, error) {
	if id == "" {
		id = s.activeMunicipalityID()
		if id == "" {
			return models.MunicipalityInfo{}, ErrNoActiveMunicipality
		}
	}
	return s.backend.Municipalities.Info(id, s.T)
}

func (s *State) SetLocale(l i18n.Locale) error {
	return s.Locale.SetLocale(l)
}
