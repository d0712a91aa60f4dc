package repository

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"civic-reports/internal/cursor"
	"civic-reports/internal/models"
	u "civic-reports/internal/utils"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrBlankTitle    = errors.New("title is required")
	ErrBlankContent  = errors.New("content is required")
	ErrBlankComment  = errors.New("comment text is required")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotSolved     = errors.New("only solved posts can be reposted")
	ErrNoViewer      = errors.New("viewer is required")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type CreatePostInput struct {
	Author         string
	MunicipalityID string
	Title          string
	Content        string
	Images         []string
	RepostOf       string
}

type postRecord struct {
	seq      uint64
	post     models.Post
	upvoters map[string]struct{}
	comments []models.Comment
}

// PostRepository owns every post of the process. Posts are kept newest
// first; callers only ever receive copies.
type PostRepository struct {
	mu      sync.RWMutex
	posts   []*postRecord
	byID    map[string]*postRecord
	lastSeq uint64
	now     func() time.Time
	newID   func() string
}

type Option func(*PostRepository)

func WithClock(now func() time.Time) Option {
	return func(r *PostRepository) { r.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(r *PostRepository) { r.newID = gen }
}

func NewPostRepository(opts ...Option) *PostRepository {
	r := &PostRepository{
		byID:  make(map[string]*postRecord),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// stamp returns a time strictly after prev so lastUpdatedAt always moves
// forward, even when the clock does not.
func (r *PostRepository) stamp(prev time.Time) time.Time {
	now := r.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func (r *PostRepository) Create(in CreatePostInput) (models.Post, error) {
	if u.IsBlank(in.Title) {
		return models.Post{}, ErrBlankTitle
	}
	if u.IsBlank(in.Content) {
		return models.Post{}, ErrBlankContent
	}
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	r.lastSeq++
	rec := &postRecord{
		seq: r.lastSeq,
		post: models.Post{
			ID:             r.newID(),
			AuthorUsername: in.Author,
			MunicipalityID: in.MunicipalityID,
			Title:          title,
			Content:        content,
			Images:         cleanImages(in.Images),
			Hashtag:        u.ExtractHashtags(content),
			Status:         models.StatusPending,
			RepostOf:       in.RepostOf,
			CreatedAt:      now,
			LastUpdatedAt:  now,
		},
		upvoters: make(map[string]struct{}),
	}
	r.posts = append([]*postRecord{rec}, r.posts...)
	r.byID[rec.post.ID] = rec
	return r.view(rec, in.Author), nil
}

func (r *PostRepository) Get(id, viewer string) (models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return r.view(rec, viewer), nil
}

// Update edits title and/or content. Provided fields must be non-blank;
// omitted fields are kept. lastUpdatedAt is refreshed on every call.
func (r *PostRepository) Update(id string, f models.PostFields) (models.Post, error) {
	var title, content string
	if f.Title != nil {
		if u.IsBlank(*f.Title) {
			return models.Post{}, ErrBlankTitle
		}
		title = strings.TrimSpace(*f.Title)
	}
	if f.Content != nil {
		if u.IsBlank(*f.Content) {
			return models.Post{}, ErrBlankContent
		}
		content = strings.TrimSpace(*f.Content)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	if f.Title != nil {
		rec.post.Title = title
	}
	if f.Content != nil {
		rec.post.Content = content
		rec.post.Hashtag = u.ExtractHashtags(content)
	}
	rec.post.LastUpdatedAt = r.stamp(rec.post.LastUpdatedAt)
	return r.view(rec, rec.post.AuthorUsername), nil
}

// Delete removes the post for good. Deleting an unknown id is a no-op and
// reports false.
func (r *PostRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, rec := range r.posts {
		if rec.post.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			break
		}
	}
	return true
}

// SetStatus moves a post to any status; there is no enforced order.
func (r *PostRepository) SetStatus(id string, s models.PostStatus) (models.Post, error) {
	if !s.Valid() {
		return models.Post{}, ErrInvalidStatus
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	rec.post.Status = s
	rec.post.LastUpdatedAt = r.stamp(rec.post.LastUpdatedAt)
	return r.view(rec, ""), nil
}

func (r *PostRepository) ToggleUpvote(id, viewer string) (models.Post, error) {
	if viewer == "" {
		return models.Post{}, ErrNoViewer
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	if _, voted := rec.upvoters[viewer]; voted {
		delete(rec.upvoters, viewer)
		rec.post.UpvoteCount--
	} else {
		rec.upvoters[viewer] = struct{}{}
		rec.post.UpvoteCount++
	}
	return r.view(rec, viewer), nil
}

// Repost creates a new pending post from a solved one. The source post is
// left untouched.
func (r *PostRepository) Repost(id, author, municipalityID string) (models.Post, error) {
	r.mu.RLock()
	rec, ok := r.byID[id]
	var src models.Post
	if ok {
		src = r.view(rec, "")
	}
	r.mu.RUnlock()
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	if src.Status != models.StatusSolved {
		return models.Post{}, ErrNotSolved
	}
	if municipalityID == "" {
		municipalityID = src.MunicipalityID
	}
	return r.Create(CreatePostInput{
		Author:         author,
		MunicipalityID: municipalityID,
		Title:          src.Title,
		Content:        src.Content,
		Images:         src.Images,
		RepostOf:       src.ID,
	})
}

func (r *PostRepository) AddComment(id, author, text string) (models.Comment, error) {
	if u.IsBlank(text) {
		return models.Comment{}, ErrBlankComment
	}
	text = strings.TrimSpace(text)
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return models.Comment{}, ErrPostNotFound
	}
	c := models.Comment{
		ID:             r.newID(),
		PostID:         id,
		AuthorUsername: author,
		Text:           u.MaskProfanity(text),
		CreatedAt:      r.now().UTC(),
	}
	rec.comments = append(rec.comments, c)
	rec.post.CommentCount++
	return c, nil
}

// Comments returns the comments of a post, newest first.
func (r *PostRepository) Comments(id string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	out := make([]models.Comment, 0, len(rec.comments))
	for i := len(rec.comments) - 1; i >= 0; i-- {
		out = append(out, rec.comments[i])
	}
	return out, nil
}

// Feed returns every post, newest first.
func (r *PostRepository) Feed(viewer string) []models.Post {
	return r.filter(viewer, func(*models.Post) bool { return true })
}

// FeedPage returns up to limit posts after the cursor and the cursor of the
// next page, nil when there is none.
func (r *PostRepository) FeedPage(viewer string, after *cursor.Cursor, limit int) ([]models.Post, *string) {
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if after != nil {
		start = len(r.posts)
		if rec, ok := r.byID[after.ID]; ok {
			for i, p := range r.posts {
				if p == rec {
					start = i + 1
					break
				}
			}
		} else {
			// the cursor post was deleted; resume at the first older post
			for i, p := range r.posts {
				if p.seq < after.Seq {
					start = i
					break
				}
			}
		}
	}

	end := start + limit
	if end > len(r.posts) {
		end = len(r.posts)
	}
	items := make([]models.Post, 0, end-start)
	for _, rec := range r.posts[start:end] {
		items = append(items, r.view(rec, viewer))
	}
	var next *string
	if end < len(r.posts) && len(items) > 0 {
		last := r.posts[end-1]
		s := cursor.EncodeCursor(last.seq, last.post.CreatedAt, last.post.ID)
		next = &s
	}
	return items, next
}

// Mine returns the posts authored by username, newest first.
func (r *PostRepository) Mine(username string) []models.Post {
	return r.filter(username, func(p *models.Post) bool { return p.AuthorUsername == username })
}

func (r *PostRepository) ByStatus(username string, s models.PostStatus) []models.Post {
	return r.filter(username, func(p *models.Post) bool {
		return p.AuthorUsername == username && p.Status == s
	})
}

// Counts returns the tab counts of username's posts.
func (r *PostRepository) Counts(username string) models.StatusCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var c models.StatusCounts
	for _, rec := range r.posts {
		if rec.post.AuthorUsername == username {
			c.Add(rec.post.Status)
		}
	}
	return c
}

// Stats counts every post, optionally limited to one municipality.
func (r *PostRepository) Stats(municipalityID string) models.StatusCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var c models.StatusCounts
	for _, rec := range r.posts {
		if municipalityID == "" || rec.post.MunicipalityID == municipalityID {
			c.Add(rec.post.Status)
		}
	}
	return c
}

func (r *PostRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

func (r *PostRepository) filter(viewer string, keep func(*models.Post) bool) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Post, 0, len(r.posts))
	for _, rec := range r.posts {
		if keep(&rec.post) {
			out = append(out, r.view(rec, viewer))
		}
	}
	return out
}

// view copies rec for viewer. Callers hold r.mu.
func (r *PostRepository) view(rec *postRecord, viewer string) models.Post {
	p := rec.post
	p.Images = append([]string{}, rec.post.Images...)
	p.Hashtag = append([]string{}, rec.post.Hashtag...)
	_, p.IsUpvoted = rec.upvoters[viewer]
	return p
}

func cleanImages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, img := range in {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}
