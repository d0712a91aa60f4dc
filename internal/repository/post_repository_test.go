package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"civic-reports/internal/cursor"
	"civic-reports/internal/models"
)

// fakeClock advances one second per reading.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestRepo() *PostRepository {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	n := 0
	return NewPostRepository(
		WithClock(clock.Now),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("p%d", n) }),
	)
}

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, r *PostRepository, author, title string) models.Post {
	t.Helper()
	p, err := r.Create(CreatePostInput{Author: author, Title: title, Content: title + " details"})
	if err != nil {
		t.Fatalf("Create(%q) error = %v", title, err)
	}
	return p
}

func TestCreateDefaults(t *testing.T) {
	r := newTestRepo()
	p, err := r.Create(CreatePostInput{
		Author:  "USER#0001",
		Title:   "Pothole on Main St",
		Content: "Large pothole causing accidents",
		Images:  []string{},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Status != models.StatusPending {
		t.Errorf("Status = %s, want pending", p.Status)
	}
	if p.UpvoteCount != 0 || p.CommentCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", p.UpvoteCount, p.CommentCount)
	}
	if !p.CreatedAt.Equal(p.LastUpdatedAt) {
		t.Errorf("CreatedAt %v != LastUpdatedAt %v", p.CreatedAt, p.LastUpdatedAt)
	}
	if p.ID == "" || p.AuthorUsername != "USER#0001" {
		t.Errorf("unexpected post %+v", p)
	}
}

func TestCreateRejectsBlankFields(t *testing.T) {
	r := newTestRepo()
	tests := []struct {
		title, content string
		want           error
	}{
		{"", "content", ErrBlankTitle},
		{"   ", "content", ErrBlankTitle},
		{"title", "", ErrBlankContent},
		{"title", "\n\t ", ErrBlankContent},
	}
	for _, tt := range tests {
		_, err := r.Create(CreatePostInput{Author: "u", Title: tt.title, Content: tt.content})
		if !errors.Is(err, tt.want) {
			t.Errorf("Create(%q, %q) error = %v, want %v", tt.title, tt.content, err, tt.want)
		}
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d after rejected creates, want 0", r.Len())
	}
}

func TestFeedIsNewestFirst(t *testing.T) {
	r := newTestRepo()
	a := mustCreate(t, r, "u1", "first")
	b := mustCreate(t, r, "u2", "second")
	c := mustCreate(t, r, "u1", "third")

	feed := r.Feed("u1")
	if len(feed) != 3 {
		t.Fatalf("len(Feed) = %d, want 3", len(feed))
	}
	for i, want := range []string{c.ID, b.ID, a.ID} {
		if feed[i].ID != want {
			t.Errorf("Feed[%d] = %s, want %s", i, feed[i].ID, want)
		}
	}
}

func TestToggleUpvoteRoundTrip(t *testing.T) {
	r := newTestRepo()
	p := mustCreate(t, r, "author", "streetlight out")

	once, err := r.ToggleUpvote(p.ID, "viewer")
	if err != nil {
		t.Fatalf("ToggleUpvote() error = %v", err)
	}
	if once.UpvoteCount != 1 || !once.IsUpvoted {
		t.Fatalf("after one toggle: count=%d upvoted=%v", once.UpvoteCount, once.IsUpvoted)
	}

	twice, err := r.ToggleUpvote(p.ID, "viewer")
	if err != nil {
		t.Fatalf("ToggleUpvote() error = %v", err)
	}
	if twice.UpvoteCount != p.UpvoteCount || twice.IsUpvoted != p.IsUpvoted {
		t.Fatalf("after two toggles: count=%d upvoted=%v, want %d/%v",
			twice.UpvoteCount, twice.IsUpvoted, p.UpvoteCount, p.IsUpvoted)
	}
}

func TestUpvoteIsPerViewer(t *testing.T) {
	r := newTestRepo()
	p := mustCreate(t, r, "author", "garbage pile")
	if _, err := r.ToggleUpvote(p.ID, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ToggleUpvote(p.ID, "b"); err != nil {
		t.Fatal(err)
	}

	got, _ := r.Get(p.ID, "c")
	if got.UpvoteCount != 2 || got.IsUpvoted {
		t.Fatalf("Get for c: count=%d upvoted=%v", got.UpvoteCount, got.IsUpvoted)
	}
	got, _ = r.Get(p.ID, "a")
	if !got.IsUpvoted {
		t.Fatalf("Get for a: upvoted=false")
	}
	if _, err := r.ToggleUpvote(p.ID, ""); !errors.Is(err, ErrNoViewer) {
		t.Fatalf("ToggleUpvote without viewer error = %v", err)
	}
}

func TestUpdateRefreshesLastUpdatedAndKeepsOmitted(t *testing.T) {
	r := newTestRepo()
	p := mustCreate(t, r, "author", "old title")

	got, err := r.Update(p.ID, models.PostFields{Title: strPtr("New title")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Title != "New title" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Content != p.Content {
		t.Errorf("Content = %q, want unchanged %q", got.Content, p.Content)
	}
	if !got.LastUpdatedAt.After(got.CreatedAt) {
		t.Errorf("LastUpdatedAt %v not after CreatedAt %v", got.LastUpdatedAt, got.CreatedAt)
	}
}

func TestUpdateStampsForwardWithFrozenClock(t *testing.T) {
	frozen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewPostRepository(WithClock(func() time.Time { return frozen }))
	p := mustCreate(t, r, "author", "title")

	got, err := r.Update(p.ID, models.PostFields{Content: strPtr("new content")})
	if err != nil {
		t.Fatal(err)
	}
	if !got.LastUpdatedAt.After(got.CreatedAt) {
		t.Fatalf("LastUpdatedAt %v not after CreatedAt %v", got.LastUpdatedAt, got.CreatedAt)
	}
}

func TestUpdateRejectsBlankWithoutMutation(t *testing.T) {
	r := newTestRepo()
	p := mustCreate(t, r, "author", "title")

	for _, f := range []models.PostFields{
		{Title: strPtr("  ")},
		{Content: strPtr("")},
		{Title: strPtr("fine"), Content: strPtr(" ")},
	} {
		if _, err := r.Update(p.ID, f); err == nil {
			t.Errorf("Update(%+v) succeeded, want validation error", f)
		}
	}
	got, _ := r.Get(p.ID, "")
	if got.Title != p.Title || got.Content != p.Content || !got.LastUpdatedAt.Equal(p.LastUpdatedAt) {
		t.Fatalf("post mutated by rejected updates: %+v", got)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	r := newTestRepo()
	if _, err := r.Update("missing", models.PostFields{Title: strPtr("x")}); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("Update(missing) error = %v, want ErrPostNotFound", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := newTestRepo()
	p := mustCreate(t, r, "author", "broken pipe")
	keep := mustCreate(t, r, "author", "stray dogs")

	if !r.Delete(p.ID) {
		t.Fatalf("first Delete() = false")
	}
	for _, m := range r.Mine("author") {
		if m.ID == p.ID {
			t.Fatalf("Mine() still contains deleted post")
		}
	}
	if r.Delete(p.ID) {
		t.Fatalf("second Delete() = true, want no-op")
	}
	if mine := r.Mine("author"); len(mine) != 1 || mine[0].ID != keep.ID {
		t.Fatalf("Mine() = %+v", mine)
	}
}

func TestSetStatusAnyTransition(t *testing.T) {
	r := newTestRepo()
	p := mustCreate(t, r, "author", "title")

	prev := p.LastUpdatedAt
	for _, s := range []models.PostStatus{models.StatusSolved, models.StatusPending, models.StatusWorking, models.StatusSolved} {
		got, err := r.SetStatus(p.ID, s)
		if err != nil {
			t.Fatalf("SetStatus(%s) error = %v", s, err)
		}
		if got.Status != s {
			t.Fatalf("Status = %s, want %s", got.Status, s)
		}
		if !got.LastUpdatedAt.After(prev) {
			t.Fatalf("LastUpdatedAt did not move forward on %s", s)
		}
		prev = got.LastUpdatedAt
	}
	if _, err := r.SetStatus(p.ID, "closed"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("SetStatus(closed) error = %v", err)
	}
	if _, err := r.SetStatus("missing", models.StatusSolved); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("SetStatus(missing) error = %v", err)
	}
}

func TestRepostCreatesIndependentPost(t *testing.T) {
	r := newTestRepo()
	src, err := r.Create(CreatePostInput{Author: "author", MunicipalityID: "ranchi", Title: "drain", Content: "blocked drain", Images: []string{"a.jpg"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Repost(src.ID, "author", ""); !errors.Is(err, ErrNotSolved) {
		t.Fatalf("Repost(pending) error = %v, want ErrNotSolved", err)
	}
	solved, _ := r.SetStatus(src.ID, models.StatusSolved)

	p, err := r.Repost(src.ID, "author", "")
	if err != nil {
		t.Fatalf("Repost() error = %v", err)
	}
	if p.ID == src.ID || p.Status != models.StatusPending || p.RepostOf != src.ID {
		t.Fatalf("Repost() = %+v", p)
	}
	if p.MunicipalityID != "ranchi" || len(p.Images) != 1 {
		t.Fatalf("Repost() did not copy the template: %+v", p)
	}
	if stored, _ := r.Get(p.ID, ""); stored.RepostOf != src.ID {
		t.Fatalf("stored repost RepostOf = %q, want %q", stored.RepostOf, src.ID)
	}
	after, _ := r.Get(src.ID, "")
	if after.Status != models.StatusSolved || !after.LastUpdatedAt.Equal(solved.LastUpdatedAt) {
		t.Fatalf("source post mutated: %+v", after)
	}
}

func TestCommentsMaskAndCount(t *testing.T) {
	r := newTestRepo()
	p := mustCreate(t, r, "author", "title")

	if _, err := r.AddComment(p.ID, "v", "  "); !errors.Is(err, ErrBlankComment) {
		t.Fatalf("AddComment(blank) error = %v", err)
	}
	if _, err := r.AddComment(p.ID, "v", "this is shit"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.AddComment(p.ID, "w", "same here"); err != nil {
		t.Fatal(err)
	}
	list, err := r.Comments(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Text != "same here" || list[1].Text != "this is ****" {
		t.Fatalf("Comments() = %+v", list)
	}
	got, _ := r.Get(p.ID, "")
	if got.CommentCount != 2 {
		t.Fatalf("CommentCount = %d, want 2", got.CommentCount)
	}
}

func TestMineByStatusAndCounts(t *testing.T) {
	r := newTestRepo()
	a := mustCreate(t, r, "me", "a")
	mustCreate(t, r, "me", "b")
	mustCreate(t, r, "other", "c")
	if _, err := r.SetStatus(a.ID, models.StatusWorking); err != nil {
		t.Fatal(err)
	}

	if n := len(r.Mine("me")); n != 2 {
		t.Fatalf("len(Mine) = %d, want 2", n)
	}
	working := r.ByStatus("me", models.StatusWorking)
	if len(working) != 1 || working[0].ID != a.ID {
		t.Fatalf("ByStatus(working) = %+v", working)
	}
	want := models.StatusCounts{Total: 2, Pending: 1, Working: 1}
	if got := r.Counts("me"); got != want {
		t.Fatalf("Counts() = %+v, want %+v", got, want)
	}
	if got := r.Stats(""); got.Total != 3 || got.Pending != 2 {
		t.Fatalf("Stats() = %+v", got)
	}
}

func TestFeedPage(t *testing.T) {
	r := newTestRepo()
	for i := 0; i < 5; i++ {
		mustCreate(t, r, "u", fmt.Sprintf("post %d", i))
	}

	first, next := r.FeedPage("u", nil, 2)
	if len(first) != 2 || next == nil {
		t.Fatalf("first page = %d items, next=%v", len(first), next)
	}
	firstNext := *next
	c, err := cursor.DecodeCursor(*next)
	if err != nil {
		t.Fatal(err)
	}
	second, next := r.FeedPage("u", &c, 2)
	if len(second) != 2 || next == nil {
		t.Fatalf("second page = %d items", len(second))
	}
	if second[0].ID == first[1].ID {
		t.Fatalf("pages overlap")
	}
	c, _ = cursor.DecodeCursor(*next)
	third, next := r.FeedPage("u", &c, 2)
	if len(third) != 1 || next != nil {
		t.Fatalf("third page = %d items, next=%v", len(third), next)
	}

	// a deleted cursor post resumes at the next older post
	c, _ = cursor.DecodeCursor(firstNext)
	r.Delete(first[1].ID)
	resumed, _ := r.FeedPage("u", &c, 10)
	if len(resumed) != 3 || resumed[0].ID != second[0].ID {
		t.Fatalf("resumed page = %+v", resumed)
	}
}

func TestFeedPageResumesAfterDeletedCursorWithSharedTimestamps(t *testing.T) {
	frozen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	r := NewPostRepository(
		WithClock(func() time.Time { return frozen }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("p%d", n) }),
	)
	for i := 0; i < 5; i++ {
		mustCreate(t, r, "u", fmt.Sprintf("post %d", i))
	}

	first, next := r.FeedPage("u", nil, 2)
	if len(first) != 2 || next == nil {
		t.Fatalf("first page = %d items, next=%v", len(first), next)
	}
	c, err := cursor.DecodeCursor(*next)
	if err != nil {
		t.Fatal(err)
	}
	r.Delete(first[1].ID)

	rest, more := r.FeedPage("u", &c, 10)
	if len(rest) != 3 || more != nil {
		t.Fatalf("next page = %d items, want 3", len(rest))
	}
	for i, want := range []string{"p3", "p2", "p1"} {
		if rest[i].ID != want {
			t.Fatalf("rest[%d] = %s, want %s", i, rest[i].ID, want)
		}
	}
}
