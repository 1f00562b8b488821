package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"farmassist/internal/modules/community/repository"
	"farmassist/internal/modules/community/types"
)

const (
	MaxCommentRunes = 500
	// MaxThreadComments caps the comments kept in memory per post.
	MaxThreadComments = 200
	anonymousAuthor   = "anonymous"
)

// Feed is process-local view state for the community tab. Counter changes
// are never written back to storage.
type Feed struct {
	mu     sync.RWMutex
	posts  []types.Post
	index  map[string]int
	groups []types.Group
	now    func() time.Time
	newID  func() string
}

func NewFeed(posts []types.Post, groups []types.Group) (*Feed, error) {
	f := &Feed{
		posts:  make([]types.Post, len(posts)),
		index:  make(map[string]int, len(posts)),
		groups: slices.Clone(groups),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for i, p := range posts {
		if p.ID == "" {
			return nil, fmt.Errorf("post %d has no id", i)
		}
		if _, dup := f.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate post id %q", p.ID)
		}
		if p.Likes < 0 || p.Comments < 0 || p.Shares < 0 {
			return nil, fmt.Errorf("post %q has negative counters", p.ID)
		}
		p.Thread = slices.Clone(p.Thread)
		f.posts[i] = p
		f.index[p.ID] = i
	}
	return f, nil
}

// Load seeds a Feed from the database.
func Load(ctx context.Context, repo repository.CommunityRepository, logger *slog.Logger) (*Feed, error) {
	posts, err := repo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	groups, err := repo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	f, err := NewFeed(posts, groups)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("community feed loaded", "posts", len(posts), "groups", len(groups))
	}
	return f, nil
}

func clonePost(p types.Post) types.Post {
	p.Thread = slices.Clone(p.Thread)
	if p.Thread == nil {
		p.Thread = []types.Comment{}
	}
	return p
}

func (f *Feed) Posts() []types.Post {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]types.Post, len(f.posts))
	for i, p := range f.posts {
		out[i] = clonePost(p)
	}
	return out
}

func (f *Feed) Post(id string) (types.Post, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i, ok := f.index[id]
	if !ok {
		return types.Post{}, fmt.Errorf("%w: %s", types.ErrPostNotFound, id)
	}
	return clonePost(f.posts[i]), nil
}

func (f *Feed) Groups() []types.Group {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.groups)
}

// update applies fn to the post under the write lock and returns a copy.
// The post is left unchanged when fn fails.
func (f *Feed) update(id string, fn func(p *types.Post) error) (types.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.index[id]
	if !ok {
		return types.Post{}, fmt.Errorf("%w: %s", types.ErrPostNotFound, id)
	}
	if err := fn(&f.posts[i]); err != nil {
		return types.Post{}, err
	}
	return clonePost(f.posts[i]), nil
}

// Like adds one like. Repeated calls each count.
func (f *Feed) Like(id string) (types.Post, error) {
	return f.update(id, func(p *types.Post) error {
		p.Likes++
		return nil
	})
}

// Unlike removes one like, stopping at zero.
func (f *Feed) Unlike(id string) (types.Post, error) {
	return f.update(id, func(p *types.Post) error {
		if p.Likes > 0 {
			p.Likes--
		}
		return nil
	})
}

func (f *Feed) Share(id string) (types.Post, error) {
	return f.update(id, func(p *types.Post) error {
		p.Shares++
		return nil
	})
}

// Comment appends a comment and bumps the comment counter.
func (f *Feed) Comment(id, author, body string) (types.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return types.Comment{}, fmt.Errorf("%w: body is required", types.ErrInvalidComment)
	}
	if n := utf8.RuneCountInString(body); n > MaxCommentRunes {
		return types.Comment{}, fmt.Errorf("%w: body has %d characters, max %d", types.ErrInvalidComment, n, MaxCommentRunes)
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = anonymousAuthor
	}

	c := types.Comment{ID: f.newID(), Author: author, Body: body, CreatedAt: f.now().UTC()}
	_, err := f.update(id, func(p *types.Post) error {
		if len(p.Thread) >= MaxThreadComments {
			return fmt.Errorf("%w: thread is full (%d comments)", types.ErrThreadFull, MaxThreadComments)
		}
		p.Thread = append(p.Thread, c)
		p.Comments++
		return nil
	})
	if err != nil {
		return types.Comment{}, err
	}
	return c, nil
}
