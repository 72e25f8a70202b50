package postservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/okuznetsov/blogware/internal/common"
)

type CreatePostInput struct {
	Header    string      `json:"header"`
	Subheader string      `json:"subheader"`
	Items     []ItemInput `json:"items"`
}

type UpdatePostInput struct {
	Header    string      `json:"header"`
	Subheader string      `json:"subheader"`
	Items     []ItemInput `json:"items"`
}

func (input CreatePostInput) validate() error {
	v := common.NewValidator()

	validateHeader(v, input.Header)
	validateSubheader(v, input.Subheader)
	validateItems(v, input.Items)

	if !v.Valid() {
		return v.ValidationError()
	}

	return nil
}

func (input UpdatePostInput) validate() error {
	return CreatePostInput(input).validate()
}

// Create publishes a new post to the caller's blog. Submitted item ids are
// ignored: a new post always gets freshly minted items, ordered as submitted.
func (s *PostService) Create(ctx context.Context, userID, blogID uuid.UUID, input CreatePostInput) (*Post, error) {
	err := input.validate()
	if err != nil {
		return nil, err
	}

	blog, err := s.m.getBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	err = common.CheckOwnership(blog.UserID, userID, "blog")
	if err != nil {
		return nil, err
	}

	post := &Post{
		ID:        uuid.New(),
		Header:    input.Header,
		Subheader: input.Subheader,
		CreatedAt: s.clock.Now(),
		BlogID:    blogID,
		BlogTag:   blog.Tag,
		OwnerID:   blog.UserID,
		Items:     make([]PostItem, 0, len(input.Items)),
	}

	for i, item := range input.Items {
		post.Items = append(post.Items, newItem(item, uuid.New(), i))
	}

	err = s.m.insert(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Update rewrites the post's fields and reconciles its items against the
// submitted list. Items carrying an id keep their identity, items without
// one are created, and items left out of the submission are deleted.
func (s *PostService) Update(ctx context.Context, userID, postID uuid.UUID, input UpdatePostInput) (*Post, error) {
	err := input.validate()
	if err != nil {
		return nil, err
	}

	post, err := s.m.getByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	err = common.CheckOwnership(post.OwnerID, userID, "post")
	if err != nil {
		return nil, err
	}

	items, err := reconcileItems(post.Items, input.Items, uuid.New)
	if err != nil {
		return nil, err
	}

	post.Header = input.Header
	post.Subheader = input.Subheader
	post.IsModified = true
	post.Items = items

	err = s.m.update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyPost(post.ID))

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.m.getByID(ctx, postID)
	if err != nil {
		return err
	}

	err = common.CheckOwnership(post.OwnerID, userID, "post")
	if err != nil {
		return err
	}

	err = s.m.delete(ctx, postID)
	if err != nil {
		return err
	}

	s.c.Delete(common.CacheKeyPost(postID))

	return nil
}

func (s *PostService) GetByID(ctx context.Context, postID uuid.UUID) (*Post, error) {
	key := common.CacheKeyPost(postID)

	if cached, ok := s.c.Get(key); ok {
		if post, ok := cached.(*Post); ok {
			return post, nil
		}
	}

	post, err := s.m.getByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", postID, err)
	}

	s.c.Set(key, post)

	return post, nil
}

func (s *PostService) GetPaged(ctx context.Context, p common.Pagination) (*PostPage, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	posts, err := s.m.paged(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}

	return &PostPage{Posts: posts, Pagination: p}, nil
}

func (s *PostService) GetPagedByBlogID(ctx context.Context, blogID uuid.UUID, p common.Pagination) (*PostPage, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	posts, err := s.m.pagedByBlog(ctx, blogID, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}

	return &PostPage{Posts: posts, Pagination: p}, nil
}
