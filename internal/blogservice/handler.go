package blogservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/accountservice"
	"github.com/okuznetsov/blogware/internal/common"
)

type CreateBlogInput struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// Create opens the user's blog. A user owns at most one blog and the tag must
// be unique across all blogs; creating a blog also grants the author role.
func (s *BlogService) Create(ctx context.Context, userID uuid.UUID, input CreateBlogInput) (*Blog, error) {
	tag := NormalizeTag(input.Tag)

	v := common.NewValidator()
	validateTag(v, tag)
	validateDescription(v, input.Description)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	owner, err := s.m.getOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if owner.HasBlog {
		return nil, fmt.Errorf("user already has a blog: %w", ErrAlreadyExists)
	}

	taken, err := s.m.tagExists(ctx, tag)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("blog with tag %s: %w", tag, ErrAlreadyExists)
	}

	blog := &Blog{
		ID:             uuid.New(),
		Name:           owner.Name,
		Tag:            tag,
		Description:    input.Description,
		AvatarFileName: owner.AvatarFileName,
		CreatedAt:      s.clock.Now(),
		UserID:         userID,
	}

	if err := s.m.insert(ctx, blog, accountservice.RoleAuthor); err != nil {
		return nil, err
	}

	return blog, nil
}

type UpdateBlogInput struct {
	Name           string `json:"name"`
	Tag            string `json:"tag"`
	Description    string `json:"description"`
	AvatarFileName string `json:"avatar_file_name"`
}

// Update applies name, tag, description, and avatar changes. Only the owner
// may update; name and avatar cascade back onto the owning user.
func (s *BlogService) Update(ctx context.Context, userID, blogID uuid.UUID, input UpdateBlogInput) (*Blog, error) {
	tag := NormalizeTag(input.Tag)

	v := common.NewValidator()
	validateName(v, input.Name)
	validateTag(v, tag)
	validateDescription(v, input.Description)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if err := common.CheckOwnership(blog.UserID, userID, "blog"); err != nil {
		return nil, err
	}

	if tag != blog.Tag {
		taken, err := s.m.tagExists(ctx, tag)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("blog with tag %s: %w", tag, ErrAlreadyExists)
		}
	}

	if input.AvatarFileName != "" && input.AvatarFileName != blog.AvatarFileName {
		exists, err := s.blobs.Exists(ctx, input.AvatarFileName)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, common.NewValidationError("avatar_file_name", fmt.Sprintf("image with name %s was not found", input.AvatarFileName), nil)
		}
	}

	oldTag := blog.Tag

	blog.Name = input.Name
	blog.Tag = tag
	blog.Description = input.Description
	blog.AvatarFileName = input.AvatarFileName

	if err := s.m.update(ctx, blog); err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyBlogByTag(oldTag))
	s.c.Delete(common.CacheKeyBlogByTag(blog.Tag))

	return blog, nil
}

// GetByTag looks a blog up by its normalized tag, read-through cached.
func (s *BlogService) GetByTag(ctx context.Context, tag string) (*Blog, error) {
	tag = NormalizeTag(tag)

	if cached, ok := s.c.Get(common.CacheKeyBlogByTag(tag)); ok {
		if blog, ok := cached.(*Blog); ok {
			return blog, nil
		}
	}

	blog, err := s.m.getByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlogByTag(tag), blog)

	return blog, nil
}
