package commentservice

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/okuznetsov/blogware/internal/common"
)

type CreateCommentInput struct {
	Text string `json:"text"`
}

type UpdateCommentInput struct {
	Text string `json:"text"`
}

// Create stores the comment and publishes a comment.created event so the post
// author gets notified by mail. A broker failure does not fail the request;
// the comment is already durable and the notification is best effort.
func (s *CommentService) Create(ctx context.Context, userID, postID uuid.UUID, input CreateCommentInput) (*Comment, error) {
	v := common.NewValidator()
	validateText(v, input.Text)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	post, err := s.m.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:        uuid.New(),
		Text:      input.Text,
		CreatedAt: s.clock.Now(),
		PostID:    postID,
		UserID:    userID,
	}

	err = s.m.insert(ctx, comment)
	if err != nil {
		return nil, err
	}

	stored, err := s.m.getByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	s.publishCreated(ctx, stored, post)

	return stored, nil
}

func (s *CommentService) publishCreated(ctx context.Context, comment *Comment, post *commentedPost) {
	event := CommentCreatedEvent{
		PostHeader:     post.Header,
		CommentAuthor:  comment.AuthorName,
		CommentText:    comment.Text,
		RecipientEmail: post.AuthorEmail,
		RecipientName:  post.AuthorName,
	}

	msg, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("could not marshal comment created event", slog.String("error", err.Error()))
		return
	}

	err = s.mb.Publish(ctx, msg, common.CommentCreatedKey, common.CommentExchange)
	if err != nil {
		s.logger.Error("could not publish comment created event", slog.String("error", err.Error()))
	}
}

func (s *CommentService) Update(ctx context.Context, userID, commentID uuid.UUID, input UpdateCommentInput) (*Comment, error) {
	v := common.NewValidator()
	validateText(v, input.Text)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	comment, err := s.m.getByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	err = common.CheckOwnership(comment.UserID, userID, "comment")
	if err != nil {
		return nil, err
	}

	comment.Text = input.Text
	comment.IsModified = true

	err = s.m.update(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.m.getByID(ctx, commentID)
	if err != nil {
		return err
	}

	err = common.CheckOwnership(comment.UserID, userID, "comment")
	if err != nil {
		return err
	}

	return s.m.delete(ctx, commentID)
}

func (s *CommentService) GetPagedByPostID(ctx context.Context, postID uuid.UUID, p common.Pagination) (*CommentPage, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	comments, err := s.m.pagedByPost(ctx, postID, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}

	return &CommentPage{Comments: comments, Pagination: p}, nil
}
