package commentservice

import (
	"context"
	"errors"
	"log/slog"
	"mediaportal/internal/models"
	"time"

	uuid "github.com/satori/go.uuid"
)

const pkg = "commentService/"

type CommentService struct {
	log         *slog.Logger
	commentRepo CommentRepository
}

func New(log *slog.Logger, commentRepo CommentRepository) *CommentService {
	return &CommentService{
		log:         log,
		commentRepo: commentRepo,
	}
}

func (cs *CommentService) CreateComment(ctx context.Context, content string, authorID string, documentID string, audioID string) (*models.Comment, error) {
	op := pkg + "CreateComment"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to create comment", slog.String("author_id", authorID))

	if content == "" {
		log.Warn("empty comment content")
		return nil, models.ErrInvalidParams
	}

	now := time.Now()

	comment := &models.Comment{
		ID:         uuid.NewV4().String(),
		Content:    content,
		AuthorID:   authorID,
		DocumentID: documentID,
		AudioID:    audioID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if !comment.HasValidTarget() {
		log.Warn("comment must target exactly one of document or audio")
		return nil, models.ErrInvalidCommentTarget
	}

	if err := cs.commentRepo.CreateComment(ctx, comment); err != nil {
		log.Error("failed to create comment", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("comment created successfully", slog.String("comment_id", comment.ID))

	return comment, nil
}

// ListComments returns matching comments in creation order, oldest first.
func (cs *CommentService) ListComments(ctx context.Context, filter models.CommentFilter) ([]*models.Comment, error) {
	op := pkg + "ListComments"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to list comments")

	comments, err := cs.commentRepo.ListComments(ctx, filter)
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("comments listed successfully", slog.Int("count", len(comments)))

	return comments, nil
}

func (cs *CommentService) UpdateComment(ctx context.Context, commentID string, content string, actor *models.User) (*models.Comment, error) {
	op := pkg + "UpdateComment"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to update comment", slog.String("comment_id", commentID), slog.String("user_id", actor.ID))

	if content == "" {
		log.Warn("empty comment content")
		return nil, models.ErrInvalidParams
	}

	comment, err := cs.commentRepo.CommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			log.Warn("comment not found", slog.String("comment_id", commentID))
			return nil, models.ErrCommentNotFound
		}
		log.Error("failed to get comment by id", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	if !models.CanEdit(actor, comment.AuthorID) {
		log.Warn("user doesn't have access for update operation", slog.String("comment_id", commentID), slog.String("user_id", actor.ID))
		return nil, models.ErrForbidden
	}

	updated, err := cs.commentRepo.UpdateComment(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			log.Warn("comment not found", slog.String("comment_id", commentID))
			return nil, models.ErrCommentNotFound
		}
		log.Error("failed to update comment", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("comment updated successfully", slog.String("comment_id", commentID))

	return updated, nil
}

func (cs *CommentService) DeleteComment(ctx context.Context, commentID string, actor *models.User) error {
	op := pkg + "DeleteComment"

	log := cs.log.With(slog.String("op", op))

	log.Debug("attempting to delete comment", slog.String("comment_id", commentID), slog.String("user_id", actor.ID))

	comment, err := cs.commentRepo.CommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			log.Warn("comment not found", slog.String("comment_id", commentID))
			return models.ErrCommentNotFound
		}
		log.Error("failed to get comment by id", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if !models.CanEdit(actor, comment.AuthorID) {
		log.Warn("user doesn't have access for delete operation", slog.String("comment_id", commentID), slog.String("user_id", actor.ID))
		return models.ErrForbidden
	}

	if err := cs.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			log.Warn("comment already deleted", slog.String("comment_id", commentID))
			return models.ErrCommentNotFound
		}
		log.Error("failed to delete comment", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("comment deleted successfully", slog.String("comment_id", commentID))

	return nil
}
