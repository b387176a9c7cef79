package commentrepo

import (
	"context"
	"database/sql"
	"mediaportal/internal/models"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

var commentColumns = []string{"id", "content", "author_id", "document_id", "audio_id", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { db.Close() }
}

func TestCreateComment_OnDocument(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	now := time.Now()
	comment := &models.Comment{
		ID:         "c1",
		Content:    "nice report",
		AuthorID:   "u1",
		DocumentID: "d1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec("INSERT INTO comments").
		WithArgs(comment.ID, comment.Content, comment.AuthorID, comment.DocumentID, nil, comment.CreatedAt, comment.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateComment(context.Background(), comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComment_OnAudio(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	now := time.Now()
	comment := &models.Comment{
		ID:        "c1",
		Content:   "great track",
		AuthorID:  "u1",
		AudioID:   "a1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO comments").
		WithArgs(comment.ID, comment.Content, comment.AuthorID, nil, comment.AudioID, comment.CreatedAt, comment.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateComment(context.Background(), comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentByID_Success(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	now := time.Now()
	rows := sqlmock.NewRows(commentColumns).
		AddRow("c1", "nice report", "u1", "d1", nil, now, now)

	mock.ExpectQuery("SELECT(.|\n)*FROM comments c(.|\n)*WHERE c.id").
		WithArgs("c1").
		WillReturnRows(rows)

	comment, err := repo.CommentByID(context.Background(), "c1")
	assert.NoError(t, err)
	assert.Equal(t, "d1", comment.DocumentID)
	assert.Empty(t, comment.AudioID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentByID_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("SELECT(.|\n)*FROM comments c(.|\n)*WHERE c.id").
		WithArgs("c404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.CommentByID(context.Background(), "c404")
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListComments_ByDocument(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	rows := sqlmock.NewRows(commentColumns).
		AddRow("c1", "first", "u1", "d1", nil, older, older).
		AddRow("c2", "second", "u2", "d1", nil, newer, newer)

	mock.ExpectQuery("SELECT(.|\n)*FROM comments c(.|\n)*AND c.document_id(.|\n)*ORDER BY c.created_at ASC").
		WithArgs("d1").
		WillReturnRows(rows)

	comments, err := repo.ListComments(context.Background(), models.CommentFilter{DocumentID: "d1"})
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "c1", comments[0].ID)
	assert.Equal(t, "c2", comments[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListComments_ByAudioAndAuthor(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	now := time.Now()
	rows := sqlmock.NewRows(commentColumns).
		AddRow("c1", "mine", "u1", nil, "a1", now, now)

	mock.ExpectQuery("SELECT(.|\n)*FROM comments c(.|\n)*AND c.audio_id(.|\n)*AND c.author_id(.|\n)*ORDER BY c.created_at ASC").
		WithArgs("a1", "u1").
		WillReturnRows(rows)

	comments, err := repo.ListComments(context.Background(), models.CommentFilter{AudioID: "a1", AuthorID: "u1"})
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "a1", comments[0].AudioID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListComments_NoFilter(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("SELECT(.|\n)*FROM comments c(.|\n)*ORDER BY c.created_at ASC").
		WillReturnRows(sqlmock.NewRows(commentColumns))

	comments, err := repo.ListComments(context.Background(), models.CommentFilter{})
	assert.NoError(t, err)
	assert.Empty(t, comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComment_Success(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	now := time.Now()
	rows := sqlmock.NewRows(commentColumns).
		AddRow("c1", "edited", "u1", "d1", nil, now, now)

	mock.ExpectQuery("UPDATE comments c SET(.|\n)*RETURNING").
		WithArgs("c1", "edited").
		WillReturnRows(rows)

	comment, err := repo.UpdateComment(context.Background(), "c1", "edited")
	assert.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComment_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("UPDATE comments c SET(.|\n)*RETURNING").
		WithArgs("c404", "edited").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateComment(context.Background(), "c404", "edited")
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM comments WHERE id").
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "c1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM comments WHERE id").
		WithArgs("c404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "c404")
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
