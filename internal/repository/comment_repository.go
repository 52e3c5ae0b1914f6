package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"celula-igreja/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByGroup(ctx context.Context, groupID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, group_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.GroupID, comment.UserID, comment.Content,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM comments WHERE group_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, groupID); err != nil {
		return nil, 0, err
	}

	type commentRow struct {
		domain.Comment
		AuthorName     *string `db:"author_name"`
		AuthorSurname  *string `db:"author_surname"`
		AuthorPhotoURL *string `db:"author_photo_url"`
	}

	var rows []commentRow
	query := `
		SELECT c.*, u.name AS author_name, u.surname AS author_surname, u.photo_url AS author_photo_url
		FROM comments c
		LEFT JOIN users u ON u.user_id = c.user_id AND u.deleted_at IS NULL
		WHERE c.group_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`

	if err := r.db.SelectContext(ctx, &rows, query, groupID, params.PageSize, params.Offset()); err != nil {
		return nil, 0, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comment := row.Comment
		if row.AuthorName != nil {
			comment.Author = &domain.CommentAuthor{
				ID:       comment.UserID,
				Name:     *row.AuthorName,
				PhotoURL: row.AuthorPhotoURL,
			}
			if row.AuthorSurname != nil {
				comment.Author.Surname = *row.AuthorSurname
			}
		}
		comments = append(comments, comment)
	}

	return comments, total, nil
}
