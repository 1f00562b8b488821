package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"log/slog"

	"farmassist/internal/modules/community/types"
)

//go:embed sql/list-posts.sql
var listPostsSQL string

//go:embed sql/list-groups.sql
var listGroupsSQL string

type CommunityRepository interface {
	ListPosts(ctx context.Context) ([]types.Post, error)
	ListGroups(ctx context.Context) ([]types.Group, error)
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) CommunityRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListPosts(ctx context.Context) ([]types.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close posts rows", "error", err)
		}
	}()

	var out []types.Post
	for rows.Next() {
		var (
			p     types.Post
			image sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Author, &p.Text.En, &p.Text.Hi, &image, &p.Likes, &p.Comments, &p.Shares); err != nil {
			return nil, err
		}
		p.ImageURL = image.String
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) ListGroups(ctx context.Context) ([]types.Group, error) {
	rows, err := r.db.QueryContext(ctx, listGroupsSQL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close groups rows", "error", err)
		}
	}()

	var out []types.Group
	for rows.Next() {
		var g types.Group
		if err := rows.Scan(&g.ID, &g.Name.En, &g.Name.Hi, &g.Members); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
