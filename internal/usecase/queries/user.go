package queries

import (
	"context"

	"decor-rental/internal/domain/site"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/shared"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

type UserQueries interface {
	List(ctx context.Context) ([]UserView, error)
	GetCurrentUser(ctx context.Context, userID string) (*UserView, error)
}

type userQueriesImpl struct {
	reader shared.DatasetReader
}

func NewUserQueries(reader shared.DatasetReader) UserQueries {
	return &userQueriesImpl{reader: reader}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserView, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(ds.Users))
	for _, u := range ds.Users {
		views = append(views, NewUserView(u))
	}
	return views, nil
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID string) (*UserView, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	i := site.IndexOf(ds.Users, userID)
	if i < 0 {
		return nil, shared.NotFound(errs.ErrUserNotFound)
	}
	view := NewUserView(ds.Users[i])
	return &view, nil
}
