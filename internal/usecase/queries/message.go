package queries

import (
	"context"

	"decor-rental/internal/domain/message"
	"decor-rental/internal/domain/testimonial"
	"decor-rental/internal/usecase/shared"
)

type MessageQueries interface {
	List(ctx context.Context) (*MessageList, error)
}

type messageQueriesImpl struct {
	reader shared.DatasetReader
}

func NewMessageQueries(reader shared.DatasetReader) MessageQueries {
	return &messageQueriesImpl{reader: reader}
}

func (q *messageQueriesImpl) List(ctx context.Context) (*MessageList, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	msgs := append([]message.Message{}, ds.Messages...)
	sortNewestFirst(msgs, func(m message.Message) string { return m.CreatedAt })
	return &MessageList{Messages: msgs, Unread: message.CountUnread(msgs)}, nil
}

type TestimonialQueries interface {
	List(ctx context.Context) ([]testimonial.Testimonial, error)
}

type testimonialQueriesImpl struct {
	reader shared.DatasetReader
}

func NewTestimonialQueries(reader shared.DatasetReader) TestimonialQueries {
	return &testimonialQueriesImpl{reader: reader}
}

func (q *testimonialQueriesImpl) List(ctx context.Context) ([]testimonial.Testimonial, error) {
	ds, err := q.reader.Read(ctx)
	if err != nil {
		return nil, err
	}
	return append([]testimonial.Testimonial{}, ds.Testimonials...), nil
}
