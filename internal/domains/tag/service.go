package tag

import "context"

// Service is the tag business logic surface consumed by the HTTP handlers.
type Service interface {
	List(ctx context.Context) ([]Tag, error)
	Create(ctx context.Context, req *TagReq) (*Tag, error)
	Update(ctx context.Context, id int, req *TagReq) (*Tag, error)
	Delete(ctx context.Context, id int) error
}
