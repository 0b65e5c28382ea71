package service

import (
	"context"

	"travelblog-backend/internal/domains/tag"
)

type tagService struct {
	repo tag.Repository
}

// NewTagService wires the tag business logic over a store backend.
func NewTagService(repo tag.Repository) tag.Service {
	return &tagService{repo: repo}
}

func (s *tagService) List(ctx context.Context) ([]tag.Tag, error) {
	return s.repo.GetAll(ctx)
}

func (s *tagService) Create(ctx context.Context, req *tag.TagReq) (*tag.Tag, error) {
	return s.repo.Create(ctx, &tag.Tag{
		Name: req.Name,
		Icon: req.Icon,
	})
}

func (s *tagService) Update(ctx context.Context, id int, req *tag.TagReq) (*tag.Tag, error) {
	return s.repo.Update(ctx, id, req.Name, req.Icon)
}

func (s *tagService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
