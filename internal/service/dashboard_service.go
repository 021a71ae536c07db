package service

import (
	"context"
	"sort"
	"time"

	"consultly-be/internal/dto"
	"consultly-be/internal/entity"
	"consultly-be/internal/repository/specification"
	"consultly-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

const (
	dashboardCacheKey = "dashboard:stats"
	topTagsLimit      = 10
)

type IDashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	statsCache *cache.Cache
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		statsCache: cache.New(time.Minute, 5*time.Minute),
	}
}

// GetStats aggregates counts across every content kind. The result is cached
// for a minute; the dashboard polls it and does not need fresher data.
func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if cached, found := s.statsCache.Get(dashboardCacheKey); found {
		return cached.(*dto.DashboardStatsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	promptCount, err := uow.PromptRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	workflowCount, err := uow.WorkflowRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	postCount, err := uow.PostRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	docCount, err := uow.KnowledgeDocumentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	chunkCount, err := uow.KnowledgeChunkRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	unhandledCount, err := uow.ContactRepository().Count(ctx, specification.ByHandled{Handled: false})
	if err != nil {
		return nil, err
	}

	postsByStatus := make(map[string]int64)
	for _, status := range []entity.PostStatus{entity.PostStatusDraft, entity.PostStatusPublished, entity.PostStatusArchived} {
		count, err := uow.PostRepository().Count(ctx, specification.ByStatus{Status: string(status)})
		if err != nil {
			return nil, err
		}
		postsByStatus[string(status)] = count
	}

	topTags, err := s.aggregateTopTags(ctx, uow)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsResponse{
		Prompts:            promptCount,
		Workflows:          workflowCount,
		Posts:              postCount,
		PostsByStatus:      postsByStatus,
		KnowledgeDocuments: docCount,
		KnowledgeChunks:    chunkCount,
		UnhandledContacts:  unhandledCount,
		TopTags:            topTags,
	}

	s.statsCache.Set(dashboardCacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}

// aggregateTopTags counts tag usage across prompts, workflows, posts and
// knowledge documents. Ties break alphabetically so the ordering is stable.
func (s *dashboardService) aggregateTopTags(ctx context.Context, uow unitofwork.UnitOfWork) ([]dto.TagCount, error) {
	counts := make(map[string]int)

	prompts, err := uow.PromptRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range prompts {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}

	workflows, err := uow.WorkflowRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range workflows {
		for _, tag := range w.Tags {
			counts[tag]++
		}
	}

	posts, err := uow.PostRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}

	docs, err := uow.KnowledgeDocumentRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		for _, tag := range d.Tags {
			counts[tag]++
		}
	}

	tags := make([]dto.TagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, dto.TagCount{Tag: tag, Count: count})
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})

	if len(tags) > topTagsLimit {
		tags = tags[:topTagsLimit]
	}
	return tags, nil
}
