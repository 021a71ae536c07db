package service

import (
	"context"
	"strings"

	"consultly-be/internal/config"
	"consultly-be/internal/dto"
	"consultly-be/internal/entity"
	"consultly-be/internal/normalizer"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/specification"
	"consultly-be/internal/repository/unitofwork"
	"consultly-be/pkg/content"
	"consultly-be/pkg/filter"
	"consultly-be/pkg/textsplit"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	Ingest(ctx context.Context, ownerId string, req *dto.IngestKnowledgeRequest) (*dto.IngestKnowledgeResponse, error)
	Update(ctx context.Context, req *dto.UpdateKnowledgeRequest) (*dto.UpdateKnowledgeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Show(ctx context.Context, id uuid.UUID) (*dto.KnowledgeDocumentResponse, error)
	Search(ctx context.Context, query *dto.SearchKnowledgeQuery) ([]*dto.KnowledgeDocumentResponse, error)
	GetChunks(ctx context.Context, documentId uuid.UUID) ([]*dto.KnowledgeChunkResponse, error)
	SearchChunks(ctx context.Context, term string) ([]*dto.KnowledgeChunkResponse, error)
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	ingestCfg        config.IngestConfig
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	ingestCfg config.IngestConfig,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		ingestCfg:        ingestCfg,
	}
}

// buildChunks splits a document body and derives the per-chunk metadata.
// Neighbouring chunks reference each other so a retrieval layer can widen
// its context window without re-querying the document.
func buildChunks(doc *entity.KnowledgeDocument, chunkSize, overlap int) []*entity.KnowledgeChunk {
	pieces := textsplit.Split(doc.Content, chunkSize, overlap)

	chunks := make([]*entity.KnowledgeChunk, 0, len(pieces))
	for i, piece := range pieces {
		words := content.WordCount(piece)

		confidence := 0.5 + float64(words)/400
		if confidence > 1 {
			confidence = 1
		}

		chunks = append(chunks, &entity.KnowledgeChunk{
			Id:         uuid.New(),
			DocumentId: doc.Id,
			Content:    piece,
			WordCount:  words,
			Keywords:   content.Keywords(piece, 4, 10),
			Category:   doc.Category,
			Confidence: confidence,
			Section:    i,
		})
	}

	for i := range chunks {
		if i > 0 {
			chunks[i].RelatedChunkIds = append(chunks[i].RelatedChunkIds, chunks[i-1].Id)
		}
		if i < len(chunks)-1 {
			chunks[i].RelatedChunkIds = append(chunks[i].RelatedChunkIds, chunks[i+1].Id)
		}
	}

	return chunks
}

// Ingest stores a document and its chunks in a single transaction, so a
// failure at any point leaves no half-ingested document behind.
func (s *knowledgeService) Ingest(ctx context.Context, ownerId string, req *dto.IngestKnowledgeRequest) (*dto.IngestKnowledgeResponse, error) {
	doc, err := normalizer.Knowledge(normalizer.KnowledgeInput{
		Title:    req.Title,
		Content:  req.Content,
		Slug:     req.Slug,
		Category: req.Category,
		Tags:     req.Tags,
		Source:   req.Source,
		OwnerId:  ownerId,
	})
	if err != nil {
		return nil, err
	}
	doc.Id = uuid.New()

	chunks := buildChunks(doc, s.ingestCfg.ChunkSize, s.ingestCfg.ChunkOverlap)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.KnowledgeDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}
	if err := uow.KnowledgeChunkRepository().CreateBatch(ctx, chunks); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.IngestKnowledgeResponse{
		Id:         doc.Id,
		Slug:       doc.Slug,
		ChunkCount: len(chunks),
	}, nil
}

// Update replaces the document and queues a chunk rebuild; the indexer picks
// it up asynchronously so the write path stays fast.
func (s *knowledgeService) Update(ctx context.Context, req *dto.UpdateKnowledgeRequest) (*dto.UpdateKnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.KnowledgeDocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("knowledge document", req.Id.String())
	}

	doc, err := normalizer.Knowledge(normalizer.KnowledgeInput{
		Title:    req.Title,
		Content:  req.Content,
		Slug:     existing.Slug,
		Category: req.Category,
		Tags:     req.Tags,
		Source:   req.Source,
		OwnerId:  existing.OwnerId,
	})
	if err != nil {
		return nil, err
	}
	doc.Id = req.Id

	if err := uow.KnowledgeDocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.publisherService.PublishReindex(ctx, doc.Id); err != nil {
		return nil, err
	}

	return &dto.UpdateKnowledgeResponse{Id: doc.Id}, nil
}

// Delete removes the document together with its chunks.
func (s *knowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.KnowledgeChunkRepository().DeleteByDocumentId(ctx, id); err != nil {
		return err
	}
	if err := uow.KnowledgeDocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *knowledgeService) Show(ctx context.Context, id uuid.UUID) (*dto.KnowledgeDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.KnowledgeDocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NotFound("knowledge document", id.String())
	}

	return toKnowledgeDocumentResponse(doc, true), nil
}

func (s *knowledgeService) Search(ctx context.Context, query *dto.SearchKnowledgeQuery) ([]*dto.KnowledgeDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}

	docs, err := uow.KnowledgeDocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	docs = filter.BySubstring(docs, query.Search)
	docs = filter.ByTags(docs, splitTags(query.Tags))

	result := make([]*dto.KnowledgeDocumentResponse, 0, len(docs))
	for _, doc := range docs {
		result = append(result, toKnowledgeDocumentResponse(doc, false))
	}
	return result, nil
}

func (s *knowledgeService) GetChunks(ctx context.Context, documentId uuid.UUID) ([]*dto.KnowledgeChunkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.KnowledgeDocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NotFound("knowledge document", documentId.String())
	}

	chunks, err := uow.KnowledgeChunkRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "section"},
	)
	if err != nil {
		return nil, err
	}

	return toKnowledgeChunkResponses(chunks), nil
}

func (s *knowledgeService) SearchChunks(ctx context.Context, term string) ([]*dto.KnowledgeChunkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chunks, err := uow.KnowledgeChunkRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	chunks = filter.BySubstring(chunks, term)
	return toKnowledgeChunkResponses(chunks), nil
}

func toKnowledgeDocumentResponse(doc *entity.KnowledgeDocument, withContent bool) *dto.KnowledgeDocumentResponse {
	res := &dto.KnowledgeDocumentResponse{
		Id:        doc.Id,
		Title:     doc.Title,
		Slug:      doc.Slug,
		Category:  doc.Category,
		Tags:      doc.Tags,
		Source:    doc.Source,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if withContent {
		res.Content = doc.Content
	}
	return res
}

func toKnowledgeChunkResponses(chunks []*entity.KnowledgeChunk) []*dto.KnowledgeChunkResponse {
	result := make([]*dto.KnowledgeChunkResponse, 0, len(chunks))
	for _, chunk := range chunks {
		result = append(result, &dto.KnowledgeChunkResponse{
			Id:         chunk.Id,
			DocumentId: chunk.DocumentId,
			Content:    chunk.Content,
			WordCount:  chunk.WordCount,
			Keywords:   chunk.Keywords,
			Category:   chunk.Category,
			Confidence: chunk.Confidence,
			Section:    chunk.Section,
		})
	}
	return result
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
