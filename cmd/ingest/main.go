// Command ingest loads markdown files with YAML front matter into the
// content store. Files with kind "knowledge" become knowledge documents and
// get chunked; everything else becomes a blog post, published by default.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"consultly-be/internal/config"
	"consultly-be/internal/dto"
	"consultly-be/internal/repository/unitofwork"
	"consultly-be/internal/service"
	"consultly-be/pkg/database"
	"consultly-be/pkg/frontmatter"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
)

func main() {
	pattern := flag.String("glob", "content/**/*.md", "glob pattern of files to ingest")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(cfg.Ingest.ReindexTopic, pubSub)

	postService := service.NewPostService(uowFactory, nil, nil)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, cfg.Ingest)

	base := os.DirFS(".")
	matches, err := doublestar.Glob(base, *pattern)
	if err != nil {
		log.Fatalf("Error: Bad glob pattern %q: %v", *pattern, err)
	}
	if len(matches) == 0 {
		color.Yellow("No files matched %s", *pattern)
		return
	}

	ctx := context.Background()
	var ok, failed int

	for _, path := range matches {
		if err := ingestFile(ctx, postService, knowledgeService, path); err != nil {
			color.Red("✗ %s: %v", path, err)
			failed++
			continue
		}
		color.Green("✓ %s", path)
		ok++
	}

	color.Cyan("Done: %d ingested, %d failed", ok, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func ingestFile(ctx context.Context, posts service.IPostService, knowledge service.IKnowledgeService, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	parsed, err := frontmatter.Parse(f)
	if err != nil {
		return err
	}

	meta := parsed.Metadata
	if meta.GetString("date") != "" {
		// Timestamps are server-assigned on write; a date header cannot be honored.
		color.Yellow("  %s: front-matter 'date' ignored, timestamps are server-assigned", path)
	}

	title := meta.GetString("title")
	if title == "" {
		// Fall back to the file name so bare markdown still ingests.
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if strings.EqualFold(meta.GetString("kind"), "knowledge") {
		_, err := knowledge.Ingest(ctx, "", &dto.IngestKnowledgeRequest{
			Title:    title,
			Content:  parsed.Body,
			Slug:     meta.GetString("slug"),
			Category: meta.GetString("category"),
			Tags:     meta.GetStringSlice("tags"),
			Source:   path,
		})
		return err
	}

	status := meta.GetString("status")
	if status == "" {
		status = "published"
	}

	_, err = posts.Create(ctx, "", &dto.CreatePostRequest{
		Title:    title,
		Content:  parsed.Body,
		Excerpt:  meta.GetString("excerpt"),
		Slug:     meta.GetString("slug"),
		Category: meta.GetString("category"),
		Tags:     meta.GetStringSlice("tags"),
		Status:   status,
		Featured: meta.GetBool("featured"),
	})
	return err
}
