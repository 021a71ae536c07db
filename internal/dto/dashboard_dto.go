package dto

// TagCount is one entry of the top-tags aggregate.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type DashboardStatsResponse struct {
	Prompts            int64            `json:"prompts"`
	Workflows          int64            `json:"workflows"`
	Posts              int64            `json:"posts"`
	PostsByStatus      map[string]int64 `json:"posts_by_status"`
	KnowledgeDocuments int64            `json:"knowledge_documents"`
	KnowledgeChunks    int64            `json:"knowledge_chunks"`
	UnhandledContacts  int64            `json:"unhandled_contacts"`
	TopTags            []TagCount       `json:"top_tags"`
}
