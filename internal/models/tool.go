// Package models defines the domain types for Tooldex.
package models

// Tool represents one catalog entry.
//
// Audience, Features, UseCases, and Tags are stored exactly as ingested:
// a single comma-delimited string. Use SplitList to expand them.
type Tool struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Link        string `json:"link,omitempty"`
	Overview    string `json:"overview"`
	Description string `json:"description"`
	Audience    string `json:"audience"`
	Features    string `json:"features"`
	UseCases    string `json:"use_cases"`
	Tags        string `json:"tags"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Category is a derived view: a label plus the tools carrying it.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
	Tools []Tool `json:"tools,omitempty"`
}

// TagCount is a tag label with its usage count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Stats holds the summary counts for one catalog snapshot.
type Stats struct {
	TotalTools      int `json:"total_tools"`
	TotalCategories int `json:"total_categories"`
	TotalTags       int `json:"total_tags"`
	ToolsWithLink   int `json:"tools_with_link"`
	ToolsWithImage  int `json:"tools_with_image"`
}
