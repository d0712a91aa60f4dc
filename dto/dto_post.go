package dto

import "civic-reports/internal/models"

// ===== Request =====
type CreatePostRequest struct {
	Title   string   `json:"title"   example:"Pothole on Main Street"`
	Content string   `json:"content" example:"Large pothole causing accidents #roads"`
	Images  []string `json:"images,omitempty"`
}

// UpdatePostRequest edits title and/or content; omitted fields stay as they are.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status" example:"working"`
}

type CreateCommentRequest struct {
	Text string `json:"text" example:"Same problem near the bus stand"`
}

// ===== Response =====
type PostPageResponse struct {
	Posts      []models.Post `json:"posts"`
	NextCursor *string       `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

type ListCommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
